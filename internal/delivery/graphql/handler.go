package graphql

import (
	"github.com/graphql-go/handler"
	"go.uber.org/fx"

	"gameswap/config"
)

// HandlerParams holds dependencies for the GraphQL HTTP handler, injected by Fx.
type HandlerParams struct {
	fx.In

	Config   *config.Config
	Resolver *Resolver
}

// NewHandler builds the HTTP handler serving the schema. GraphiQL and
// pretty-printed responses are only enabled in debug mode.
func NewHandler(params HandlerParams) (*handler.Handler, error) {
	schema, err := NewSchema(params.Resolver)
	if err != nil {
		return nil, err
	}

	return handler.New(&handler.Config{
		Schema:   &schema,
		Pretty:   params.Config.Env.Debug,
		GraphiQL: params.Config.Env.Debug,
	}), nil
}
