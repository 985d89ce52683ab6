// Package graphql exposes the API schema and the resolvers bridging it
// to the usecases.
package graphql

import (
	"log/slog"

	"github.com/graphql-go/graphql"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "gameswap/internal/delivery/context"
	domainerrors "gameswap/internal/domain/errors"
	"gameswap/internal/usecase"
)

// Resolver implements every field of the schema on top of the usecases.
type Resolver struct {
	account usecase.AccountUsecase
	catalog usecase.CatalogUsecase
	logger  *slog.Logger
}

// ResolverParams holds dependencies for Resolver, injected by Fx.
type ResolverParams struct {
	fx.In

	Account usecase.AccountUsecase
	Catalog usecase.CatalogUsecase
	Logger  *slog.Logger
}

// NewResolver is the constructor for Resolver.
func NewResolver(params ResolverParams) *Resolver {
	return &Resolver{
		account: params.Account,
		catalog: params.Catalog,
		logger:  params.Logger,
	}
}

// present converts an internal error into the message shown to the
// client. Application errors keep their stable user-facing message;
// anything else is logged and collapsed into a generic one.
func (r *Resolver) present(p graphql.ResolveParams, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return errors.New(appErr.Message())
	}

	logger := deliverycontext.GetLoggerOrDefault(p.Context, r.logger)
	logger.Error("Resolver failed",
		slog.String("field", p.Info.FieldName),
		slog.Any("error", err),
	)

	return errors.New(domainerrors.ErrInternal.Message())
}

func stringArg(p graphql.ResolveParams, name string) string {
	value, _ := p.Args[name].(string)

	return value
}

func (r *Resolver) me(p graphql.ResolveParams) (any, error) {
	user, err := r.account.Me(p.Context, deliverycontext.GetPrincipal(p.Context))
	if err != nil {
		return nil, r.present(p, err)
	}
	if user == nil {
		// Unknown account resolves to null, not an error.
		return nil, nil
	}

	return user, nil
}

func (r *Resolver) library(p graphql.ResolveParams) (any, error) {
	games, err := r.catalog.Library(p.Context)
	if err != nil {
		return nil, r.present(p, err)
	}

	return games, nil
}

func (r *Resolver) search(p graphql.ResolveParams) (any, error) {
	games, err := r.catalog.Search(p.Context, stringArg(p, "title"))
	if err != nil {
		return nil, r.present(p, err)
	}

	return games, nil
}

func (r *Resolver) externalSearch(p graphql.ResolveParams) (any, error) {
	results, err := r.catalog.ExternalSearch(p.Context, stringArg(p, "title"))
	if err != nil {
		return nil, r.present(p, err)
	}

	return results, nil
}

func (r *Resolver) externalDetail(p graphql.ResolveParams) (any, error) {
	detail, err := r.catalog.ExternalDetail(p.Context, stringArg(p, "slug"))
	if err != nil {
		return nil, r.present(p, err)
	}
	if detail == nil {
		return nil, nil
	}

	return detail, nil
}

func (r *Resolver) loginUser(p graphql.ResolveParams) (any, error) {
	out, err := r.account.Login(p.Context, &usecase.LoginInput{
		Email:    stringArg(p, "email"),
		Password: stringArg(p, "password"),
	})
	if err != nil {
		return nil, r.present(p, err)
	}

	return out, nil
}

func (r *Resolver) addUser(p graphql.ResolveParams) (any, error) {
	out, err := r.account.Register(p.Context, &usecase.RegisterInput{
		Username: stringArg(p, "username"),
		Email:    stringArg(p, "email"),
		Password: stringArg(p, "password"),
	})
	if err != nil {
		return nil, r.present(p, err)
	}

	return out, nil
}

func (r *Resolver) saveGame(p graphql.ResolveParams) (any, error) {
	set, err := r.account.SaveGame(p.Context, deliverycontext.GetPrincipal(p.Context), stringArg(p, "gameId"))
	if err != nil {
		return nil, r.present(p, err)
	}

	return set, nil
}

func (r *Resolver) removeGame(p graphql.ResolveParams) (any, error) {
	set, err := r.account.RemoveGame(p.Context, deliverycontext.GetPrincipal(p.Context), stringArg(p, "gameId"))
	if err != nil {
		return nil, r.present(p, err)
	}

	return set, nil
}
