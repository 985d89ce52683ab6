// Package router registers the HTTP routes of the service.
package router

import (
	"net/http"

	"github.com/graphql-go/handler"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"gameswap/internal/delivery/http/middleware"
	domainerrors "gameswap/internal/domain/errors"
)

// RouterParams holds dependencies for Router, injected by Fx.
type RouterParams struct {
	fx.In

	GraphQL   *handler.Handler
	RequestID *middleware.RequestIDMiddleware
	Auth      *middleware.AuthMiddleware
}

// Router wires the middlewares and the GraphQL endpoint onto echo.
type Router struct {
	graphql   *handler.Handler
	requestID *middleware.RequestIDMiddleware
	auth      *middleware.AuthMiddleware
}

// NewRouter is the constructor for Router.
func NewRouter(params RouterParams) *Router {
	return &Router{
		graphql:   params.GraphQL,
		requestID: params.RequestID,
		auth:      params.Auth,
	}
}

// RegisterRoutes attaches all routes to the echo server.
func (r *Router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestID.Process)

	e.GET("/health", healthCheck)

	// The whole API is served through the single GraphQL endpoint. GET
	// stays routed for GraphiQL in debug mode.
	e.Any("/graphql", echo.WrapHandler(r.graphql), r.auth.Authenticate)
}

func healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, domainerrors.Response{
		Success: true,
		Code:    http.StatusOK,
		Message: "ok",
	})
}
