// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"path"

	"membergraph/config"
	"membergraph/internal/delivery/api/router/handler"

	"github.com/99designs/gqlgen/graphql/playground"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	GraphQLHandler *handler.GraphQLHandler
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	graphQLHandler *handler.GraphQLHandler
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		graphQLHandler: params.GraphQLHandler,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	endpoint := r.config.GraphQL.Path
	e.POST(endpoint, r.graphQLHandler.Query)

	if r.config.GraphQL.Playground {
		e.GET(path.Join(endpoint, "playground"), echo.WrapHandler(playground.Handler("membergraph", endpoint)))
	}
}
