package handler

import (
	"context"
	"log/slog"
	"net/http"

	"membergraph/internal/delivery/api/response"
	deliverycontext "membergraph/internal/delivery/context"
	"membergraph/internal/delivery/gql"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// Executor runs a decoded GraphQL request.
type Executor interface {
	Execute(ctx context.Context, req *gql.Request) *gql.Response
}

// GraphQLHandlerParams holds dependencies for GraphQLHandler, injected by Fx.
type GraphQLHandlerParams struct {
	fx.In

	Executor Executor
	Logger   *slog.Logger
}

// GraphQLHandler serves the GraphQL endpoint.
type GraphQLHandler struct {
	executor Executor
	logger   *slog.Logger
}

// NewGraphQLHandler is the constructor for GraphQLHandler
func NewGraphQLHandler(params GraphQLHandlerParams) *GraphQLHandler {
	return &GraphQLHandler{
		executor: params.Executor,
		logger:   params.Logger,
	}
}

// Query handles POST requests carrying {query, variables, operationName}.
// Every GraphQL outcome is answered with 200; only undecodable bodies get 400.
func (h *GraphQLHandler) Query(c echo.Context) error {
	var req gql.Request
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid GraphQL request body")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "GraphQL request must contain a query")
	}

	deliverycontext.SetOperationName(c, req.OperationName)

	ctx := c.Request().Context()
	resp := h.executor.Execute(ctx, &req)

	if len(resp.Errors) > 0 {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Debug("GraphQL request completed with errors",
			slog.String("operation", req.OperationName),
			slog.Int("errors", len(resp.Errors)),
		)
	}

	return c.JSON(http.StatusOK, resp)
}
