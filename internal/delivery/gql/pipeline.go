// Package gql runs GraphQL requests: parse, validate against the schema and the
// depth limit, then execute with a fresh set of request loaders.
package gql

import (
	"context"
	"log/slog"
	"time"

	"membergraph/config"
	deliverycontext "membergraph/internal/delivery/context"
	"membergraph/internal/delivery/gql/loader"
	"membergraph/internal/delivery/gql/schema"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/gqlerrors"
	"github.com/graphql-go/graphql/language/parser"
	"github.com/graphql-go/graphql/language/source"
	"go.uber.org/fx"
)

const defaultMaxDepth = 5

// Request is the body of a GraphQL HTTP request.
type Request struct {
	Query         string                 `json:"query" validate:"required"`
	Variables     map[string]interface{} `json:"variables,omitempty"`
	OperationName string                 `json:"operationName,omitempty"`
}

// Response is the GraphQL response envelope. Data is absent when the request
// was rejected before execution.
type Response struct {
	Data   interface{}                `json:"data,omitempty"`
	Errors []gqlerrors.FormattedError `json:"errors,omitempty"`
}

// PipelineParams holds the dependencies of the pipeline, injected by Fx.
type PipelineParams struct {
	fx.In

	Schema  *schema.Schema
	Loaders *loader.Factory
	Config  *config.Config
	Logger  *slog.Logger
}

// Pipeline executes GraphQL requests against one schema.
type Pipeline struct {
	schema  *graphql.Schema
	loaders *loader.Factory
	rules   []graphql.ValidationRuleFn
	logger  *slog.Logger
}

// NewPipeline creates a pipeline enforcing the configured maximum depth.
func NewPipeline(params PipelineParams) *Pipeline {
	maxDepth := defaultMaxDepth
	if params.Config != nil && params.Config.GraphQL != nil && params.Config.GraphQL.MaxDepth > 0 {
		maxDepth = params.Config.GraphQL.MaxDepth
	}

	rules := make([]graphql.ValidationRuleFn, 0, len(graphql.SpecifiedRules)+1)
	rules = append(rules, graphql.SpecifiedRules...)
	rules = append(rules, DepthLimitRule(maxDepth))

	return &Pipeline{
		schema:  params.Schema.Executable(),
		loaders: params.Loaders,
		rules:   rules,
		logger:  params.Logger,
	}
}

// Execute runs req. Every outcome, including syntax and validation failures, is
// reported inside the returned Response.
func (p *Pipeline) Execute(ctx context.Context, req *Request) *Response {
	ctx = deliverycontext.WithOperationName(ctx, req.OperationName)
	logger := deliverycontext.GetLoggerOrDefault(ctx, p.logger)
	start := time.Now()

	doc, err := parser.Parse(parser.ParseParams{
		Source: source.NewSource(&source.Source{
			Body: []byte(req.Query),
			Name: "GraphQL request",
		}),
	})
	if err != nil {
		logger.Info("GraphQL request rejected", slog.String("stage", "parse"), slog.Any("error", err))

		return &Response{Errors: []gqlerrors.FormattedError{gqlerrors.FormatError(err)}}
	}

	validation := graphql.ValidateDocument(p.schema, doc, p.rules)
	if !validation.IsValid {
		logger.Info("GraphQL request rejected",
			slog.String("stage", "validate"),
			slog.Int("errors", len(validation.Errors)),
		)

		return &Response{Errors: validation.Errors}
	}

	ctx = loader.WithLoaders(ctx, p.loaders.New(ctx))
	result := graphql.Execute(graphql.ExecuteParams{
		Schema:        *p.schema,
		AST:           doc,
		OperationName: req.OperationName,
		Args:          req.Variables,
		Context:       ctx,
	})

	logger.Debug("GraphQL request executed",
		slog.String("operation", req.OperationName),
		slog.Int("errors", len(result.Errors)),
		slog.Duration("elapsed", time.Since(start)),
	)

	return &Response{Data: result.Data, Errors: result.Errors}
}
