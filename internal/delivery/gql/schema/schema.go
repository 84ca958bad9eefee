// Package schema builds the executable GraphQL schema: the object graph, its
// relation resolvers backed by the request loaders, the query root and the
// user mutations.
package schema

import (
	"context"
	"log/slog"

	deliverycontext "membergraph/internal/delivery/context"
	"membergraph/internal/delivery/gql/loader"
	"membergraph/internal/domain/repository"
	"membergraph/internal/errors"
	"membergraph/internal/usecase"

	"github.com/graphql-go/graphql"
	"go.uber.org/fx"
)

// Params holds the dependencies of the schema, injected by Fx.
type Params struct {
	fx.In

	UserUsecase    usecase.UserUsecase
	UserRepo       repository.UserRepository
	ProfileRepo    repository.ProfileRepository
	PostRepo       repository.PostRepository
	MemberTypeRepo repository.MemberTypeRepository
	Logger         *slog.Logger
}

// Schema is the executable schema together with the collaborators its resolvers use.
type Schema struct {
	users          usecase.UserUsecase
	userRepo       repository.UserRepository
	profileRepo    repository.ProfileRepository
	postRepo       repository.PostRepository
	memberTypeRepo repository.MemberTypeRepository
	logger         *slog.Logger

	memberType *graphql.Object
	post       *graphql.Object
	profile    *graphql.Object
	user       *graphql.Object

	executable graphql.Schema
}

// New builds the schema. It fails only if the type graph itself is invalid.
func New(params Params) (*Schema, error) {
	s := &Schema{
		users:          params.UserUsecase,
		userRepo:       params.UserRepo,
		profileRepo:    params.ProfileRepo,
		postRepo:       params.PostRepo,
		memberTypeRepo: params.MemberTypeRepo,
		logger:         params.Logger,
	}

	s.buildTypes()

	executable, err := graphql.NewSchema(graphql.SchemaConfig{
		Query:    s.queryType(),
		Mutation: s.mutationType(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to build GraphQL schema")
	}
	s.executable = executable

	return s, nil
}

// Executable returns the schema handed to the executor.
func (s *Schema) Executable() *graphql.Schema {
	return &s.executable
}

func (s *Schema) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

func (s *Schema) loaders(ctx context.Context) (*loader.Loaders, error) {
	l, ok := loader.FromContext(ctx)
	if !ok {
		return nil, errLoadersMissing
	}

	return l, nil
}
