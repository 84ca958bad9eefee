package main

import (
	"context"
	"log/slog"
	"os"

	"membergraph/config"
	"membergraph/internal/delivery"
	"membergraph/internal/delivery/api"
	"membergraph/internal/delivery/api/router/handler"
	"membergraph/internal/delivery/gql"
	"membergraph/internal/delivery/gql/loader"
	"membergraph/internal/delivery/gql/schema"
	logs "membergraph/internal/infra/log"
	"membergraph/internal/infra/persistence/postgres"
	"membergraph/internal/infra/pubsub"
	"membergraph/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectUsecase(),
		injectGraphQL(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewProfileRepository,
			postgres.NewPostRepository,
			postgres.NewMemberTypeRepository,
			postgres.NewSubscriptionRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
		),
	)
}

func injectGraphQL() fx.Option {
	return fx.Options(
		fx.Provide(
			loader.NewFactory,
			schema.New,
			fx.Annotate(
				gql.NewPipeline,
				fx.As(new(handler.Executor)),
			),
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewGraphQLHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
