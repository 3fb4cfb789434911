package main

import (
	"context"
	"log/slog"
	"os"

	"mylot/config"
	"mylot/internal/delivery"
	"mylot/internal/delivery/http"
	"mylot/internal/delivery/http/middleware"
	"mylot/internal/delivery/http/router/handler"
	"mylot/internal/infra/auth"
	"mylot/internal/infra/auth/facebook"
	"mylot/internal/infra/auth/google"
	logs "mylot/internal/infra/log"
	"mylot/internal/infra/mail"
	"mylot/internal/infra/persistence/postgres"
	"mylot/internal/usecase/impl"

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
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewAuthRepository,
			postgres.NewSessionRepository,
			postgres.NewResultRepository,
			postgres.NewLotteryRepository,
			postgres.NewRecommendationRepository,
			postgres.NewRateRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewTokenService,
			mail.NewSMTPMailer,
			fx.Annotate(
				facebook.NewGraphVerifier,
				fx.ResultTags(`group:"oauth_verifiers"`),
			),
			fx.Annotate(
				google.NewVerifier,
				fx.ResultTags(`group:"oauth_verifiers"`),
			),
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAccountService,
			impl.NewSocialService,
			impl.NewResultService,
			impl.NewLotteryService,
			impl.NewRecommendationService,
			impl.NewRateService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPageHandler,
			handler.NewAccountHandler,
			handler.NewSocialHandler,
			handler.NewResultHandler,
			handler.NewLotteryHandler,
			handler.NewRecommendationHandler,
			handler.NewRateHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
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
