package main

import (
	"context"
	"log/slog"
	"os"

	"contacts/config"
	"contacts/internal/delivery"
	"contacts/internal/delivery/http"
	"contacts/internal/delivery/http/middleware"
	"contacts/internal/delivery/http/router/handler"
	"contacts/internal/domain/constants"
	"contacts/internal/domain/service"
	"contacts/internal/infra/auth"
	"contacts/internal/infra/cache"
	logs "contacts/internal/infra/log"
	"contacts/internal/infra/mail"
	"contacts/internal/infra/metrics"
	"contacts/internal/infra/persistence/postgres"
	"contacts/internal/infra/pubsub"
	"contacts/internal/infra/qrcode"
	"contacts/internal/infra/storage"
	"contacts/internal/usecase/impl"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
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
		cache.NewRedisClient,
		metrics.NewRegistry,
		newGatherer,
		newMetricsCollector,
		newAuthMetrics,
	)
}

func newGatherer(reg *prometheus.Registry) prometheus.Gatherer {
	return reg
}

func newMetricsCollector(reg *prometheus.Registry) *metrics.Collector {
	return metrics.NewCollector(reg)
}

func newAuthMetrics(collector *metrics.Collector) service.AuthMetrics {
	return collector
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewContactRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			newSessionCache,
			newQRCodeService,
			storage.New,
			newDirectMailHandler,
			pubsub.NewEventPublisher,
		),
	)
}

func newSessionCache(client *redis.Client) service.SessionCache {
	return cache.NewRedisSessionCache(client)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// newDirectMailHandler sends mail from this process when the direct provider is
// selected. Other providers hand events to the mail worker, so no SMTP client is built.
func newDirectMailHandler(cfg *config.Config, logger *slog.Logger) (service.MailEventHandler, error) {
	if cfg.PubSub.Provider != constants.PubSubProviderDirect {
		return nil, nil
	}

	mailer, err := mail.NewSMTPMailer(cfg, logger)
	if err != nil {
		return nil, err
	}

	handler, err := impl.NewMailService(mailer, logger)
	if err != nil {
		return nil, err
	}

	return handler, nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewEmailTokenService,
			impl.NewCurrentUserService,
			impl.NewAuthService,
			impl.NewUserService,
			impl.NewContactService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRateLimiter,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewUserHandler,
			handler.NewContactHandler,
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

				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
