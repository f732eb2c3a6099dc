package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/vibe-landing/modules/lead"
	"github.com/dmitrymomot/vibe-landing/pkg/clientip"
	"github.com/dmitrymomot/vibe-landing/pkg/config"
	"github.com/dmitrymomot/vibe-landing/pkg/email"
	"github.com/dmitrymomot/vibe-landing/pkg/httpserver"
	"github.com/dmitrymomot/vibe-landing/pkg/logger"
	"github.com/dmitrymomot/vibe-landing/pkg/requestid"
	"github.com/dmitrymomot/vibe-landing/pkg/telemetry"
)

type appConfig struct {
	AppName string `env:"APP_NAME" envDefault:"vibe-landing"`
	AppEnv  string `env:"APP_ENV" envDefault:"development"`

	HTTP      httpserver.Config
	Email     email.Config
	Lead      lead.Config
	Telemetry telemetry.Config
}

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	log := logger.New(
		logger.WithEnvironment(cfg.AppEnv, cfg.AppName),
		logger.WithContextExtractors(requestid.LoggerExtractor(), clientip.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	if err := run(context.Background(), cfg, log); err != nil {
		log.Error("landing server stopped with error", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg appConfig, log *slog.Logger) error {
	shutdownTracing, err := telemetry.Setup(ctx, cfg.Telemetry, cfg.AppName)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdownTracing(context.WithoutCancel(ctx)); err != nil {
			log.Warn("flush traces", logger.Error(err))
		}
	}()

	sender, err := email.New(cfg.Email)
	if err != nil {
		return err
	}
	if c, ok := sender.(io.Closer); ok {
		defer func() {
			if err := c.Close(); err != nil {
				log.Warn("close email sender", logger.Error(err))
			}
		}()
	}
	log.Info("email provider configured", slog.String("provider", cfg.Email.Provider))

	ready := func(context.Context) error { return nil }
	if r, ok := sender.(interface{ Ready(context.Context) error }); ok {
		ready = r.Ready
	}

	endpoint := lead.NewEndpoint(cfg.Lead, lead.NewEmailDispatcher(sender), lead.WithEndpointLogger(log))

	r := chi.NewRouter()
	r.Use(requestid.Middleware, clientip.Middleware())
	r.Get("/health/live", httpserver.HealthCheckHandler(log))
	r.Get("/health/ready", httpserver.HealthCheckHandler(log, ready))
	r.Mount("/", lead.Router(lead.RouterOptions{Capture: endpoint}))

	return httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log)).Run(ctx, r)
}
