// Package http serves the public REST API.
package http

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"contacts/config"
	"contacts/internal/delivery"
	httpmiddleware "contacts/internal/delivery/http/middleware"
	"contacts/internal/delivery/http/router"
	"contacts/internal/delivery/http/validator"
	"contacts/internal/delivery/middleware"
	"contacts/internal/domain/constants"
	"contacts/internal/domain/lifecycle"
	"contacts/internal/errors"
	"contacts/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

const (
	healthPath  = "/health"
	metricsPath = "/metrics"
	staticPath  = "/static"
)

// HTTPParams holds dependencies for the API server, injected by Fx.
type HTTPParams struct {
	fx.In
	fx.Lifecycle

	Config          *config.Config
	Logger          *slog.Logger
	ErrorMiddleware *httpmiddleware.ErrorMiddleware
	Gatherer        prometheus.Gatherer
	Collector       *metrics.Collector
	RouterParams    router.RouterParams
}

type httpServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// NewServer builds the API server and registers its graceful shutdown.
func NewServer(params HTTPParams) (delivery.Delivery, error) {
	e, err := newEcho(params)
	if err != nil {
		return nil, err
	}

	srv := &httpServer{
		cfg:    params.Config,
		logger: params.Logger,
		server: e,
	}

	params.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func newEcho(params HTTPParams) (*echo.Echo, error) {
	cfg := params.Config

	ipExtractor, err := middleware.NewIPExtractor(cfg.HTTP.TrustedProxies)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.IPExtractor = ipExtractor
	e.Server.ReadTimeout = cfg.HTTP.Timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = cfg.HTTP.Timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = cfg.HTTP.Timeouts.WriteTimeout
	e.Server.IdleTimeout = cfg.HTTP.Timeouts.IdleTimeout

	// Recover first so panics anywhere below are caught.
	e.Use(echomiddleware.Recover())

	// Request ID before the logger so access lines carry it.
	e.Use(middleware.NewRequestIDMiddleware(params.Logger).Process)
	e.Use(middleware.NewLoggerMiddleware(params.Logger, cfg, healthPath, metricsPath).Handle)
	e.Use(httpmiddleware.NewMetricsMiddleware(params.Collector).Handle)

	corsConfig := echomiddleware.DefaultCORSConfig
	if len(cfg.HTTP.CORSOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.HTTP.CORSOrigins
	}
	e.Use(echomiddleware.CORSWithConfig(corsConfig))
	e.Use(echomiddleware.BodyLimit(cfg.HTTP.MaxRequestBodySize))

	e.HTTPErrorHandler = params.ErrorMiddleware.HandleHTTPError
	e.Validator = validator.New()

	e.GET(metricsPath, echo.WrapHandler(metrics.Handler(params.Gatherer)))
	if cfg.Storage != nil && (cfg.Storage.Driver == constants.StorageDriverFile || cfg.Storage.Driver == "") && cfg.Storage.Bucket != "" {
		e.Static(staticPath, cfg.Storage.Bucket)
	}

	router.NewRouter(params.RouterParams).RegisterRoutes(e)

	return e, nil
}

func (s *httpServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting API HTTP server", slog.String("host_port", hostPort))
	h2Server := &http2.Server{
		IdleTimeout: s.cfg.HTTP.Timeouts.IdleTimeout,
	}
	if err := s.server.StartH2CServer(hostPort, h2Server); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *httpServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down API HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
