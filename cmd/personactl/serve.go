package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	router "github.com/goliatone/go-router"
	"github.com/rs/zerolog"

	"github.com/goliatone/go-persona-dashboard/components/dashboard"
	"github.com/goliatone/go-persona-dashboard/components/dashboard/gorouter"
	"github.com/goliatone/go-persona-dashboard/components/dashboard/httpapi"
	"github.com/goliatone/go-persona-dashboard/pkg/analytics"
	"github.com/goliatone/go-persona-dashboard/pkg/config"
)

const shutdownTimeout = 10 * time.Second

type serveCmd struct {
	Addr      string `help:"Listen address (overrides config)."`
	BasePath  string `name:"base-path" help:"Mount pages under this prefix."`
	LogLevel  string `name:"log-level" help:"Log level."`
	LogFormat string `name:"log-format" help:"Log output format."`
	RESTAddr  string `name:"rest-addr" help:"Also serve the net/http JSON API on this address."`
}

func (cmd *serveCmd) apply(cfg *config.Config) {
	if cmd.Addr != "" {
		cfg.Addr = cmd.Addr
	}
	if cmd.BasePath != "" {
		cfg.BasePath = "/" + strings.Trim(cmd.BasePath, "/")
	}
	if cmd.LogLevel != "" {
		cfg.Log.Level = cmd.LogLevel
	}
	if cmd.LogFormat != "" {
		cfg.Log.Format = cmd.LogFormat
	}
}

func (cmd *serveCmd) Run(g *Globals) error {
	cfg, err := g.load()
	if err != nil {
		return err
	}
	cmd.apply(&cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger, err := cfg.Logger(os.Stderr)
	if err != nil {
		return err
	}

	app, err := newApp(cfg, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return app.run(ctx, cfg.Addr, cmd.RESTAddr)
}

type app struct {
	logger   zerolog.Logger
	service  *dashboard.Service
	server   router.Server[*fiber.App]
	handlers *httpapi.Handlers
}

func newApp(cfg config.Config, logger zerolog.Logger) (*app, error) {
	telemetry := dashboard.NewLogTelemetry(logger)
	broadcast := dashboard.NewBroadcastHook()
	activity, err := activityFeed(cfg.Activity)
	if err != nil {
		return nil, err
	}

	chartOpts := []dashboard.ChartOption{dashboard.WithChartType(cfg.Charts.Type)}
	if cfg.Charts.CacheTTL > 0 {
		chartOpts = append(chartOpts, dashboard.WithChartCache(dashboard.NewChartCache(cfg.Charts.CacheTTL)))
	}
	if cfg.Charts.AssetsHost != "" {
		chartOpts = append(chartOpts, dashboard.WithChartAssetsHost(cfg.Charts.AssetsHost))
	}

	sessions := dashboard.NewInMemorySessionStore(cfg.Session.ShowOnboarding,
		dashboard.WithSessionIdleTTL(cfg.Session.IdleTTL))
	service := dashboard.NewService(dashboard.Options{
		Telemetry:      telemetry,
		RefreshHook:    dashboard.MultiRefreshHook{broadcast, dashboard.TelemetryRefreshHook{Telemetry: telemetry}},
		Charts:         dashboard.NewChartRenderer(chartOpts...),
		Activity:       activity,
		ShowOnboarding: cfg.Session.ShowOnboarding,
		Sessions:       sessions,
	})

	renderer, err := dashboard.NewTemplateRenderer()
	if err != nil {
		return nil, fmt.Errorf("personactl: templates: %w", err)
	}
	controller := dashboard.NewController(dashboard.ControllerOptions{
		Service:  service,
		Renderer: renderer,
		BasePath: cfg.BasePath,
	})
	executor := httpapi.NewCommandExecutor(service, telemetry)
	readers := httpapi.NewReaders(service)

	server := router.NewFiberAdapter()
	if err := gorouter.Register(gorouter.Config[*fiber.App]{
		Router:     server.Router(),
		Controller: controller,
		Sessions:   service,
		API:        executor,
		Readers:    readers,
		Broadcast:  broadcast,
		BasePath:   cfg.BasePath,
		CookieName: cfg.Session.CookieName,
	}); err != nil {
		return nil, fmt.Errorf("personactl: register routes: %w", err)
	}

	return &app{
		logger:  logger,
		service: service,
		server:  server,
		handlers: &httpapi.Handlers{
			API:        executor,
			Readers:    readers,
			Events:     broadcast,
			CookieName: cfg.Session.CookieName,
		},
	}, nil
}

func activityFeed(cfg config.ActivityConfig) (dashboard.ActivityFeed, error) {
	if cfg.URL == "" {
		return dashboard.DefaultActivityFeed(), nil
	}
	client, err := analytics.NewHTTPClient(analytics.HTTPConfig{BaseURL: cfg.URL, APIKey: cfg.APIKey})
	if err != nil {
		return nil, err
	}
	return analytics.NewActivityFeed(client, dashboard.DefaultActivityFeed()), nil
}

func (a *app) run(ctx context.Context, addr, restAddr string) error {
	errs := make(chan error, 2)

	go func() {
		a.logger.Info().Str("addr", addr).Msg("dashboard listening")
		errs <- a.server.Serve(addr)
	}()

	var rest *http.Server
	if restAddr != "" {
		rest = &http.Server{
			Addr:              restAddr,
			Handler:           http.StripPrefix("/api", a.handlers.Routes()),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			a.logger.Info().Str("addr", restAddr).Msg("rest api listening")
			if err := rest.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errs <- err
			}
		}()
	}

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	a.logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if rest != nil {
		if err := rest.Shutdown(shutdownCtx); err != nil {
			a.logger.Error().Err(err).Msg("rest api shutdown")
		}
	}
	return a.server.Shutdown(shutdownCtx)
}
