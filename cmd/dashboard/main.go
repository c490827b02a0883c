package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"dashboard.ngindicators.org/internal/app"
	"dashboard.ngindicators.org/internal/indicators"
	"dashboard.ngindicators.org/internal/logging"
	"dashboard.ngindicators.org/internal/restapi"
	"dashboard.ngindicators.org/internal/webui"
)

func main() {
	cfg, err := app.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var apiKeysFlag string
	flag.IntVar(&cfg.Port, "port", cfg.Port, "API server port")
	flag.StringVar(&cfg.Env, "env", cfg.Env, "Environment (development|staging|production)")
	flag.StringVar(&apiKeysFlag, "api-keys", strings.Join(cfg.ApiKeys, ","), "Comma separated API keys")
	flag.StringVar(&cfg.DataPath, "data", cfg.DataPath, "Path to the Nigeria indicators CSV file")
	flag.BoolVar(&cfg.Watch, "watch", cfg.Watch, "Reload the dataset when the source file changes")
	flag.IntVar(&cfg.RateLimit, "rate-limit", cfg.RateLimit, "Requests per second allowed per API key")
	flag.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "Verbose logging")
	flag.Parse()

	cfg.ApiKeys = nil
	for _, key := range strings.Split(apiKeysFlag, ",") {
		if key = strings.TrimSpace(key); key != "" {
			cfg.ApiKeys = append(cfg.ApiKeys, key)
		}
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := logging.NewStructuredLogger(os.Stdout, level)

	manager, err := indicators.InitManager(indicators.Config{
		DataPath: cfg.DataPath,
		Watch:    cfg.Watch,
		Verbose:  cfg.Verbose,
	}, logger)
	if err != nil {
		// No table means nothing to serve; the load is all or nothing.
		logger.Error("failed to load indicator dataset", "path", cfg.DataPath, "error", err)
		os.Exit(1)
	}
	defer manager.Shutdown()

	manager.LogStatistics()

	application := &app.Application{
		Config:  cfg,
		Logger:  logger,
		Dataset: manager,
	}

	api := restapi.NewRestAPI(application)
	mux := http.NewServeMux()
	api.SetRoutes(mux)
	webui.NewWebUI(application).SetRoutes(mux)

	handler := api.WithSecurityHeaders(
		restapi.NewRequestLoggingMiddleware(logger)(
			restapi.NewMetricsMiddleware()(
				restapi.CompressionMiddleware(mux))))

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      handler,
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	logger.Info("starting server", "addr", srv.Addr, "env", cfg.Env)
	err = srv.ListenAndServe()
	logger.Error(err.Error())
	os.Exit(1)
}
