package app

import (
	"log/slog"

	"dashboard.ngindicators.org/internal/indicators"
)

// Application holds the dependencies for our HTTP handlers, helpers, and
// middleware: the configuration, a structured logger, and the indicator
// dataset manager.
type Application struct {
	Config  Config
	Logger  *slog.Logger
	Dataset *indicators.Manager
}
