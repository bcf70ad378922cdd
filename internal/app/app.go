package app

import (
	"fmt"

	"go.uber.org/zap"

	"quicdiff/internal/compare"
)

// App represents the application context shared by every command.
type App struct {
	Logger *zap.Logger
	Table  compare.Table
}

// Options represents the global command-line settings.
type Options struct {
	// MetricsPath points at a YAML metric table. Empty selects the
	// built-in table.
	MetricsPath string
	// Verbose switches the logger from no-op to development output.
	Verbose bool
}

// New creates a new application instance.
func New(opts Options) (*App, error) {
	logger := zap.NewNop()
	if opts.Verbose {
		var err error
		logger, err = zap.NewDevelopment()
		if err != nil {
			return nil, fmt.Errorf("failed to initialize logger: %w", err)
		}
	}

	table := compare.DefaultTable()
	if opts.MetricsPath != "" {
		var err error
		table, err = compare.LoadTable(opts.MetricsPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load metric table: %w", err)
		}
	}
	logger.Debug("metric table ready",
		zap.String("path", opts.MetricsPath),
		zap.Int("metrics", len(table.Metrics)),
		zap.Float64("threshold", table.Threshold))

	return &App{Logger: logger, Table: table}, nil
}

// Close flushes buffered log output and releases resources.
func (a *App) Close() error {
	if a.Logger != nil {
		_ = a.Logger.Sync()
	}
	return nil
}
