package hjarta

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/0xalexb/hjarta-config/logging"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

var errAppNotInitialized = errors.New("app not initialized")

// App is an Fx application whose configuration is a merged node.Node tree.
//
// With WithConfigFile the tree is built on Start: the file is fetched and parsed,
// every override source is merged into it in order, and only then are the
// constructors that take node.Node or a config.TreeDecoder section invoked.
// A malformed override path or an unreadable file fails Start.
type App struct {
	app *fx.App
}

// NewApp applies opts and builds the Fx graph. It installs the slog logger as the
// default logger, so override merging logs through the same handler as Fx.
func NewApp(opts ...Option) *App {
	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	return &App{
		app: configure(&options),
	}
}

func configure(options *Options) *fx.App {
	logger := createLogger(options.LogLevel, options.LogFormat, os.Stderr)
	slog.SetDefault(logger)

	return fx.New(
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger}
		}),
		fx.Supply(logging.LoggerConfig{Level: options.LogLevel, Format: options.LogFormat}),
		fx.Supply(logger),
		fx.Options(options.Modules...),
	)
}

func createLogger(level, format string, w io.Writer) *slog.Logger {
	config := logging.LoggerConfig{Level: level, Format: format}

	return logging.NewLogger(config, w)
}

// Start loads and merges the configuration, then runs the OnStart hooks.
func (app *App) Start() error {
	if app != nil && app.app != nil {
		err := app.app.Start(context.Background())
		if err != nil {
			return fmt.Errorf("loading configuration and starting app: %w", err)
		}

		return nil
	}

	return errAppNotInitialized
}

// Run is Start followed by a wait for an OS signal and Stop. It is meant for long-lived
// services; one-shot tools such as the CLI call Start and Stop directly.
func (app *App) Run() {
	if app == nil || app.app == nil {
		slog.Error("attempted to run an uninitialized app")

		return
	}

	app.app.Run()
}

// Stop runs the OnStop hooks. The merged tree stays valid for values already read.
func (app *App) Stop() error {
	if app != nil && app.app != nil {
		err := app.app.Stop(context.Background())
		if err != nil {
			return fmt.Errorf("failed to stop app: %w", err)
		}

		return nil
	}

	return errAppNotInitialized
}
