package hjarta

import (
	"github.com/0xalexb/hjarta-config/config"
	filefetcher "github.com/0xalexb/hjarta-config/config/fetcher/file"
	"github.com/0xalexb/hjarta-config/config/override"
	yamlparser "github.com/0xalexb/hjarta-config/config/parser/yaml"

	"go.uber.org/fx"
)

// Options holds configuration settings for the application.
type Options struct {
	Modules   []fx.Option
	LogLevel  string
	LogFormat string
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithModules adds Fx modules to the application.
func WithModules(modules ...fx.Option) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, modules...)
	}
}

// WithConfigFile adds a "config" module that loads a YAML file and merges the given
// override sources into it, in order.
//
// The module provides config.Parser, config.DataFetcher and the merged node.Node tree.
// Typed sections are then provided with config.TreeDecoder:
//
//	fx.Provide(config.TreeDecoder(new(ServerConfig), "server"))
func WithConfigFile(fpath string, sources ...override.Source) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, fx.Module("config",
			fx.Provide(
				fx.Annotate(
					yamlparser.NewParser,
					fx.As(new(config.Parser)),
				),
				fx.Annotate(
					filefetcher.NewFetcher(fpath),
					fx.As(new(config.DataFetcher)),
				),
				config.TreeProvider(sources...),
			),
		))
	}
}

// WithLogLevel sets the log level for the application.
// Valid levels are: "debug", "info", "warn", "error".
// If not set or invalid, defaults to "info".
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}

// WithLogFormat sets the log format for the application: "json" (default) or "text".
func WithLogFormat(format string) Option {
	return func(opts *Options) {
		opts.LogFormat = format
	}
}
