// Package logging builds log/slog loggers from a level and a format name.
// Override merging and config loading log through the default slog logger, so
// installing the result with slog.SetDefault controls their output as well.
package logging
