// Package file provides file-based configuration inputs for the config package.
//
// Fetcher implements config.DataFetcher for the primary configuration file. The
// file is read at construction time and cached, so every call to Fetch returns
// the same data.
//
// NewOverrideSource reads a secondary file (for example a local or per-environment
// file) and turns its leaves into overrides for the primary tree.
//
// Usage:
//
//	fetcher, err := file.NewFetcher("/etc/app/config.yaml")()
//	local, err := file.NewOverrideSource("/etc/app/local.yaml", yamlparser.NewParser())
//	cfg, err := config.Provider(&Config{}, "", local)(yamlparser.NewParser(), fetcher)
//
// Error Handling:
//   - Construction returns error if file cannot be read or path is a directory
//   - Errors include the filepath for easier debugging
//   - Use errors.Is(err, file.ErrPathIsDirectory) to check for directory errors
package file
