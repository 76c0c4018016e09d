// Package config provides configuration management functionalities and interfaces.
//
// The package uses an interface-based design with four extension points:
//   - Parser: turns raw data into a node.Node tree and decodes trees into config structs
//   - DataFetcher: retrieves raw config data (file, env, etc.)
//   - Validator: validates config after parsing
//   - Defaulter: applies default values before validation
//
// # Overrides
//
// Before decoding, overrides from any number of override.Source values are merged
// into the parsed tree: command-line properties, prefixed environment variables or
// the leaves of secondary files. Later sources win.
//
// # Path Navigation
//
// The Provider function accepts a path selecting the section to decode. Paths use
// the dotted syntax of the config/path package:
//
//	"api.permissions"           -> config["api"]["permissions"]
//	"servers[0]"                -> config["servers"][0]
//	""                          -> entire document
//
// # Example
//
// A typical usage pattern:
//
//	type APIConfig struct {
//	    Timeout int    `yaml:"timeout"`
//	    BaseURL string `yaml:"base_url"`
//	}
//
//	provider := config.Provider(&APIConfig{}, "services.api",
//	    override.Env("APP_", os.Environ()),
//	)
//	cfg, err := provider(yamlparser.NewParser(), fetcher)
package config
