package config_test

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/0xalexb/hjarta-config/config"
	filefetcher "github.com/0xalexb/hjarta-config/config/fetcher/file"
	"github.com/0xalexb/hjarta-config/config/override"
	yamlparser "github.com/0xalexb/hjarta-config/config/parser/yaml"
	"github.com/0xalexb/hjarta-config/config/path"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AppConfig represents application configuration.
type AppConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// SetDefaults sets default values for the configuration.
func (c *AppConfig) SetDefaults() bool {
	changed := false

	if c.Host == "" {
		c.Host = "localhost"
		changed = true
	}

	if c.Port == 0 {
		c.Port = 8080
		changed = true
	}

	return changed
}

// Validate validates the configuration.
func (c *AppConfig) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return errors.New("port must be between 1 and 65535")
	}

	return nil
}

// StaticDataFetcher implements config.DataFetcher with static data.
// Useful for unit tests that don't need file I/O.
type StaticDataFetcher struct {
	Data []byte
}

// Fetch returns the static data.
func (f *StaticDataFetcher) Fetch() ([]byte, error) {
	return f.Data, nil
}

func ExampleProvider() {
	cfg := &AppConfig{}

	// An empty path decodes the entire document.
	provider := config.Provider(cfg, "")

	parser := yamlparser.NewParser()
	fetcher := &StaticDataFetcher{
		Data: []byte("host: example.com\n"),
	}

	result, err := provider(parser, fetcher)
	if err != nil {
		fmt.Printf("Error: %v\n", err)

		return
	}

	fmt.Printf("Host: %s, Port: %d\n", result.Host, result.Port)
	// Output: Host: example.com, Port: 8080
}

func ExampleProvider_overrides() {
	yamlData := []byte(`
api:
  host: api.example.com
  port: 3000
`)

	cfg := &AppConfig{}

	// Environment variables are matched case-insensitively, properties exactly.
	// Properties come last, so they win.
	provider := config.Provider(cfg, "api",
		override.Env("APP_", []string{"APP_API_HOST=env.example.com", "APP_API_PORT=4000"}),
		override.Properties("api.port=5000"),
	)

	result, err := provider(yamlparser.NewParser(), &StaticDataFetcher{Data: yamlData})
	if err != nil {
		fmt.Printf("Error: %v\n", err)

		return
	}

	fmt.Printf("Host: %s, Port: %d\n", result.Host, result.Port)
	// Output: Host: env.example.com, Port: 5000
}

// ServerConfig represents a nested server configuration for testing.
type ServerConfig struct {
	Host    string `yaml:"host"`
	Port    int    `yaml:"port"`
	Timeout int    `yaml:"timeout"`
}

// TestProvider_PathNavigation tests the production YAML parser with various section paths.
func TestProvider_PathNavigation(t *testing.T) {
	t.Parallel()

	yamlData := []byte(`
servers:
  - host: api.example.com
    port: 8080
    timeout: 30
  - host: admin.example.com
    port: 9090
    timeout: 60
database:
  connection:
    host: db.example.com
    port: 5432
`)

	parser := yamlparser.NewParser()
	fetcher := &StaticDataFetcher{Data: yamlData}

	t.Run("navigate into array element", func(t *testing.T) {
		t.Parallel()

		cfg, err := config.Provider(&ServerConfig{}, "servers[1]")(parser, fetcher)
		require.NoError(t, err)

		assert.Equal(t, "admin.example.com", cfg.Host)
		assert.Equal(t, 9090, cfg.Port)
		assert.Equal(t, 60, cfg.Timeout)
	})

	t.Run("navigate to deeply nested section", func(t *testing.T) {
		t.Parallel()

		cfg, err := config.Provider(&ServerConfig{}, "database.connection")(parser, fetcher)
		require.NoError(t, err)

		assert.Equal(t, "db.example.com", cfg.Host)
		assert.Equal(t, 5432, cfg.Port)
	})

	t.Run("override materializes missing element", func(t *testing.T) {
		t.Parallel()

		cfg, err := config.Provider(&ServerConfig{}, "servers[3]",
			override.Properties("servers[3].host=new.example.com", "servers[3].port=7000"),
		)(parser, fetcher)
		require.NoError(t, err)

		assert.Equal(t, "new.example.com", cfg.Host)
		assert.Equal(t, 7000, cfg.Port)
	})

	t.Run("missing path returns error", func(t *testing.T) {
		t.Parallel()

		_, err := config.Provider(&ServerConfig{}, "nonexistent.path")(parser, fetcher)
		require.ErrorIs(t, err, config.ErrPathNotFound)
	})

	t.Run("path through scalar returns error", func(t *testing.T) {
		t.Parallel()

		_, err := config.Provider(&ServerConfig{}, "database.connection.host.invalid")(parser, fetcher)
		require.ErrorIs(t, err, path.ErrTypeConflict)
	})
}

func TestProvider_FileFetcherWithSecondaryFile(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	basePath := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(basePath, []byte("host: base.example.com\nport: 80\n"), 0o600))

	secondaryPath := filepath.Join(tmpDir, "local.yaml")
	require.NoError(t, os.WriteFile(secondaryPath, []byte("port: 8443\n"), 0o600))

	parser := yamlparser.NewParser()

	secondaryFetcher, err := filefetcher.NewFetcher(secondaryPath)()
	require.NoError(t, err)

	secondaryData, err := secondaryFetcher.Fetch()
	require.NoError(t, err)

	secondaryTree, err := parser.Parse(secondaryData)
	require.NoError(t, err)

	baseFetcher, err := filefetcher.NewFetcher(basePath)()
	require.NoError(t, err)

	cfg, err := config.Provider(&AppConfig{}, "",
		override.Tree(secondaryFetcher.Path(), secondaryTree),
	)(parser, baseFetcher)
	require.NoError(t, err)

	assert.Equal(t, "base.example.com", cfg.Host)
	assert.Equal(t, 8443, cfg.Port)
}
