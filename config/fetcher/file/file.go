package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/0xalexb/hjarta-config/config/node"
	"github.com/0xalexb/hjarta-config/config/override"
)

// ErrPathIsDirectory is returned when the path provided to the Fetcher points to a directory instead of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// TreeParser builds a configuration tree from raw data. config.Parser satisfies it.
type TreeParser interface {
	Parse(data []byte) (node.Node, error)
}

// Fetcher implements config.DataFetcher interface for file-based configuration.
// It reads configuration data from a file at construction time and caches the contents.
type Fetcher struct {
	filepath string
	data     []byte
}

// NewFetcher returns a constructor function that creates a new file-based Fetcher
// with the specified filepath. The file is read at construction time and cached.
// This pattern is Fx-friendly, allowing the DI container to control when instantiation happens.
// Returns an error if the file cannot be read or if the path points to a directory.
func NewFetcher(fpath string) func() (*Fetcher, error) {
	return func() (*Fetcher, error) {
		cleanPath := filepath.Clean(fpath)

		data, err := readFile(cleanPath)
		if err != nil {
			return nil, err
		}

		return &Fetcher{
			filepath: cleanPath,
			data:     data,
		}, nil
	}
}

// NewOverrideSource reads a secondary configuration file and returns a source that
// overrides every leaf it defines. The source is named after the cleaned file path.
func NewOverrideSource(fpath string, parser TreeParser) (*override.TreeSource, error) {
	cleanPath := filepath.Clean(fpath)

	data, err := readFile(cleanPath)
	if err != nil {
		return nil, err
	}

	if len(data) == 0 {
		return override.Tree(cleanPath, nil), nil
	}

	tree, err := parser.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing file %q: %w", cleanPath, err)
	}

	return override.Tree(cleanPath, tree), nil
}

func readFile(cleanPath string) ([]byte, error) {
	stat, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("stat file %q: %w", cleanPath, err)
	}

	if stat.IsDir() {
		return nil, fmt.Errorf("path %q: %w", cleanPath, ErrPathIsDirectory)
	}

	data, err := os.ReadFile(cleanPath) // #nosec G304 -- path is cleaned and validated
	if err != nil {
		return nil, fmt.Errorf("reading file %q: %w", cleanPath, err)
	}

	return data, nil
}

// Path returns the cleaned path the data was read from.
func (f *Fetcher) Path() string {
	return f.filepath
}

// Fetch returns a copy of the cached configuration data that was read at construction time.
// A copy is returned to prevent callers from mutating the cached data.
func (f *Fetcher) Fetch() ([]byte, error) {
	result := make([]byte, len(f.data))
	copy(result, f.data)

	return result, nil
}
