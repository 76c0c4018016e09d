package config

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/0xalexb/hjarta-config/config/node"
	"github.com/0xalexb/hjarta-config/config/override"
	"github.com/0xalexb/hjarta-config/config/path"
)

// ErrPathNotFound is returned when the requested section does not exist in the merged tree.
var ErrPathNotFound = errors.New("path not found")

// Parser defines an interface for turning configuration data into a tree and a tree into a target structure.
//
// Parse builds the tree that overrides are merged into. Decode fills target from a
// (sub)tree once overrides are applied.
// See config/parser/yaml for an implementation based on goccy/go-yaml.
type Parser interface {
	Parse(data []byte) (node.Node, error)
	Decode(tree node.Node, target any) error
}

// DataFetcher defines an interface for reading configuration data.
type DataFetcher interface {
	Fetch() ([]byte, error)
}

// Validator defines an interface for validating configuration structures.
type Validator interface {
	Validate() error
}

// Defaulter defines an interface for setting default values in configuration structures.
type Defaulter interface {
	SetDefaults() (changed bool)
}

// TreeProvider returns a function that reads and parses configuration data, then merges
// the overrides of every source into the parsed tree in order.
func TreeProvider(sources ...override.Source) func(Parser, DataFetcher) (node.Node, error) {
	return func(parser Parser, dataSourcer DataFetcher) (node.Node, error) {
		data, err := dataSourcer.Fetch()
		if err != nil {
			return nil, fmt.Errorf("reading data error: %w", err)
		}

		tree, err := parser.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("parsing error: %w", err)
		}

		tree, err = override.Merge(tree, sources...)
		if err != nil {
			return nil, fmt.Errorf("merging overrides error: %w", err)
		}

		return tree, nil
	}
}

// Provider returns a function that reads, parses, merges overrides, decodes the section at
// configPath, sets defaults, and validates configuration data.
//
// configPath uses the dotted syntax of the path package ("services.api", "servers[0]").
// An empty configPath decodes the whole tree.
func Provider[T any](target *T, configPath string, sources ...override.Source) func(Parser, DataFetcher) (*T, error) {
	return func(parser Parser, dataSourcer DataFetcher) (*T, error) {
		tree, err := TreeProvider(sources...)(parser, dataSourcer)
		if err != nil {
			return nil, err
		}

		return decode(parser, tree, target, configPath)
	}
}

// TreeDecoder returns a function that decodes the section at configPath of an already merged tree.
// It lets several typed sections share one tree supplied to the container.
func TreeDecoder[T any](target *T, configPath string) func(Parser, node.Node) (*T, error) {
	return func(parser Parser, tree node.Node) (*T, error) {
		return decode(parser, tree, target, configPath)
	}
}

func decode[T any](parser Parser, tree node.Node, target *T, configPath string) (*T, error) {
	section, found, err := path.Get(tree, configPath, path.Exact)
	if err != nil {
		return nil, fmt.Errorf("resolving %q: %w", configPath, err)
	}

	if !found {
		return nil, fmt.Errorf("%w: %s", ErrPathNotFound, configPath)
	}

	err = parser.Decode(section, target)
	if err != nil {
		return nil, fmt.Errorf("parsing error: %w", err)
	}

	targetDefaulter, isDefaulter := any(target).(Defaulter)
	if isDefaulter {
		changed := targetDefaulter.SetDefaults()
		if changed {
			slog.Info("defaults applied", slog.String("path", configPath))
		}
	}

	targetValidatable, isValidatable := any(target).(Validator)
	if isValidatable {
		err := targetValidatable.Validate()
		if err != nil {
			return nil, fmt.Errorf("validating error: %w", err)
		}
	}

	return target, nil
}
