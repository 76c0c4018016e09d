package override

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/0xalexb/hjarta-config/config/node"
	"github.com/0xalexb/hjarta-config/config/path"

	"github.com/goccy/go-yaml"
)

// ErrInvalidProperty is returned for a property that is not in "key=value" form.
var ErrInvalidProperty = errors.New("invalid property")

// ErrUnaddressableKey is returned when a tree key cannot be written as a path.
var ErrUnaddressableKey = errors.New("key cannot be addressed by a path")

// ErrScalarTree is returned when a secondary tree is a single value instead of an
// object or array.
var ErrScalarTree = errors.New("override tree is a scalar")

// Override replaces the value at Path.
type Override struct {
	Path   string
	Value  node.Node
	Mode   path.MatchMode
	Source string
}

// Source produces overrides.
type Source interface {
	Name() string
	Overrides() ([]Override, error)
}

// Apply writes each override into root in order and returns the resulting root.
func Apply(root node.Node, overrides ...Override) (node.Node, error) {
	for _, o := range overrides {
		var err error

		root, err = path.Set(root, o.Path, o.Mode, o.Value)
		if err != nil {
			return root, fmt.Errorf("applying override %q from %s: %w", o.Path, o.Source, err)
		}

		slog.Debug("override applied",
			slog.String("source", o.Source),
			slog.String("path", o.Path),
			slog.String("mode", o.Mode.String()),
		)
	}

	return root, nil
}

// Merge collects the overrides of every source and applies them in source order.
func Merge(root node.Node, sources ...Source) (node.Node, error) {
	for _, source := range sources {
		overrides, err := source.Overrides()
		if err != nil {
			return root, fmt.Errorf("reading overrides from %s: %w", source.Name(), err)
		}

		root, err = Apply(root, overrides...)
		if err != nil {
			return root, err
		}

		if len(overrides) > 0 {
			slog.Info("overrides merged",
				slog.String("source", source.Name()),
				slog.Int("count", len(overrides)),
			)
		}
	}

	return root, nil
}

// ParseValue turns a raw string into a node. Inline JSON objects and arrays become
// containers, plain YAML scalars ("9090", "true", "null") get their YAML type and
// anything else stays a string.
func ParseValue(raw string) node.Node {
	if structured, ok := node.FromJSON(raw); ok {
		return structured
	}

	if strings.TrimSpace(raw) == "" {
		return node.NewScalar(raw)
	}

	var scalar any

	err := yaml.Unmarshal([]byte(raw), &scalar)
	if err != nil {
		return node.NewScalar(raw)
	}

	switch scalar.(type) {
	case nil:
		return node.Null()
	case string, bool, int, int64, uint64, float64:
		return node.NewScalar(scalar)
	default:
		return node.NewScalar(raw)
	}
}
