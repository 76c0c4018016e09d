package override

import (
	"fmt"
	"log/slog"
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/0xalexb/hjarta-config/config/node"
	"github.com/0xalexb/hjarta-config/config/path"
)

// PropertySource reads "key=value" pairs.
type PropertySource struct {
	pairs []string
}

// Properties creates a Source from "key=value" pairs. Keys are dotted paths matched exactly.
func Properties(pairs ...string) *PropertySource {
	return &PropertySource{pairs: pairs}
}

// Name returns "properties".
func (s *PropertySource) Name() string {
	return "properties"
}

// Overrides parses the pairs in the order they were given.
func (s *PropertySource) Overrides() ([]Override, error) {
	overrides := make([]Override, 0, len(s.pairs))

	for _, pair := range s.pairs {
		key, value, found := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)

		if !found || key == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidProperty, pair)
		}

		overrides = append(overrides, Override{
			Path:   key,
			Value:  ParseValue(value),
			Mode:   path.Exact,
			Source: s.Name(),
		})
	}

	return overrides, nil
}

// EnvSource reads prefixed environment variables.
type EnvSource struct {
	prefix  string
	environ []string
}

// Env creates a Source from environ entries ("NAME=value") whose name starts with prefix.
// The rest of the name is split on "_" into a case-insensitive path, so with prefix
// "APP_" the variable APP_DB_HOST overrides db.host, DB.Host or any other casing.
func Env(prefix string, environ []string) *EnvSource {
	return &EnvSource{
		prefix:  prefix,
		environ: environ,
	}
}

// Name returns "env".
func (s *EnvSource) Name() string {
	return "env"
}

// Overrides returns one override per matching variable, sorted by variable name.
func (s *EnvSource) Overrides() ([]Override, error) {
	vars := make(map[string]string)

	for _, entry := range s.environ {
		name, value, found := strings.Cut(entry, "=")
		if !found || !strings.HasPrefix(name, s.prefix) {
			continue
		}

		vars[name] = value
	}

	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}

	sort.Strings(names)

	overrides := make([]Override, 0, len(names))

	for _, name := range names {
		parts := strings.Split(strings.TrimPrefix(name, s.prefix), "_")
		if slices.Contains(parts, "") {
			slog.Warn("skipping environment variable with empty path segment", slog.String("name", name))

			continue
		}

		overrides = append(overrides, Override{
			Path:   strings.Join(parts, "."),
			Value:  ParseValue(vars[name]),
			Mode:   path.CaseInsensitive,
			Source: s.Name(),
		})
	}

	return overrides, nil
}

// TreeSource flattens a secondary configuration tree into leaf overrides.
type TreeSource struct {
	name string
	tree node.Node
}

// Tree creates a Source that overrides every leaf of tree. Empty objects and arrays
// below the root count as leaves so they survive the merge. An empty or null root
// overrides nothing, and a scalar root is rejected.
func Tree(name string, tree node.Node) *TreeSource {
	return &TreeSource{
		name: name,
		tree: tree,
	}
}

// Name returns the name the source was created with.
func (s *TreeSource) Name() string {
	return s.name
}

// Overrides returns the leaves of the tree in document order.
func (s *TreeSource) Overrides() ([]Override, error) {
	if s.tree == nil || node.IsNull(s.tree) {
		return nil, nil
	}

	if s.tree.Kind() == node.KindScalar {
		return nil, fmt.Errorf("%w: %s", ErrScalarTree, s.name)
	}

	var overrides []Override

	err := flatten(s.tree, "", func(p string, leaf node.Node) {
		overrides = append(overrides, Override{
			Path:   p,
			Value:  node.Clone(leaf),
			Mode:   path.Exact,
			Source: s.name,
		})
	})
	if err != nil {
		return nil, err
	}

	return overrides, nil
}

func flatten(n node.Node, prefix string, emit func(string, node.Node)) error {
	switch typed := n.(type) {
	case *node.Object:
		if typed.Len() == 0 {
			if prefix != "" {
				emit(prefix, typed)
			}

			return nil
		}

		for _, key := range typed.Keys() {
			if key == "" || strings.ContainsAny(key, ".[]") {
				return fmt.Errorf("%w: %q", ErrUnaddressableKey, key)
			}

			child, _ := typed.Get(key)

			p := key
			if prefix != "" {
				p = prefix + "." + key
			}

			err := flatten(child, p, emit)
			if err != nil {
				return err
			}
		}
	case *node.Array:
		if typed.Len() == 0 {
			if prefix != "" {
				emit(prefix, typed)
			}

			return nil
		}

		for i, elem := range typed.Elems() {
			err := flatten(elem, prefix+"["+strconv.Itoa(i)+"]", emit)
			if err != nil {
				return err
			}
		}
	default:
		emit(prefix, n)
	}

	return nil
}
