package node

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/tidwall/gjson"
)

// ErrUnsupportedKey is returned when a decoded mapping has a key that is not a scalar.
var ErrUnsupportedKey = errors.New("unsupported mapping key")

// FromValue converts a decoded document value into a tree.
// Ordered mappings (yaml.MapSlice) keep their order; plain maps are sorted by key.
func FromValue(value any) (Node, error) {
	switch typed := value.(type) {
	case Node:
		return typed, nil
	case yaml.MapSlice:
		obj := NewObject()

		for _, item := range typed {
			key, err := keyString(item.Key)
			if err != nil {
				return nil, err
			}

			child, err := FromValue(item.Value)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", key, err)
			}

			obj.Set(key, child)
		}

		return obj, nil
	case map[string]any:
		return fromStringMap(typed)
	case map[any]any:
		converted := make(map[string]any, len(typed))

		for k, v := range typed {
			key, err := keyString(k)
			if err != nil {
				return nil, err
			}

			converted[key] = v
		}

		return fromStringMap(converted)
	case []any:
		arr := NewArray()

		for i, elem := range typed {
			child, err := FromValue(elem)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}

			arr.Append(child)
		}

		return arr, nil
	default:
		return NewScalar(typed), nil
	}
}

func fromStringMap(m map[string]any) (Node, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	obj := NewObject()

	for _, key := range keys {
		child, err := FromValue(m[key])
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", key, err)
		}

		obj.Set(key, child)
	}

	return obj, nil
}

func keyString(key any) (string, error) {
	switch k := key.(type) {
	case string:
		return k, nil
	case nil:
		return "", fmt.Errorf("%w: null", ErrUnsupportedKey)
	case yaml.MapSlice, map[string]any, map[any]any, []any:
		return "", fmt.Errorf("%w: %T", ErrUnsupportedKey, key)
	default:
		return fmt.Sprint(k), nil
	}
}

// ToValue converts a tree into plain values suitable for yaml.Marshal.
// Objects become yaml.MapSlice so key order survives re-encoding.
func ToValue(n Node) any {
	switch typed := n.(type) {
	case *Object:
		out := make(yaml.MapSlice, 0, typed.Len())
		for _, key := range typed.keys {
			out = append(out, yaml.MapItem{Key: key, Value: ToValue(typed.values[key])})
		}

		return out
	case *Array:
		out := make([]any, 0, typed.Len())
		for _, elem := range typed.elems {
			out = append(out, ToValue(elem))
		}

		return out
	case *Scalar:
		if typed == nil {
			return nil
		}

		return typed.Value
	default:
		return nil
	}
}

// Clone returns a deep copy of n. Scalar values are copied by assignment.
func Clone(n Node) Node {
	switch typed := n.(type) {
	case *Object:
		out := NewObject()
		for _, key := range typed.keys {
			out.Set(key, Clone(typed.values[key]))
		}

		return out
	case *Array:
		out := NewArray()
		for _, elem := range typed.elems {
			out.Append(Clone(elem))
		}

		return out
	case *Scalar:
		if typed == nil {
			return Null()
		}

		return NewScalar(typed.Value)
	default:
		return nil
	}
}

// FromJSON parses raw as an inline JSON object or array.
// It reports false for anything else, including JSON scalars, so callers keep those as strings.
func FromJSON(raw string) (Node, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || (trimmed[0] != '{' && trimmed[0] != '[') {
		return nil, false
	}

	if !gjson.Valid(trimmed) {
		return nil, false
	}

	return fromJSONResult(gjson.Parse(trimmed)), true
}

func fromJSONResult(result gjson.Result) Node {
	switch {
	case result.IsObject():
		obj := NewObject()

		result.ForEach(func(key, value gjson.Result) bool {
			obj.Set(key.String(), fromJSONResult(value))

			return true
		})

		return obj
	case result.IsArray():
		arr := NewArray()

		result.ForEach(func(_, value gjson.Result) bool {
			arr.Append(fromJSONResult(value))

			return true
		})

		return arr
	}

	switch result.Type {
	case gjson.Null:
		return Null()
	case gjson.True, gjson.False:
		return NewScalar(result.Bool())
	case gjson.Number:
		if strings.ContainsAny(result.Raw, ".eE") {
			return NewScalar(result.Float())
		}

		return NewScalar(result.Int())
	default:
		return NewScalar(result.String())
	}
}
