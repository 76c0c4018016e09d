package node

import "strings"

// Kind identifies the variant of a Node.
type Kind uint8

const (
	// KindObject is a keyed container.
	KindObject Kind = iota
	// KindArray is an indexed container.
	KindArray
	// KindScalar is a leaf value.
	KindScalar
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	case KindScalar:
		return "scalar"
	default:
		return "unknown"
	}
}

// Node is one position's value in a configuration tree.
// The set of implementations is closed: *Object, *Array and *Scalar.
type Node interface {
	Kind() Kind
	node()
}

// Object maps string keys to nodes, preserving insertion order.
type Object struct {
	keys   []string
	values map[string]Node
}

// NewObject creates an empty Object.
func NewObject() *Object {
	return &Object{
		keys:   nil,
		values: make(map[string]Node),
	}
}

// Kind returns KindObject.
func (*Object) Kind() Kind { return KindObject }

func (*Object) node() {}

// Len returns the number of entries.
func (o *Object) Len() int {
	return len(o.keys)
}

// Keys returns the keys in insertion order.
func (o *Object) Keys() []string {
	keys := make([]string, len(o.keys))
	copy(keys, o.keys)

	return keys
}

// Get returns the node stored under key.
func (o *Object) Get(key string) (Node, bool) {
	n, ok := o.values[key]

	return n, ok
}

// Set stores n under key. An existing key keeps its position.
func (o *Object) Set(key string, n Node) {
	if o.values == nil {
		o.values = make(map[string]Node)
	}

	if _, exists := o.values[key]; !exists {
		o.keys = append(o.keys, key)
	}

	o.values[key] = n
}

// Delete removes key and reports whether it was present.
func (o *Object) Delete(key string) bool {
	if _, exists := o.values[key]; !exists {
		return false
	}

	delete(o.values, key)

	for i, k := range o.keys {
		if k == key {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)

			break
		}
	}

	return true
}

// FindFold returns the first existing key equal to key under Unicode case folding.
func (o *Object) FindFold(key string) (string, bool) {
	for _, k := range o.keys {
		if strings.EqualFold(k, key) {
			return k, true
		}
	}

	return "", false
}

// Array is an ordered sequence of nodes.
type Array struct {
	elems []Node
}

// NewArray creates an Array holding elems.
func NewArray(elems ...Node) *Array {
	return &Array{elems: elems}
}

// Kind returns KindArray.
func (*Array) Kind() Kind { return KindArray }

func (*Array) node() {}

// Len returns the number of elements, filler included.
func (a *Array) Len() int {
	return len(a.elems)
}

// Get returns the element at index i.
func (a *Array) Get(i int) (Node, bool) {
	if i < 0 || i >= len(a.elems) {
		return nil, false
	}

	return a.elems[i], true
}

// Set stores n at index i, extending the array with null filler when i is past the end.
// Negative indices are ignored.
func (a *Array) Set(i int, n Node) {
	if i < 0 {
		return
	}

	for len(a.elems) <= i {
		a.elems = append(a.elems, Null())
	}

	a.elems[i] = n
}

// Append adds n to the end of the array.
func (a *Array) Append(n Node) {
	a.elems = append(a.elems, n)
}

// Elems returns a copy of the element slice.
func (a *Array) Elems() []Node {
	elems := make([]Node, len(a.elems))
	copy(elems, a.elems)

	return elems
}

// Scalar is a leaf value. The resolver never interprets it.
type Scalar struct {
	Value any
}

// NewScalar wraps v.
func NewScalar(v any) *Scalar {
	return &Scalar{Value: v}
}

// Null returns a new null scalar, used for array filler.
func Null() *Scalar {
	return &Scalar{Value: nil}
}

// Kind returns KindScalar.
func (*Scalar) Kind() Kind { return KindScalar }

func (*Scalar) node() {}

// IsNull reports whether the scalar holds no value.
func (s *Scalar) IsNull() bool {
	return s == nil || s.Value == nil
}

// IsNull reports whether n is absent or a null scalar.
func IsNull(n Node) bool {
	if n == nil {
		return true
	}

	s, ok := n.(*Scalar)

	return ok && s.IsNull()
}
