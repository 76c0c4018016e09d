// Package node provides the in-memory configuration tree used by the path resolver.
//
// A tree is built from three node kinds:
//   - *Object: string keys mapped to nodes, insertion order preserved
//   - *Array: ordered sequence of nodes, extended with null filler on out-of-range writes
//   - *Scalar: an opaque leaf value (string, number, boolean or null)
//
// Absence is not a node kind. Lookups report it with a false second result.
//
// Trees are not safe for concurrent mutation. Callers serialize access while
// overrides are merged, then hand the tree off for decoding.
package node
