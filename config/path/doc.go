// Package path resolves dotted and bracketed path expressions against a configuration tree.
//
// A path names a position in a node.Node tree:
//
//	"server.port"          -> root["server"]["port"]
//	"servers[1].host"      -> root["servers"][1]["host"]
//	"[0].name"             -> root[0]["name"]
//	""                     -> the root itself
//
// Property names are separated by "." and a "." before "[" is optional. A path
// may not end with ".". Indices above MaxIndex are rejected.
// Keys containing ".", "[" or "]" cannot be addressed.
//
// Two matching modes are supported. Exact matches keys byte for byte.
// CaseInsensitive reuses an existing key that matches under case folding and
// creates missing keys upper-cased. Array indices directly after a property are
// rejected in CaseInsensitive mode.
//
// Reads never modify the tree and fail with ErrTypeConflict when a scalar sits
// where a container is needed. Writes replace such scalars, create missing
// objects and arrays, and pad arrays with null filler. The whole path is parsed
// before the first mutation, so a write that fails leaves the tree untouched.
//
// Nothing in this package is safe for concurrent use against the same tree.
package path
