package path

import (
	"fmt"

	"github.com/0xalexb/hjarta-config/config/node"
)

// Resolve returns the head segment for path over root. Tokens are consumed lazily
// by Read and Write, so syntax errors surface there.
func Resolve(root node.Node, path string, mode MatchMode) (*Segment, error) {
	if mode != Exact && mode != CaseInsensitive {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedOperation, mode)
	}

	return newSegment(root, token{}, path, path, 0, mode)
}

// Get returns the node at path. The boolean is false when nothing exists there.
func Get(root node.Node, path string, mode MatchMode) (node.Node, bool, error) {
	head, err := Resolve(root, path, mode)
	if err != nil {
		return nil, false, err
	}

	return head.Read()
}

// Set writes value at path and returns the root.
//
// The root is updated in place and returned as is when it already has the
// container kind the path starts with. Otherwise a replacement root is returned.
func Set(root node.Node, path string, mode MatchMode, value node.Node) (node.Node, error) {
	head, err := Resolve(root, path, mode)
	if err != nil {
		return root, err
	}

	newRoot, err := head.Write(value)
	if err != nil {
		return root, err
	}

	return newRoot, nil
}
