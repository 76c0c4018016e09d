package path

import (
	"fmt"
	"strings"

	"github.com/0xalexb/hjarta-config/config/node"
)

// MatchMode selects how property tokens are matched against object keys.
type MatchMode uint8

const (
	// Exact matches keys byte for byte.
	Exact MatchMode = iota
	// CaseInsensitive matches keys under case folding.
	CaseInsensitive
)

func (m MatchMode) String() string {
	switch m {
	case Exact:
		return "exact"
	case CaseInsensitive:
		return "case-insensitive"
	default:
		return fmt.Sprintf("MatchMode(%d)", uint8(m))
	}
}

type segmentKind uint8

const (
	lastSegment segmentKind = iota
	propertySegment
	ciPropertySegment
	indexSegment
)

// Segment is one position of a path being resolved: the node found there, if any,
// the token its parent uses to reach it and the part of the path still to walk.
//
// The kind of a segment follows from the next unread token. A property segment
// expects an object at its position, an index segment expects an array and the
// last segment marks the end of the path.
//
// Segments are built one at a time and hold no reference to their parent.
// They are only valid for the duration of a single read or write.
type Segment struct {
	kind      segmentKind
	mode      MatchMode
	node      node.Node
	incoming  token
	path      string
	remaining string
	offset    int
}

func newSegment(n node.Node, incoming token, path, remaining string, offset int, mode MatchMode) (*Segment, error) {
	seg := &Segment{
		kind:      lastSegment,
		mode:      mode,
		node:      n,
		incoming:  incoming,
		path:      path,
		remaining: remaining,
		offset:    offset,
	}

	switch peek(remaining) {
	case tokenEnd:
		seg.kind = lastSegment
	case tokenIndex:
		if mode == CaseInsensitive && incoming.kind == tokenProperty {
			return nil, fmt.Errorf("%w: index after case-insensitive property %q in %q",
				ErrUnsupportedOperation, incoming.key, path)
		}

		seg.kind = indexSegment
	case tokenProperty:
		seg.kind = propertySegment
		if mode == CaseInsensitive {
			seg.kind = ciPropertySegment
		}
	}

	return seg, nil
}

// Node returns the node bound to this position, or nil when it does not exist.
func (s *Segment) Node() node.Node {
	return s.node
}

// Remaining returns the unconsumed part of the path.
func (s *Segment) Remaining() string {
	return s.remaining
}

// IsLast reports whether the path is exhausted at this segment.
func (s *Segment) IsLast() bool {
	return s.kind == lastSegment
}

// next builds the following segment, consuming one token. It returns nil at the last segment.
func (s *Segment) next() (*Segment, error) {
	switch s.kind {
	case propertySegment, ciPropertySegment:
		tok, rest, err := readProperty(s.path, s.remaining, s.offset)
		if err != nil {
			return nil, err
		}

		obj, _ := s.node.(*node.Object)

		if s.kind == ciPropertySegment {
			tok.key = ciKey(obj, tok.key)
		}

		var child node.Node
		if obj != nil {
			child, _ = obj.Get(tok.key)
		}

		return newSegment(child, tok, s.path, rest, s.restOffset(rest), s.mode)
	case indexSegment:
		tok, rest, err := readIndex(s.path, s.remaining, s.offset)
		if err != nil {
			return nil, err
		}

		var child node.Node
		if arr, ok := s.node.(*node.Array); ok {
			child, _ = arr.Get(tok.index)
		}

		return newSegment(child, tok, s.path, rest, s.restOffset(rest), s.mode)
	default:
		return nil, nil
	}
}

func (s *Segment) restOffset(rest string) int {
	return s.offset + len(s.remaining) - len(rest)
}

// ciKey picks the existing key matching token under case folding, or the
// upper-cased token when the object has none.
func ciKey(obj *node.Object, tok string) string {
	if obj != nil {
		if key, ok := obj.FindFold(tok); ok {
			return key
		}
	}

	return strings.ToUpper(tok)
}

// conflict reports a present, non-null node that cannot hold the next token.
func (s *Segment) conflict() error {
	if node.IsNull(s.node) {
		return nil
	}

	var want node.Kind

	switch s.kind {
	case propertySegment, ciPropertySegment:
		want = node.KindObject
	case indexSegment:
		want = node.KindArray
	default:
		return nil
	}

	if s.node.Kind() == want {
		return nil
	}

	return fmt.Errorf("%w: expected %s at %q, found %s",
		ErrTypeConflict, want, s.position(), s.node.Kind())
}

// position returns the consumed prefix of the path naming this segment.
func (s *Segment) position() string {
	prefix := strings.TrimSuffix(s.path[:s.offset], string(separator))
	if prefix == "" {
		return "<root>"
	}

	return prefix
}

// Read walks the rest of the path without modifying the tree.
// It returns false when any position along the path does not exist.
func (s *Segment) Read() (node.Node, bool, error) {
	var conflictErr error

	cur := s

	for !cur.IsLast() {
		if conflictErr == nil {
			conflictErr = cur.conflict()
		}

		next, err := cur.next()
		if err != nil {
			return nil, false, err
		}

		cur = next
	}

	if conflictErr != nil {
		return nil, false, conflictErr
	}

	if cur.node == nil {
		return nil, false, nil
	}

	return cur.node, true, nil
}

// Write stores value at the end of the path and returns the node now bound to this segment.
//
// The chain is walked forward first, so syntax errors surface before any change.
// Containers are then materialized from the last segment back to this one: a
// position holding an absent node or a node of the wrong kind gets a new empty
// object or array, existing containers are updated in place.
func (s *Segment) Write(value node.Node) (node.Node, error) {
	chain := []*Segment{s}

	for cur := s; !cur.IsLast(); {
		next, err := cur.next()
		if err != nil {
			return nil, err
		}

		chain = append(chain, next)
		cur = next
	}

	if value == nil {
		value = node.Null()
	}

	child := value
	chain[len(chain)-1].node = child

	for i := len(chain) - 1; i > 0; i-- {
		child = chain[i-1].attach(chain[i].incoming, child)
	}

	return child, nil
}

// attach ensures the container for this segment exists and stores child under tok.
func (s *Segment) attach(tok token, child node.Node) node.Node {
	switch s.kind {
	case propertySegment, ciPropertySegment:
		obj, ok := s.node.(*node.Object)
		if !ok {
			obj = node.NewObject()
			s.node = obj
		}

		obj.Set(tok.key, child)

		return obj
	case indexSegment:
		arr, ok := s.node.(*node.Array)
		if !ok {
			arr = node.NewArray()
			s.node = arr
		}

		arr.Set(tok.index, child)

		return arr
	default:
		return child
	}
}
