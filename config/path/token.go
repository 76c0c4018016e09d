package path

import (
	"strconv"
	"strings"
)

// MaxIndex is the largest array index a path may name. Writes pad arrays with
// null filler up to the index, so it bounds the memory one path can allocate.
const MaxIndex = 1<<16 - 1

const (
	separator  = '.'
	indexStart = '['
	indexEnd   = ']'
)

type tokenKind uint8

const (
	tokenEnd tokenKind = iota
	tokenProperty
	tokenIndex
)

// token is one step of a path: a property key or an array index.
type token struct {
	kind   tokenKind
	key    string
	index  int
	offset int
}

// peek classifies the next token of remaining without consuming it.
func peek(remaining string) tokenKind {
	switch {
	case remaining == "":
		return tokenEnd
	case remaining[0] == indexStart:
		return tokenIndex
	default:
		return tokenProperty
	}
}

// readProperty consumes a property key. A following "." is consumed, a following "[" is kept.
func readProperty(path, remaining string, offset int) (token, string, error) {
	end := strings.IndexAny(remaining, string([]byte{separator, indexStart, indexEnd}))
	if end < 0 {
		end = len(remaining)
	}

	if end < len(remaining) && remaining[end] == indexEnd {
		return token{}, "", malformed(path, offset+end, string(indexEnd), "unexpected index end")
	}

	key := remaining[:end]
	if key == "" {
		return token{}, "", malformed(path, offset, remaining[:1], "empty property name")
	}

	rest, err := skipSeparator(path, remaining[end:], offset+end)
	if err != nil {
		return token{}, "", err
	}

	return token{kind: tokenProperty, key: key, index: 0, offset: offset}, rest, nil
}

// readIndex consumes "[digits]" and one optional "." after it.
func readIndex(path, remaining string, offset int) (token, string, error) {
	end := strings.IndexByte(remaining, indexEnd)
	if end < 0 {
		return token{}, "", malformed(path, offset, remaining, "unterminated index")
	}

	raw := remaining[1:end]
	if raw == "" {
		return token{}, "", malformed(path, offset, remaining[:end+1], "empty index")
	}

	for i := range len(raw) {
		if raw[i] < '0' || raw[i] > '9' {
			return token{}, "", malformed(path, offset+1, raw, "non-numeric index")
		}
	}

	index, err := strconv.Atoi(raw)
	if err != nil || index > MaxIndex {
		return token{}, "", malformed(path, offset+1, raw, "index out of range")
	}

	rest, err := skipSeparator(path, remaining[end+1:], offset+end+1)
	if err != nil {
		return token{}, "", err
	}

	return token{kind: tokenIndex, key: "", index: index, offset: offset}, rest, nil
}

// skipSeparator consumes one leading "." of rest, which sits at offset in path.
// A "." that ends the path names no property.
func skipSeparator(path, rest string, offset int) (string, error) {
	if rest == "" || rest[0] != separator {
		return rest, nil
	}

	if len(rest) == 1 {
		return "", malformed(path, offset, rest, "empty property name")
	}

	return rest[1:], nil
}
