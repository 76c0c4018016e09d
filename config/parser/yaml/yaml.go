package yaml

import (
	"errors"
	"fmt"

	"github.com/0xalexb/hjarta-config/config/node"

	"github.com/goccy/go-yaml"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// ErrNilTree is returned when Decode is given no tree.
var ErrNilTree = errors.New("nil tree")

// Parser implements config.Parser interface for YAML data.
// Mappings are decoded in document order, so encoding a merged tree keeps the original key order.
type Parser struct{}

// NewParser creates a new YAML parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses YAML data into a tree.
func (p *Parser) Parse(data []byte) (node.Node, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}

	var decoded any

	err := yaml.UnmarshalWithOptions(data, &decoded, yaml.UseOrderedMap())
	if err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	tree, err := node.FromValue(decoded)
	if err != nil {
		return nil, fmt.Errorf("building tree: %w", err)
	}

	return tree, nil
}

// Decode unmarshals tree into target by re-encoding it as YAML.
func (p *Parser) Decode(tree node.Node, target any) error {
	if tree == nil {
		return ErrNilTree
	}

	data, err := p.Encode(tree)
	if err != nil {
		return err
	}

	err = yaml.Unmarshal(data, target)
	if err != nil {
		return fmt.Errorf("unmarshal error: %w", err)
	}

	return nil
}

// Encode renders tree as a YAML document.
func (p *Parser) Encode(tree node.Node) ([]byte, error) {
	data, err := yaml.Marshal(node.ToValue(tree))
	if err != nil {
		return nil, fmt.Errorf("marshal error: %w", err)
	}

	return data, nil
}
