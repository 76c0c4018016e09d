// Package yaml provides a YAML parser implementation for the config package.
//
// This package uses github.com/goccy/go-yaml with ordered maps, so the tree built
// by Parse keeps the key order of the document. Overrides are merged into that tree
// and Decode then unmarshals the result into typed configuration.
//
// Usage:
//
//	parser := yaml.NewParser()
//	tree, err := parser.Parse(data)
//	section, _, err := path.Get(tree, "api.permissions", path.Exact)
//	var cfg Config
//	err = parser.Decode(section, &cfg)
//
// Decode re-encodes the merged tree as YAML before unmarshaling, so targets use
// the same `yaml` struct tags as for unmerged documents.
package yaml
