// Package override collects configuration overrides and merges them into a tree.
//
// An Override is a path, a value and the matching mode used to apply it. Sources
// produce overrides from different places:
//   - Properties: "key=value" pairs, usually from the command line (exact matching)
//   - Env: prefixed environment variables such as APP_DB_HOST (case-insensitive matching)
//   - Tree: every leaf of a secondary configuration tree (exact matching)
//
// Overrides are applied in order with path.Set, so later overrides win.
//
// Usage:
//
//	tree, err := override.Merge(base,
//	    override.Tree("defaults.yaml", defaults),
//	    override.Env("APP_", os.Environ()),
//	    override.Properties("server.port=9090"),
//	)
package override
