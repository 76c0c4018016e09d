package main

import (
	"errors"
	"fmt"

	hjarta "github.com/0xalexb/hjarta-config"
	filefetcher "github.com/0xalexb/hjarta-config/config/fetcher/file"
	"github.com/0xalexb/hjarta-config/config/node"
	"github.com/0xalexb/hjarta-config/config/override"
	yamlparser "github.com/0xalexb/hjarta-config/config/parser/yaml"
	"github.com/0xalexb/hjarta-config/config/path"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

var errConfigRequired = errors.New("--config is required")

type rootOptions struct {
	configPath    string
	ignoreCase    bool
	sets          []string
	envPrefix     string
	overrideFiles []string
	logLevel      string
	noColor       bool

	environ []string
}

// document is a loaded configuration: the file as parsed and the same tree with
// every override applied.
type document struct {
	base   node.Node
	merged node.Node
}

func newRootCmd(environ []string) *cobra.Command {
	opts := &rootOptions{environ: environ}

	rootCmd := &cobra.Command{
		Use:   "hjarta",
		Short: "Query and edit layered YAML configuration",
		Long: `hjarta loads a YAML configuration file, applies overrides from files, environment
variables and the command line, and reads or writes values by path (a.b[2].c).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "YAML configuration file")
	flags.BoolVarP(&opts.ignoreCase, "ignore-case", "i", false, "Match property names case-insensitively")
	flags.StringArrayVar(&opts.sets, "set", nil, "Override a value (key=value, repeatable)")
	flags.StringVar(&opts.envPrefix, "env-prefix", "", "Apply environment variables with this prefix as overrides")
	flags.StringArrayVar(&opts.overrideFiles, "override-file", nil, "YAML file merged over the configuration (repeatable)")
	flags.StringVar(&opts.logLevel, "log-level", "error", "Log level: debug, info, warn, error")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(
		newGetCmd(opts),
		newSetCmd(opts),
		newMergeCmd(opts),
		newVersionCmd(),
	)

	return rootCmd
}

func (o *rootOptions) mode() path.MatchMode {
	if o.ignoreCase {
		return path.CaseInsensitive
	}

	return path.Exact
}

// sources returns the overrides in precedence order: files, then environment, then
// --set pairs.
func (o *rootOptions) sources() ([]override.Source, error) {
	var sources []override.Source

	parser := yamlparser.NewParser()

	for _, fpath := range o.overrideFiles {
		source, err := filefetcher.NewOverrideSource(fpath, parser)
		if err != nil {
			return nil, fmt.Errorf("override file: %w", err)
		}

		sources = append(sources, source)
	}

	if o.envPrefix != "" {
		sources = append(sources, override.Env(o.envPrefix, o.environ))
	}

	if len(o.sets) > 0 {
		sources = append(sources, override.Properties(o.sets...))
	}

	return sources, nil
}

// load reads the configuration file through the config module and merges the
// overrides into a copy of it.
func (o *rootOptions) load() (*document, error) {
	if o.configPath == "" {
		return nil, errConfigRequired
	}

	sources, err := o.sources()
	if err != nil {
		return nil, err
	}

	var base node.Node

	app := hjarta.NewApp(
		hjarta.WithLogLevel(o.logLevel),
		hjarta.WithLogFormat("text"),
		hjarta.WithConfigFile(o.configPath),
		hjarta.WithModules(fx.Populate(&base)),
	)

	err = app.Start()
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", o.configPath, err)
	}

	defer func() { _ = app.Stop() }()

	merged, err := override.Merge(node.Clone(base), sources...)
	if err != nil {
		return nil, fmt.Errorf("merge overrides: %w", err)
	}

	return &document{
		base:   base,
		merged: merged,
	}, nil
}
