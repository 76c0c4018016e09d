package main

import (
	"fmt"

	"github.com/0xalexb/hjarta-config/config"
	yamlparser "github.com/0xalexb/hjarta-config/config/parser/yaml"
	"github.com/0xalexb/hjarta-config/config/path"

	"github.com/spf13/cobra"
)

func newGetCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get PATH",
		Short: "Print the value at PATH",
		Example: `  hjarta get -c app.yaml servers[0].host
  hjarta get -c app.yaml --ignore-case JDBC.MyDb.URL`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := opts.load()
			if err != nil {
				return err
			}

			value, found, err := path.Get(doc.merged, args[0], opts.mode())
			if err != nil {
				return err
			}

			if !found {
				return fmt.Errorf("%w: %q", config.ErrPathNotFound, args[0])
			}

			data, err := yamlparser.NewParser().Encode(value)
			if err != nil {
				return err
			}

			return newPrinter(cmd.OutOrStdout(), opts.noColor).yaml(data)
		},
	}
}
