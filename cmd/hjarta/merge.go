package main

import (
	yamlparser "github.com/0xalexb/hjarta-config/config/parser/yaml"

	"github.com/spf13/cobra"
)

func newMergeCmd(opts *rootOptions) *cobra.Command {
	var showDiff bool

	mergeCmd := &cobra.Command{
		Use:   "merge",
		Short: "Print the configuration with all overrides applied",
		Example: `  hjarta merge -c app.yaml --override-file local.yaml --env-prefix APP_
  hjarta merge -c app.yaml --set server.port=9090 --diff`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := opts.load()
			if err != nil {
				return err
			}

			parser := yamlparser.NewParser()

			merged, err := parser.Encode(doc.merged)
			if err != nil {
				return err
			}

			out := newPrinter(cmd.OutOrStdout(), opts.noColor)

			if !showDiff {
				return out.yaml(merged)
			}

			base, err := parser.Encode(doc.base)
			if err != nil {
				return err
			}

			return out.diff(string(base), string(merged))
		},
	}

	mergeCmd.Flags().BoolVarP(&showDiff, "diff", "d", false, "Print a line diff against the unmerged file")

	return mergeCmd
}
