package main

import (
	"fmt"
	"os"

	"github.com/0xalexb/hjarta-config/config/override"
	yamlparser "github.com/0xalexb/hjarta-config/config/parser/yaml"
	"github.com/0xalexb/hjarta-config/config/path"

	"github.com/spf13/cobra"
)

func newSetCmd(opts *rootOptions) *cobra.Command {
	var inPlace bool

	setCmd := &cobra.Command{
		Use:   "set PATH VALUE",
		Short: "Set the value at PATH and print the document",
		Long: `Set writes VALUE at PATH, creating missing objects and arrays on the way.
VALUE is typed like a YAML scalar ("8080", "true", "null"); inline JSON objects and
arrays become structured values.

Without --in-place the merged document is printed. With --in-place the change is
applied to the file as written, without --set, --env-prefix or --override-file values.`,
		Example: `  hjarta set -c app.yaml servers[2].port 8443
  hjarta set -c app.yaml --in-place tags '["a","b"]'`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := opts.load()
			if err != nil {
				return err
			}

			// Overrides apply to this run only and never reach the file.
			target := doc.merged
			if inPlace {
				target = doc.base
			}

			root, err := path.Set(target, args[0], opts.mode(), override.ParseValue(args[1]))
			if err != nil {
				return err
			}

			data, err := yamlparser.NewParser().Encode(root)
			if err != nil {
				return err
			}

			if inPlace {
				return writeInPlace(opts.configPath, data)
			}

			return newPrinter(cmd.OutOrStdout(), opts.noColor).yaml(data)
		},
	}

	setCmd.Flags().BoolVarP(&inPlace, "in-place", "w", false, "Write the result back to the configuration file")

	return setCmd
}

func writeInPlace(fpath string, data []byte) error {
	info, err := os.Stat(fpath)
	if err != nil {
		return fmt.Errorf("stat file: %w", err)
	}

	err = os.WriteFile(fpath, data, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	return nil
}
