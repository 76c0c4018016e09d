package main

import (
	"fmt"

	hjarta "github.com/0xalexb/hjarta-config"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of hjarta",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "hjarta %s (commit %s, built %s)\n",
				hjarta.Version, hjarta.Commit, hjarta.CompiledAt)
		},
	}
}
