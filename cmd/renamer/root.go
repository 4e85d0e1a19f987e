package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "renamer",
		Short:         "Resolve creative filenames against a trafficking sheet",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.AddCommand(newPreviewCommand())
	rootCmd.AddCommand(newCompareCommand())

	return rootCmd
}
