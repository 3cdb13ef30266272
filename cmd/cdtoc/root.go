package main

import (
	"github.com/spf13/cobra"

	"github.com/binaryphile/cdtoc/internal/cdtoc"
)

const version = "1.0.0"

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "cdtoc",
		Short:         "Inspect audio CD tables of contents and derive disc IDs",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.AddCommand(newIDCommand())
	rootCmd.AddCommand(newTracksCommand())
	rootCmd.AddCommand(newShiftCommand())
	rootCmd.AddCommand(newRekindCommand())
	rootCmd.AddCommand(newLookupCommand())
	rootCmd.AddCommand(newTagCommand())

	return rootCmd
}

// parseTOCArg parses the CDTOC positional argument shared by most
// subcommands.
func parseTOCArg(arg string) (*cdtoc.TOC, error) {
	return cdtoc.Parse(arg)
}
