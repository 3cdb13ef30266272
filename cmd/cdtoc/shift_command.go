package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newShiftCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "shift <cdtoc> <leadin>",
		Short: "Move the audio session to a new leadin sector",
		Long: `Move the audio session to a new leadin sector.

Every audio sector, the data sector, and the leadout shift by the same
amount, so the relative track layout is preserved. The leadin is a
decimal sector count and must be at least 150 (the mandatory two-second
disc leadin). Data-first discs cannot be shifted.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			toc, err := parseTOCArg(args[0])
			if err != nil {
				return err
			}

			leadin, err := strconv.ParseUint(args[1], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid leadin %q: %w", args[1], err)
			}

			if err := toc.SetAudioLeadin(uint32(leadin)); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), toc.String())
			return nil
		},
	}
}
