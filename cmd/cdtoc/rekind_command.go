package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/binaryphile/cdtoc/internal/cdtoc"
)

func newRekindCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rekind <cdtoc> <audio|cd-extra|data-first>",
		Short: "Reclassify the disc's session layout",
		Long: `Reclassify the disc's session layout.

The sector values stay where they are; one of them is reinterpreted as
audio or data as needed. Useful when a tagger guessed the layout wrong:
an untagged trailing data session looks just like a final audio track.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			toc, err := parseTOCArg(args[0])
			if err != nil {
				return err
			}

			var kind cdtoc.Kind
			switch args[1] {
			case "audio":
				kind = cdtoc.KindAudio
			case "cd-extra":
				kind = cdtoc.KindCDExtra
			case "data-first":
				kind = cdtoc.KindDataFirst
			default:
				return fmt.Errorf("unknown layout %q (want audio, cd-extra, or data-first)", args[1])
			}

			if err := toc.SetKind(kind); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), toc.String())
			return nil
		},
	}
}
