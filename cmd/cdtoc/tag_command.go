package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/binaryphile/cdtoc/internal/musicbrainz"
	"github.com/binaryphile/cdtoc/internal/tag"
)

func newTagCommand() *cobra.Command {
	var tocFlag string

	tagCmd := &cobra.Command{
		Use:   "tag <file.mp3>",
		Short: "Read or write the CDTOC frame of an MP3 file",
		Long: `Read or write the CDTOC frame of an MP3 file.

Without --toc, the file's CDTOC frame is parsed and its disc IDs are
printed. With --toc, the frame (and a MusicBrainz disc ID frame) is
written to the file, replacing any previous value.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if tocFlag != "" {
				toc, err := parseTOCArg(tocFlag)
				if err != nil {
					return err
				}
				if err := tag.WriteCDTOC(args[0], toc); err != nil {
					return err
				}
				fmt.Fprintf(out, "Tagged %s with %s\n", args[0], toc.String())
				return nil
			}

			toc, err := tag.ReadCDTOC(args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "CDTOC:       %s\n", toc.String())
			fmt.Fprintf(out, "MusicBrainz: %s\n", musicbrainz.CalculateID(toc).String())
			return nil
		},
	}

	tagCmd.Flags().StringVar(&tocFlag, "toc", "", "CDTOC value to write into the file")

	return tagCmd
}
