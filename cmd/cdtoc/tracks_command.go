package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/binaryphile/cdtoc/internal/cdtoc"
)

func newTracksCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tracks <cdtoc>",
		Short: "List the audio tracks of a table of contents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			toc, err := parseTOCArg(args[0])
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 0, 2, ' ', 0)
			fmt.Fprintln(w, "TRACK\tSTART (MSF)\tSECTORS\tLENGTH")

			if htoa, ok := toc.HTOA(); ok {
				m, s, f := htoa.MSF()
				fmt.Fprintf(w, "HTOA\t%02d:%02d.%02d\t%d\t%s\n",
					m, s, f, htoa.Sectors(), htoa.Duration())
			}

			for _, track := range toc.AudioTracks() {
				m, s, f := track.MSF()
				fmt.Fprintf(w, "%d\t%02d:%02d.%02d\t%d\t%s\n",
					track.Num, m, s, f, track.Sectors(), track.Duration())
			}

			if data, ok := toc.DataSector(); ok {
				end := toc.Leadout()
				if toc.Kind() == cdtoc.KindDataFirst {
					end = toc.AudioLeadin()
				}
				fmt.Fprintf(w, "data\t\t%d\t\n", end-data)
			}

			if err := w.Flush(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "\nTotal audio: %s\n", toc.Duration())
			return nil
		},
	}
}
