package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/binaryphile/cdtoc/internal/accuraterip"
	"github.com/binaryphile/cdtoc/internal/cddb"
	"github.com/binaryphile/cdtoc/internal/ctdb"
	"github.com/binaryphile/cdtoc/internal/musicbrainz"
)

type discIDReport struct {
	CDTOC          string `json:"cdtoc"`
	Layout         string `json:"layout"`
	AudioTracks    int    `json:"audio_tracks"`
	Duration       string `json:"duration"`
	AccurateRip    string `json:"accuraterip"`
	AccurateRipURL string `json:"accuraterip_url"`
	CDDB           string `json:"cddb"`
	CTDB           string `json:"ctdb"`
	CTDBURL        string `json:"ctdb_url"`
	MusicBrainz    string `json:"musicbrainz"`
}

func newIDCommand() *cobra.Command {
	var jsonFlag bool

	idCmd := &cobra.Command{
		Use:   "id <cdtoc>",
		Short: "Derive the AccurateRip, CDDB, CTDB, and MusicBrainz IDs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			toc, err := parseTOCArg(args[0])
			if err != nil {
				return err
			}

			ar := accuraterip.CalculateID(toc)
			report := discIDReport{
				CDTOC:          toc.String(),
				Layout:         toc.Kind().String(),
				AudioTracks:    toc.AudioLen(),
				Duration:       toc.Duration().String(),
				AccurateRip:    ar.String(),
				AccurateRipURL: ar.ChecksumURL(),
				CDDB:           cddb.CalculateID(toc).String(),
				CTDB:           ctdb.CalculateID(toc).String(),
				CTDBURL:        ctdb.CalculateChecksumURL(toc),
				MusicBrainz:    musicbrainz.CalculateID(toc).String(),
			}

			out := cmd.OutOrStdout()
			if jsonFlag {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}

			fmt.Fprintf(out, "CDTOC:        %s\n", report.CDTOC)
			fmt.Fprintf(out, "Layout:       %s\n", report.Layout)
			fmt.Fprintf(out, "Audio tracks: %d\n", report.AudioTracks)
			fmt.Fprintf(out, "Duration:     %s\n", report.Duration)
			fmt.Fprintf(out, "AccurateRip:  %s\n", report.AccurateRip)
			fmt.Fprintf(out, "              %s\n", report.AccurateRipURL)
			fmt.Fprintf(out, "CDDB:         %s\n", report.CDDB)
			fmt.Fprintf(out, "CTDB:         %s\n", report.CTDB)
			fmt.Fprintf(out, "              %s\n", report.CTDBURL)
			fmt.Fprintf(out, "MusicBrainz:  %s\n", report.MusicBrainz)
			return nil
		},
	}

	idCmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit machine-readable JSON")

	return idCmd
}
