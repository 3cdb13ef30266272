package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/binaryphile/cdtoc/internal/musicbrainz"
	"github.com/binaryphile/cdtoc/internal/naming"
)

func newLookupCommand() *cobra.Command {
	var (
		releaseFlag string
		namesFlag   bool
		coverFlag   string
	)

	lookupCmd := &cobra.Command{
		Use:   "lookup <cdtoc>",
		Short: "Look up matching releases on MusicBrainz",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			toc, err := parseTOCArg(args[0])
			if err != nil {
				return err
			}

			client := musicbrainz.NewClient("cdtoc", version,
				"https://github.com/binaryphile/cdtoc")
			defer client.Close()

			out := cmd.OutOrStdout()

			if releaseFlag != "" {
				release, err := client.GetReleaseTracks(cmd.Context(), releaseFlag)
				if err != nil {
					return err
				}

				fmt.Fprintf(out, "%s - %s (%d)\n", release.Artist, release.Title, release.Year)

				if coverFlag != "" {
					if err := saveCoverArt(cmd.Context(), client, releaseFlag, coverFlag, out); err != nil {
						return err
					}
				}

				if namesFlag {
					dir := naming.ReleaseDir(release.Artist, release.Title, release.Year)
					for _, track := range release.Tracks {
						var name string
						if release.Compilation {
							name = naming.CompilationFilename(release.Title, 0, track.Num, track.Artist, track.Title)
						} else {
							name = naming.TrackFilename(release.Artist, release.Title, 0, track.Num, track.Title)
						}
						fmt.Fprintf(out, "  %s/%s\n", dir, name)
					}
					return nil
				}

				for _, track := range release.Tracks {
					fmt.Fprintf(out, "  %2d. %s", track.Num, track.Title)
					if release.Compilation && track.Artist != release.Artist {
						fmt.Fprintf(out, " [%s]", track.Artist)
					}
					fmt.Fprintln(out)
				}
				return nil
			}

			releases, err := client.LookupTOC(cmd.Context(), toc)
			if err != nil {
				return err
			}
			if len(releases) == 0 {
				fmt.Fprintln(out, "No matching releases")
				return nil
			}

			releases = musicbrainz.SortReleasesByTrackMatch(releases, toc.AudioLen())
			for _, r := range releases {
				fmt.Fprintf(out, "%s  %s - %s", r.MBID, r.Artist, r.Title)
				if r.Year > 0 {
					fmt.Fprintf(out, " (%d)", r.Year)
				}
				fmt.Fprintf(out, "  %d tracks", r.TrackCount)
				if r.Country != "" {
					fmt.Fprintf(out, "  %s", r.Country)
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}

	lookupCmd.Flags().StringVar(&releaseFlag, "release", "",
		"Fetch the track list for a release MBID instead of listing matches")
	lookupCmd.Flags().BoolVar(&namesFlag, "names", false,
		"With --release, print suggested rip file paths instead of the track list")
	lookupCmd.Flags().StringVar(&coverFlag, "cover", "",
		"With --release, save the front cover image to this path")

	return lookupCmd
}

// saveCoverArt fetches the release's front cover and writes it to path,
// appending an extension matching the image type when path has none.
func saveCoverArt(ctx context.Context, client *musicbrainz.Client, mbid, path string, out io.Writer) error {
	data, mimeType, err := client.GetCoverArt(ctx, mbid)
	if err != nil {
		return err
	}
	if data == nil {
		fmt.Fprintln(out, "No cover art available")
		return nil
	}

	if filepath.Ext(path) == "" {
		path += musicbrainz.CoverExt(mimeType)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("saving cover art: %w", err)
	}

	fmt.Fprintf(out, "Saved cover art to %s (%s)\n", path, mimeType)
	return nil
}
