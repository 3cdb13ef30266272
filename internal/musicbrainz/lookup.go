package musicbrainz

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uploadedlobster.com/mbtypes"
	"go.uploadedlobster.com/musicbrainzws2"

	"github.com/binaryphile/cdtoc/internal/cdtoc"
)

// Release contains metadata for an album/release
type Release struct {
	MBID        string  // MusicBrainz ID
	Title       string  // Album title
	Artist      string  // Artist name (may be "Various Artists" for compilations)
	Year        int     // Release year
	Country     string  // Release country code
	TrackCount  int     // Number of tracks
	DiscCount   int     // Number of discs
	Tracks      []Track // Track list
	Compilation bool    // True if Various Artists
}

// Track contains metadata for a single track
type Track struct {
	Num    int
	Title  string
	Artist string // May differ from album artist on compilations
}

// Client wraps the MusicBrainz API
type Client struct {
	client    *musicbrainzws2.Client
	userAgent string
}

// NewClient creates a new MusicBrainz API client
func NewClient(appName, version, contact string) *Client {
	client := musicbrainzws2.NewClient(musicbrainzws2.AppInfo{
		Name:    appName,
		Version: version,
		URL:     contact,
	})
	return &Client{
		client:    client,
		userAgent: fmt.Sprintf("%s/%s ( %s )", appName, version, contact),
	}
}

// Close releases client resources
func (c *Client) Close() error {
	return c.client.Close()
}

// LookupTOC derives the disc ID for a table of contents and looks up
// matching releases. Identical pressings share a TOC, so multiple
// results are common.
func (c *Client) LookupTOC(ctx context.Context, toc *cdtoc.TOC) ([]Release, error) {
	return c.LookupByDiscID(ctx, CalculateID(toc).String())
}

// LookupByDiscID looks up releases by MusicBrainz disc ID.
// Returns a list of matching releases (may be multiple pressings/editions).
func (c *Client) LookupByDiscID(ctx context.Context, discID string) ([]Release, error) {
	// Rate limit: 1 request per second
	time.Sleep(1 * time.Second)

	filter := musicbrainzws2.DiscIDFilter{
		Includes: []string{"recordings", "artists", "release-groups"},
	}

	disc, err := c.client.LookupDiscID(ctx, discID, filter)
	if err != nil {
		return nil, fmt.Errorf("disc lookup: %w", err)
	}

	var releases []Release
	for _, r := range disc.Releases {
		releases = append(releases, summarize(r))
	}

	return releases, nil
}

// GetReleaseTracks fetches full track information for a release.
// Call this after selecting a release from LookupByDiscID.
func (c *Client) GetReleaseTracks(ctx context.Context, mbid string) (*Release, error) {
	// Rate limit
	time.Sleep(1 * time.Second)

	filter := musicbrainzws2.IncludesFilter{
		Includes: []string{"recordings", "artists", "artist-credits"},
	}

	r, err := c.client.LookupRelease(ctx, mbtypes.MBID(mbid), filter)
	if err != nil {
		return nil, fmt.Errorf("release lookup: %w", err)
	}

	release := summarize(r)

	// Extract tracks from all media
	for _, medium := range r.Media {
		for _, track := range medium.Tracks {
			t := Track{
				Num:    track.Position,
				Title:  track.Title,
				Artist: getTrackArtist(track, r.ArtistCredit),
			}
			release.Tracks = append(release.Tracks, t)
		}
	}

	return &release, nil
}

// Search searches for releases by text query (artist, album, etc).
func (c *Client) Search(ctx context.Context, query string) ([]Release, error) {
	// Rate limit
	time.Sleep(1 * time.Second)

	filter := musicbrainzws2.SearchFilter{
		Query: query,
	}

	paginator := musicbrainzws2.DefaultPaginator()

	result, err := c.client.SearchReleases(ctx, filter, paginator)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	var releases []Release
	for _, r := range result.Releases {
		releases = append(releases, summarize(r))
	}

	return releases, nil
}

// SortReleasesByTrackMatch orders releases so those whose track count
// matches the disc come first. Within each group newer releases sort
// before older ones.
func SortReleasesByTrackMatch(releases []Release, trackCount int) []Release {
	sorted := make([]Release, len(releases))
	copy(sorted, releases)

	sort.SliceStable(sorted, func(i, j int) bool {
		iMatch := sorted[i].TrackCount == trackCount
		jMatch := sorted[j].TrackCount == trackCount
		if iMatch != jMatch {
			return iMatch
		}
		return sorted[i].Year > sorted[j].Year
	})

	return sorted
}

func summarize(r musicbrainzws2.Release) Release {
	return Release{
		MBID:        string(r.ID),
		Title:       r.Title,
		Artist:      getArtistName(r.ArtistCredit),
		Year:        r.Date.Year,
		Country:     string(r.CountryCode),
		TrackCount:  getTotalTracks(r.Media),
		DiscCount:   len(r.Media),
		Compilation: isCompilation(r.ArtistCredit),
	}
}

func getArtistName(credit musicbrainzws2.ArtistCredit) string {
	if len(credit) == 0 {
		return "Unknown Artist"
	}
	return credit.String()
}

func getTrackArtist(track musicbrainzws2.Track, albumCredit musicbrainzws2.ArtistCredit) string {
	// Use track's artist credit if present
	if len(track.ArtistCredit) > 0 {
		return track.ArtistCredit.String()
	}
	// Use recording's artist credit if different from album
	if len(track.Recording.ArtistCredit) > 0 {
		return track.Recording.ArtistCredit.String()
	}
	// Fall back to album artist
	return getArtistName(albumCredit)
}

func isCompilation(credit musicbrainzws2.ArtistCredit) bool {
	if len(credit) == 0 {
		return false
	}
	return getArtistName(credit) == "Various Artists"
}

func getTotalTracks(media []musicbrainzws2.Medium) int {
	total := 0
	for _, m := range media {
		total += m.TrackCount
	}
	return total
}
