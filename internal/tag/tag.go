// Package tag reads and writes disc identity frames in MP3 files.
//
// The table of contents travels in a TXXX frame named "CDTOC", the
// same frame EAC-style rippers write, so a file tagged here can be
// matched back to its source disc by any tool that understands the
// convention.
package tag

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/bogem/id3v2/v2"

	"github.com/binaryphile/cdtoc/internal/cdtoc"
	"github.com/binaryphile/cdtoc/internal/musicbrainz"
)

// Frame descriptions for the TXXX user-defined frames.
const (
	FrameCDTOC  = "CDTOC"
	FrameDiscID = "MusicBrainz Disc Id"
)

// ErrNoCDTOC is returned when a file carries no CDTOC frame.
var ErrNoCDTOC = errors.New("no CDTOC frame in file")

// TrackMeta contains metadata for a track to be tagged
type TrackMeta struct {
	Artist      string
	AlbumArtist string // For compilations - empty means same as Artist
	Album       string
	Title       string
	TrackNum    int
	TrackTotal  int
	DiscNum     int // 0 = single disc
	DiscTotal   int // 0 = single disc
	Year        int
	Genre       string
	Compilation bool
}

// TagSet contains the ID3 frames to be written
type TagSet struct {
	Artist      string
	AlbumArtist string
	Album       string
	Title       string
	TrackNum    int
	TrackTotal  int
	DiscNum     int
	DiscTotal   int
	Year        int
	Genre       string
	Compilation bool
	CDTOC       string // serialized table of contents, empty = omit
	DiscID      string // MusicBrainz disc ID, empty = omit
}

// BuildTags creates a TagSet from track metadata and the disc's table
// of contents. This is a pure function: no I/O is performed - use
// Apply() to write the frames to a file. A nil toc omits the disc
// identity frames.
func BuildTags(meta TrackMeta, toc *cdtoc.TOC) TagSet {
	tags := TagSet{
		Artist:      meta.Artist,
		AlbumArtist: meta.AlbumArtist,
		Album:       meta.Album,
		Title:       meta.Title,
		TrackNum:    meta.TrackNum,
		TrackTotal:  meta.TrackTotal,
		DiscNum:     meta.DiscNum,
		DiscTotal:   meta.DiscTotal,
		Year:        meta.Year,
		Genre:       meta.Genre,
		Compilation: meta.Compilation,
	}
	if toc != nil {
		tags.CDTOC = toc.String()
		tags.DiscID = musicbrainz.CalculateID(toc).String()
	}
	return tags
}

// Apply writes the frames to an MP3 file.
// This is boundary code - performs file I/O.
func (t TagSet) Apply(filepath string) error {
	tag, err := id3v2.Open(filepath, id3v2.Options{Parse: false})
	if err != nil {
		return fmt.Errorf("open mp3: %w", err)
	}
	defer tag.Close()

	// Set ID3v2.4
	tag.SetDefaultEncoding(id3v2.EncodingUTF8)
	tag.SetVersion(4)

	// Basic tags
	tag.SetArtist(t.Artist)
	tag.SetAlbum(t.Album)
	tag.SetTitle(t.Title)
	tag.SetGenre(t.Genre)

	// Year
	if t.Year > 0 {
		tag.SetYear(strconv.Itoa(t.Year))
	}

	// Track number (format: N/Total)
	if t.TrackTotal > 0 {
		tag.AddTextFrame("TRCK", id3v2.EncodingUTF8,
			fmt.Sprintf("%d/%d", t.TrackNum, t.TrackTotal))
	} else if t.TrackNum > 0 {
		tag.AddTextFrame("TRCK", id3v2.EncodingUTF8,
			strconv.Itoa(t.TrackNum))
	}

	// Disc number (format: N/Total)
	if t.DiscTotal > 0 {
		tag.AddTextFrame("TPOS", id3v2.EncodingUTF8,
			fmt.Sprintf("%d/%d", t.DiscNum, t.DiscTotal))
	} else if t.DiscNum > 0 {
		tag.AddTextFrame("TPOS", id3v2.EncodingUTF8,
			strconv.Itoa(t.DiscNum))
	}

	// Album artist (TPE2)
	if t.AlbumArtist != "" {
		tag.AddTextFrame("TPE2", id3v2.EncodingUTF8, t.AlbumArtist)
	}

	// Compilation flag (TCMP)
	if t.Compilation {
		tag.AddTextFrame("TCMP", id3v2.EncodingUTF8, "1")
	}

	// Disc identity frames
	if t.CDTOC != "" {
		addUserFrame(tag, FrameCDTOC, t.CDTOC)
	}
	if t.DiscID != "" {
		addUserFrame(tag, FrameDiscID, t.DiscID)
	}

	if err := tag.Save(); err != nil {
		return fmt.Errorf("save tags: %w", err)
	}

	return nil
}

// WriteCDTOC stamps a file with the table of contents and disc ID
// without touching any other frames.
func WriteCDTOC(filepath string, toc *cdtoc.TOC) error {
	tag, err := id3v2.Open(filepath, id3v2.Options{Parse: true})
	if err != nil {
		return fmt.Errorf("open mp3: %w", err)
	}
	defer tag.Close()

	removeUserFrame(tag, FrameCDTOC)
	removeUserFrame(tag, FrameDiscID)
	addUserFrame(tag, FrameCDTOC, toc.String())
	addUserFrame(tag, FrameDiscID, musicbrainz.CalculateID(toc).String())

	if err := tag.Save(); err != nil {
		return fmt.Errorf("save tags: %w", err)
	}

	return nil
}

// ReadCDTOC parses the table of contents stored in a file's CDTOC
// frame. Returns ErrNoCDTOC when the frame is absent.
func ReadCDTOC(filepath string) (*cdtoc.TOC, error) {
	tag, err := id3v2.Open(filepath, id3v2.Options{Parse: true})
	if err != nil {
		return nil, fmt.Errorf("open mp3: %w", err)
	}
	defer tag.Close()

	value, ok := userFrame(tag, FrameCDTOC)
	if !ok {
		return nil, ErrNoCDTOC
	}

	toc, err := cdtoc.Parse(value)
	if err != nil {
		return nil, fmt.Errorf("CDTOC frame: %w", err)
	}
	return toc, nil
}

func addUserFrame(tag *id3v2.Tag, description, value string) {
	tag.AddUserDefinedTextFrame(id3v2.UserDefinedTextFrame{
		Encoding:    id3v2.EncodingUTF8,
		Description: description,
		Value:       value,
	})
}

func userFrame(tag *id3v2.Tag, description string) (string, bool) {
	id := tag.CommonID("User defined text information frame")
	for _, f := range tag.GetFrames(id) {
		udf, ok := f.(id3v2.UserDefinedTextFrame)
		if ok && udf.Description == description {
			return udf.Value, true
		}
	}
	return "", false
}

func removeUserFrame(tag *id3v2.Tag, description string) {
	id := tag.CommonID("User defined text information frame")
	frames := tag.GetFrames(id)
	tag.DeleteFrames(id)
	for _, f := range frames {
		udf, ok := f.(id3v2.UserDefinedTextFrame)
		if ok && udf.Description == description {
			continue
		}
		tag.AddFrame(id, f)
	}
}
