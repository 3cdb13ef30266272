package cdtoc

import (
	"errors"
	"fmt"
)

// The closed set of validation failures shared by the TOC factories and
// mutators. Identifier codecs carry their own decode errors in their own
// packages.
var (
	// ErrNoAudio means a TOC was constructed without any audio tracks.
	ErrNoAudio = errors.New("at least one audio track is required")

	// ErrTrackCount means the audio track count fell outside 1..=99.
	ErrTrackCount = errors.New("the number of audio tracks must be between 1 and 99")

	// ErrLeadinSize means the first audio sector was below the mandatory
	// 150-sector disc leadin.
	ErrLeadinSize = errors.New("leadin must be at least 150")

	// ErrSectorOrder means the sectors are not strictly increasing, or the
	// data session does not sit immediately before or after the audio set,
	// or the leadout is not the largest value.
	ErrSectorOrder = errors.New("sectors are incorrectly ordered or overlap")

	// ErrSectorSize means a sector value overflowed 32 bits.
	ErrSectorSize = errors.New("sector values may not exceed four bytes")

	// ErrChars means a CDTOC string contained something other than hex
	// digits, '+' separators, and the rare 'X' data-first marker.
	ErrChars = errors.New("invalid character, expecting only 0-9, A-F, +, and (rarely) X")

	// ErrSampleCount means a CDDA sample total was not divisible by 588,
	// the sample count of a single sector.
	ErrSampleCount = errors.New("invalid CDDA sample count")
)

// SectorCountError reports a mismatch between the declared audio track
// count of a CDTOC string and the number of sector groups it carries.
type SectorCountError struct {
	Expected uint8
	Found    int
}

func (e *SectorCountError) Error() string {
	return fmt.Sprintf("expected %d audio sectors, found %d", e.Expected, e.Found)
}

// FormatError reports an operation that cannot be applied to the disc's
// session layout, such as a leadin shift on a data-first disc.
type FormatError struct {
	Kind Kind
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("this operation can't be applied to %s discs", e.Kind)
}
