package cdtoc

// TrackPosition locates a track within the running order of its disc.
type TrackPosition uint8

const (
	// PositionInvalid marks out-of-range track numbers, including the
	// pre-gap hidden track (#0).
	PositionInvalid TrackPosition = iota

	// PositionFirst is the first of several tracks.
	PositionFirst

	// PositionMiddle is neither first nor last.
	PositionMiddle

	// PositionLast is the final track.
	PositionLast

	// PositionOnly is the sole track on the disc.
	PositionOnly
)

// trackPosition classifies track num out of total.
func trackPosition(num, total int) TrackPosition {
	switch {
	case num == 0 || total < num:
		return PositionInvalid
	case num == 1 && total == 1:
		return PositionOnly
	case num == 1:
		return PositionFirst
	case num == total:
		return PositionLast
	default:
		return PositionMiddle
	}
}

// IsValid reports whether the position is anything but PositionInvalid.
func (p TrackPosition) IsValid() bool { return p != PositionInvalid }

// IsFirst reports whether the track opens the disc.
func (p TrackPosition) IsFirst() bool { return p == PositionFirst || p == PositionOnly }

// IsLast reports whether the track closes the disc.
func (p TrackPosition) IsLast() bool { return p == PositionLast || p == PositionOnly }

func (p TrackPosition) String() string {
	switch p {
	case PositionFirst:
		return "First"
	case PositionMiddle:
		return "Middle"
	case PositionLast:
		return "Last"
	case PositionOnly:
		return "Only"
	default:
		return "Invalid"
	}
}

// Track is the derived view of a single audio track: its number, where it
// sits in the running order, and its half-open sector range. Tracks are
// computed on demand from a TOC; they are not stored.
type Track struct {
	Num  uint8 // 1-99; 0 is the HTOA pseudo-track
	Pos  TrackPosition
	From uint32 // first sector
	To   uint32 // first sector past the end
}

// IsHTOA reports whether this is the hidden pre-gap pseudo-track.
func (t Track) IsHTOA() bool { return t.Num == 0 && !t.Pos.IsValid() }

// Sectors returns the number of sectors the track occupies.
func (t Track) Sectors() uint32 { return t.To - t.From }

// Bytes returns the track's size as raw PCM: 2,352 bytes per sector.
func (t Track) Bytes() uint64 { return uint64(t.Sectors()) * 2352 }

// Samples returns the track's CDDA sample count.
func (t Track) Samples() uint64 { return t.Duration().Samples() }

// Duration returns the track length.
func (t Track) Duration() Duration { return Duration(t.Sectors()) }

// MSF returns the minutes, seconds, and frames of the track's start.
func (t Track) MSF() (m, s, f int) { return lbaToMSF(t.From) }

// MSFNormalized is MSF without the mandatory 150-sector disc leadin,
// i.e. always two seconds less. Most applications expect this version.
func (t Track) MSFNormalized() (m, s, f int) { return lbaToMSF(t.From - 150) }

// SectorRangeNormalized returns the track's half-open sector range
// without the mandatory 150-sector disc leadin.
func (t Track) SectorRangeNormalized() (from, to uint32) {
	return t.From - 150, t.To - 150
}

// lbaToMSF converts a logical block address to minutes, seconds, and
// frames at 75 frames per second.
func lbaToMSF(sectors uint32) (m, s, f int) {
	sec := int(sectors / 75)
	f = int(sectors) - sec*75
	m = sec / 60
	s = sec - m*60
	return m, s, f
}

// AudioTrack returns the details of audio track num (1-based), or false
// if the number is out of range.
func (t *TOC) AudioTrack(num int) (Track, bool) {
	total := len(t.audio)
	if num < 1 || total < num {
		return Track{}, false
	}

	to := t.AudioLeadout()
	if num < total {
		to = t.audio[num]
	}

	return Track{
		Num:  uint8(num),
		Pos:  trackPosition(num, total),
		From: t.audio[num-1],
		To:   to,
	}, true
}

// AudioTracks returns the details of every audio track in order.
func (t *TOC) AudioTracks() []Track {
	out := make([]Track, len(t.audio))
	for i := range out {
		out[i], _ = t.AudioTrack(i + 1)
	}
	return out
}

// HTOA returns a pseudo-track for the gap between the mandatory disc
// leadin (sector 150) and the first audio track: hidden track one audio.
// Such gaps are usually silence, but every once in a while hold a secret
// bonus song. There is no HTOA when the gap is empty or the disc is
// data-first.
func (t *TOC) HTOA() (Track, bool) {
	leadin := t.AudioLeadin()
	if leadin == 150 || t.kind == KindDataFirst {
		return Track{}, false
	}
	return Track{
		Num:  0,
		Pos:  PositionInvalid,
		From: 150,
		To:   leadin,
	}, true
}
