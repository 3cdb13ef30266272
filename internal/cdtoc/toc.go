// Package cdtoc parses and manipulates audio CD tables of contents in the
// CDTOC metadata-tag form: a '+'-separated list of hex values carrying the
// audio track count, each track's start sector, and the leadout (plus an
// optional data-session sector for mixed-mode discs).
//
// A TOC is only ever built through the validating constructors (Parse,
// FromParts, FromDurations) and only changed through SetAudioLeadin and
// SetKind, so every live value satisfies the layout invariants: 1-99
// strictly increasing audio sectors, a leadin of at least 150, and a
// leadout above everything else.
package cdtoc

import (
	"math"
	"slices"
	"strings"
)

// Kind describes the disc's session layout. It determines both the shape
// of the serialized CDTOC string and how the leadout is interpreted.
type Kind uint8

const (
	// KindAudio is an audio-only disc.
	KindAudio Kind = iota

	// KindCDExtra is a mixed-mode disc with the data session after the
	// audio session.
	KindCDExtra

	// KindDataFirst is a mixed-mode disc with the data session first.
	// Retail discs put data last; this layout shows up on homebrew CD-Rs.
	KindDataFirst
)

// HasData reports whether the layout includes a data session.
func (k Kind) HasData() bool { return k == KindCDExtra || k == KindDataFirst }

func (k Kind) String() string {
	switch k {
	case KindAudio:
		return "audio-only"
	case KindCDExtra:
		return "CD-Extra"
	case KindDataFirst:
		return "data+audio"
	default:
		return "unknown"
	}
}

// TOC is a validated table of contents.
type TOC struct {
	kind    Kind
	audio   []uint32
	data    uint32 // zero when kind == KindAudio
	leadout uint32
}

// Parse builds a TOC from a CDTOC metadata tag value such as
// "4+96+2D2B+6256+B327+D84A": the audio track count, that many audio
// start sectors, and one or two trailing groups for the leadout and the
// optional data sector. A trailing group prefixed with 'X' (or 'x') is
// the data session of a data-first disc; without the prefix the smaller
// of the two trailing values is taken as the data sector.
func Parse(src string) (*TOC, error) {
	audio, data, leadout, err := splitCDTOC(strings.TrimSpace(src))
	if err != nil {
		return nil, err
	}
	return FromParts(audio, data, leadout)
}

// splitCDTOC handles the grammar only; invariant checking is left to
// FromParts so both entry points agree.
func splitCDTOC(src string) (audio []uint32, data, leadout uint32, err error) {
	groups := strings.Split(src, "+")

	count, err := ParseHexByte([]byte(groups[0]))
	if err != nil {
		return nil, 0, 0, ErrTrackCount
	}

	// One group per declared track, then the leadout, then maybe a data
	// sector. Anything more or less is a count mismatch.
	rest := groups[1:]
	if len(rest) == 0 {
		return nil, 0, 0, ErrNoAudio
	}
	if len(rest) <= int(count) {
		// Every group present is an audio sector, except that when the
		// audio sequence is complete the last group was the leadout.
		found := len(rest)
		if found == int(count) {
			found--
		}
		return nil, 0, 0, &SectorCountError{Expected: count, Found: found}
	}
	if len(rest) > int(count)+2 {
		return nil, 0, 0, &SectorCountError{Expected: count, Found: len(rest) - 2}
	}

	audio = make([]uint32, count)
	for i := range audio {
		audio[i], err = ParseHexUint32([]byte(rest[i]))
		if err != nil {
			return nil, 0, 0, err
		}
	}

	last1, err := ParseHexUint32([]byte(rest[count]))
	if err != nil {
		return nil, 0, 0, err
	}

	if len(rest) == int(count)+1 {
		// A typical audio-only disc.
		return audio, 0, last1, nil
	}

	// Mixed mode. The final group may carry the data-first 'X' marker, in
	// which case it is the data sector no matter its magnitude.
	tail := rest[count+1]
	if len(tail) > 0 && (tail[0] == 'X' || tail[0] == 'x') {
		data, err = ParseHexUint32([]byte(tail[1:]))
		if err != nil {
			return nil, 0, 0, err
		}
		return audio, data, last1, nil
	}

	last2, err := ParseHexUint32([]byte(tail))
	if err != nil {
		return nil, 0, 0, err
	}
	if last1 < last2 {
		return audio, last1, last2, nil
	}
	return audio, last2, last1, nil
}

// FromParts builds a TOC from explicit sector values: the start of each
// audio track, the start of the data session (zero for none; real data
// sessions can't start below the 150-sector leadin), and the leadout.
//
// The data sector, when present, must fall either between the last audio
// sector and the leadout (CD-Extra) or before the first audio sector
// (data-first).
func FromParts(audio []uint32, data, leadout uint32) (*TOC, error) {
	if len(audio) == 0 {
		return nil, ErrNoAudio
	}
	if len(audio) > 99 {
		return nil, ErrTrackCount
	}
	if audio[0] < 150 {
		return nil, ErrLeadinSize
	}
	for i := 1; i < len(audio); i++ {
		if audio[i] <= audio[i-1] {
			return nil, ErrSectorOrder
		}
	}
	if leadout <= audio[len(audio)-1] {
		return nil, ErrSectorOrder
	}

	kind := KindAudio
	if data != 0 {
		switch {
		case data < audio[0]:
			kind = KindDataFirst
		case audio[len(audio)-1] < data && data < leadout:
			kind = KindCDExtra
		default:
			return nil, ErrSectorOrder
		}
	}

	return &TOC{
		kind:    kind,
		audio:   slices.Clone(audio),
		data:    data,
		leadout: leadout,
	}, nil
}

// FromDurations builds an audio-only TOC by accumulating sector offsets
// from consecutive track durations. This only lines up with the real disc
// if every track is present and in order. leadin zero means the standard
// 150-sector default; pass the true value if you know it.
func FromDurations(durations []Duration, leadin uint32) (*TOC, error) {
	if leadin == 0 {
		leadin = 150
	}

	last := uint64(leadin)
	audio := make([]uint32, 0, len(durations)+1)
	audio = append(audio, leadin)
	for _, d := range durations {
		next := last + d.Sectors()
		if next < last || next > math.MaxUint32 {
			return nil, ErrSectorSize
		}
		audio = append(audio, uint32(next))
		last = next
	}

	leadout := audio[len(audio)-1]
	return FromParts(audio[:len(audio)-1], 0, leadout)
}

// String renders the canonical CDTOC form: uppercase hex, no leading
// zeros, '+'-separated, with the data-first data sector marked by 'X'.
// Parse(t.String()) always reproduces t.
func (t *TOC) String() string {
	var b strings.Builder
	b.Grow(128)

	writeHexTrimmed(&b, uint32(len(t.audio)))
	for _, v := range t.audio {
		b.WriteByte('+')
		writeHexTrimmed(&b, v)
	}

	switch t.kind {
	case KindCDExtra:
		b.WriteByte('+')
		writeHexTrimmed(&b, t.data)
		b.WriteByte('+')
		writeHexTrimmed(&b, t.leadout)
	case KindDataFirst:
		b.WriteByte('+')
		writeHexTrimmed(&b, t.leadout)
		b.WriteString("+X")
		writeHexTrimmed(&b, t.data)
	default:
		b.WriteByte('+')
		writeHexTrimmed(&b, t.leadout)
	}

	return b.String()
}

func writeHexTrimmed(b *strings.Builder, v uint32) {
	var buf [8]byte
	PutHexUint32(buf[:], v, true)
	s := buf[:]
	for len(s) > 1 && s[0] == '0' {
		s = s[1:]
	}
	b.Write(s)
}

// Equal reports whether two TOCs describe the same disc layout.
func (t *TOC) Equal(o *TOC) bool {
	return t.kind == o.kind &&
		t.data == o.data &&
		t.leadout == o.leadout &&
		slices.Equal(t.audio, o.audio)
}

// SetAudioLeadin moves the audio session to a new leadin, nudging every
// audio sector, the data sector, and the leadout by the same amount.
// It cannot be used on data-first discs, where the data session anchors
// position zero. On error the TOC is left unchanged.
func (t *TOC) SetAudioLeadin(leadin uint32) error {
	if leadin < 150 {
		return ErrLeadinSize
	}
	if t.kind == KindDataFirst {
		return &FormatError{Kind: t.kind}
	}

	current := t.AudioLeadin()
	switch {
	case leadin < current:
		diff := current - leadin
		for i := range t.audio {
			t.audio[i] -= diff
		}
		if t.kind.HasData() {
			t.data -= diff
		}
		t.leadout -= diff
	case leadin > current:
		diff := leadin - current
		// The leadout is the global maximum, so checking it alone rules
		// out overflow everywhere before anything is touched.
		if t.leadout > math.MaxUint32-diff {
			return ErrSectorSize
		}
		for i := range t.audio {
			t.audio[i] += diff
		}
		if t.kind.HasData() {
			t.data += diff
		}
		t.leadout += diff
	}

	return nil
}

// SetKind reclassifies the disc layout, moving one sector value between
// the audio sequence and the data slot as needed. Converting to a mixed
// kind fails if it would leave no audio tracks; converting to the current
// kind is a no-op. On error the TOC is left unchanged.
func (t *TOC) SetKind(kind Kind) error {
	if kind > KindDataFirst {
		return &FormatError{Kind: kind}
	}

	switch {
	case t.kind == kind:
		return nil

	// The last "audio" track is really data.
	case t.kind == KindAudio && kind == KindCDExtra:
		if len(t.audio) == 1 {
			return ErrNoAudio
		}
		t.data = t.audio[len(t.audio)-1]
		t.audio = t.audio[:len(t.audio)-1]

	// The first "audio" track is really data.
	case t.kind == KindAudio && kind == KindDataFirst:
		if len(t.audio) == 1 {
			return ErrNoAudio
		}
		t.data = t.audio[0]
		t.audio = t.audio[1:]

	// The "data" track is really the last audio track.
	case t.kind == KindCDExtra && kind == KindAudio:
		t.audio = append(t.audio, t.data)
		t.data = 0

	// The "data" track is really the first audio track.
	case t.kind == KindDataFirst && kind == KindAudio:
		t.audio = append([]uint32{t.data}, t.audio...)
		t.data = 0

	// Data should come first, not last.
	case t.kind == KindCDExtra && kind == KindDataFirst:
		t.audio = append(t.audio, t.data)
		t.data = t.audio[0]
		t.audio = t.audio[1:]

	// Data should come last, not first.
	case t.kind == KindDataFirst && kind == KindCDExtra:
		t.audio = append([]uint32{t.data}, t.audio...)
		t.data = t.audio[len(t.audio)-1]
		t.audio = t.audio[:len(t.audio)-1]
	}

	t.kind = kind
	return nil
}

// AudioLeadin returns the first audio track's start sector, sometimes
// called the session offset.
func (t *TOC) AudioLeadin() uint32 { return t.audio[0] }

// AudioLeadinNormalized is AudioLeadin without the mandatory 150-sector
// disc leadin.
func (t *TOC) AudioLeadinNormalized() uint32 { return t.audio[0] - 150 }

// AudioLeadout returns the end of the audio session. For CD-Extra discs
// this is the start of the data session minus the standard 11,400-sector
// session gap; otherwise it is the disc leadout.
func (t *TOC) AudioLeadout() uint32 {
	if t.kind == KindCDExtra {
		if t.data < sessionGap {
			return 0
		}
		return t.data - sessionGap
	}
	return t.leadout
}

// sessionGap is the lead-out/lead-in overhead between the audio and data
// sessions of a CD-Extra disc.
const sessionGap = 11_400

// AudioLeadoutNormalized is AudioLeadout without the mandatory 150-sector
// disc leadin.
func (t *TOC) AudioLeadoutNormalized() uint32 { return t.AudioLeadout() - 150 }

// AudioLen returns the number of audio tracks.
func (t *TOC) AudioLen() int { return len(t.audio) }

// AudioSectors returns the start sector of every audio track. The slice
// is shared with the TOC; treat it as read-only.
func (t *TOC) AudioSectors() []uint32 { return t.audio }

// DataSector returns the start of the data session, if any.
func (t *TOC) DataSector() (uint32, bool) {
	if t.kind.HasData() {
		return t.data, true
	}
	return 0, false
}

// DataSectorNormalized is DataSector without the mandatory 150-sector
// disc leadin.
func (t *TOC) DataSectorNormalized() (uint32, bool) {
	if t.kind.HasData() {
		if t.data < 150 {
			return 0, true
		}
		return t.data - 150, true
	}
	return 0, false
}

// HasData reports whether the disc is mixed-mode.
func (t *TOC) HasData() bool { return t.kind.HasData() }

// Kind returns the disc's session layout.
func (t *TOC) Kind() Kind { return t.kind }

// Leadin returns the first sector of the first track, audio or data.
func (t *TOC) Leadin() uint32 {
	if t.kind == KindDataFirst {
		return t.data
	}
	return t.audio[0]
}

// LeadinNormalized is Leadin without the mandatory 150-sector disc
// leadin.
func (t *TOC) LeadinNormalized() uint32 {
	leadin := t.Leadin()
	if leadin < 150 {
		return 0
	}
	return leadin - 150
}

// Leadout returns the disc leadout, whichever session it ends.
func (t *TOC) Leadout() uint32 { return t.leadout }

// LeadoutNormalized is Leadout without the mandatory 150-sector disc
// leadin.
func (t *TOC) LeadoutNormalized() uint32 { return t.leadout - 150 }

// Duration returns the combined length of the audio session.
func (t *TOC) Duration() Duration {
	return Duration(t.AudioLeadout() - t.AudioLeadin())
}
