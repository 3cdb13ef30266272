// Package musicbrainz derives MusicBrainz disc IDs and looks up the
// releases they match.
package musicbrainz

import (
	"github.com/binaryphile/cdtoc/internal/cdtoc"
	"github.com/binaryphile/cdtoc/internal/shab64"
)

// CalculateID computes the MusicBrainz disc ID for a disc.
//
// The SHA1 runs over uppercase hex text: the format-version tag "01", the
// audio track count as 2 characters, the audio leadout as 8, then every
// audio start sector as 8 (absolute, unlike CTDB's leadin-relative
// values), and "00000000" filler out to the full 99-track layout.
func CalculateID(toc *cdtoc.TOC) shab64.ID {
	sectors := toc.AudioSectors()

	payload := make([]byte, 0, 4+100*8)
	buf := make([]byte, 8)

	payload = append(payload, "01"...)
	payload = append(payload,
		hexUpperDigit(uint8(len(sectors))>>4),
		hexUpperDigit(uint8(len(sectors))&0xf),
	)

	cdtoc.PutHexUint32(buf, toc.AudioLeadout(), true)
	payload = append(payload, buf...)

	for _, v := range sectors {
		cdtoc.PutHexUint32(buf, v, true)
		payload = append(payload, buf...)
	}
	for i := len(sectors); i < 99; i++ {
		payload = append(payload, "00000000"...)
	}

	return shab64.Sum(payload)
}

func hexUpperDigit(n uint8) byte {
	if n < 10 {
		return '0' + n
	}
	return 'A' + n - 10
}
