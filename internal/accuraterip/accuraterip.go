// Package accuraterip derives AccurateRip disc IDs and parses the
// service's binary checksum and drive-offset manifests.
package accuraterip

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/binaryphile/cdtoc/internal/cddb"
	"github.com/binaryphile/cdtoc/internal/cdtoc"
)

var (
	// ErrDecode means the input was not a valid AccurateRip ID string.
	ErrDecode = errors.New("invalid AccurateRip ID string")

	// ErrChecksums means a checksum bin could not be parsed.
	ErrChecksums = errors.New("unable to parse checksums")

	// ErrNoChecksums means a well-formed checksum bin held no usable
	// checksums.
	ErrNoChecksums = errors.New("no checksums were present")
)

// ID is an AccurateRip disc ID in the layout of the service's checksum
// bins: the audio track count, two little-endian offset checksums, and a
// little-endian copy of the CDDB ID.
type ID [13]byte

// CalculateID computes the AccurateRip ID for a disc.
//
// Both checksums run over the audio sectors with the 150-sector leadin
// removed: b is their plain sum and c the sum weighted by 1-based track
// index (with zero offsets counting as one), the leadout folded in as one
// more track. The sums wrap at 32 bits by protocol.
func CalculateID(toc *cdtoc.TOC) ID {
	var b, c uint32

	idx := uint32(1)
	for _, v := range toc.AudioSectors() {
		off := normalize(v)
		b += off
		c += max(off, 1) * idx
		idx++
	}

	leadout := normalize(toc.Leadout())
	b += leadout
	c += max(leadout, 1) * idx

	var id ID
	id[0] = uint8(toc.AudioLen())
	binary.LittleEndian.PutUint32(id[1:5], b)
	binary.LittleEndian.PutUint32(id[5:9], c)
	binary.LittleEndian.PutUint32(id[9:13], uint32(cddb.CalculateID(toc)))
	return id
}

// normalize strips the mandatory disc leadin, flooring at zero.
func normalize(sector uint32) uint32 {
	if sector < 150 {
		return 0
	}
	return sector - 150
}

// AudioLen returns the audio track count baked into the ID.
func (id ID) AudioLen() uint8 { return id[0] }

// CDDB returns the CDDB ID baked into the AccurateRip ID, sparing a
// second derivation when both are needed.
func (id ID) CDDB() cddb.ID {
	return cddb.ID(binary.LittleEndian.Uint32(id[9:13]))
}

// String renders the canonical display form: the zero-padded decimal
// track count and the three checksums as lowercase hex, dash-separated.
func (id ID) String() string {
	return fmt.Sprintf(
		"%03d-%08x-%08x-%08x",
		id[0],
		binary.LittleEndian.Uint32(id[1:5]),
		binary.LittleEndian.Uint32(id[5:9]),
		binary.LittleEndian.Uint32(id[9:13]),
	)
}

// Decode converts an AccurateRip ID string back into an ID. The field
// widths and dash positions are strict.
func Decode(src string) (ID, error) {
	if len(src) != 30 || src[3] != '-' || src[12] != '-' || src[21] != '-' {
		return ID{}, ErrDecode
	}

	var count uint32
	for _, b := range []byte(src[:3]) {
		if b < '0' || '9' < b {
			return ID{}, ErrDecode
		}
		count = count*10 + uint32(b-'0')
	}
	if count > 0xff {
		return ID{}, ErrDecode
	}

	var id ID
	id[0] = uint8(count)
	for i, span := range []string{src[4:12], src[13:21], src[22:30]} {
		v, err := cdtoc.ParseHexUint32([]byte(span))
		if err != nil {
			return ID{}, ErrDecode
		}
		binary.LittleEndian.PutUint32(id[1+4*i:5+4*i], v)
	}
	return id, nil
}

// ChecksumURL returns the address of the disc's v1/v2 checksum bin,
// sharded by the last three hex digits of the CDDB portion. The server
// answers 404 for discs it has never seen.
func (id ID) ChecksumURL() string {
	s := id.String()
	return "http://www.accuraterip.com/accuraterip/" +
		s[11:12] + "/" + s[10:11] + "/" + s[9:10] +
		"/dBAR-" + s + ".bin"
}

// ParseChecksums extracts the per-track checksums from a raw checksum
// bin. The file is a run of records, each this disc's 13-byte ID followed
// by one confidence byte and one little-endian checksum per track; a zero
// checksum means "no data" and is skipped.
//
// The result is indexed by track (n-1) and maps each checksum to its
// combined confidence. AccurateRip doesn't say which checksums are v1 and
// which are v2; the only way to know is to match one you computed
// yourself.
func (id ID) ParseChecksums(bin []byte) ([]map[uint32]uint8, error) {
	audioLen := int(id.AudioLen())
	recordSize := len(id) + 9*audioLen

	out := make([]map[uint32]uint8, audioLen)
	for i := range out {
		out[i] = make(map[uint32]uint8)
	}

	for len(bin) >= recordSize {
		record := bin[:recordSize]
		bin = bin[recordSize:]

		if !bytes.Equal(record[:len(id)], id[:]) {
			return nil, ErrChecksums
		}

		record = record[len(id):]
		for k := 0; k < audioLen; k++ {
			confidence := record[9*k]
			crc := binary.LittleEndian.Uint32(record[9*k+1 : 9*k+5])
			if crc == 0 {
				continue
			}
			out[k][crc] = saturatingAdd8(out[k][crc], confidence)
		}
	}

	for _, m := range out {
		if len(m) != 0 {
			return out, nil
		}
	}
	return nil, ErrNoChecksums
}

func saturatingAdd8(a, b uint8) uint8 {
	if a > 0xff-b {
		return 0xff
	}
	return a + b
}
