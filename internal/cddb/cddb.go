// Package cddb derives the classic CDDB/freedb disc ID: a 32-bit value
// packing a digit-sum checksum, the disc length in seconds, and the track
// count.
package cddb

import (
	"errors"
	"strconv"

	"github.com/binaryphile/cdtoc/internal/cdtoc"
)

// ErrDecode means the input was not a valid 8-digit CDDB ID string.
var ErrDecode = errors.New("invalid CDDB ID string")

// ID is a packed CDDB disc ID: checksum byte, two big-endian seconds
// bytes, track-count byte.
type ID uint32

// CalculateID computes the CDDB ID for a disc.
//
// The checksum byte sums the decimal digits of each track's start time
// in seconds, audio tracks and the data track alike, modulo 255.
func CalculateID(toc *cdtoc.TOC) ID {
	count := toc.AudioLen()

	var a uint32
	for _, v := range toc.AudioSectors() {
		a += digitSum(v / cdtoc.SectorsPerSecond)
	}
	if data, ok := toc.DataSector(); ok {
		count++
		a += digitSum(data / cdtoc.SectorsPerSecond)
	}

	checksum := a % 255
	seconds := uint16(toc.Leadout()/cdtoc.SectorsPerSecond - toc.Leadin()/cdtoc.SectorsPerSecond)

	return ID(checksum<<24 | uint32(seconds)<<8 | uint32(uint8(count)))
}

// digitSum adds the decimal digits of v.
func digitSum(v uint32) uint32 {
	var sum uint32
	for _, b := range strconv.AppendUint(nil, uint64(v), 10) {
		sum += uint32(b - '0')
	}
	return sum
}

// Decode converts an 8-digit CDDB ID string back into an ID. Anything
// shorter, longer, or non-hex is rejected.
func Decode(src string) (ID, error) {
	if len(src) != 8 {
		return 0, ErrDecode
	}
	v, err := cdtoc.ParseHexUint32([]byte(src))
	if err != nil {
		return 0, ErrDecode
	}
	return ID(v), nil
}

// String renders the ID as 8 lowercase hex digits.
func (id ID) String() string {
	var buf [8]byte
	cdtoc.PutHexUint32(buf[:], uint32(id), false)
	return string(buf[:])
}
