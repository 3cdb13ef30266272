// Package shab64 renders 20-byte SHA1 digests the way MusicBrainz and the
// CUETools database do: base64 with the standard alphabet's 62nd and 63rd
// characters swapped for '.' and '_', and the single trailing padding
// character forced to '-'. Every ID is exactly 28 characters.
package shab64

import (
	"crypto/sha1"
	"encoding/base64"
	"errors"
)

// ErrDecode means the input was not a valid 28-character ID.
var ErrDecode = errors.New("invalid sha/base64 ID string")

// encoding is the modified alphabet. A 20-byte digest encodes to 27
// characters plus one '-' pad; the unused low bits of the final group are
// zeroed on encode and ignored on decode.
var encoding = base64.NewEncoding(
	"ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789._",
).WithPadding('-')

// ID is a SHA1 digest with the modified-base64 display form shared by the
// CTDB and MusicBrainz disc IDs.
type ID [20]byte

// Sum hashes data and returns the resulting ID.
func Sum(data []byte) ID { return ID(sha1.Sum(data)) }

// Decode converts a 28-character ID string back into an ID.
func Decode(src string) (ID, error) {
	if len(src) != 28 || src[27] != '-' {
		return ID{}, ErrDecode
	}
	out, err := encoding.DecodeString(src)
	if err != nil || len(out) != 20 {
		return ID{}, ErrDecode
	}
	return ID(out), nil
}

// String renders the 28-character form.
func (id ID) String() string { return encoding.EncodeToString(id[:]) }
