package accuraterip

import (
	"encoding/binary"
	"errors"
	"strings"
)

var (
	// ErrOffsetDecode means a drive-offset list could not be parsed.
	ErrOffsetDecode = errors.New("unable to parse drive offsets")

	// ErrNoOffsets means a well-formed drive-offset list held no usable
	// entries.
	ErrNoOffsets = errors.New("no drive offsets were found")
)

// Drive offsets stay well under two sectors (588 samples each) in either
// direction.
const maxOffset = 2940

// DriveOffset is one entry from AccurateRip's drive-offset list: the read
// offset, in samples, applied by a given vendor/model.
type DriveOffset struct {
	Vendor string // up to 8 ASCII bytes, may be empty
	Model  string // up to 16 ASCII bytes
	Offset int16
}

// ParseDriveOffsets extracts the entries from a raw drive-offset bin.
//
// Each record is 69 bytes: a little-endian signed sample offset, 32 bytes
// of "VENDOR - MODEL" text (just "- MODEL" when the vendor is unknown),
// and trailing bytes this parser ignores. Records with an empty model are
// skipped. An offset beyond ±2940, an overlong vendor or model, or any
// non-ASCII text is a hard error, as is a list that yields nothing.
func ParseDriveOffsets(bin []byte) ([]DriveOffset, error) {
	const recordSize = 69

	var out []DriveOffset
	for len(bin) >= recordSize {
		record := bin[:recordSize]
		bin = bin[recordSize:]

		offset := int16(binary.LittleEndian.Uint16(record[:2]))
		if offset < -maxOffset || maxOffset < offset {
			return nil, ErrOffsetDecode
		}

		vendor, model, err := splitVendorModel(record[2:34])
		if err != nil {
			return nil, err
		}
		if model == "" {
			continue
		}

		out = append(out, DriveOffset{Vendor: vendor, Model: model, Offset: offset})
	}

	if len(out) == 0 {
		return nil, ErrNoOffsets
	}
	return out, nil
}

// splitVendorModel pulls the vendor and model out of the fixed 32-byte
// name field. A leading "- " means the vendor is absent; otherwise the
// first " - " separates the two. Whitespace and control bytes are trimmed
// from the edges, but interior runs (some models pad with spaces) are
// kept.
func splitVendorModel(field []byte) (vendor, model string, err error) {
	for _, b := range field {
		if b > 0x7f {
			return "", "", ErrOffsetDecode
		}
	}

	name := trimRaw(string(field))
	switch {
	case strings.HasPrefix(name, "- "):
		model = trimRaw(name[2:])
	default:
		if i := strings.Index(name, " - "); i >= 0 {
			vendor = trimRaw(name[:i])
			model = trimRaw(name[i+3:])
		} else {
			model = name
		}
	}

	if len(vendor) > 8 || len(model) > 16 {
		return "", "", ErrOffsetDecode
	}
	return vendor, model, nil
}

// trimRaw drops whitespace and control bytes from both ends.
func trimRaw(s string) string {
	return strings.TrimFunc(s, func(r rune) bool { return r <= ' ' })
}
