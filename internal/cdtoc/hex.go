package cdtoc

// Hex helpers shared by the CDTOC grammar and the identifier codecs. The
// external formats are fussier than encoding/hex covers: parsing accepts
// 1-8 digits without a prefix, and the hash payloads want fixed-width
// uppercase output.

const hexUpper = "0123456789ABCDEF"
const hexLower = "0123456789abcdef"

// hexNibble decodes a single hex digit, case-insensitively. The second
// return is false for anything that isn't a hex digit.
func hexNibble(b byte) (uint8, bool) {
	switch {
	case '0' <= b && b <= '9':
		return b - '0', true
	case 'a' <= b && b <= 'f':
		return b - 'a' + 10, true
	case 'A' <= b && b <= 'F':
		return b - 'A' + 10, true
	default:
		return 0, false
	}
}

// ParseHexByte decodes 1-2 hex digits into a byte, most significant digit
// first, case-insensitively, no prefix.
func ParseHexByte(src []byte) (byte, error) {
	if len(src) > 2 {
		return 0, ErrSectorSize
	}
	v, err := ParseHexUint32(src)
	if err != nil {
		return 0, err
	}
	return byte(v), nil
}

// ParseHexUint32 decodes 1-8 hex digits into a uint32, most significant
// digit first, case-insensitively, no prefix. Empty or overlong input is
// a size error; a non-hex byte is a character error.
func ParseHexUint32(src []byte) (uint32, error) {
	if len(src) == 0 || len(src) > 8 {
		return 0, ErrSectorSize
	}
	var v uint32
	for _, b := range src {
		n, ok := hexNibble(b)
		if !ok {
			return 0, ErrChars
		}
		v = v<<4 | uint32(n)
	}
	return v, nil
}

// PutHexUint32 writes v into dst as exactly 8 hex digits, big-endian
// digit order. dst must be at least 8 bytes.
func PutHexUint32(dst []byte, v uint32, upper bool) {
	table := hexLower
	if upper {
		table = hexUpper
	}
	for i := 7; i >= 0; i-- {
		dst[i] = table[v&0xf]
		v >>= 4
	}
}
