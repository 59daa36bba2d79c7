package utils

import (
	"strconv"
	"unicode/utf16"
)

// Checksum derives the credential checksum stored for the administrator
// password and security answer.
//
// The function is a deterministic, non-cryptographic rolling hash over the
// UTF-16 code units of secret+salt: a 32-bit signed accumulator updated as
// h = h<<5 - h + unit with natural overflow wrap, then the absolute value
// encoded in base 36. Equal secrets always checksum identically, which is
// the compatibility contract checksums persisted by earlier installations
// depend on. It is NOT a password hash in the cryptographic sense; see the
// note in DESIGN.md before reusing it anywhere else.
func Checksum(secret, salt string) string {
	var h int32
	for _, unit := range utf16.Encode([]rune(secret + salt)) {
		h = h<<5 - h + int32(unit)
	}

	// abs in 64-bit space so the minimum int32 value keeps its magnitude
	v := int64(h)
	if v < 0 {
		v = -v
	}

	return strconv.FormatInt(v, 36)
}
