package dialplan

import "strings"

// DigitString is a non-empty run of ASCII digits extracted from raw dial input.
type DigitString string

// SanitizeDigits strips every non-digit character from raw input.
// Returns false when nothing is left. Length bounds are not enforced here;
// that is Normalize's job.
func SanitizeDigits(raw string) (DigitString, bool) {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "", false
	}
	return DigitString(b.String()), true
}
