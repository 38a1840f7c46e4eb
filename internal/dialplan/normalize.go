package dialplan

// NationalNumber is the canonical lookup key for a destination: either a
// 3-digit short code or an 11-digit number starting with 7.
type NationalNumber string

// CityPrefix is the local area code prepended to 6-digit city numbers.
const CityPrefix = "73843"

const shortCodeLen = 3

// Normalize converts sanitized digits into the canonical form, dispatching
// purely on length:
//
//	3 digits          -> unchanged (short internal code)
//	6 digits          -> CityPrefix + digits
//	10 digits         -> "7" + digits
//	11 digits, lead 7 -> unchanged
//	11 digits, lead 8 -> "7" + remaining 10 digits
//
// Every other length or 11-digit leading digit is rejected.
func Normalize(d DigitString) (NationalNumber, bool) {
	switch len(d) {
	case shortCodeLen:
		return NationalNumber(d), true
	case 6:
		return NationalNumber(CityPrefix + string(d)), true
	case 10:
		return NationalNumber("7" + string(d)), true
	case 11:
		switch d[0] {
		case '7':
			return NationalNumber(d), true
		case '8':
			// Domestic long-distance convention: 8xxxxxxxxxx dials 7xxxxxxxxxx.
			return NationalNumber("7" + string(d[1:])), true
		}
	}
	return "", false
}
