package dialplan

import (
	"strings"
	"testing"
)

func TestNormalize_LengthDispatch(t *testing.T) {
	cases := []struct {
		in   DigitString
		want NationalNumber
		ok   bool
	}{
		{"104", "104", true},                          // short code passes through
		{"602313", "73843602313", true},               // city number gets the area prefix
		{"4951234567", "74951234567", true},           // 10 digits get the trunk digit
		{"79235254061", "79235254061", true},          // full number with 7 unchanged
		{"89235254706", "79235254706", true},          // leading 8 becomes 7
		{"99235254706", "", false},                    // 11 digits, bad leading digit
		{"1", "", false},
		{"12", "", false},
		{"1234", "", false},
		{"12345", "", false},
		{"1234567", "", false},
		{"12345678", "", false},
		{"123456789", "", false},
		{"123456789012", "", false},
	}
	for _, c := range cases {
		got, ok := Normalize(c.in)
		if ok != c.ok {
			t.Fatalf("Normalize(%q): ok = %v, want %v", c.in, ok, c.ok)
		}
		if got != c.want {
			t.Fatalf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalize_Leading8KeepsTail(t *testing.T) {
	for _, tail := range []string{"9235254706", "0000000000", "9999999999", "1234567890"} {
		got, ok := Normalize(DigitString("8" + tail))
		if !ok {
			t.Fatalf("Normalize(8%s): unexpected reject", tail)
		}
		if string(got) != "7"+tail {
			t.Fatalf("Normalize(8%s) = %q, want 7%s", tail, got, tail)
		}
		if !strings.HasSuffix(string(got), tail) {
			t.Fatalf("tail changed: %q", got)
		}
	}
}

func TestNormalize_NeverConfusesShortAndCity(t *testing.T) {
	// 3-digit codes must not pick up the city prefix.
	got, ok := Normalize("999")
	if !ok || got != "999" {
		t.Fatalf("Normalize(999) = %q, %v; want pass-through", got, ok)
	}
}
