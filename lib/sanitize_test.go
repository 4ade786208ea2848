package lib

import "testing"

func TestNormalizeDescription(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain text untouched", "Hand-carved oak bowl", "Hand-carved oak bowl"},
		{"literal newline escape", `line one\nline two`, "line one\nline two"},
		{"literal tab escape", `a\tb`, "a\tb"},
		{"unicode escape", `caf\u00e9`, "café"},
		{"crlf normalized", "one\r\ntwo", "one\ntwo"},
		{"bare cr normalized", "one\rtwo", "one\ntwo"},
		{"mixed escapes and real newlines", "first\nsecond\\nthird", "first\nsecond\nthird"},
		{"quotes survive", `a "quoted" word`, `a "quoted" word`},
		{"invalid escape falls back to raw", `broken \q escape`, `broken \q escape`},
		{"windows path falls back", `C:\Users\anna`, `C:\Users\anna`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeDescription(tt.in); got != tt.want {
				t.Errorf("NormalizeDescription(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// Canonical text must be a fixed point: the description is normalized at the
// request boundary and again before persisting.
func TestNormalizeDescriptionIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"plain",
		`line one\nline two`,
		"already\nmultiline",
		"tabs\there",
		`caf\u00e9 with "quotes"`,
		"one\r\ntwo\rthree",
	}

	for _, in := range inputs {
		once := NormalizeDescription(in)
		twice := NormalizeDescription(once)
		if once != twice {
			t.Errorf("not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}
