package lib

import "testing"

func TestNewSlugShape(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		s := NewSlug()
		if !ValidSlug(s) {
			t.Fatalf("generated slug %q does not match the slug alphabet", s)
		}
		if seen[s] {
			t.Fatalf("duplicate slug generated: %q", s)
		}
		seen[s] = true
	}
}

func TestValidSlug(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"generated", NewSlug(), true},
		{"empty", "", false},
		{"too short", "abc", false},
		{"too long", "aBcDeFgHjKmNpQrStUvWxyZ", false},
		{"contains zero", "0BcDeFgHjKmNpQrStUvWxy", false},
		{"contains capital O", "OBcDeFgHjKmNpQrStUvWxy", false},
		{"contains lowercase l", "lBcDeFgHjKmNpQrStUvWxy", false},
		{"path traversal", "../../../../etc/passwd22", false},
		{"valid alphabet", "2BcDeFgHjKmNpQrStUvWxy", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidSlug(tt.in); got != tt.want {
				t.Errorf("ValidSlug(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
