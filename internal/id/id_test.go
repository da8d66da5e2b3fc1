package id

import "testing"

func TestAlphanumeric(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		s := Alphanumeric(16)
		if len(s) != 16 {
			t.Fatalf("Alphanumeric(16) returned %d characters: %q", len(s), s)
		}
		for _, c := range s {
			switch {
			case c >= 'a' && c <= 'z':
			case c >= 'A' && c <= 'Z':
			case c >= '0' && c <= '9':
			default:
				t.Fatalf("Alphanumeric returned non-alphanumeric character %q in %q", c, s)
			}
		}
		if seen[s] {
			t.Fatalf("Alphanumeric produced duplicate id %q", s)
		}
		seen[s] = true
	}
}

func TestShort(t *testing.T) {
	a, b := Short(), Short()
	if len(a) != 16 || len(b) != 16 {
		t.Fatalf("Short() lengths: %d, %d, want 16", len(a), len(b))
	}
	if a == b {
		t.Fatalf("Short() produced duplicate id %q", a)
	}
}
