package id

import (
	"strings"
	"testing"
)

func TestNewProducesLowercaseBase32(t *testing.T) {
	value, err := New()
	if err != nil {
		t.Fatalf("generate id: %v", err)
	}
	if len(value) != 26 {
		t.Fatalf("expected 26 characters, got %d (%q)", len(value), value)
	}
	if value != strings.ToLower(value) {
		t.Fatalf("expected lowercase identifier, got %q", value)
	}
	if strings.Contains(value, "=") {
		t.Fatalf("expected no padding, got %q", value)
	}
}

func TestNewProducesUniqueValues(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		value, err := New()
		if err != nil {
			t.Fatalf("generate id: %v", err)
		}
		if seen[value] {
			t.Fatalf("duplicate identifier %q", value)
		}
		seen[value] = true
	}
}
