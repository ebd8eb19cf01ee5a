// ABOUTME: Tests for ID generation.
// ABOUTME: IDs are opaque; only uniqueness and non-emptiness matter.

package ident

import "testing"

func TestNewID(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		id := NewID()
		if id == "" {
			t.Fatal("empty id")
		}
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = struct{}{}
	}
}
