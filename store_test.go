package vlist_test

import (
	"testing"

	"github.com/go-virtual/vlist"
)

type rowMark struct {
	Count int
}

func TestKeyStoreGetCreatesWithDefault(t *testing.T) {
	s := vlist.NewKeyStore[rowMark]()

	m := s.Get("row-1", rowMark{Count: 7})
	if m.Count != 7 {
		t.Errorf("default Count = %d, want 7", m.Count)
	}

	// Mutation through the pointer sticks
	m.Count = 42
	if got := s.Get("row-1", rowMark{}); got.Count != 42 {
		t.Errorf("Count after mutation = %d, want 42", got.Count)
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
}

func TestKeyStoreGetIfExists(t *testing.T) {
	s := vlist.NewKeyStore[rowMark]()

	if got := s.GetIfExists("missing"); got != nil {
		t.Errorf("GetIfExists on empty store = %v, want nil", got)
	}

	s.Set("row-1", rowMark{Count: 3})
	got := s.GetIfExists("row-1")
	if got == nil || got.Count != 3 {
		t.Errorf("GetIfExists = %v, want Count 3", got)
	}
}

// Entries untouched for a full frame are swept; entries touched every
// frame survive indefinitely.
func TestKeyStoreFrameSweep(t *testing.T) {
	s := vlist.NewKeyStore[rowMark]()

	s.Get("hot", rowMark{})
	s.Get("cold", rowMark{})
	s.NextFrame()

	// Frame 1: only "hot" is touched
	s.Get("hot", rowMark{})
	s.NextFrame()

	// Frame 2: "cold" was last seen two frames ago and is gone
	s.Get("hot", rowMark{})
	s.NextFrame()

	if s.GetIfExists("cold") != nil {
		t.Error("entry untouched for a full frame should be swept")
	}
	if s.GetIfExists("hot") == nil {
		t.Error("entry touched every frame should survive")
	}
}

// State keyed by item key follows the item, not the window position:
// re-creating the entry for the same key after a slide finds the same
// value as long as it stayed live.
func TestKeyStoreStateFollowsKey(t *testing.T) {
	s := vlist.NewKeyStore[rowMark]()

	s.Get("row-0042", rowMark{}).Count = 9
	s.NextFrame()

	if got := s.Get("row-0042", rowMark{}); got.Count != 9 {
		t.Errorf("Count after one frame = %d, want 9", got.Count)
	}
}

func TestKeyStoreDeleteAndClear(t *testing.T) {
	s := vlist.NewKeyStore[rowMark]()
	s.Set("a", rowMark{})
	s.Set("b", rowMark{})

	s.Delete("a")
	if s.GetIfExists("a") != nil {
		t.Error("deleted entry still present")
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}

	s.Clear()
	if s.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", s.Len())
	}
}
