package vlist

// KeyStore holds per-item state across frames, keyed by stable item
// key. Keying by item key rather than window index is what preserves
// row state (selection, hover, expansion) as the window slides and
// when the snapshot is filtered: the same item keeps the same state
// no matter where in the window it lands.
//
// Entries not touched for a full frame are swept, so state for items
// that scrolled far away or disappeared in a Replace does not
// accumulate. The store follows the viewport's single-writer
// discipline; it is not safe for concurrent use.
type KeyStore[T any] struct {
	entries map[string]*keyEntry[T]
	frame   uint64
}

type keyEntry[T any] struct {
	value     T
	lastFrame uint64
}

// NewKeyStore creates an empty per-item state store.
func NewKeyStore[T any]() *KeyStore[T] {
	return &KeyStore[T]{entries: make(map[string]*keyEntry[T])}
}

// Get returns a pointer to the state for key, creating it from def if
// absent. The entry is marked live for the current frame.
func (s *KeyStore[T]) Get(key string, def T) *T {
	if e, ok := s.entries[key]; ok {
		e.lastFrame = s.frame
		return &e.value
	}
	e := &keyEntry[T]{value: def, lastFrame: s.frame}
	s.entries[key] = e
	return &e.value
}

// GetIfExists returns the state for key without creating or touching
// it, or nil when absent.
func (s *KeyStore[T]) GetIfExists(key string) *T {
	if e, ok := s.entries[key]; ok {
		return &e.value
	}
	return nil
}

// Set stores state for key and marks it live.
func (s *KeyStore[T]) Set(key string, value T) {
	if e, ok := s.entries[key]; ok {
		e.value = value
		e.lastFrame = s.frame
		return
	}
	s.entries[key] = &keyEntry[T]{value: value, lastFrame: s.frame}
}

// Delete removes the state for key.
func (s *KeyStore[T]) Delete(key string) {
	delete(s.entries, key)
}

// Len returns the number of live entries.
func (s *KeyStore[T]) Len() int {
	return len(s.entries)
}

// NextFrame advances the frame counter and evicts entries that were
// not accessed during the previous frame. Call once per rendered
// frame, after drawing.
func (s *KeyStore[T]) NextFrame() {
	s.frame++
	for key, e := range s.entries {
		if e.lastFrame+1 < s.frame {
			delete(s.entries, key)
		}
	}
}

// Clear removes all entries immediately.
func (s *KeyStore[T]) Clear() {
	s.entries = make(map[string]*keyEntry[T])
}
