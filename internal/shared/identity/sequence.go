// Package identity produces identifiers for stored resources.
package identity

import "sync/atomic"

// Sequence hands out monotonically increasing surrogate keys. Values are never
// reused, even after the record they identified is removed.
type Sequence struct {
	last atomic.Int64
}

// NewSequence starts a sequence whose first value is start+1.
func NewSequence(start int64) *Sequence {
	s := &Sequence{}
	s.last.Store(start)
	return s
}

// Next returns the next key. Safe for concurrent use.
func (s *Sequence) Next() int64 {
	return s.last.Add(1)
}

// Last reports the most recently issued key, or the start value if none was issued.
func (s *Sequence) Last() int64 {
	return s.last.Load()
}
