// package keyedhash implements the streaming core shared by schemes built
// on a keyed hash.Hash.
package keyedhash

import (
	"fmt"
	"hash"

	"github.com/brendoncarroll/go-auth"
)

// State accumulates a message into a keyed hash.
// The zero State is unkeyed; use New.
type State struct {
	h     hash.Hash
	count uint64
}

// New returns a State which accumulates into h.
// h must already be keyed.
func New(h hash.Hash) State {
	return State{h: h}
}

// Write absorbs the next chunk of the message.
func (s *State) Write(chunk []byte) {
	if s.h == nil {
		panic("keyedhash: Write on zeroed State")
	}
	// hash.Hash.Write never returns an error
	s.h.Write(chunk)
	s.count += uint64(len(chunk))
}

// Sum writes the first n bytes of the digest to dst and zeros s.
// The intermediate digest is cleared before Sum returns, so key-derived
// bytes beyond the tag do not outlive the call.
func (s *State) Sum(dst []byte, n int) {
	if s.h == nil {
		panic("keyedhash: Sum on zeroed State")
	}
	if len(dst) < n {
		panic(fmt.Sprintf("len(dst) < %d", n))
	}
	sum := s.h.Sum(nil)
	copy(dst, sum[:n])
	auth.ZeroBytes(sum)
	s.Zero()
}

// Zero resets the inner hash and clears s to its zero value.
func (s *State) Zero() {
	if s.h != nil {
		s.h.Reset()
		s.h = nil
	}
	s.count = 0
}

// Count returns the number of message bytes absorbed so far.
func (s *State) Count() uint64 {
	return s.count
}
