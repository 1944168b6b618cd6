// package auth provides keyed message authentication (MAC) schemes.
package auth

import (
	"fmt"
	"io"
)

// Scheme is a keyed message authentication scheme.
// A Scheme computes a fixed size authenticator tag from a secret key and a
// message of any length, either in one shot with Sum, or incrementally
// through a State.
type Scheme[State any] interface {
	// Init returns a new State keyed with key.
	// Keys of any length are accepted unless the scheme documents otherwise.
	// Init does not retain key; the caller is responsible for zeroing the
	// key buffer after use.
	Init(key []byte) State
	// Update absorbs the next chunk of the message into s.
	// Chunk boundaries do not affect the tag.
	Update(s *State, chunk []byte)
	// Finalize writes the tag for everything absorbed into s to dst,
	// and zeros s before returning.
	// dst must be at least TagSize.
	Finalize(s *State, dst []byte)
	// Zero clears all secret material from s.
	Zero(s *State)

	// KeySize returns the size of a generated key
	KeySize() int
	// TagSize returns the size of an authenticator tag
	TagSize() int
}

// Sum computes the tag for msg under key using sch, and writes it to dst.
// Sum panics if dst is not at least sch.TagSize().
func Sum[S any](sch Scheme[S], dst []byte, key, msg []byte) {
	if len(dst) < sch.TagSize() {
		panic(fmt.Sprintf("len(dst) < %d", sch.TagSize()))
	}
	s := sch.Init(key)
	sch.Update(&s, msg)
	sch.Finalize(&s, dst)
}

// Verify reports whether tag is a correct authenticator for msg under key.
// Verify recomputes the tag and compares with Equal; an incorrect tag is a
// normal false result, never an error. The full recomputation happens even
// when len(tag) is wrong, so the cost of Verify does not depend on the tag
// presented.
func Verify[S any](sch Scheme[S], tag []byte, key, msg []byte) bool {
	actual := make([]byte, sch.TagSize())
	s := sch.Init(key)
	sch.Update(&s, msg)
	sch.Finalize(&s, actual)
	return Equal(tag, actual)
}

// GenerateKey generates a key for sch using entropy from rng.
// Key generation is infallible: if rng fails, GenerateKey panics rather
// than return predictable key material.
func GenerateKey[S any](sch Scheme[S], rng io.Reader) []byte {
	key := make([]byte, sch.KeySize())
	if _, err := io.ReadFull(rng, key); err != nil {
		log.Errorf("entropy source failed: %v", err)
		panic(err)
	}
	return key
}
