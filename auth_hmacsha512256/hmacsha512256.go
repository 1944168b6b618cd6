// package auth_hmacsha512256 implements message authentication with
// HMAC-SHA-512-256: HMAC-SHA-512 with the tag truncated to 32 bytes.
// It is interoperable with NaCl's crypto_auth.
package auth_hmacsha512256

import (
	"crypto/hmac"
	"crypto/sha512"
	"io"

	"github.com/pkg/errors"

	"github.com/brendoncarroll/go-auth"
	"github.com/brendoncarroll/go-auth/internal/keyedhash"
)

const (
	// KeySize is the size of an authentication key.
	KeySize = 32
	// TagSize is the size of an authenticator tag.
	TagSize = 32
)

// Tag is an authenticator tag. Tags are not secret.
type Tag = [TagSize]byte

// Key is an authentication key.
// Call Zero when the key is no longer needed.
type Key [KeySize]byte

// Zero overwrites k with zeros.
func (k *Key) Zero() {
	auth.ZeroBytes(k[:])
}

var _ auth.Scheme[State] = HMACSHA512256{}

type HMACSHA512256 struct{}

func New() HMACSHA512256 {
	return HMACSHA512256{}
}

func (HMACSHA512256) Init(key []byte) State {
	return NewState(key)
}

func (HMACSHA512256) Update(s *State, chunk []byte) {
	s.Update(chunk)
}

func (HMACSHA512256) Finalize(s *State, dst []byte) {
	s.inner.Sum(dst, TagSize)
}

func (HMACSHA512256) Zero(s *State) {
	s.inner.Zero()
}

func (HMACSHA512256) KeySize() int {
	return KeySize
}

func (HMACSHA512256) TagSize() int {
	return TagSize
}

// GenerateKey generates a key using entropy from rng.
func GenerateKey(rng io.Reader) (ret Key) {
	k := auth.GenerateKey[State](New(), rng)
	defer auth.ZeroBytes(k)
	copy(ret[:], k)
	return ret
}

// Authenticate computes an authenticator tag for msg under key.
func Authenticate(msg []byte, key *Key) (ret Tag) {
	auth.Sum[State](New(), ret[:], key[:], msg)
	return ret
}

// Verify reports whether tag is a correct authenticator for msg under key.
// The comparison is constant-time.
func Verify(tag *Tag, msg []byte, key *Key) bool {
	return auth.Verify[State](New(), tag[:], key[:], msg)
}

// ParseKey parses a Key from external bytes.
func ParseKey(x []byte) (Key, error) {
	if len(x) != KeySize {
		return Key{}, errors.Errorf("incorrect size for key len=%d", len(x))
	}
	return *(*Key)(x), nil
}

// ParseTag parses a Tag from external bytes.
func ParseTag(x []byte) (Tag, error) {
	if len(x) != TagSize {
		return Tag{}, errors.Errorf("incorrect size for tag len=%d", len(x))
	}
	return *(*Tag)(x), nil
}

// State is an in-progress streaming authenticator computation.
//
// NOTE: the streaming interface accepts keys of any length; the caller is
// responsible for zeroing the key buffer passed to NewState after use.
type State struct {
	inner keyedhash.State
}

// NewState returns a State keyed with key.
func NewState(key []byte) State {
	return State{inner: keyedhash.New(hmac.New(sha512.New, key))}
}

// Update absorbs the next chunk of the message.
func (s *State) Update(chunk []byte) {
	s.inner.Write(chunk)
}

// Finalize returns the tag for the message absorbed so far, and zeros the
// internal state before returning. Finalize panics if called twice.
func (s *State) Finalize() (ret Tag) {
	s.inner.Sum(ret[:], TagSize)
	return ret
}

// Count returns the number of message bytes absorbed so far.
func (s *State) Count() uint64 {
	return s.inner.Count()
}
