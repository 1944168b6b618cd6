package keyedhash

import (
	"crypto/hmac"
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCount(t *testing.T) {
	s := New(hmac.New(sha256.New, []byte("key")))
	require.Equal(t, uint64(0), s.Count())
	s.Write([]byte("abc"))
	s.Write(nil)
	s.Write([]byte("de"))
	require.Equal(t, uint64(5), s.Count())
}

func TestSumZeros(t *testing.T) {
	s := New(hmac.New(sha256.New, []byte("key")))
	s.Write([]byte("abc"))
	s.Sum(make([]byte, sha256.Size), sha256.Size)
	require.Equal(t, State{}, s)
	require.Panics(t, func() {
		s.Sum(make([]byte, sha256.Size), sha256.Size)
	})
	require.Panics(t, func() {
		s.Write([]byte("more"))
	})
}

func TestShortDst(t *testing.T) {
	s := New(hmac.New(sha256.New, []byte("key")))
	require.Panics(t, func() {
		s.Sum(make([]byte, sha256.Size-1), sha256.Size)
	})
}
