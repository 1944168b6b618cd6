package auth_test

import (
	"bytes"
	"io"
	mrand "math/rand"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/brendoncarroll/go-auth"
	"github.com/brendoncarroll/go-auth/auth_hmacsha256"
)

func TestEqual(t *testing.T) {
	require.True(t, auth.Equal([]byte{1, 2, 3}, []byte{1, 2, 3}))
	require.False(t, auth.Equal([]byte{1, 2, 3}, []byte{1, 2, 4}))
	require.False(t, auth.Equal([]byte{1, 2, 3}, []byte{1, 2}))
	require.True(t, auth.Equal(nil, []byte{}))
}

func TestZeroBytes(t *testing.T) {
	x := []byte{1, 2, 3}
	auth.ZeroBytes(x)
	require.Equal(t, []byte{0, 0, 0}, x)
}

func TestWriter(t *testing.T) {
	scheme := auth_hmacsha256.New()
	rng := mrand.New(mrand.NewSource(0))
	key := auth.GenerateKey[auth_hmacsha256.State](scheme, rng)
	msg := make([]byte, 1<<16)
	rng.Read(msg)

	expected := make([]byte, scheme.TagSize())
	auth.Sum[auth_hmacsha256.State](scheme, expected, key, msg)

	s := scheme.Init(key)
	w := &auth.Writer[auth_hmacsha256.State]{Scheme: scheme, State: &s}
	_, err := io.Copy(w, bytes.NewReader(msg))
	require.NoError(t, err)
	actual := make([]byte, scheme.TagSize())
	scheme.Finalize(&s, actual)
	require.Equal(t, expected, actual)
}

func TestGenerateKeyBadEntropy(t *testing.T) {
	require.Panics(t, func() {
		auth.GenerateKey[auth_hmacsha256.State](auth_hmacsha256.New(), errReader{})
	})
}

func TestFinalizeTwice(t *testing.T) {
	scheme := auth_hmacsha256.New()
	rng := mrand.New(mrand.NewSource(0))
	s := scheme.Init(auth.GenerateKey[auth_hmacsha256.State](scheme, rng))
	scheme.Update(&s, []byte("message"))
	scheme.Finalize(&s, make([]byte, scheme.TagSize()))
	require.Panics(t, func() {
		scheme.Finalize(&s, make([]byte, scheme.TagSize()))
	})
}

type errReader struct{}

func (errReader) Read(p []byte) (int, error) {
	return 0, errors.New("entropy exhausted")
}
