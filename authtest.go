package auth

import (
	"crypto/rand"
	mrand "math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

// TestScheme runs a conformance suite against scheme.
func TestScheme[S any](t *testing.T, scheme Scheme[S]) {
	genKey := func(rng *mrand.Rand) []byte {
		return GenerateKey(scheme, rng)
	}
	genMsg := func(rng *mrand.Rand, n int) []byte {
		msg := make([]byte, n)
		rng.Read(msg)
		return msg
	}
	sum := func(key, msg []byte) []byte {
		tag := make([]byte, scheme.TagSize())
		Sum(scheme, tag, key, msg)
		return tag
	}
	t.Run("GenerateKey", func(t *testing.T) {
		rng := mrand.New(mrand.NewSource(0))
		k := genKey(rng)
		require.Len(t, k, scheme.KeySize())
	})
	t.Run("KeyEntropy", func(t *testing.T) {
		rng := mrand.New(mrand.NewSource(0))
		require.NotEqual(t, genKey(rng), genKey(rng))
	})
	t.Run("RoundTrip", func(t *testing.T) {
		rng := mrand.New(mrand.NewSource(0))
		for n := 0; n < 256; n++ {
			k := genKey(rng)
			msg := genMsg(rng, n)
			require.True(t, Verify(scheme, sum(k, msg), k, msg))
		}
	})
	t.Run("EmptyMessage", func(t *testing.T) {
		rng := mrand.New(mrand.NewSource(0))
		k := genKey(rng)
		tag := sum(k, nil)
		require.True(t, Verify(scheme, tag, k, nil))
		require.True(t, Verify(scheme, tag, k, []byte{}))
		require.False(t, Verify(scheme, tag, k, []byte{0x00}))
	})
	t.Run("TamperMessage", func(t *testing.T) {
		rng := mrand.New(mrand.NewSource(0))
		for n := 1; n < 32; n++ {
			k := genKey(rng)
			msg := genMsg(rng, n)
			tag := sum(k, msg)
			for i := range msg {
				msg2 := slices.Clone(msg)
				msg2[i] ^= 0x20
				require.False(t, Verify(scheme, tag, k, msg2))
			}
		}
	})
	t.Run("TamperTag", func(t *testing.T) {
		rng := mrand.New(mrand.NewSource(0))
		k := genKey(rng)
		msg := genMsg(rng, 64)
		tag := sum(k, msg)
		for i := range tag {
			tag2 := slices.Clone(tag)
			tag2[i] ^= 0x20
			require.False(t, Verify(scheme, tag2, k, msg))
		}
	})
	t.Run("WrongTagLength", func(t *testing.T) {
		rng := mrand.New(mrand.NewSource(0))
		k := genKey(rng)
		msg := genMsg(rng, 64)
		tag := sum(k, msg)
		require.False(t, Verify(scheme, tag[:len(tag)-1], k, msg))
		require.False(t, Verify(scheme, append(slices.Clone(tag), 0x00), k, msg))
		require.False(t, Verify(scheme, nil, k, msg))
	})
	t.Run("WrongKey", func(t *testing.T) {
		rng := mrand.New(mrand.NewSource(0))
		k1, k2 := genKey(rng), genKey(rng)
		msg := genMsg(rng, 64)
		require.False(t, Verify(scheme, sum(k1, msg), k2, msg))
	})
	t.Run("StreamingEquivalence", func(t *testing.T) {
		rng := mrand.New(mrand.NewSource(0))
		for n := 0; n < 256; n++ {
			k := genKey(rng)
			msg := genMsg(rng, n)
			expected := sum(k, msg)

			// one byte at a time
			s := scheme.Init(k)
			for i := range msg {
				scheme.Update(&s, msg[i:i+1])
			}
			actual := make([]byte, scheme.TagSize())
			scheme.Finalize(&s, actual)
			require.Equal(t, expected, actual)

			// random split points, with empty chunks interleaved
			s = scheme.Init(k)
			scheme.Update(&s, nil)
			for rest := msg; len(rest) > 0; {
				i := 1 + rng.Intn(len(rest))
				scheme.Update(&s, rest[:i])
				scheme.Update(&s, []byte{})
				rest = rest[i:]
			}
			scheme.Finalize(&s, actual)
			require.Equal(t, expected, actual)
		}
	})
	t.Run("FinalizeZeros", func(t *testing.T) {
		rng := mrand.New(mrand.NewSource(0))
		k := genKey(rng)
		s := scheme.Init(k)
		scheme.Update(&s, genMsg(rng, 64))
		scheme.Finalize(&s, make([]byte, scheme.TagSize()))
		var zero S
		require.Equal(t, zero, s)
	})
	t.Run("Zero", func(t *testing.T) {
		rng := mrand.New(mrand.NewSource(0))
		s := scheme.Init(genKey(rng))
		scheme.Zero(&s)
		var zero S
		require.Equal(t, zero, s)
	})
	t.Run("ConcurrentGenerate", func(t *testing.T) {
		keys := make([][]byte, 8)
		eg := errgroup.Group{}
		for i := range keys {
			i := i
			eg.Go(func() error {
				keys[i] = GenerateKey(scheme, rand.Reader)
				return nil
			})
		}
		require.NoError(t, eg.Wait())
		for i := range keys {
			for j := i + 1; j < len(keys); j++ {
				require.NotEqual(t, keys[i], keys[j])
			}
		}
	})
}
