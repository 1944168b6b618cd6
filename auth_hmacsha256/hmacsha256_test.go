package auth_hmacsha256

import (
	"encoding/hex"
	mrand "math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brendoncarroll/go-auth"
)

func TestHMACSHA256(t *testing.T) {
	auth.TestScheme[State](t, New())
}

// vectors from RFC 4231
func TestVectors(t *testing.T) {
	tcs := []struct {
		key, msg, tag string
	}{
		{
			key: "0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b",
			msg: "4869205468657265",
			tag: "b0344c61d8db38535ca8afceaf0bf12b881dc200c9833da726e9376c2e32cff7",
		},
		{
			key: "4a656665",
			msg: "7768617420646f2079612077616e7420666f72206e6f7468696e673f",
			tag: "5bdcc146bf60754e6a042426089575c75a003f089d2739839dec58b964ec3843",
		},
		{
			key: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
			msg: "dddddddddddddddddddddddddddddddddddddddddddddddddddddddddddddddddddddddddddddddddddddddddddddddddddd",
			tag: "773ea91e36800e46854db8ebd09181a72959098b3ef8c122d9635514ced565fe",
		},
	}
	for _, tc := range tcs {
		key := fromHex(t, tc.key)
		msg := fromHex(t, tc.msg)
		actual := make([]byte, TagSize)
		auth.Sum[State](New(), actual, key, msg)
		require.Equal(t, tc.tag, hex.EncodeToString(actual))
	}
}

func TestAuthenticateVerify(t *testing.T) {
	rng := mrand.New(mrand.NewSource(0))
	key := GenerateKey(rng)
	msg := make([]byte, 100)
	rng.Read(msg)

	tag := Authenticate(msg, &key)
	require.True(t, Verify(&tag, msg, &key))

	s := NewState(key[:])
	s.Update(msg)
	require.Equal(t, uint64(len(msg)), s.Count())
	require.Equal(t, tag, s.Finalize())

	key.Zero()
	require.Equal(t, Key{}, key)
}

func TestParse(t *testing.T) {
	_, err := ParseKey(make([]byte, KeySize))
	require.NoError(t, err)
	_, err = ParseKey(make([]byte, KeySize-1))
	require.Error(t, err)
	_, err = ParseTag(make([]byte, TagSize))
	require.NoError(t, err)
	_, err = ParseTag(make([]byte, TagSize+1))
	require.Error(t, err)
}

func fromHex(t *testing.T, x string) []byte {
	data, err := hex.DecodeString(x)
	require.NoError(t, err)
	return data
}

var benchSizes = []int{0, 1, 2, 4, 8, 16, 32, 64, 128, 256, 512, 1024, 2048, 4096}

func BenchmarkAuthenticate(b *testing.B) {
	rng := mrand.New(mrand.NewSource(0))
	key := GenerateKey(rng)
	ms := make([][]byte, len(benchSizes))
	for i, n := range benchSizes {
		ms[i] = make([]byte, n)
		rng.Read(ms[i])
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, m := range ms {
			Authenticate(m, &key)
		}
	}
}

func BenchmarkVerify(b *testing.B) {
	rng := mrand.New(mrand.NewSource(0))
	key := GenerateKey(rng)
	ms := make([][]byte, len(benchSizes))
	tags := make([]Tag, len(benchSizes))
	for i, n := range benchSizes {
		ms[i] = make([]byte, n)
		rng.Read(ms[i])
		tags[i] = Authenticate(ms[i], &key)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for j, m := range ms {
			Verify(&tags[j], m, &key)
		}
	}
}
