package auth

import "fmt"

// DualState is the streaming state for Dual.
type DualState[L, R any] struct {
	L L
	R R
}

// Dual is an authentication scheme composed of two authentication schemes.
// The key is the concatenation of the component keys, and the tag is the
// concatenation of the component tags. A tag is only correct if both
// component tags are correct.
type Dual[LS, RS any] struct {
	L Scheme[LS]
	R Scheme[RS]
}

// Init returns a new state keyed with key.
// Unlike single schemes, Dual needs to split the key between its components,
// so len(key) must be exactly KeySize; Init panics otherwise.
func (s Dual[LS, RS]) Init(key []byte) DualState[LS, RS] {
	if len(key) != s.KeySize() {
		panic(fmt.Sprintf("len(key) != %d", s.KeySize()))
	}
	return DualState[LS, RS]{
		L: s.L.Init(key[:s.L.KeySize()]),
		R: s.R.Init(key[s.L.KeySize():]),
	}
}

func (s Dual[LS, RS]) Update(x *DualState[LS, RS], chunk []byte) {
	s.L.Update(&x.L, chunk)
	s.R.Update(&x.R, chunk)
}

func (s Dual[LS, RS]) Finalize(x *DualState[LS, RS], dst []byte) {
	if len(dst) < s.TagSize() {
		panic(fmt.Sprintf("len(dst) < %d", s.TagSize()))
	}
	s.L.Finalize(&x.L, dst[:s.L.TagSize()])
	s.R.Finalize(&x.R, dst[s.L.TagSize():s.TagSize()])
}

func (s Dual[LS, RS]) Zero(x *DualState[LS, RS]) {
	s.L.Zero(&x.L)
	s.R.Zero(&x.R)
}

func (s Dual[LS, RS]) KeySize() int {
	return s.L.KeySize() + s.R.KeySize()
}

func (s Dual[LS, RS]) TagSize() int {
	return s.L.TagSize() + s.R.TagSize()
}
