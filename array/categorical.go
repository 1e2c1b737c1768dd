package array

import "github.com/pbower/minarrow/memory"

// CategoricalArray[K] is the §3.3/§4.3.2 dictionary-encoded string column:
// an ordered, append-only dictionary of unique strings plus a codes buffer
// indexing into it. K ∈ {u8,u16,u32,u64} bounds the dictionary to at most
// 2^(8*sizeof(K)) distinct values. Lookup during Push is backed by an
// auxiliary hash index (§4.3.2 permits either O(n) scan or a hash index;
// we keep one since dictionaries built incrementally are the common case).
type CategoricalArray[K Code] struct {
	masked
	codes *AlignedBuffer[K]
	dict  []string
	index map[string]K
}

func NewCategoricalArray[K Code](mem memory.Allocator) *CategoricalArray[K] {
	if mem == nil {
		mem = memory.DefaultAllocator
	}
	return &CategoricalArray[K]{
		masked: newMasked(mem),
		codes:  NewAlignedBuffer[K](mem),
		index:  make(map[string]K),
	}
}

// AdoptCategoricalArray wraps a pre-built codes buffer, a dictionary of
// already-copied-out strings, and an optional validity mask as a
// CategoricalArray without copying the codes (cdata import path, §4.7.2: the
// codes buffer is zero-copy, the dictionary strings are copied out
// individually by the caller before reaching this constructor).
func AdoptCategoricalArray[K Code](codes *AlignedBuffer[K], dict []string, mask *Bitmask, nullCount int) *CategoricalArray[K] {
	index := make(map[string]K, len(dict))
	for i, v := range dict {
		index[v] = K(i)
	}
	return &CategoricalArray[K]{
		masked: maskedFromParts(nil, codes.Len(), mask, nullCount),
		codes:  codes,
		dict:   dict,
		index:  index,
	}
}

// codeFor returns the dictionary code for value, appending a new dictionary
// entry if value has not been seen before.
func (a *CategoricalArray[K]) codeFor(value string) K {
	if code, ok := a.index[value]; ok {
		return code
	}
	code := K(len(a.dict))
	a.dict = append(a.dict, value)
	a.index[value] = code
	return code
}

func (a *CategoricalArray[K]) Push(value string) {
	a.codes.Push(a.codeFor(value))
	a.pushValidity(true)
}

// PushNull appends a null; the code slot duplicates 0 (addressable but
// unspecified, §4.3).
func (a *CategoricalArray[K]) PushNull() {
	a.codes.Push(0)
	a.pushValidity(false)
}

func (a *CategoricalArray[K]) Get(i int) (string, bool) {
	if a.IsNull(i) {
		return "", false
	}
	return a.dict[a.codes.Get(i)], true
}

func (a *CategoricalArray[K]) Set(i int, value string) {
	a.codes.Set(i, a.codeFor(value))
	a.setValidity(i, true)
}

func (a *CategoricalArray[K]) SetNull(i int) { a.setValidity(i, false) }

// Dictionary returns the ordered unique values backing the codes.
func (a *CategoricalArray[K]) Dictionary() []string { return a.dict }

// Codes exposes the raw codes buffer (cdata export, §4.7.1).
func (a *CategoricalArray[K]) Codes() *AlignedBuffer[K] { return a.codes }

// Equal implements §8.1 property 4: two categorical arrays compare equal
// when their logical (decoded) sequences match, irrespective of dictionary
// order or identity — merging under different dictionaries requires no
// recoding to compare, only to combine.
func (a *CategoricalArray[K]) Equal(other *CategoricalArray[K]) bool {
	if a.Len() != other.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		av, aok := a.Get(i)
		bv, bok := other.Get(i)
		if aok != bok || av != bv {
			return false
		}
	}
	return true
}

func (a *CategoricalArray[K]) Retain() { a.retain() }
func (a *CategoricalArray[K]) Release() {
	if a.release() {
		a.codes.Release()
	}
}
