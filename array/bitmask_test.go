package array_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pbower/minarrow/array"
	"github.com/pbower/minarrow/memory"
)

func TestBitmaskPushAndGet(t *testing.T) {
	m := array.NewBitmask(memory.NewGoAllocator(), 0)
	for _, v := range []bool{true, false, true, true, false} {
		m.Push(v)
	}
	assert.Equal(t, 5, m.Len())
	for i, want := range []bool{true, false, true, true, false} {
		assert.Equal(t, want, m.Get(i))
	}
	assert.Equal(t, 3, m.CountOnes())
}

// §8.2: [true,false,true] packs LSB-first into a single byte 0x05.
func TestBitmaskPacksLSBFirst(t *testing.T) {
	m := array.NewBitmask(memory.NewGoAllocator(), 0)
	m.Push(true)
	m.Push(false)
	m.Push(true)
	assert.Equal(t, byte(0x05), m.AsBytes()[0])
}

func TestBitmaskSetAll(t *testing.T) {
	m := array.NewBitmask(memory.NewGoAllocator(), 10)
	m.SetAll(true)
	assert.Equal(t, 10, m.CountOnes())
	m.SetAll(false)
	assert.Equal(t, 0, m.CountOnes())
}

func TestBitmaskFromBytesAdoptsZeroCopy(t *testing.T) {
	raw := []byte{0x05}
	m := array.NewBitmaskFromBytes(raw, 3)
	assert.True(t, m.Get(0))
	assert.False(t, m.Get(1))
	assert.True(t, m.Get(2))
}

func TestBitmaskGrowsPastOneByte(t *testing.T) {
	m := array.NewBitmask(memory.NewGoAllocator(), 0)
	for i := 0; i < 100; i++ {
		m.Push(i%3 == 0)
	}
	assert.Equal(t, 100, m.Len())
	for i := 0; i < 100; i++ {
		assert.Equal(t, i%3 == 0, m.Get(i), "bit %d", i)
	}
}
