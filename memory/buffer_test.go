package memory_test

import (
	"reflect"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbower/minarrow/memory"
)

func addressOf(b []byte) uintptr {
	if len(b) == 0 {
		return 0
	}
	return (*reflect.SliceHeader)(unsafe.Pointer(&b)).Data
}

func TestGoAllocatorAlignment(t *testing.T) {
	alloc := memory.NewGoAllocator()
	for _, size := range []int{0, 1, 7, 64, 65, 4096, 100003} {
		b := alloc.Allocate(size)
		require.Len(t, b, size)
		if size > 0 {
			assert.Zero(t, addressOf(b)%64, "size=%d", size)
		}
	}
}

func TestBufferResizeGrowsAndShrinks(t *testing.T) {
	buf := memory.NewResizableBuffer(memory.NewGoAllocator())
	buf.Resize(10)
	assert.Equal(t, 10, buf.Len())
	buf.Resize(3)
	assert.Equal(t, 3, buf.Len())
	buf.Resize(1000)
	assert.Equal(t, 1000, buf.Len())
}

func TestBufferRetainRelease(t *testing.T) {
	buf := memory.NewResizableBuffer(memory.NewGoAllocator())
	buf.Resize(16)
	buf.Retain()
	buf.Release()
	buf.Release() // refcount reaches zero; must not panic
}
