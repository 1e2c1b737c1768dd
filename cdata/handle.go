package cdata

import (
	"runtime/cgo"
	"unsafe"
)

// cString allocates a NUL-terminated byte buffer for s and returns a pointer
// to its first byte, plus the backing slice (kept alive by the holder that
// owns it — see schemaHolder in export.go). There is no C heap in this build, so "freeing"
// a cString is simply letting the holder's reference drop.
func cString(s string) (unsafe.Pointer, []byte) {
	b := make([]byte, len(s)+1)
	copy(b, s)
	return unsafe.Pointer(&b[0]), b
}

func goString(p unsafe.Pointer) string {
	if p == nil {
		return ""
	}
	const maxLen = 1 << 30
	buf := (*[maxLen]byte)(p)[:]
	n := 0
	for buf[n] != 0 {
		n++
	}
	return string(buf[:n])
}

// storeHandle stashes any value (typically a callback closure) behind a
// cgo.Handle and returns its uintptr encoding, suitable for an
// ArrowArrayStream's get_schema/get_next/get_last_error field.
func storeHandle(v interface{}) uintptr { return uintptr(cgo.NewHandle(v)) }

// loadHandle resolves a handle previously produced by storeHandle.
func loadHandle(h uintptr) interface{} { return cgo.Handle(h).Value() }

func deleteHandle(h uintptr) {
	if h != 0 {
		cgo.Handle(h).Delete()
	}
}

// registerRelease stashes fn behind a cgo.Handle and returns the handle's
// uintptr encoding, suitable for storing in an ArrowArray/ArrowSchema/
// ArrowArrayStream Release field.
func registerRelease(fn func()) uintptr {
	return storeHandle(fn)
}

// callRelease invokes and retires the release callback stored at slot,
// idempotently: a zero slot (already released, or never set) is a no-op,
// matching §8.1 property 7.
func callRelease(slot *uintptr) {
	h := *slot
	if h == 0 {
		return
	}
	*slot = 0
	handle := cgo.Handle(h)
	fn := handle.Value().(func())
	handle.Delete()
	fn()
}
