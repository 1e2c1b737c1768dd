package cdata

import "golang.org/x/xerrors"

// ImportError is the typed recoverable-error class of §7 class 2:
// construction failures sourced from external (C-side) data never panic.
type ImportError struct {
	Op  string
	Err error
}

func (e *ImportError) Error() string { return "cdata: " + e.Op + ": " + e.Err.Error() }
func (e *ImportError) Unwrap() error { return e.Err }

func importErrorf(op, format string, args ...interface{}) error {
	return &ImportError{Op: op, Err: xerrors.Errorf(format, args...)}
}

var (
	ErrUnsupportedFormat   = xerrors.New("unsupported Arrow format string")
	ErrBufferCount         = xerrors.New("buffer count does not match expected shape for format")
	ErrNilRelease          = xerrors.New("source ArrowArray/ArrowSchema has a nil release callback")
	ErrInvalidUTF8         = xerrors.New("imported string buffer is not valid UTF-8")
	ErrNonMonotonicOffsets = xerrors.New("imported offsets buffer is not monotonically non-decreasing")
	ErrAlreadyReleased     = xerrors.New("ArrowArray/ArrowSchema has already been released")
)
