//go:build !assert

package debug

// Assert is a no-op in release builds: hot-path invariants checked here
// (refcount sanity in the shared release path) are assumed already proven
// by the public API's own fatal preconditions.
func Assert(cond bool, msg string) {}
