// Package parallel provides small synchronization helpers shared by the
// fork-join workers of the summation core.
package parallel

import "sync"

// ErrorCollector captures the first non-nil error reported by a group of
// concurrent workers. Later errors are discarded. The zero value is ready
// to use.
type ErrorCollector struct {
	once sync.Once
	mu   sync.Mutex
	err  error
}

// SetError records err if it is the first non-nil error seen.
// Safe for concurrent use; nil errors are ignored.
//
// Parameters:
//   - err: The error to record (nil is a no-op).
func (ec *ErrorCollector) SetError(err error) {
	if err == nil {
		return
	}
	ec.once.Do(func() {
		ec.mu.Lock()
		defer ec.mu.Unlock()
		ec.err = err
	})
}

// Err returns the first recorded error, or nil if none was set.
// It must only be called after all writers have finished (e.g. past the
// join barrier).
//
// Returns:
//   - error: The first recorded error, or nil.
func (ec *ErrorCollector) Err() error {
	ec.mu.Lock()
	defer ec.mu.Unlock()
	return ec.err
}
