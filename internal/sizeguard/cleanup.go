package sizeguard

import (
	"errors"
	"sync"
)

type cleanupFn func() error

var (
	cleanupMx          sync.Mutex
	registeredCleanups []cleanupFn
)

// RegisterCleanupFn saves a function to be executed on Cleanup.
func RegisterCleanupFn(fn cleanupFn) {
	cleanupMx.Lock()
	defer cleanupMx.Unlock()
	registeredCleanups = append(registeredCleanups, fn)
}

// Cleanup runs registered cleanup functions in reverse order and forgets them.
// It is run on the termination of the application.
// Consider it as a global defer.
func Cleanup() error {
	cleanupMx.Lock()
	fns := registeredCleanups
	registeredCleanups = nil
	cleanupMx.Unlock()

	errs := make([]error, 0, len(fns))
	for i := len(fns) - 1; i >= 0; i-- {
		errs = append(errs, fns[i]())
	}
	return errors.Join(errs...)
}
