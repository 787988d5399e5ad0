package quotient

import "github.com/pkg/errors"

// The pullback dispatch treats an unrecognized action kind as a programming
// error, not a recoverable condition. Threading error returns through every
// branch for that one impossible case would clutter the API, so the dispatch
// panics and the public facade recovers the panic into an error.

type PullbackError error

// Panic with a PullbackError.
func fatalf(format string, args ...interface{}) {
	panic(errors.Errorf(format, args...))
}

// HandlePullbackPanicRecover converts a recovered PullbackError into an
// error return. Any other panic value is re-panicked: only the errors this
// package deliberately threw are caught.
func HandlePullbackPanicRecover(r interface{}) error {
	if r != nil {
		if pullbackError, ok := r.(PullbackError); ok {
			return pullbackError
		}
		panic(r)
	}
	return nil
}
