package interfaces

import (
	"errors"
	"fmt"
)

// MissingIndexError marks a store error caused by querying a composite index
// that does not exist. It is the one recoverable store failure: callers react
// by degrading to a chunked day-by-day scan instead of propagating.
type MissingIndexError struct {
	Index string
	Err   error
}

func (e *MissingIndexError) Error() string {
	return fmt.Sprintf("missing composite index %s: %v", e.Index, e.Err)
}

func (e *MissingIndexError) Unwrap() error { return e.Err }

// AsMissingIndex unwraps err into a *MissingIndexError, if it is one.
func AsMissingIndex(err error) (*MissingIndexError, bool) {
	var mie *MissingIndexError
	if errors.As(err, &mie) {
		return mie, true
	}
	return nil, false
}
