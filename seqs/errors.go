package seqs

import "fmt"

var (
	// ErrEmptySequence is returned by First, Last, Single and ElementAt
	// when no matching element exists and no default was requested.
	ErrEmptySequence = fmt.Errorf("sequence contains no matching element")

	// ErrMultipleMatches is returned by Single and SingleOrDefault when
	// more than one element satisfies the predicate.
	ErrMultipleMatches = fmt.Errorf("sequence contains more than one matching element")

	// ErrIndexOutOfRange is returned for negative element indices.
	ErrIndexOutOfRange = fmt.Errorf("index out of range")

	// ErrUnsupportedOperation is returned by Reset on cursors that drive
	// a one-shot source and cannot be restarted.
	ErrUnsupportedOperation = fmt.Errorf("operation not supported by this cursor")
)
