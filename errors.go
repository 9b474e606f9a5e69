package calloutmath

import "errors"

var (
	// ErrUnknownDocument indicates that no state was opened for a document ID.
	ErrUnknownDocument = errors.New("unknown document")

	// ErrStaleRevision indicates a lookup against a revision that has been
	// replaced by a newer one.
	ErrStaleRevision = errors.New("stale document revision")
)
