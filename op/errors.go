package op

import "errors"

// ErrDeleteMismatch is returned by Apply when a Delete component could not
// consume its declared length because the document ran out first.
var ErrDeleteMismatch = errors.New("op: delete could not consume its declared length")

// ErrRetainTooLong is returned by Apply when a Retain component extends
// past the end of the document.
var ErrRetainTooLong = errors.New("op: retain extends past end of document")
