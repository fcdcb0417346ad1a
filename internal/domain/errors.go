package domain

import "errors"

// ErrValidation is returned by service functions when a submission fails
// validation (e.g. missing location, rating outside 1–5).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrStorage is returned by the entry store when the journal file could not
// be written. The in-memory log is left as it was before the failed write.
// Handlers should map this to HTTP 500.
var ErrStorage = errors.New("storage error")
