package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores and caches return these
// (optionally wrapped) so services can translate them into domain errors.
//
//   - ErrNotFound: record does not exist in the store or cache
//   - ErrConflict: write collided with an existing row
//   - ErrUnavailable: backing service (database, cache) cannot be reached
//
// For validation errors (bad filters, malformed ids), use pkg/domain-errors directly.
var (
	ErrNotFound    = errors.New("not found")
	ErrConflict    = errors.New("conflict")
	ErrUnavailable = errors.New("unavailable")
)
