// Package util contains small internal helpers shared across packages. It
// lives under internal to avoid committing to public API stability prematurely.
package util

import "github.com/google/uuid"

// NewID generates a new unique identifier for cycles and hypotheses.
//
// Uses UUID v4 for guaranteed uniqueness across concurrent generation.
// IDs are correlation handles for logs and reports; they carry no ordering
// semantics.
func NewID() string { return uuid.NewString() }
