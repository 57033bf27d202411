// Package ids mints opaque identifiers for newly created entities.
package ids

import "github.com/google/uuid"

// New returns an opaque unique id suitable for users, sessions, and moves.
func New() string {
	return uuid.NewString()
}
