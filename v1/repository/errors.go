package repository

import "errors"

// Binding errors. Each missing dependency has its own sentinel so
// misconfiguration is diagnosable without inspecting internals.
var (
	// ErrClientNotBound is returned when an operation runs before a
	// database client has been bound.
	ErrClientNotBound = errors.New("repository: database client not bound")

	// ErrTableNotBound is returned when an operation runs before a table
	// has been bound.
	ErrTableNotBound = errors.New("repository: table not bound")
)
