package database

import "errors"

// Common database service errors.
var (
	// ErrOptionsNotSet is returned by Start when the service was created
	// without options. The caller must supply Options before starting.
	ErrOptionsNotSet = errors.New("database: options not set before start")

	// ErrNotConnected is returned by Connection when the adapter has not
	// been initialized yet, i.e. before a successful Start or after
	// Disconnect.
	ErrNotConnected = errors.New("database: adapter not initialized")

	// ErrUnsupportedEngine is returned when the configured engine type is
	// outside the EngineType enumeration. The error message carries the
	// offending value: "unsupported database type: <type>".
	ErrUnsupportedEngine = errors.New("unsupported database type")

	// ErrEngineNotImplemented is returned for engine types that are part of
	// the enumeration but have no adapter yet (embedded-sql, sqlite).
	ErrEngineNotImplemented = errors.New("database: engine not implemented")
)
