package database

import (
	"context"

	"gorm.io/gorm"
)

// Adapter is the contract every engine adapter implements. An adapter owns at
// most one live native connection pool at a time and exposes it as a GORM
// handle.
//
// Lifecycle: uninitialized -> connected (after a successful Connect) ->
// disconnected (after Disconnect, handle cleared) -> may reconnect.
//
// Implementations:
//   - postgres.Adapter
//   - mysql.Adapter
type Adapter interface {
	// Connect opens the native connection pool, verifies it with a liveness
	// probe, and returns the handle. Errors are wrapped with the engine name.
	Connect(ctx context.Context) (*gorm.DB, error)

	// Disconnect closes the pool if present and clears internal state.
	// Idempotent: calling it when already disconnected is a no-op.
	Disconnect(ctx context.Context) error

	// TestConnection reports connection health. It never returns an error:
	// no connection and a failing probe both yield false.
	TestConnection(ctx context.Context) bool

	// Connection returns the live handle, or an engine-specific
	// "not established" error outside the connected window.
	Connection() (*gorm.DB, error)
}

// Client is the query-capable handle the service exposes to repositories and
// application code. It is deliberately narrow: shaped queries go through
// Query, raw statements through Exec, and multi-statement atomicity through
// Transaction. Anything beyond that drops down to DB().
type Client interface {
	// Query starts a fluent query against the connection.
	Query(ctx context.Context) *QueryBuilder

	// Exec runs a raw statement and returns the number of affected rows.
	Exec(ctx context.Context, sql string, values ...interface{}) (int64, error)

	// Transaction executes fn within a database transaction. The callback
	// receives a transaction-scoped Client; returning an error rolls the
	// transaction back, returning nil commits it.
	Transaction(ctx context.Context, fn func(tx Client) error) error

	// Ping verifies the underlying connection is alive.
	Ping(ctx context.Context) error

	// DB exposes the underlying GORM handle for advanced use cases.
	DB() *gorm.DB
}
