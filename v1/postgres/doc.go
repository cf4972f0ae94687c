// Package postgres provides the PostgreSQL connection adapter for dbkit.
//
// The Adapter owns at most one pooled GORM connection at a time. Its
// lifecycle is uninitialized -> connected -> disconnected, and it may
// reconnect after a disconnect. The live handle is only reachable between a
// successful Connect and a Disconnect; accessing it outside that window
// returns ErrNotConnected rather than a nil handle.
//
// Connection strings are built from the structured Connection fields unless
// Connection.URL is set, in which case that value is used verbatim.
//
// Basic usage:
//
//	adapter := postgres.NewAdapter(postgres.Config{
//	    Connection: postgres.Connection{
//	        Host:     "localhost",
//	        Port:     "5432",
//	        User:     "app",
//	        Password: "secret",
//	        DbName:   "app",
//	    },
//	})
//
//	db, err := adapter.Connect(ctx)
//	if err != nil {
//	    // "postgresql connection failed: <cause>"
//	}
//	defer adapter.Disconnect(ctx)
//
// Most applications do not use this package directly; the database package
// selects and drives the adapter based on its configured engine type.
package postgres
