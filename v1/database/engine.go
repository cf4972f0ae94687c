package database

// EngineType identifies which connection adapter the service instantiates.
// The enumeration is closed: values outside it fail at adapter selection
// with ErrUnsupportedEngine, before any connection attempt.
type EngineType string

const (
	// EnginePostgres selects the PostgreSQL adapter.
	EnginePostgres EngineType = "postgresql"

	// EngineMySQL selects the MySQL adapter.
	EngineMySQL EngineType = "mysql"

	// EngineEmbedded is the embedded file-based SQL engine. Selectable but
	// not implemented; Start fails with ErrEngineNotImplemented.
	EngineEmbedded EngineType = "embedded-sql"

	// EngineSQLite is reserved and not implemented.
	EngineSQLite EngineType = "sqlite"
)
