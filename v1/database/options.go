package database

import (
	"github.com/helixbase/dbkit/v1/mysql"
	"github.com/helixbase/dbkit/v1/postgres"
)

// Options selects and configures the connection adapter the service owns.
// Use one of the helper functions (PostgresOptions, MySQLOptions) to create
// it.
type Options struct {
	// Engine is the database engine type.
	Engine EngineType

	// Postgres configuration (used when Engine = EnginePostgres).
	Postgres *postgres.Config

	// MySQL configuration (used when Engine = EngineMySQL).
	MySQL *mysql.Config
}

// PostgresOptions creates Options for PostgreSQL.
//
// Example:
//
//	fx.Provide(func() database.Options {
//	    return database.PostgresOptions(postgres.Config{
//	        Connection: postgres.Connection{
//	            Host: "localhost",
//	            Port: "5432",
//	            // ...
//	        },
//	    })
//	})
func PostgresOptions(cfg postgres.Config) Options {
	return Options{
		Engine:   EnginePostgres,
		Postgres: &cfg,
	}
}

// MySQLOptions creates Options for MySQL.
func MySQLOptions(cfg mysql.Config) Options {
	return Options{
		Engine: EngineMySQL,
		MySQL:  &cfg,
	}
}

// connectionName returns the configured human-readable connection label, if
// any, for log disambiguation.
func (o Options) connectionName() string {
	switch o.Engine {
	case EnginePostgres:
		if o.Postgres != nil {
			return o.Postgres.Connection.Name
		}
	case EngineMySQL:
		if o.MySQL != nil {
			return o.MySQL.Connection.Name
		}
	}
	return ""
}
