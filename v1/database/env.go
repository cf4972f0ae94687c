package database

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/helixbase/dbkit/v1/mysql"
	"github.com/helixbase/dbkit/v1/postgres"
)

// Environment variables read by OptionsFromEnv.
const (
	envEngine     = "DB_ENGINE"
	envHost       = "DB_HOST"
	envPort       = "DB_PORT"
	envUser       = "DB_USER"
	envPassword   = "DB_PASSWORD"
	envName       = "DB_NAME"
	envSSL        = "DB_SSL"
	envURL        = "DB_URL"
	envConnName   = "DB_CONNECTION_NAME"
	envLogQueries = "DB_LOG_QUERIES"
)

// OptionsFromEnv builds Options from the process environment, optionally
// loading .env files first (missing files are ignored, existing environment
// variables win over file contents, matching godotenv semantics).
//
// DB_ENGINE selects the adapter; DB_URL, when set, is used verbatim as the
// connection string. Validation is lazy: an unknown or unimplemented engine
// value is carried into Options as-is and surfaces when Start dispatches.
func OptionsFromEnv(files ...string) Options {
	for _, f := range files {
		_ = godotenv.Load(f)
	}

	engine := EngineType(os.Getenv(envEngine))
	ssl, _ := strconv.ParseBool(os.Getenv(envSSL))
	logQueries, _ := strconv.ParseBool(os.Getenv(envLogQueries))

	switch engine {
	case EnginePostgres:
		return PostgresOptions(postgres.Config{
			Connection: postgres.Connection{
				Host:     os.Getenv(envHost),
				Port:     os.Getenv(envPort),
				User:     os.Getenv(envUser),
				Password: os.Getenv(envPassword),
				DbName:   os.Getenv(envName),
				SSL:      ssl,
				URL:      os.Getenv(envURL),
				Name:     os.Getenv(envConnName),
			},
			LogQueries: logQueries,
		})
	case EngineMySQL:
		return MySQLOptions(mysql.Config{
			Connection: mysql.Connection{
				Host:     os.Getenv(envHost),
				Port:     os.Getenv(envPort),
				User:     os.Getenv(envUser),
				Password: os.Getenv(envPassword),
				DbName:   os.Getenv(envName),
				SSL:      ssl,
				URL:      os.Getenv(envURL),
				Name:     os.Getenv(envConnName),
			},
			LogQueries: logQueries,
		})
	default:
		return Options{Engine: engine}
	}
}
