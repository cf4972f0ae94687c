package mysql

import "time"

// Config contains everything needed to open a MySQL connection pool.
type Config struct {
	Connection Connection
	Pool       Pool

	// LogQueries enables GORM's statement logging on this connection.
	LogQueries bool
}

// Connection holds the structured connection fields. URL, when set, takes
// precedence over all structured fields and is passed to the driver verbatim.
type Connection struct {
	Host     string
	Port     string
	User     string
	Password string
	DbName   string

	// SSL appends tls=true to the built DSN.
	SSL bool

	// URL is a prebuilt driver-native DSN. When non-empty it wins over the
	// structured fields above.
	URL string

	// Name is an optional human-readable label used to tell multiple
	// connections apart in logs.
	Name string
}

// Pool holds connection pool settings. Zero values fall back to the package
// defaults below. The driver's wait queue is unbounded; only the open
// connection count is capped.
type Pool struct {
	MaxOpenConns   int
	ConnectTimeout time.Duration
}

const (
	defaultMaxOpenConns   = 10
	defaultConnectTimeout = 2 * time.Second
)
