package postgres

import "time"

// Config contains everything needed to open a PostgreSQL connection pool.
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

	// SSL appends ssl=true to the built connection string.
	SSL bool

	// URL is a prebuilt connection string. When non-empty it wins over the
	// structured fields above.
	URL string

	// Name is an optional human-readable label used to tell multiple
	// connections apart in logs. It has no effect on the connection itself.
	Name string
}

// Pool holds connection pool settings. Zero values fall back to the package
// defaults below.
type Pool struct {
	MaxOpenConns    int
	ConnMaxIdleTime time.Duration
	ConnectTimeout  time.Duration
}

// Pool defaults applied when the corresponding Pool field is zero.
const (
	defaultMaxOpenConns    = 20
	defaultConnMaxIdleTime = 30 * time.Second
	defaultConnectTimeout  = 2 * time.Second
)
