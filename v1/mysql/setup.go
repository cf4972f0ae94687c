package mysql

import (
	"context"
	"fmt"
	"sync"

	mysqldriver "gorm.io/driver/mysql"
	"gorm.io/gorm"
	glogger "gorm.io/gorm/logger"
)

// gormOpen opens a GORM session over the given DSN. It is a package variable
// so tests can substitute an in-memory stub connection.
var gormOpen = func(dsn string, cfg *gorm.Config) (*gorm.DB, error) {
	return gorm.Open(mysqldriver.Open(dsn), cfg)
}

// Adapter manages a single MySQL connection pool wrapped in GORM.
type Adapter struct {
	cfg Config

	mu   sync.Mutex
	conn *gorm.DB
}

// NewAdapter creates a MySQL adapter from the given configuration.
// No connection is opened until Connect is called.
func NewAdapter(cfg Config) *Adapter {
	return &Adapter{cfg: cfg}
}

// BuildDSN composes the driver-native DSN for the given configuration.
//
// When conn.URL is set it is returned verbatim. Otherwise the DSN has the
// form
//
//	user:password@tcp(host:port)/dbname?charset=utf8mb4&parseTime=True
//
// with tls=true appended when conn.SSL is set.
func BuildDSN(conn Connection) string {
	if conn.URL != "" {
		return conn.URL
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True",
		conn.User,
		conn.Password,
		conn.Host,
		conn.Port,
		conn.DbName,
	)
	if conn.SSL {
		dsn += "&tls=true"
	}
	return dsn
}

// Connect opens the connection pool, configures it, and verifies liveness
// with a SELECT 1 probe. On any failure the error is wrapped as
// "mysql connection failed: <cause>" and no handle is retained.
func (a *Adapter) Connect(ctx context.Context) (*gorm.DB, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	logMode := glogger.Silent
	if a.cfg.LogQueries {
		logMode = glogger.Info
	}

	db, err := gormOpen(BuildDSN(a.cfg.Connection), &gorm.Config{
		TranslateError: true,
		Logger:         glogger.Default.LogMode(logMode),
	})
	if err != nil {
		return nil, fmt.Errorf("mysql connection failed: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("mysql connection failed: %w", err)
	}

	maxOpen := a.cfg.Pool.MaxOpenConns
	if maxOpen == 0 {
		maxOpen = defaultMaxOpenConns
	}
	sqlDB.SetMaxOpenConns(maxOpen)

	if err := a.probe(ctx, db); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("mysql connection failed: %w", err)
	}

	a.conn = db
	return db, nil
}

func (a *Adapter) probe(ctx context.Context, db *gorm.DB) error {
	timeout := a.cfg.Pool.ConnectTimeout
	if timeout == 0 {
		timeout = defaultConnectTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	return db.WithContext(ctx).Exec("SELECT 1").Error
}

// Disconnect closes the connection pool if one exists and clears the retained
// handle. It is idempotent.
func (a *Adapter) Disconnect(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.conn == nil {
		return nil
	}

	sqlDB, err := a.conn.DB()
	a.conn = nil
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// TestConnection reports whether the adapter currently holds a usable
// connection. It never returns an error.
func (a *Adapter) TestConnection(ctx context.Context) bool {
	a.mu.Lock()
	db := a.conn
	a.mu.Unlock()

	if db == nil {
		return false
	}
	return a.probe(ctx, db) == nil
}

// Connection returns the live handle, or ErrNotConnected outside the
// connected window.
func (a *Adapter) Connection() (*gorm.DB, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.conn == nil {
		return nil, ErrNotConnected
	}
	return a.conn, nil
}
