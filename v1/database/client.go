package database

import (
	"context"

	"gorm.io/gorm"
)

// session is the GORM-backed Client implementation. It is engine-agnostic:
// whatever adapter produced the handle, the query surface is the same.
type session struct {
	db *gorm.DB
}

var _ Client = (*session)(nil)

// NewClient wraps a GORM handle in the Client interface. The service calls
// this after a successful adapter connect; tests can call it directly with a
// stub-backed handle.
func NewClient(db *gorm.DB) Client {
	return &session{db: db}
}

func (s *session) Query(ctx context.Context) *QueryBuilder {
	return &QueryBuilder{db: s.db.WithContext(ctx)}
}

func (s *session) Exec(ctx context.Context, sql string, values ...interface{}) (int64, error) {
	tx := s.db.WithContext(ctx).Exec(sql, values...)
	return tx.RowsAffected, tx.Error
}

func (s *session) Transaction(ctx context.Context, fn func(tx Client) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&session{db: tx})
	})
}

func (s *session) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *session) DB() *gorm.DB {
	return s.db
}
