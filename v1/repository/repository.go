package repository

import (
	"context"
	"sync"

	"github.com/helixbase/dbkit/v1/database"
)

// Repository is a generic CRUD facade bound to one table and one database
// client. T is the row model; the table must have a unique "id" column.
//
// The repository never mutates the table schema; it only shapes queries
// against the bound client.
type Repository[T any] struct {
	mu    sync.RWMutex
	db    database.Client
	table string
}

// New creates a repository for the given table with no client bound yet.
// Bind must be called before the first operation.
func New[T any](table string) *Repository[T] {
	return &Repository[T]{table: table}
}

// For creates a fully bound repository.
func For[T any](db database.Client, table string) *Repository[T] {
	return &Repository[T]{db: db, table: table}
}

// Bind attaches the database client. Supports late injection; safe to call
// once before the first operation.
func (r *Repository[T]) Bind(db database.Client) *Repository[T] {
	r.mu.Lock()
	r.db = db
	r.mu.Unlock()
	return r
}

// BindTable attaches the table name.
func (r *Repository[T]) BindTable(table string) *Repository[T] {
	r.mu.Lock()
	r.table = table
	r.mu.Unlock()
	return r
}

// query validates both bindings and returns a builder scoped to the table.
// Each missing binding has its own error so setup mistakes are diagnosable.
func (r *Repository[T]) query(ctx context.Context) (*database.QueryBuilder, error) {
	r.mu.RLock()
	db, table := r.db, r.table
	r.mu.RUnlock()

	if db == nil {
		return nil, ErrClientNotBound
	}
	if table == "" {
		return nil, ErrTableNotBound
	}
	return db.Query(ctx).Table(table), nil
}

// Query exposes a table-scoped builder for queries the named operations
// don't cover. The same binding checks apply.
func (r *Repository[T]) Query(ctx context.Context) (*database.QueryBuilder, error) {
	return r.query(ctx)
}

// FindByID returns the record with the given id, or nil when none exists.
// At most one row is fetched regardless of how many could match.
func (r *Repository[T]) FindByID(ctx context.Context, id interface{}) (*T, error) {
	return r.FindOne(ctx, "id = ?", id)
}

// FindOne returns the first record matching the condition, or nil when none
// does. At most one row is fetched.
func (r *Repository[T]) FindOne(ctx context.Context, condition interface{}, args ...interface{}) (*T, error) {
	qb, err := r.query(ctx)
	if err != nil {
		return nil, err
	}

	var rows []T
	if err := qb.Where(condition, args...).Limit(1).Find(&rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

// FindAll returns every record matching the optional condition, in storage
// order. With no condition it scans the full table. The result may be empty.
func (r *Repository[T]) FindAll(ctx context.Context, conds ...interface{}) ([]T, error) {
	qb, err := r.query(ctx)
	if err != nil {
		return nil, err
	}
	if len(conds) > 0 {
		qb = qb.Where(conds[0], conds[1:]...)
	}

	var rows []T
	if err := qb.Find(&rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// Create inserts a single record and returns it with generated fields
// (identifier, defaults) filled in.
func (r *Repository[T]) Create(ctx context.Context, record *T) (*T, error) {
	qb, err := r.query(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := qb.Create(record); err != nil {
		return nil, err
	}
	return record, nil
}

// CreateMany batch-inserts the given records and returns them with generated
// fields filled in. An empty input yields an empty output without touching
// the database.
func (r *Repository[T]) CreateMany(ctx context.Context, records []T) ([]T, error) {
	qb, err := r.query(ctx)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return []T{}, nil
	}
	if _, err := qb.Create(&records); err != nil {
		return nil, err
	}
	return records, nil
}

// UpdateByID applies the partial changes to the record with the given id and
// returns the updated record. A non-matching id returns (nil, nil), not an
// error.
func (r *Repository[T]) UpdateByID(ctx context.Context, id interface{}, changes interface{}) (*T, error) {
	qb, err := r.query(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := qb.Where("id = ?", id).Updates(changes); err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

// Update applies the partial changes to every record matching the condition
// and returns the updated records, possibly empty.
//
// The matching ids are collected first so the updated rows can be re-read
// even when the update changes the columns the condition filtered on.
func (r *Repository[T]) Update(ctx context.Context, changes interface{}, condition interface{}, args ...interface{}) ([]T, error) {
	qb, err := r.query(ctx)
	if err != nil {
		return nil, err
	}

	var ids []interface{}
	if _, err := qb.Where(condition, args...).Pluck("id", &ids); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []T{}, nil
	}

	qb, err = r.query(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := qb.Where("id IN ?", ids).Updates(changes); err != nil {
		return nil, err
	}

	return r.FindAll(ctx, "id IN ?", ids)
}

// DeleteByID removes the record with the given id. It reports whether a row
// was actually removed; a non-matching id yields (false, nil), not an error.
func (r *Repository[T]) DeleteByID(ctx context.Context, id interface{}) (bool, error) {
	qb, err := r.query(ctx)
	if err != nil {
		return false, err
	}
	n, err := qb.Where("id = ?", id).Delete(new(T))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Delete removes every record matching the condition and returns the number
// of removed rows (0 when nothing matched).
func (r *Repository[T]) Delete(ctx context.Context, condition interface{}, args ...interface{}) (int64, error) {
	qb, err := r.query(ctx)
	if err != nil {
		return 0, err
	}
	return qb.Where(condition, args...).Delete(new(T))
}

// Count returns the full-table row count, 0 for an empty table.
func (r *Repository[T]) Count(ctx context.Context) (int64, error) {
	return r.CountBy(ctx)
}

// CountBy returns the number of rows matching the optional condition.
func (r *Repository[T]) CountBy(ctx context.Context, conds ...interface{}) (int64, error) {
	qb, err := r.query(ctx)
	if err != nil {
		return 0, err
	}
	if len(conds) > 0 {
		qb = qb.Where(conds[0], conds[1:]...)
	}

	var n int64
	if err := qb.Count(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// Exists reports whether at least one record matches the condition. At most
// one row is fetched.
func (r *Repository[T]) Exists(ctx context.Context, condition interface{}, args ...interface{}) (bool, error) {
	record, err := r.FindOne(ctx, condition, args...)
	if err != nil {
		return false, err
	}
	return record != nil, nil
}
