package database

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// QueryBuilder provides a fluent interface for building database queries.
// Chainable methods return the builder; terminal methods execute the query.
//
// Example:
//
//	var users []User
//	err := db.Query(ctx).
//	    Table("users").
//	    Where("age > ?", 18).
//	    Order("created_at DESC").
//	    Limit(10).
//	    Find(&users)
type QueryBuilder struct {
	db *gorm.DB
}

// Select specifies the fields to retrieve.
//
// Example:
//
//	qb.Select("id, name, email")
func (qb *QueryBuilder) Select(query interface{}, args ...interface{}) *QueryBuilder {
	qb.db = qb.db.Select(query, args...)
	return qb
}

// Where adds a condition to the query. Multiple Where calls are combined
// with AND.
//
// Example:
//
//	qb.Where("status = ?", "active")
func (qb *QueryBuilder) Where(query interface{}, args ...interface{}) *QueryBuilder {
	qb.db = qb.db.Where(query, args...)
	return qb
}

// Or combines the given condition with previous conditions using OR.
func (qb *QueryBuilder) Or(query interface{}, args ...interface{}) *QueryBuilder {
	qb.db = qb.db.Or(query, args...)
	return qb
}

// Not negates the given condition.
func (qb *QueryBuilder) Not(query interface{}, args ...interface{}) *QueryBuilder {
	qb.db = qb.db.Not(query, args...)
	return qb
}

// Joins adds a JOIN clause to the query.
func (qb *QueryBuilder) Joins(query string, args ...interface{}) *QueryBuilder {
	qb.db = qb.db.Joins(query, args...)
	return qb
}

// Group adds a GROUP BY clause.
func (qb *QueryBuilder) Group(query string) *QueryBuilder {
	qb.db = qb.db.Group(query)
	return qb
}

// Having adds a HAVING clause, used together with Group.
func (qb *QueryBuilder) Having(query interface{}, args ...interface{}) *QueryBuilder {
	qb.db = qb.db.Having(query, args...)
	return qb
}

// Order specifies the result ordering.
//
// Example:
//
//	qb.Order("created_at DESC")
func (qb *QueryBuilder) Order(value interface{}) *QueryBuilder {
	qb.db = qb.db.Order(value)
	return qb
}

// Limit caps the number of rows fetched.
func (qb *QueryBuilder) Limit(limit int) *QueryBuilder {
	qb.db = qb.db.Limit(limit)
	return qb
}

// Offset skips the given number of rows before returning results.
func (qb *QueryBuilder) Offset(offset int) *QueryBuilder {
	qb.db = qb.db.Offset(offset)
	return qb
}

// Distinct selects distinct values of the given columns.
func (qb *QueryBuilder) Distinct(args ...interface{}) *QueryBuilder {
	qb.db = qb.db.Distinct(args...)
	return qb
}

// Table sets the table the query runs against.
func (qb *QueryBuilder) Table(name string) *QueryBuilder {
	qb.db = qb.db.Table(name)
	return qb
}

// Model sets the model the query runs against; the table name is derived
// from the model type.
func (qb *QueryBuilder) Model(value interface{}) *QueryBuilder {
	qb.db = qb.db.Model(value)
	return qb
}

// Unscoped disables GORM's soft-delete filtering for this query.
func (qb *QueryBuilder) Unscoped() *QueryBuilder {
	qb.db = qb.db.Unscoped()
	return qb
}

// Raw replaces the query with a raw SQL statement. Terminate with Scan.
func (qb *QueryBuilder) Raw(sql string, values ...interface{}) *QueryBuilder {
	qb.db = qb.db.Raw(sql, values...)
	return qb
}

// Clauses adds custom GORM clauses to the statement.
func (qb *QueryBuilder) Clauses(conds ...clause.Expression) *QueryBuilder {
	qb.db = qb.db.Clauses(conds...)
	return qb
}

// Returning requests the given columns back from a write statement.
// Engines without RETURNING support ignore it.
func (qb *QueryBuilder) Returning(columns ...string) *QueryBuilder {
	cols := make([]clause.Column, 0, len(columns))
	for _, c := range columns {
		cols = append(cols, clause.Column{Name: c})
	}
	qb.db = qb.db.Clauses(clause.Returning{Columns: cols})
	return qb
}

// Find executes the query and scans all matching rows into dest.
// No matching rows is not an error; dest is left empty.
func (qb *QueryBuilder) Find(dest interface{}) error {
	return qb.db.Find(dest).Error
}

// First fetches the first matching row ordered by primary key.
// Returns gorm.ErrRecordNotFound when nothing matches.
func (qb *QueryBuilder) First(dest interface{}) error {
	return qb.db.First(dest).Error
}

// Last fetches the last matching row ordered by primary key.
func (qb *QueryBuilder) Last(dest interface{}) error {
	return qb.db.Last(dest).Error
}

// Scan runs the query and scans the result into dest without model
// inference. Use together with Raw or Select.
func (qb *QueryBuilder) Scan(dest interface{}) error {
	return qb.db.Scan(dest).Error
}

// Count counts the rows matching the query so far.
func (qb *QueryBuilder) Count(count *int64) error {
	return qb.db.Count(count).Error
}

// Pluck retrieves a single column into dest and returns the number of rows
// read.
func (qb *QueryBuilder) Pluck(column string, dest interface{}) (int64, error) {
	tx := qb.db.Pluck(column, dest)
	return tx.RowsAffected, tx.Error
}

// Create inserts the given value and returns the number of inserted rows.
// Generated fields (identifiers, defaults) are written back into value.
func (qb *QueryBuilder) Create(value interface{}) (int64, error) {
	tx := qb.db.Create(value)
	return tx.RowsAffected, tx.Error
}

// Updates applies the given column changes to all matching rows and returns
// the number of affected rows. Values may be a map or a struct; struct zero
// values are skipped.
func (qb *QueryBuilder) Updates(values interface{}) (int64, error) {
	tx := qb.db.Updates(values)
	return tx.RowsAffected, tx.Error
}

// Delete removes all matching rows and returns the number of deleted rows.
func (qb *QueryBuilder) Delete(value interface{}) (int64, error) {
	tx := qb.db.Delete(value)
	return tx.RowsAffected, tx.Error
}
