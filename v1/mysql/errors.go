package mysql

import (
	"errors"

	sqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// Common MySQL adapter errors.
var (
	// ErrNotConnected is returned when the live handle is accessed before
	// Connect succeeds or after Disconnect.
	ErrNotConnected = errors.New("mysql: connection not established")

	// ErrRecordNotFound is returned when a query matches no rows.
	ErrRecordNotFound = errors.New("mysql: record not found")

	// ErrDuplicateKey is returned on unique constraint violations.
	ErrDuplicateKey = errors.New("mysql: duplicate key")

	// ErrForeignKeyViolation is returned on foreign key constraint violations.
	ErrForeignKeyViolation = errors.New("mysql: foreign key violation")

	// ErrNotNullViolation is returned when a NOT NULL column gets no value.
	ErrNotNullViolation = errors.New("mysql: not null violation")
)

// MySQL server error numbers this adapter classifies.
// See https://dev.mysql.com/doc/mysql-errors/8.0/en/server-error-reference.html
const (
	numDuplicateEntry      = 1062
	numNoReferencedRow     = 1452
	numColumnCannotBeNull  = 1048
	numRowIsReferenced     = 1451
)

// TranslateError normalizes GORM and driver errors to this package's
// sentinels so callers can branch with errors.Is. Unrecognized errors are
// returned unchanged; nil stays nil.
func TranslateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrRecordNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateKey
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return ErrForeignKeyViolation
	}

	var myErr *sqldriver.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case numDuplicateEntry:
			return ErrDuplicateKey
		case numNoReferencedRow, numRowIsReferenced:
			return ErrForeignKeyViolation
		case numColumnCannotBeNull:
			return ErrNotNullViolation
		}
	}

	return err
}
