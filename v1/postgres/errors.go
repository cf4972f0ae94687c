package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Common PostgreSQL adapter errors.
var (
	// ErrNotConnected is returned when the live handle is accessed before
	// Connect succeeds or after Disconnect.
	ErrNotConnected = errors.New("postgresql: connection not established")

	// ErrRecordNotFound is returned when a query matches no rows.
	ErrRecordNotFound = errors.New("postgresql: record not found")

	// ErrDuplicateKey is returned on unique constraint violations.
	ErrDuplicateKey = errors.New("postgresql: duplicate key")

	// ErrForeignKeyViolation is returned on foreign key constraint violations.
	ErrForeignKeyViolation = errors.New("postgresql: foreign key violation")

	// ErrNotNullViolation is returned when a NOT NULL constraint is violated.
	ErrNotNullViolation = errors.New("postgresql: not null violation")
)

// PostgreSQL error codes this adapter classifies.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeNotNullViolation    = "23502"
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

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return ErrDuplicateKey
		case codeForeignKeyViolation:
			return ErrForeignKeyViolation
		case codeNotNullViolation:
			return ErrNotNullViolation
		}
	}

	return err
}
