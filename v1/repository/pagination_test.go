package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOffsetFor(t *testing.T) {
	assert.Equal(t, 0, offsetFor(1, 10))
	assert.Equal(t, 10, offsetFor(2, 10))
	assert.Equal(t, 6, offsetFor(3, 3))
	assert.Equal(t, 90, offsetFor(10, 10))
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 3, totalPages(25, 10))
	assert.Equal(t, 3, totalPages(7, 3))
	assert.Equal(t, 1, totalPages(10, 10))
	assert.Equal(t, 2, totalPages(11, 10))
	assert.Equal(t, 0, totalPages(0, 10))
}

func TestPaginate(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults to first page of ten", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(25))
		mock.ExpectQuery(`SELECT \* FROM "users" LIMIT \$1`).
			WithArgs(10).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email"}).
				AddRow(1, "Ada", "ada@example.com"))

		page, err := repo.Paginate(ctx, PageRequest{})

		require.NoError(t, err)
		assert.Equal(t, 1, page.Page)
		assert.Equal(t, 10, page.PageSize)
		assert.Equal(t, int64(25), page.Total)
		assert.Equal(t, 3, page.TotalPages)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("computes offset from page and size", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))
		mock.ExpectQuery(`SELECT \* FROM "users" LIMIT \$1 OFFSET \$2`).
			WithArgs(3, 6).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email"}).
				AddRow(7, "Grace", "grace@example.com"))

		page, err := repo.Paginate(ctx, PageRequest{Page: 3, PageSize: 3})

		require.NoError(t, err)
		assert.Len(t, page.Data, 1, "last page holds the remainder")
		assert.Equal(t, 3, page.TotalPages)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("condition and ordering are passed through", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery(`SELECT count\(\*\) FROM "users" WHERE name LIKE \$1`).
			WithArgs("A%").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
		mock.ExpectQuery(`SELECT \* FROM "users" WHERE name LIKE \$1 ORDER BY name DESC LIMIT \$2`).
			WithArgs("A%", 10).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email"}).
				AddRow(1, "Ada", "ada@example.com"))

		page, err := repo.Paginate(ctx, PageRequest{
			Condition: "name LIKE ?",
			Args:      []interface{}{"A%"},
			OrderBy:   "name DESC",
		})

		require.NoError(t, err)
		assert.Equal(t, int64(1), page.Total)
		assert.Equal(t, 1, page.TotalPages)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("count always runs, even on an empty page", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectQuery(`SELECT \* FROM "users" LIMIT \$1`).
			WithArgs(10).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email"}))

		page, err := repo.Paginate(ctx, PageRequest{})

		require.NoError(t, err)
		assert.Empty(t, page.Data)
		assert.Zero(t, page.Total)
		assert.Zero(t, page.TotalPages)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
