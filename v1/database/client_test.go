package database

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newMockClient builds a Client over a sqlmock-backed GORM handle.
func newMockClient(t *testing.T) (Client, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)

	db, err := gorm.Open(pgdriver.New(pgdriver.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		mock.ExpectClose()
		require.NoError(t, sqlDB.Close())
		require.NoError(t, mock.ExpectationsWereMet())
	})

	return NewClient(db), mock
}

func TestSessionExec(t *testing.T) {
	ctx := context.Background()

	t.Run("reports affected rows", func(t *testing.T) {
		client, mock := newMockClient(t)
		mock.ExpectExec(`UPDATE "users" SET status = \$1`).
			WithArgs("archived").
			WillReturnResult(sqlmock.NewResult(0, 3))

		n, err := client.Exec(ctx, `UPDATE "users" SET status = ?`, "archived")
		require.NoError(t, err)
		assert.EqualValues(t, 3, n)
	})

	t.Run("propagates statement errors", func(t *testing.T) {
		client, mock := newMockClient(t)
		mock.ExpectExec(`DROP TABLE "users"`).
			WillReturnError(errors.New("permission denied"))

		_, err := client.Exec(ctx, `DROP TABLE "users"`)
		assert.EqualError(t, err, "permission denied")
	})
}

func TestSessionTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("commits when the callback succeeds", func(t *testing.T) {
		client, mock := newMockClient(t)
		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM "sessions"`).
			WillReturnResult(sqlmock.NewResult(0, 5))
		mock.ExpectCommit()

		err := client.Transaction(ctx, func(tx Client) error {
			n, err := tx.Exec(ctx, `DELETE FROM "sessions"`)
			require.NoError(t, err)
			assert.EqualValues(t, 5, n)
			return nil
		})
		assert.NoError(t, err)
	})

	t.Run("rolls back when the callback fails", func(t *testing.T) {
		client, mock := newMockClient(t)
		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM "sessions"`).
			WillReturnResult(sqlmock.NewResult(0, 5))
		mock.ExpectRollback()

		boom := errors.New("validation failed")
		err := client.Transaction(ctx, func(tx Client) error {
			_, execErr := tx.Exec(ctx, `DELETE FROM "sessions"`)
			require.NoError(t, execErr)
			return boom
		})
		assert.ErrorIs(t, err, boom)
	})
}

func TestQueryBuilderFind(t *testing.T) {
	ctx := context.Background()
	client, mock := newMockClient(t)

	type account struct {
		ID   int64
		Name string
	}

	mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE name = \$1 ORDER BY id LIMIT \$2`).
		WithArgs("acme", 5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "acme"))

	var out []account
	err := client.Query(ctx).
		Table("accounts").
		Where("name = ?", "acme").
		Order("id").
		Limit(5).
		Find(&out)

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "acme", out[0].Name)
}

func TestQueryBuilderCount(t *testing.T) {
	ctx := context.Background()
	client, mock := newMockClient(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "accounts" WHERE active = \$1`).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

	var n int64
	err := client.Query(ctx).Table("accounts").Where("active = ?", true).Count(&n)
	require.NoError(t, err)
	assert.EqualValues(t, 12, n)
}

func TestSessionPing(t *testing.T) {
	client, mock := newMockClient(t)
	mock.ExpectPing()
	assert.NoError(t, client.Ping(context.Background()))
}

func TestSessionDB(t *testing.T) {
	client, _ := newMockClient(t)
	require.NotNil(t, client.DB())
	assert.IsType(t, &gorm.DB{}, client.DB())
}
