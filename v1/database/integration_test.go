package database_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/helixbase/dbkit/v1/database"
	"github.com/helixbase/dbkit/v1/postgres"
	"github.com/helixbase/dbkit/v1/repository"
)

// Customer is a sample model for exercising the repository against a real
// database.
type Customer struct {
	ID    int64 `gorm:"primaryKey"`
	Name  string
	Email string `gorm:"uniqueIndex"`
	Age   int
}

// postgresContainer holds a running PostgreSQL container and the connection
// config pointing at it.
type postgresContainer struct {
	testcontainers.Container
	Config postgres.Config
}

func setupPostgresContainer(ctx context.Context) (*postgresContainer, error) {
	req := testcontainers.ContainerRequest{
		Image: "postgres:16",
		Env: map[string]string{
			"POSTGRES_USER":     "testuser",
			"POSTGRES_PASSWORD": "testpass",
			"POSTGRES_DB":       "testdb",
		},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(30 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start postgres container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("failed to get host: %w", err)
	}

	mappedPort, err := container.MappedPort(ctx, "5432")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("failed to get mapped port: %w", err)
	}

	return &postgresContainer{
		Container: container,
		Config: postgres.Config{
			Connection: postgres.Connection{
				Host:     host,
				Port:     mappedPort.Port(),
				User:     "testuser",
				Password: "testpass",
				DbName:   "testdb",
			},
		},
	}, nil
}

// TestServiceIntegration runs the full lifecycle and the repository surface
// against a containerized PostgreSQL instance.
func TestServiceIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	container, err := setupPostgresContainer(ctx)
	require.NoError(t, err)
	defer func() {
		if err := container.Terminate(ctx); err != nil {
			t.Fatalf("failed to terminate container: %s", err)
		}
	}()

	customers := repository.New[Customer]("customers")

	var svc *database.Service
	app := fxtest.New(t,
		fx.Provide(func() database.Options {
			return database.PostgresOptions(container.Config)
		}),
		database.FXModule,
		fx.Populate(&svc),
		fx.Invoke(func(lc fx.Lifecycle, s *database.Service) {
			lc.Append(fx.Hook{OnStart: func(ctx context.Context) error {
				client, err := s.Connection()
				if err != nil {
					return err
				}
				customers.Bind(client)
				return client.DB().AutoMigrate(&Customer{})
			}})
		}),
	)

	require.NoError(t, app.Start(ctx))
	assert.True(t, svc.TestConnection(ctx))

	t.Run("repository round trip", func(t *testing.T) {
		created, err := customers.Create(ctx, &Customer{Name: "Ada", Email: "ada@example.com", Age: 36})
		require.NoError(t, err)
		require.NotZero(t, created.ID)

		batch, err := customers.CreateMany(ctx, []Customer{
			{Name: "Grace", Email: "grace@example.com", Age: 45},
			{Name: "Edsger", Email: "edsger@example.com", Age: 52},
		})
		require.NoError(t, err)
		require.Len(t, batch, 2)

		found, err := customers.FindByID(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "Ada", found.Name)

		missing, err := customers.FindByID(ctx, int64(999999))
		require.NoError(t, err)
		assert.Nil(t, missing)

		all, err := customers.FindAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 3)

		total, err := customers.Count(ctx)
		require.NoError(t, err)
		assert.EqualValues(t, 3, total)

		n, err := customers.CountBy(ctx, "age > ?", 40)
		require.NoError(t, err)
		assert.EqualValues(t, 2, n)

		exists, err := customers.Exists(ctx, "email = ?", "grace@example.com")
		require.NoError(t, err)
		assert.True(t, exists)

		updated, err := customers.UpdateByID(ctx, created.ID, map[string]interface{}{"age": 37})
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, 37, updated.Age)

		bumped, err := customers.Update(ctx, map[string]interface{}{"age": 60}, "age > ?", 40)
		require.NoError(t, err)
		assert.Len(t, bumped, 2)
		for _, c := range bumped {
			assert.Equal(t, 60, c.Age)
		}

		deleted, err := customers.DeleteByID(ctx, created.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		deleted, err = customers.DeleteByID(ctx, created.ID)
		require.NoError(t, err)
		assert.False(t, deleted)

		removed, err := customers.Delete(ctx, "age = ?", 60)
		require.NoError(t, err)
		assert.EqualValues(t, 2, removed)
	})

	t.Run("pagination", func(t *testing.T) {
		seed := make([]Customer, 0, 25)
		for i := 0; i < 25; i++ {
			seed = append(seed, Customer{
				Name:  fmt.Sprintf("user-%02d", i),
				Email: fmt.Sprintf("user-%02d@example.com", i),
				Age:   20 + i,
			})
		}
		_, err := customers.CreateMany(ctx, seed)
		require.NoError(t, err)

		page, err := customers.Paginate(ctx, repository.PageRequest{Page: 2, PageSize: 10})
		require.NoError(t, err)
		assert.EqualValues(t, 25, page.Total)
		assert.Equal(t, 3, page.TotalPages)
		assert.Len(t, page.Data, 10)

		last, err := customers.Paginate(ctx, repository.PageRequest{Page: 3, PageSize: 10})
		require.NoError(t, err)
		assert.Len(t, last.Data, 5)
	})

	t.Run("duplicate key translation", func(t *testing.T) {
		client, err := svc.Connection()
		require.NoError(t, err)

		_, err = customers.Create(ctx, &Customer{Name: "dup", Email: "dup@example.com"})
		require.NoError(t, err)
		_, err = customers.Create(ctx, &Customer{Name: "dup2", Email: "dup@example.com"})
		require.Error(t, err)
		assert.ErrorIs(t, postgres.TranslateError(err), postgres.ErrDuplicateKey)

		// Transactions roll back cleanly on error.
		txErr := client.Transaction(ctx, func(tx database.Client) error {
			if _, err := tx.Exec(ctx, "DELETE FROM customers"); err != nil {
				return err
			}
			return fmt.Errorf("abort")
		})
		require.Error(t, txErr)

		n, err := customers.CountBy(ctx, "email = ?", "dup@example.com")
		require.NoError(t, err)
		assert.EqualValues(t, 1, n)
	})

	require.NoError(t, app.Stop(ctx))

	_, err = svc.Connection()
	assert.ErrorIs(t, err, database.ErrNotConnected)
}
