package database

import (
	"context"

	"go.uber.org/fx"

	"github.com/helixbase/dbkit/v1/logger"
	"github.com/helixbase/dbkit/v1/metrics"
)

// FXModule provides the database service via dependency injection and wires
// its lifecycle: the service connects on application start and disconnects
// on stop.
//
// Usage:
//
//	app := fx.New(
//	    database.FXModule,
//	    fx.Provide(func() database.Options {
//	        return database.PostgresOptions(postgres.Config{ /* ... */ })
//	    }),
//	    fx.Invoke(func(svc *database.Service) {
//	        // svc.Connection() is valid once the app has started.
//	    }),
//	)
//
// Logger and metrics are optional; when absent the service logs nowhere and
// records nothing.
var FXModule = fx.Module("database",
	fx.Provide(NewServiceWithDI),
	fx.Invoke(RegisterDatabaseLifecycle),
)

// ServiceParams groups the dependencies needed to create the database
// service. The embedded fx.In marker enables automatic injection of the
// struct fields from the dependency container.
type ServiceParams struct {
	fx.In

	Options Options
	Logger  *logger.Logger   `optional:"true"`
	Metrics *metrics.Metrics `optional:"true"`
}

// NewServiceWithDI creates the database service using dependency injection.
// Engine dispatch and connection are deferred to the lifecycle's OnStart.
func NewServiceWithDI(params ServiceParams) *Service {
	svc := NewService(params.Options)
	if params.Logger != nil {
		svc.WithLogger(params.Logger)
	}
	if params.Metrics != nil {
		svc.WithMetrics(params.Metrics)
	}
	return svc
}

// LifecycleParams groups the dependencies needed for database lifecycle
// management.
type LifecycleParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Service   *Service
}

// RegisterDatabaseLifecycle registers the service with the fx lifecycle
// system: Start on application start, Disconnect on stop.
func RegisterDatabaseLifecycle(params LifecycleParams) {
	params.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return params.Service.Start(ctx)
		},
		OnStop: func(ctx context.Context) error {
			return params.Service.Disconnect(ctx)
		},
	})
}
