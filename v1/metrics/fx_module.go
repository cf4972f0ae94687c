package metrics

import (
	"context"
	"net/http"

	"go.uber.org/fx"

	"github.com/helixbase/dbkit/v1/logger"
)

// FXModule defines the Fx module for the metrics package.
//
// The module:
//  1. Provides the NewMetrics factory function to the dependency injection
//     container, making the Metrics instance available to other components
//  2. Invokes RegisterMetricsLifecycle to manage startup and graceful
//     shutdown of the Prometheus HTTP server
//
// Dependencies required by this module:
//   - A metrics.Config instance must be available in the dependency injection container
//   - A logger.Logger instance is optional
var FXModule = fx.Module("metrics",
	fx.Provide(NewMetricsWithDI),
	fx.Invoke(RegisterMetricsLifecycle),
)

// MetricsParams groups the dependencies needed to create the Metrics
// instance.
type MetricsParams struct {
	fx.In

	Config Config
	Logger *logger.Logger `optional:"true"`
}

// NewMetricsWithDI creates the Metrics instance using dependency injection.
func NewMetricsWithDI(params MetricsParams) *Metrics {
	return NewMetrics(params.Config)
}

// LifecycleParams groups the dependencies needed for metrics lifecycle
// management.
type LifecycleParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Metrics   *Metrics
	Logger    *logger.Logger `optional:"true"`
}

// RegisterMetricsLifecycle launches the Prometheus HTTP server on
// application start and shuts it down gracefully on stop.
func RegisterMetricsLifecycle(params LifecycleParams) {
	log := params.Logger
	if log == nil {
		log = logger.Nop()
	}

	params.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("starting metrics server", nil, map[string]interface{}{
					"address": params.Metrics.Server.Addr,
				})
				if err := params.Metrics.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Error("metrics server terminated", err, nil)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return params.Metrics.Server.Shutdown(ctx)
		},
	})
}
