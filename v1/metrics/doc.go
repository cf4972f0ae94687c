// Package metrics exposes Prometheus instrumentation for dbkit.
//
// It maintains a per-service registry served over /metrics and ships three
// database-focused collectors out of the box:
//
//   - dbkit_queries_total{operation,status} — statement counter
//   - dbkit_query_duration_seconds{operation} — statement latency histogram
//   - dbkit_connection_up{engine} — connection state gauge
//
// Query metrics are collected through GORM callbacks registered by
// InstrumentGorm; the database service registers them automatically when a
// Metrics instance is attached. The connection gauge is flipped by the
// service on connect and disconnect.
//
// Usage with FX:
//
//	app := fx.New(
//	    metrics.FXModule,
//	    fx.Provide(func() metrics.Config {
//	        return metrics.Config{
//	            Address:     ":9090",
//	            ServiceName: "orders-api",
//	        }
//	    }),
//	)
package metrics
