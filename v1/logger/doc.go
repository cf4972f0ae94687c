// Package logger provides structured logging for dbkit components.
//
// It wraps Uber's Zap logger behind a small surface (Info, Warn, Error, Debug)
// so that database components can log without depending on a concrete logging
// backend. The package integrates with the fx dependency injection framework
// and flushes buffered entries on application shutdown.
//
// # Direct Usage (Without FX)
//
//	log := logger.NewLoggerClient(logger.Config{
//	    Level:       logger.Info,
//	    ServiceName: "orders-api",
//	})
//	log.Info("database connected", nil, map[string]interface{}{
//	    "engine": "postgresql",
//	})
//
// # Usage with FX
//
//	app := fx.New(
//	    logger.FXModule,
//	    fx.Provide(func() logger.Config {
//	        return logger.Config{Level: logger.Info, ServiceName: "orders-api"}
//	    }),
//	)
package logger
