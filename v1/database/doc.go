// Package database provides the engine-agnostic database service for dbkit.
//
// The Service owns exactly one connection adapter, selected at startup from a
// closed EngineType enumeration. It connects on start, exposes the live
// handle as a narrow Client interface, and disconnects on teardown. The live
// handle is accessible only between a successful Start and a Disconnect.
//
// # Philosophy
//
// The package follows Go's "accept interfaces, return structs" principle:
//   - Applications depend on the Client interface
//   - Engine adapters (postgres, mysql) return concrete types
//   - The Service wraps the adapter's handle in a Client
//
// Repositories and application code never see a concrete ORM type; they see
// Client and QueryBuilder only. That keeps business logic
// database-agnostic and easy to fake in tests.
//
// # Basic Usage
//
//	svc := database.NewService(database.PostgresOptions(postgres.Config{
//	    Connection: postgres.Connection{
//	        Host:   "localhost",
//	        Port:   "5432",
//	        User:   "app",
//	        DbName: "app",
//	    },
//	}))
//
//	if err := svc.Start(ctx); err != nil {
//	    // "postgresql connection failed: ..." or
//	    // "unsupported database type: ..."
//	}
//	defer svc.Disconnect(ctx)
//
//	db, err := svc.Connection()
//	if err != nil {
//	    // database.ErrNotConnected
//	}
//
//	var users []User
//	err = db.Query(ctx).Table("users").Where("age > ?", 18).Find(&users)
//
// # Usage with FX
//
//	app := fx.New(
//	    logger.FXModule,
//	    database.FXModule,
//	    fx.Provide(func() database.Options {
//	        return database.PostgresOptions(postgres.Config{ /* ... */ })
//	    }),
//	    fx.Invoke(func(svc *database.Service) {
//	        // svc.Connection() is valid once the app has started.
//	    }),
//	)
//
// The fx module connects the service on application start and disconnects it
// on stop. Components that receive *Service resolve the Client lazily, which
// is what makes late injection into repositories work.
package database
