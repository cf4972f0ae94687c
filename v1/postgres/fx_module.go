package postgres

import (
	"go.uber.org/fx"
)

// FXModule provides the PostgreSQL adapter for dependency injection.
//
// Most applications should use database.FXModule instead, which selects the
// adapter by engine type and manages its lifecycle. This module exists for
// applications that are PostgreSQL-only and want the adapter directly.
//
// Dependencies required by this module:
//   - A postgres.Config instance must be available in the dependency injection container
var FXModule = fx.Module("postgres",
	fx.Provide(NewAdapterWithDI),
)

// AdapterParams groups the dependencies needed to create a PostgreSQL adapter
// via dependency injection. The embedded fx.In marker enables automatic
// injection of the struct fields from the dependency container.
type AdapterParams struct {
	fx.In

	Config Config
}

// NewAdapterWithDI creates a PostgreSQL adapter using dependency injection.
// It delegates to NewAdapter; connection lifecycle remains the caller's
// responsibility (or the database service's, when used through it).
func NewAdapterWithDI(params AdapterParams) *Adapter {
	return NewAdapter(params.Config)
}
