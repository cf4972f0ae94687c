package mysql

import (
	"go.uber.org/fx"
)

// FXModule provides the MySQL adapter for dependency injection.
//
// Most applications should use database.FXModule instead, which selects the
// adapter by engine type and manages its lifecycle.
//
// Dependencies required by this module:
//   - A mysql.Config instance must be available in the dependency injection container
var FXModule = fx.Module("mysql",
	fx.Provide(NewAdapterWithDI),
)

// AdapterParams groups the dependencies needed to create a MySQL adapter via
// dependency injection.
type AdapterParams struct {
	fx.In

	Config Config
}

// NewAdapterWithDI creates a MySQL adapter using dependency injection.
func NewAdapterWithDI(params AdapterParams) *Adapter {
	return NewAdapter(params.Config)
}
