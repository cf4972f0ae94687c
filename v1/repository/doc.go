// Package repository provides a generic CRUD facade over one table.
//
// A Repository[T] binds exactly one table name and one database.Client. Both
// bindings may arrive late (dependency injection often wires them after
// construction), so their absence is only checked at first use, each with its
// own named error: ErrClientNotBound and ErrTableNotBound.
//
// T is the row model: a struct whose fields map to the table's columns,
// including the required unique "id" column.
//
// # Not-found is not an error
//
// FindByID and FindOne return (nil, nil) when nothing matches; UpdateByID
// returns (nil, nil) and DeleteByID returns (false, nil) for a non-matching
// id. "No match" is an expected outcome of these operations, not a failure.
//
// # Usage
//
//	type User struct {
//	    ID    int64  `gorm:"column:id"`
//	    Name  string `gorm:"column:name"`
//	    Email string `gorm:"column:email"`
//	}
//
//	users := repository.For[User](db, "users")
//
//	u, err := users.FindByID(ctx, 42)        // nil when absent
//	all, err := users.FindAll(ctx)            // full scan
//	active, err := users.FindAll(ctx, "status = ?", "active")
//
//	created, err := users.Create(ctx, &User{Name: "Ada"})
//	page, err := users.Paginate(ctx, repository.PageRequest{Page: 2, PageSize: 25})
//
// With fx, construct the repository unbound and bind the client once the
// database service has started:
//
//	fx.Provide(func() *repository.Repository[User] {
//	    return repository.New[User]("users")
//	}),
//	fx.Invoke(func(lc fx.Lifecycle, svc *database.Service, users *repository.Repository[User]) {
//	    lc.Append(fx.Hook{OnStart: func(ctx context.Context) error {
//	        db, err := svc.Connection()
//	        if err != nil {
//	            return err
//	        }
//	        users.Bind(db)
//	        return nil
//	    }})
//	})
//
// Predicates are passed through to the query handle unmodified, in GORM's
// (condition, args...) form.
package repository
