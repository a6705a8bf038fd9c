package ports

import (
	"context"
)

type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork scopes a set of repository calls to one store transaction. Repositories
// obtained after Begin run inside the transaction; before Begin they run directly.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	Commit(ctx context.Context) error

	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository

	ShipmentRepository() ShipmentRepository
}
