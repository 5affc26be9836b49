package ports

import (
	"context"

	"moving/internal/core/domain/model/kernel"
	"moving/internal/core/domain/model/mover"
)

// MoverRepository defines the persistence contract for mover aggregates.
type MoverRepository interface {
	// Add persists a new mover aggregate to storage.
	Add(ctx context.Context, aggregate *mover.Mover) error

	// Update persists changes to an existing mover aggregate.
	Update(ctx context.Context, aggregate *mover.Mover) error

	// Get retrieves a mover aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*mover.Mover, error)

	// GetForUpdate retrieves a mover aggregate with a row lock held for the
	// duration of the surrounding transaction. Used when the job counter and
	// rating must change atomically with a booking completion.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*mover.Mover, error)

	// GetAllBookable retrieves all approved and available movers.
	GetAllBookable(ctx context.Context) ([]*mover.Mover, error)

	// GetAll retrieves every mover. Used by the rating reconciliation job.
	GetAll(ctx context.Context) ([]*mover.Mover, error)
}
