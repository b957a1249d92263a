package repositories

import (
	"context"

	"items-api/internal/models"
)

// Record is a single stored row decoded to plain Go values. Rows may carry
// attributes beyond the fields the API writes; reads return them as-is.
type Record map[string]any

// ItemRepository defines data access for the items table.
//
// Get returns a nil Record when no row exists for the id; absence is not an
// error. List drains every pagination continuation before returning. Create is
// conditional on the id not existing and returns ErrDuplicateID otherwise.
// Update applies a partial field set where a nil value stores an explicit null.
// Delete is idempotent: removing a non-existent id succeeds.
type ItemRepository interface {
	Get(ctx context.Context, id string) (Record, error)
	List(ctx context.Context) ([]Record, error)
	Create(ctx context.Context, item *models.Item) error
	Update(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
}
