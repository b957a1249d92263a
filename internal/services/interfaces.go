package services

import (
	"context"

	"items-api/internal/repositories"
)

// ItemService defines the business operations over the items collection.
//
// Bodies arrive as already-decoded JSON objects; the service owns payload
// validation and field normalization, and the repository owns persistence.
type ItemService interface {
	// ListItems returns every stored item.
	ListItems(ctx context.Context) ([]repositories.Record, error)

	// GetItem returns the item with the given id, or nil when absent.
	GetItem(ctx context.Context, id string) (repositories.Record, error)

	// CreateItem validates the payload and creates a new item. Returns a
	// ValidationError for bad payloads and repositories.ErrDuplicateID when
	// the id is already taken.
	CreateItem(ctx context.Context, body map[string]any) error

	// UpdateItem applies a partial update built from whichever of the
	// description/date keys are present in the body. An explicit JSON null
	// clears the field; an omitted key leaves it untouched.
	UpdateItem(ctx context.Context, id string, body map[string]any) error

	// DeleteItem removes the item; deleting a missing id still succeeds.
	DeleteItem(ctx context.Context, id string) error
}
