package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"items-api/internal/models"
	"items-api/internal/repositories"
)

// itemService implements the ItemService interface
type itemService struct {
	itemRepo  repositories.ItemRepository
	validator *validator.Validate
	logger    *logrus.Logger
}

// NewItemService creates a new item service instance
func NewItemService(itemRepo repositories.ItemRepository, logger *logrus.Logger) ItemService {
	return &itemService{
		itemRepo:  itemRepo,
		validator: validator.New(),
		logger:    logger,
	}
}

// ListItems returns every stored item
func (s *itemService) ListItems(ctx context.Context) ([]repositories.Record, error) {
	records, err := s.itemRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	return records, nil
}

// GetItem retrieves an item by id; a missing item returns (nil, nil)
func (s *itemService) GetItem(ctx context.Context, id string) (repositories.Record, error) {
	if id == "" {
		return nil, NewValidationError("id required")
	}

	record, err := s.itemRepo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	return record, nil
}

// CreateItem validates the payload and conditionally creates a new item
func (s *itemService) CreateItem(ctx context.Context, body map[string]any) error {
	item := models.ItemFromPayload(body)

	if err := item.Validate(); err != nil {
		return NewValidationError(err.Error())
	}
	if err := s.validator.Struct(item); err != nil {
		return NewValidationError(fmt.Sprintf("validation failed: %v", err))
	}

	if err := s.itemRepo.Create(ctx, item); err != nil {
		if errors.Is(err, repositories.ErrDuplicateID) {
			return err
		}
		return fmt.Errorf("failed to create item: %w", err)
	}

	s.logger.WithField("id", item.ID).Info("Item created")
	return nil
}

// UpdateItem applies a partial update over the mutable fields. The id field
// is immutable and never part of the update set.
func (s *itemService) UpdateItem(ctx context.Context, id string, body map[string]any) error {
	if id == "" {
		return NewValidationError("id required")
	}

	fields := make(map[string]any)
	for _, name := range []string{"description", "date"} {
		if value, ok := body[name]; ok {
			fields[name] = updateValue(value)
		}
	}
	if len(fields) == 0 {
		return NewValidationError("no fields to update")
	}

	if err := s.itemRepo.Update(ctx, id, fields); err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}

	s.logger.WithField("id", id).Info("Item updated")
	return nil
}

// DeleteItem removes an item by id; deletion is idempotent
func (s *itemService) DeleteItem(ctx context.Context, id string) error {
	if id == "" {
		return NewValidationError("id required")
	}

	if err := s.itemRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}

	s.logger.WithField("id", id).Info("Item deleted")
	return nil
}

// updateValue maps a decoded JSON value onto the type the repository stores.
// Explicit nulls pass through as nil; json.Number regains its numeric type.
func updateValue(v any) any {
	if n, ok := v.(json.Number); ok {
		if i, err := n.Int64(); err == nil {
			return i
		}
		if f, err := n.Float64(); err == nil {
			return f
		}
		return n.String()
	}
	return v
}
