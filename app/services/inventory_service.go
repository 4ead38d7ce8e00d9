package services

import (
	"context"
	"errors"
	"net/url"

	"github.com/DevOps-Sum22-Inventory-Squad/inventory/app/models"
	"github.com/DevOps-Sum22-Inventory-Squad/inventory/pkg/logger"
	"github.com/DevOps-Sum22-Inventory-Squad/inventory/pkg/metrics"
)

// InventoryStore is the persistence the service needs;
// *repositories.InventoryRepository satisfies it.
type InventoryStore interface {
	Create(ctx context.Context, inv *models.Inventory) error
	Update(ctx context.Context, inv *models.Inventory) error
	Delete(ctx context.Context, id int) error
	Find(ctx context.Context, id int) (*models.Inventory, error)
	All(ctx context.Context) ([]models.Inventory, error)
	FindByAttributes(ctx context.Context, f models.InventoryFilter) ([]models.Inventory, error)
	DeleteByAttributes(ctx context.Context, f models.InventoryFilter) (int64, error)
}

type InventoryService struct {
	store InventoryStore
}

func NewInventoryService(store InventoryStore) *InventoryService {
	return &InventoryService{store: store}
}

// List returns every inventory, or those matching the query filters.
func (s *InventoryService) List(ctx context.Context, query url.Values) (invs []models.Inventory, err error) {
	defer func() { record("list", err) }()

	f, err := models.ParseFilter(query)
	if err != nil {
		return nil, err
	}
	if f.IsEmpty() {
		return s.store.All(ctx)
	}
	return s.store.FindByAttributes(ctx, f)
}

// Get returns the inventory or a NotFoundError.
func (s *InventoryService) Get(ctx context.Context, id int) (inv *models.Inventory, err error) {
	defer func() { record("get", err) }()

	inv, err = s.store.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, &models.NotFoundError{ID: id}
	}
	return inv, nil
}

func (s *InventoryService) Create(ctx context.Context, inv *models.Inventory) (err error) {
	defer func() { record("create", err) }()

	if err = s.store.Create(ctx, inv); err != nil {
		return err
	}
	logger.WithCtx(ctx).Info("inventory created", "inventory_id", inv.InventoryID)
	return nil
}

// Update replaces the stored fields of id with those of changes.
func (s *InventoryService) Update(ctx context.Context, id int, changes *models.Inventory) (inv *models.Inventory, err error) {
	defer func() { record("update", err) }()

	existing, err := s.store.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, &models.NotFoundError{ID: id}
	}

	changes.InventoryID = id
	if err = s.store.Update(ctx, changes); err != nil {
		return nil, err
	}
	return changes, nil
}

// Delete is idempotent.
func (s *InventoryService) Delete(ctx context.Context, id int) (err error) {
	defer func() { record("delete", err) }()
	return s.store.Delete(ctx, id)
}

// Clear deletes every inventory matching the query filters. A malformed
// filter deletes nothing and is not reported to the caller.
func (s *InventoryService) Clear(ctx context.Context, query url.Values) (n int64, err error) {
	defer func() { record("clear", err) }()

	f, perr := models.ParseFilter(query)
	if perr != nil {
		logger.WithCtx(ctx).Warn("ignoring clear request with malformed filter",
			"query", query.Encode(),
			"error", perr,
		)
		return 0, nil
	}
	return s.store.DeleteByAttributes(ctx, f)
}

func record(op string, err error) {
	metrics.RecordOperation(op, result(err))
}

func result(err error) string {
	var (
		dve *models.DataValidationError
		dup *models.DuplicateKeyValueError
	)
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, models.ErrInventoryNotFound):
		return "not_found"
	case errors.As(err, &dve):
		return "invalid"
	case errors.As(err, &dup):
		return "conflict"
	default:
		return "error"
	}
}
