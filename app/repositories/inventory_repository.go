package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/DevOps-Sum22-Inventory-Squad/inventory/app/models"
	"github.com/DevOps-Sum22-Inventory-Squad/inventory/pkg/database"
	"github.com/DevOps-Sum22-Inventory-Squad/inventory/pkg/logger"
	"github.com/DevOps-Sum22-Inventory-Squad/inventory/pkg/orm"
)

// InventoryRepository handles database operations for Inventory.
type InventoryRepository struct {
	db *gorm.DB
}

// NewInventoryRepository binds to db, or to database.DB when db is nil.
func NewInventoryRepository(db *gorm.DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

func (r *InventoryRepository) query(ctx context.Context) *orm.Query {
	q := orm.DB()
	if r.db != nil {
		q = orm.New(r.db)
	}
	return q.WithContext(ctx)
}

// Create inserts inv and sets its InventoryID.
func (r *InventoryRepository) Create(ctx context.Context, inv *models.Inventory) error {
	if err := validateRecord(inv); err != nil {
		return err
	}

	inv.InventoryID = 0
	logger.WithCtx(ctx).Info("creating inventory", "inventory", inv.String())

	if err := r.query(ctx).Create(inv); err != nil {
		return classify(err, inv)
	}
	return nil
}

// Update replaces the mutable fields of the row with inv.InventoryID.
func (r *InventoryRepository) Update(ctx context.Context, inv *models.Inventory) error {
	if inv.InventoryID == 0 {
		return models.NewDataValidationError("Update called with empty inventory_id field")
	}
	if err := validateRecord(inv); err != nil {
		return err
	}

	logger.WithCtx(ctx).Info("updating inventory", "inventory", inv.String())

	affected, err := r.query(ctx).
		Model(&models.Inventory{}).
		Where("inventory_id = ?", inv.InventoryID).
		Updates(map[string]interface{}{
			"product_id":    inv.ProductID,
			"condition":     inv.Condition,
			"restock_level": inv.RestockLevel,
			"quantity":      inv.Quantity,
		})
	if err != nil {
		return classify(err, inv)
	}

	// MySQL reports 0 affected rows for a no-op update, so confirm absence.
	if affected == 0 {
		found, err := r.Find(ctx, inv.InventoryID)
		if err != nil {
			return err
		}
		if found == nil {
			return &models.NotFoundError{ID: inv.InventoryID}
		}
	}
	return nil
}

// Delete removes the row; deleting a missing id is not an error.
func (r *InventoryRepository) Delete(ctx context.Context, id int) error {
	logger.WithCtx(ctx).Info("deleting inventory", "inventory_id", id)
	_, err := r.query(ctx).Delete(&models.Inventory{}, "inventory_id = ?", id)
	return err
}

// Find returns nil, nil when no row has id.
func (r *InventoryRepository) Find(ctx context.Context, id int) (*models.Inventory, error) {
	var inv models.Inventory
	err := r.query(ctx).Model(&models.Inventory{}).Where("inventory_id = ?", id).First(&inv)
	if database.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// All returns every row ordered by id.
func (r *InventoryRepository) All(ctx context.Context) ([]models.Inventory, error) {
	return r.FindByAttributes(ctx, models.InventoryFilter{})
}

// FindByAttributes returns rows matching every constraint in f.
func (r *InventoryRepository) FindByAttributes(ctx context.Context, f models.InventoryFilter) ([]models.Inventory, error) {
	q := r.query(ctx).Model(&models.Inventory{})
	if !f.IsEmpty() {
		q = q.Where(f.Columns())
	}

	invs := []models.Inventory{}
	if err := q.Order("inventory_id").Get(&invs); err != nil {
		return nil, err
	}
	return invs, nil
}

// DeleteByAttributes removes rows matching f; an empty filter removes all.
func (r *InventoryRepository) DeleteByAttributes(ctx context.Context, f models.InventoryFilter) (int64, error) {
	q := r.query(ctx)
	if f.IsEmpty() {
		q = q.AllowGlobal()
	} else {
		q = q.Where(f.Columns())
	}

	n, err := q.Delete(&models.Inventory{})
	if err != nil {
		return 0, err
	}
	logger.WithCtx(ctx).Info("cleared inventories", "deleted", n)
	return n, nil
}

func validateRecord(inv *models.Inventory) error {
	if !inv.Condition.Valid() {
		return models.NewDataValidationError("Invalid Inventory: condition '%s' is not valid", inv.Condition)
	}
	if !inv.RestockLevel.Valid() {
		return models.NewDataValidationError("Invalid Inventory: restock_level '%s' is not valid", inv.RestockLevel)
	}
	if inv.Quantity < 0 {
		return models.NewDataValidationError("Invalid Inventory: quantity must not be negative")
	}
	return nil
}

func classify(err error, inv *models.Inventory) error {
	if database.IsDuplicateKey(err) {
		return &models.DuplicateKeyValueError{
			Message: fmt.Sprintf("Inventory with product_id '%d' and condition '%s' already exists.", inv.ProductID, inv.Condition),
		}
	}
	return err
}
