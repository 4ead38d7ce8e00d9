package seeders

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/DevOps-Sum22-Inventory-Squad/inventory/app/models"
	"github.com/DevOps-Sum22-Inventory-Squad/inventory/app/repositories"
)

func init() {
	Register("inventories", SeedInventories)
}

var sampleInventories = []models.Inventory{
	{ProductID: 1001, Condition: models.ConditionNew, RestockLevel: models.RestockPlenty, Quantity: 120},
	{ProductID: 1001, Condition: models.ConditionOpenBox, RestockLevel: models.RestockLow, Quantity: 4},
	{ProductID: 1001, Condition: models.ConditionUsed, RestockLevel: models.RestockModerate, Quantity: 18},
	{ProductID: 1002, Condition: models.ConditionNew, RestockLevel: models.RestockEmpty, Quantity: 0},
	{ProductID: 1003, Condition: models.ConditionNew, RestockLevel: models.RestockModerate, Quantity: 35},
	{ProductID: 1003, Condition: models.ConditionUsed, RestockLevel: models.RestockLow, Quantity: 2},
}

// SeedInventories inserts the sample stock. Rows whose (product_id,
// condition) already exists are left alone, so seeding twice is harmless.
func SeedInventories(ctx context.Context, db *gorm.DB) error {
	repo := repositories.NewInventoryRepository(db)

	for _, sample := range sampleInventories {
		inv := sample
		err := repo.Create(ctx, &inv)

		var dup *models.DuplicateKeyValueError
		if err != nil && !errors.As(err, &dup) {
			return err
		}
	}
	return nil
}
