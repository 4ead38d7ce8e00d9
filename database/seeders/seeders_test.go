package seeders_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DevOps-Sum22-Inventory-Squad/inventory/app/models"
	"github.com/DevOps-Sum22-Inventory-Squad/inventory/app/repositories"
	"github.com/DevOps-Sum22-Inventory-Squad/inventory/database/seeders"
	"github.com/DevOps-Sum22-Inventory-Squad/inventory/internal/testdb"
)

func TestRunIsRepeatable(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()

	var out bytes.Buffer
	require.NoError(t, seeders.Run(ctx, db, &out))
	assert.Contains(t, out.String(), "Running seeder: inventories")

	repo := repositories.NewInventoryRepository(db)
	first, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Len(t, first, 6)

	require.NoError(t, seeders.Run(ctx, db, &out))
	second, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	condition := models.ConditionNew
	fresh, err := repo.FindByAttributes(ctx, models.InventoryFilter{Condition: &condition})
	require.NoError(t, err)
	assert.Len(t, fresh, 3)
}
