package services_test

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DevOps-Sum22-Inventory-Squad/inventory/app/models"
	"github.com/DevOps-Sum22-Inventory-Squad/inventory/app/repositories"
	"github.com/DevOps-Sum22-Inventory-Squad/inventory/app/services"
	"github.com/DevOps-Sum22-Inventory-Squad/inventory/internal/testdb"
	"github.com/DevOps-Sum22-Inventory-Squad/inventory/pkg/metrics"
)

func newService(t *testing.T) *services.InventoryService {
	t.Helper()
	return services.NewInventoryService(repositories.NewInventoryRepository(testdb.New(t)))
}

func create(t *testing.T, svc *services.InventoryService, productID int, c models.Condition, r models.RestockLevel) *models.Inventory {
	t.Helper()
	inv := &models.Inventory{ProductID: productID, Condition: c, RestockLevel: r, Quantity: 1}
	require.NoError(t, svc.Create(context.Background(), inv))
	return inv
}

func TestGetMissing(t *testing.T) {
	svc := newService(t)

	_, err := svc.Get(context.Background(), 12)
	assert.True(t, errors.Is(err, models.ErrInventoryNotFound))
	assert.EqualError(t, err, "Inventory with id '12' could not be found.")
}

func TestListFilters(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()
	create(t, svc, 5, models.ConditionNew, models.RestockLow)
	create(t, svc, 5, models.ConditionUsed, models.RestockLow)
	create(t, svc, 9, models.ConditionNew, models.RestockPlenty)

	all, err := svc.List(ctx, url.Values{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	got, err := svc.List(ctx, url.Values{"condition": {"NEW"}, "product_id": {"5"}})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 5, got[0].ProductID)

	_, err = svc.List(ctx, url.Values{"quantity": {"lots"}})
	var dve *models.DataValidationError
	assert.True(t, errors.As(err, &dve))
}

func TestUpdate(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()
	inv := create(t, svc, 5, models.ConditionNew, models.RestockLow)

	changes := &models.Inventory{ProductID: 6, Condition: models.ConditionUsed, RestockLevel: models.RestockPlenty, Quantity: 99}
	updated, err := svc.Update(ctx, inv.InventoryID, changes)
	require.NoError(t, err)
	assert.Equal(t, inv.InventoryID, updated.InventoryID)

	got, err := svc.Get(ctx, inv.InventoryID)
	require.NoError(t, err)
	assert.Equal(t, *updated, *got)

	_, err = svc.Update(ctx, 1000, changes)
	assert.True(t, errors.Is(err, models.ErrInventoryNotFound))
}

func TestClearSwallowsMalformedFilter(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()
	create(t, svc, 5, models.ConditionNew, models.RestockLow)
	create(t, svc, 6, models.ConditionNew, models.RestockPlenty)

	n, err := svc.Clear(ctx, url.Values{"restock_level": {"NOT_A_LEVEL"}})
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = svc.Clear(ctx, url.Values{"restock_level": {"LOW"}})
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	left, err := svc.List(ctx, url.Values{})
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, 6, left[0].ProductID)
}

func TestOperationsAreCounted(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()
	before := testutil.ToFloat64(metrics.InventoryOperations.WithLabelValues("create", "conflict"))

	create(t, svc, 1, models.ConditionNew, models.RestockLow)
	err := svc.Create(ctx, &models.Inventory{ProductID: 1, Condition: models.ConditionNew, RestockLevel: models.RestockLow})
	require.Error(t, err)

	after := testutil.ToFloat64(metrics.InventoryOperations.WithLabelValues("create", "conflict"))
	assert.Equal(t, before+1, after)
}
