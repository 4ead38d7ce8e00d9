package models_test

import (
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DevOps-Sum22-Inventory-Squad/inventory/app/models"
)

func validData() map[string]interface{} {
	return map[string]interface{}{
		"product_id":    5,
		"condition":     "OPEN_BOX",
		"restock_level": "LOW",
		"quantity":      12,
	}
}

func TestSerializeDeserializeRoundTrip(t *testing.T) {
	var inv models.Inventory
	require.NoError(t, inv.Deserialize(validData()))

	out := inv.Serialize()
	assert.Equal(t, 5, out["product_id"])
	assert.Equal(t, "OPEN_BOX", out["condition"])
	assert.Equal(t, "LOW", out["restock_level"])
	assert.Equal(t, 12, out["quantity"])
	assert.Equal(t, 0, out["inventory_id"])
}

func TestDeserializeIgnoresInventoryID(t *testing.T) {
	inv := models.Inventory{InventoryID: 9}
	data := validData()
	data["inventory_id"] = 777

	require.NoError(t, inv.Deserialize(data))
	assert.Equal(t, 9, inv.InventoryID)
}

func TestDeserializeAcceptsZeroQuantity(t *testing.T) {
	data := validData()
	data["quantity"] = 0

	var inv models.Inventory
	require.NoError(t, inv.Deserialize(data))
	assert.Equal(t, 0, inv.Quantity)
}

func TestDeserializeFailures(t *testing.T) {
	cases := map[string]func(map[string]interface{}){
		"missing product_id":  func(d map[string]interface{}) { delete(d, "product_id") },
		"missing condition":   func(d map[string]interface{}) { delete(d, "condition") },
		"missing restock":     func(d map[string]interface{}) { delete(d, "restock_level") },
		"missing quantity":    func(d map[string]interface{}) { delete(d, "quantity") },
		"string product_id":   func(d map[string]interface{}) { d["product_id"] = "5" },
		"fractional quantity": func(d map[string]interface{}) { d["quantity"] = 1.5 },
		"negative quantity":   func(d map[string]interface{}) { d["quantity"] = -1 },
		"bad condition":       func(d map[string]interface{}) { d["condition"] = "BROKEN" },
		"lowercase condition": func(d map[string]interface{}) { d["condition"] = "new" },
		"bad restock level":   func(d map[string]interface{}) { d["restock_level"] = "HUGE" },
		"numeric condition":   func(d map[string]interface{}) { d["condition"] = 1 },
		"null restock level":  func(d map[string]interface{}) { d["restock_level"] = nil },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			data := validData()
			mutate(data)

			var inv models.Inventory
			err := inv.Deserialize(data)

			var dve *models.DataValidationError
			require.True(t, errors.As(err, &dve), "got %v", err)
		})
	}
}

func TestDeserializeNamesOffendingEnumValue(t *testing.T) {
	data := validData()
	data["condition"] = "BROKEN"

	var inv models.Inventory
	err := inv.Deserialize(data)
	assert.ErrorContains(t, err, "'BROKEN'")
}

func TestDecodeInventory(t *testing.T) {
	inv, err := models.DecodeInventory(strings.NewReader(`{"product_id":1,"condition":"NEW","restock_level":"PLENTY","quantity":3}`))
	require.NoError(t, err)
	assert.Equal(t, models.ConditionNew, inv.Condition)
	assert.Equal(t, models.RestockPlenty, inv.RestockLevel)

	for _, body := range []string{``, `[]`, `"text"`, `{"product_id":`} {
		_, err := models.DecodeInventory(strings.NewReader(body))
		var dve *models.DataValidationError
		assert.True(t, errors.As(err, &dve), "body %q: got %v", body, err)
	}
}

func TestEnumScanAndValue(t *testing.T) {
	var c models.Condition
	require.NoError(t, c.Scan([]byte("USED")))
	assert.Equal(t, models.ConditionUsed, c)
	assert.Error(t, c.Scan("SHINY"))

	v, err := models.RestockModerate.Value()
	require.NoError(t, err)
	assert.Equal(t, "MODERATE", v)

	_, err = models.RestockLevel("nope").Value()
	assert.Error(t, err)
}

func TestNotFoundError(t *testing.T) {
	err := &models.NotFoundError{ID: 42}
	assert.True(t, errors.Is(err, models.ErrInventoryNotFound))
	assert.Equal(t, "Inventory with id '42' could not be found.", err.Error())
}

func TestParseFilter(t *testing.T) {
	f, err := models.ParseFilter(url.Values{
		"condition":  {"NEW"},
		"product_id": {"5"},
		"page":       {"2"},
	})
	require.NoError(t, err)
	require.NotNil(t, f.Condition)
	assert.Equal(t, models.ConditionNew, *f.Condition)
	assert.Equal(t, 5, *f.ProductID)
	assert.Nil(t, f.Quantity)
	assert.Nil(t, f.RestockLevel)
	assert.Equal(t, map[string]interface{}{"condition": models.ConditionNew, "product_id": 5}, f.Columns())

	empty, err := models.ParseFilter(url.Values{"condition": {""}})
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())
}

func TestParseFilterMalformed(t *testing.T) {
	for _, q := range []url.Values{
		{"quantity": {"ten"}},
		{"product_id": {"1.5"}},
		{"condition": {"MINT"}},
		{"restock_level": {"low"}},
	} {
		_, err := models.ParseFilter(q)
		var dve *models.DataValidationError
		assert.True(t, errors.As(err, &dve), "query %v: got %v", q, err)
	}
}
