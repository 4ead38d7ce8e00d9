package models

import (
	"net/url"
	"strconv"
	"strings"
)

// InventoryFilter holds optional equality constraints, ANDed together.
// A nil field is unconstrained.
type InventoryFilter struct {
	Condition    *Condition
	RestockLevel *RestockLevel
	Quantity     *int
	ProductID    *int
}

func (f InventoryFilter) IsEmpty() bool {
	return f.Condition == nil && f.RestockLevel == nil && f.Quantity == nil && f.ProductID == nil
}

// Columns returns the constrained columns keyed by column name.
func (f InventoryFilter) Columns() map[string]interface{} {
	cols := make(map[string]interface{}, 4)
	if f.Condition != nil {
		cols["condition"] = *f.Condition
	}
	if f.RestockLevel != nil {
		cols["restock_level"] = *f.RestockLevel
	}
	if f.Quantity != nil {
		cols["quantity"] = *f.Quantity
	}
	if f.ProductID != nil {
		cols["product_id"] = *f.ProductID
	}
	return cols
}

// ParseFilter reads condition, restock_level, quantity and product_id from
// a query string. Other parameters are ignored; an empty value counts as
// absent. Any value of the wrong type is a DataValidationError.
func ParseFilter(values url.Values) (InventoryFilter, error) {
	var f InventoryFilter

	if raw := strings.TrimSpace(values.Get("condition")); raw != "" {
		c, err := ParseCondition(raw)
		if err != nil {
			return InventoryFilter{}, err
		}
		f.Condition = &c
	}

	if raw := strings.TrimSpace(values.Get("restock_level")); raw != "" {
		r, err := ParseRestockLevel(raw)
		if err != nil {
			return InventoryFilter{}, err
		}
		f.RestockLevel = &r
	}

	for _, p := range []struct {
		name string
		dst  **int
	}{
		{"quantity", &f.Quantity},
		{"product_id", &f.ProductID},
	} {
		raw := strings.TrimSpace(values.Get(p.name))
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return InventoryFilter{}, NewDataValidationError("Invalid %s: '%s' is not an integer", p.name, raw)
		}
		*p.dst = &n
	}

	return f, nil
}
