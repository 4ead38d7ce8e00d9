package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/DevOps-Sum22-Inventory-Squad/inventory/pkg/bind"
)

// Inventory is the stock held for one product in one condition.
// (product_id, condition) is unique.
type Inventory struct {
	InventoryID  int          `gorm:"column:inventory_id;primaryKey;autoIncrement" json:"inventory_id"`
	ProductID    int          `gorm:"column:product_id;not null;uniqueIndex:idx_inventories_product_condition,priority:1" json:"product_id"`
	Condition    Condition    `gorm:"column:condition;type:varchar(16);not null;uniqueIndex:idx_inventories_product_condition,priority:2" json:"condition"`
	RestockLevel RestockLevel `gorm:"column:restock_level;type:varchar(16);not null" json:"restock_level"`
	Quantity     int          `gorm:"column:quantity;not null" json:"quantity"`
}

func (Inventory) TableName() string { return "inventories" }

func (i Inventory) String() string {
	return fmt.Sprintf("<Inventory id=[%d] product_id=[%d] condition=[%s]>", i.InventoryID, i.ProductID, i.Condition)
}

// Serialize returns the record as a plain map keyed by JSON field name.
func (i *Inventory) Serialize() map[string]interface{} {
	return map[string]interface{}{
		"inventory_id":  i.InventoryID,
		"product_id":    i.ProductID,
		"condition":     i.Condition.String(),
		"restock_level": i.RestockLevel.String(),
		"quantity":      i.Quantity,
	}
}

// Deserialize overwrites every field except InventoryID from data.
func (i *Inventory) Deserialize(data map[string]interface{}) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return NewDataValidationError("Invalid Inventory: %v", err)
	}
	return i.decode(bytes.NewReader(raw))
}

// DecodeInventory reads a JSON object into a new, unsaved Inventory.
func DecodeInventory(r io.Reader) (*Inventory, error) {
	inv := &Inventory{}
	if err := inv.decode(r); err != nil {
		return nil, err
	}
	return inv, nil
}

func (i *Inventory) decode(r io.Reader) error {
	var in InventoryInput
	if err := bind.Decode(r, &in); err != nil {
		return InvalidInventory(err)
	}
	return in.Apply(i)
}

// InventoryInput is the accepted request payload. Pointers tell an absent
// field from a zero one; inventory_id is deliberately not accepted.
type InventoryInput struct {
	ProductID    *int    `json:"product_id"    validate:"required"`
	Condition    *string `json:"condition"     validate:"required"`
	RestockLevel *string `json:"restock_level" validate:"required"`
	Quantity     *int    `json:"quantity"      validate:"required,gte=0"`
}

// Apply copies validated input onto inv, parsing the enums.
func (in InventoryInput) Apply(inv *Inventory) error {
	if in.ProductID == nil || in.Condition == nil || in.RestockLevel == nil || in.Quantity == nil {
		return NewDataValidationError("Invalid Inventory: missing required field")
	}

	condition, err := ParseCondition(*in.Condition)
	if err != nil {
		return err
	}
	level, err := ParseRestockLevel(*in.RestockLevel)
	if err != nil {
		return err
	}
	if *in.Quantity < 0 {
		return NewDataValidationError("Invalid Inventory: quantity must not be negative")
	}

	inv.ProductID = *in.ProductID
	inv.Condition = condition
	inv.RestockLevel = level
	inv.Quantity = *in.Quantity
	return nil
}

// InvalidInventory wraps a bind/decode failure as a DataValidationError.
func InvalidInventory(err error) error {
	var dve *DataValidationError
	if errors.As(err, &dve) {
		return dve
	}
	if errors.Is(err, bind.ErrEmptyBody) {
		return NewDataValidationError("Invalid Inventory: body of request contained bad or no data")
	}
	return NewDataValidationError("Invalid Inventory: %s", err.Error())
}
