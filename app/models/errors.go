package models

import (
	"errors"
	"fmt"
)

// DataValidationError is malformed, missing or mistyped input.
type DataValidationError struct {
	Message string
}

func (e *DataValidationError) Error() string { return e.Message }

func NewDataValidationError(format string, args ...interface{}) *DataValidationError {
	return &DataValidationError{Message: fmt.Sprintf(format, args...)}
}

// DuplicateKeyValueError is a (product_id, condition) collision.
type DuplicateKeyValueError struct {
	Message string
}

func (e *DuplicateKeyValueError) Error() string { return e.Message }

// ErrInventoryNotFound matches any NotFoundError via errors.Is.
var ErrInventoryNotFound = errors.New("inventory not found")

// NotFoundError names the missing inventory_id.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Inventory with id '%d' could not be found.", e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrInventoryNotFound }
