package controllers

import (
	"errors"
	"net/http"
	"sync"

	"github.com/DevOps-Sum22-Inventory-Squad/inventory/app/models"
	"github.com/DevOps-Sum22-Inventory-Squad/inventory/pkg/response"
)

var registerOnce sync.Once

// RegisterErrorTranslators teaches response.Err the inventory error types.
// Safe to call more than once.
func RegisterErrorTranslators() {
	registerOnce.Do(func() {
		response.RegisterTranslator(translateInventoryError)
	})
}

func translateInventoryError(err error) (int, string, bool) {
	var (
		dve *models.DataValidationError
		dup *models.DuplicateKeyValueError
		nf  *models.NotFoundError
	)
	switch {
	case errors.As(err, &dve):
		return http.StatusBadRequest, dve.Message, true
	case errors.As(err, &dup):
		return http.StatusConflict, dup.Message, true
	case errors.As(err, &nf):
		return http.StatusNotFound, nf.Error(), true
	case errors.Is(err, models.ErrInventoryNotFound):
		return http.StatusNotFound, err.Error(), true
	}
	return 0, "", false
}
