package controllers

import (
	"net/http"

	"github.com/DevOps-Sum22-Inventory-Squad/inventory/pkg/ctx"
)

// Health answers {"status":200,"message":"OK"}.
func Health(c *ctx.Context) error {
	c.Message(http.StatusOK, "OK")
	return nil
}
