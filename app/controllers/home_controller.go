package controllers

import (
	_ "embed"
	"net/http"

	"github.com/DevOps-Sum22-Inventory-Squad/inventory/pkg/ctx"
)

//go:embed static/index.html
var indexPage []byte

// Home serves the static landing page.
func Home(c *ctx.Context) error {
	c.HTML(http.StatusOK, indexPage)
	return nil
}
