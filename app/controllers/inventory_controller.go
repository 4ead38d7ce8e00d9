package controllers

import (
	"net/http"
	"strconv"

	"github.com/DevOps-Sum22-Inventory-Squad/inventory/app/models"
	"github.com/DevOps-Sum22-Inventory-Squad/inventory/app/services"
	"github.com/DevOps-Sum22-Inventory-Squad/inventory/config"
	"github.com/DevOps-Sum22-Inventory-Squad/inventory/pkg/ctx"
	"github.com/DevOps-Sum22-Inventory-Squad/inventory/pkg/router"
)

type InventoryController struct {
	service *services.InventoryService
	router  *router.Router
}

// NewInventoryController needs the router to build Location headers from
// the named show route.
func NewInventoryController(service *services.InventoryService, r *router.Router) *InventoryController {
	return &InventoryController{service: service, router: r}
}

// Index lists inventories, optionally filtered by query parameters.
func (ic *InventoryController) Index(c *ctx.Context) error {
	invs, err := ic.service.List(c.Context(), c.QueryValues())
	if err != nil {
		return err
	}

	out := make([]map[string]interface{}, 0, len(invs))
	for i := range invs {
		out = append(out, invs[i].Serialize())
	}
	c.Logger().Info("returning inventories", "count", len(out))
	c.JSON(http.StatusOK, out)
	return nil
}

func (ic *InventoryController) Store(c *ctx.Context) error {
	if err := c.RequireJSON(); err != nil {
		return err
	}

	inv, err := ic.bind(c)
	if err != nil {
		return err
	}
	if err := ic.service.Create(c.Context(), inv); err != nil {
		return err
	}

	location, err := ic.location(c, inv.InventoryID)
	if err != nil {
		return err
	}
	c.SetHeader("Location", location)
	c.JSON(http.StatusCreated, inv.Serialize())
	return nil
}

func (ic *InventoryController) Show(c *ctx.Context) error {
	id, err := inventoryID(c)
	if err != nil {
		return err
	}

	inv, err := ic.service.Get(c.Context(), id)
	if err != nil {
		return err
	}
	c.JSON(http.StatusOK, inv.Serialize())
	return nil
}

func (ic *InventoryController) Update(c *ctx.Context) error {
	if err := c.RequireJSON(); err != nil {
		return err
	}

	id, err := inventoryID(c)
	if err != nil {
		return err
	}
	// A missing row wins over a bad body.
	if _, err := ic.service.Get(c.Context(), id); err != nil {
		return err
	}

	changes, err := ic.bind(c)
	if err != nil {
		return err
	}
	inv, err := ic.service.Update(c.Context(), id, changes)
	if err != nil {
		return err
	}
	c.JSON(http.StatusOK, inv.Serialize())
	return nil
}

// Destroy answers 204 whether or not the inventory existed.
func (ic *InventoryController) Destroy(c *ctx.Context) error {
	id, err := inventoryID(c)
	if err != nil {
		return err
	}

	if err := ic.service.Delete(c.Context(), id); err != nil {
		return err
	}
	c.NoContent()
	return nil
}

// Clear deletes every inventory matching the query filters.
func (ic *InventoryController) Clear(c *ctx.Context) error {
	n, err := ic.service.Clear(c.Context(), c.QueryValues())
	if err != nil {
		return err
	}
	c.Logger().Info("inventories cleared", "deleted", n)
	c.NoContent()
	return nil
}

func (ic *InventoryController) bind(c *ctx.Context) (*models.Inventory, error) {
	var in models.InventoryInput
	if err := c.BindJSON(&in); err != nil {
		return nil, models.InvalidInventory(err)
	}

	inv := &models.Inventory{}
	if err := in.Apply(inv); err != nil {
		return nil, err
	}
	return inv, nil
}

func (ic *InventoryController) location(c *ctx.Context, id int) (string, error) {
	path, err := ic.router.URL("inventories.show", map[string]string{
		"inventory_id": strconv.Itoa(id),
	})
	if err != nil {
		return "", err
	}

	base := config.AppURL()
	if base == "" {
		base = c.BaseURL()
	}
	return base + path, nil
}

// inventoryID reads the path id; the route pattern only admits digits so a
// failure here is an id too large for int.
func inventoryID(c *ctx.Context) (int, error) {
	id, err := c.ParamInt("inventory_id")
	if err != nil {
		return 0, &models.NotFoundError{ID: 0}
	}
	return id, nil
}
