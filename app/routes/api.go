package routes

import (
	"gorm.io/gorm"

	"github.com/DevOps-Sum22-Inventory-Squad/inventory/app/controllers"
	"github.com/DevOps-Sum22-Inventory-Squad/inventory/app/repositories"
	"github.com/DevOps-Sum22-Inventory-Squad/inventory/app/services"
	"github.com/DevOps-Sum22-Inventory-Squad/inventory/pkg/ctx"
	"github.com/DevOps-Sum22-Inventory-Squad/inventory/pkg/router"
)

// RegisterAPI mounts the service routes. A nil db uses the global
// connection.
func RegisterAPI(r *router.Router, db *gorm.DB) {
	controllers.RegisterErrorTranslators()

	inventories := controllers.NewInventoryController(
		services.NewInventoryService(repositories.NewInventoryRepository(db)),
		r,
	)

	r.Get("/", "home", ctx.Wrap(controllers.Home))
	r.Get("/health", "health", ctx.Wrap(controllers.Health))

	api := r.Group("/inventories")
	api.Get("", "inventories.index", ctx.Wrap(inventories.Index))
	api.Post("", "inventories.store", ctx.Wrap(inventories.Store))
	api.Delete("/clear", "inventories.clear", ctx.Wrap(inventories.Clear))
	api.Get("/{inventory_id:[0-9]+}", "inventories.show", ctx.Wrap(inventories.Show))
	api.Put("/{inventory_id:[0-9]+}", "inventories.update", ctx.Wrap(inventories.Update))
	api.Delete("/{inventory_id:[0-9]+}", "inventories.destroy", ctx.Wrap(inventories.Destroy))
}
