package migrations

import (
	"gorm.io/gorm"

	"github.com/DevOps-Sum22-Inventory-Squad/inventory/app/models"
	"github.com/DevOps-Sum22-Inventory-Squad/inventory/pkg/migration"
)

func init() {
	migration.Register("20221001000000_create_inventories_table", &CreateInventoriesTable{})
}

// CreateInventoriesTable creates inventories with the composite unique
// index on (product_id, condition).
type CreateInventoriesTable struct{}

func (m *CreateInventoriesTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Inventory{})
}

func (m *CreateInventoriesTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable(&models.Inventory{})
}
