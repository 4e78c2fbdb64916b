package entity

import "gorm.io/gorm"

// AutoMigrate creates or updates all tables served by the API.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		// Catalog
		&Product{},
		&Warehouse{},

		// Movements and history
		&InventoryTransaction{},
		&InventoryLevel{},

		// Forecasting and ordering
		&InventoryForecast{},
		&ReplenishmentOrder{},
	)
}
