package entity

import (
	"time"
)

// Warehouse is a stocking location.
type Warehouse struct {
	WarehouseID int       `json:"warehouse_id" gorm:"primaryKey;autoIncrement"`
	Name        string    `json:"name" gorm:"size:200;not null"`
	Location    string    `json:"location" gorm:"size:500"`
	ManagerID   int       `json:"manager_id"`
	Timezone    string    `json:"timezone" gorm:"size:50;not null;default:utc"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Warehouse) TableName() string {
	return "warehouses"
}

// InventoryLevel is one row of the daily snapshot history written by the
// data generator. It is the time series the forecasting pipeline trains on.
type InventoryLevel struct {
	ID             int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Date           time.Time `json:"date" gorm:"type:date;not null;index"`
	ProductID      int       `json:"product_id" gorm:"not null;index"`
	WarehouseID    int       `json:"warehouse_id" gorm:"not null;index"`
	InventoryLevel int       `json:"inventory_level" gorm:"not null"`
}

func (InventoryLevel) TableName() string {
	return "inventory_history"
}
