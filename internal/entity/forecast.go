package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ForecastStatus is the lifecycle state of a forecast row.
type ForecastStatus string

const (
	ForecastActive   ForecastStatus = "active"
	ForecastPending  ForecastStatus = "pending"
	ForecastExpired  ForecastStatus = "expired"
	ForecastResolved ForecastStatus = "resolved"
)

// Valid reports whether s is one of the defined forecast statuses.
func (s ForecastStatus) Valid() bool {
	switch s {
	case ForecastActive, ForecastPending, ForecastExpired, ForecastResolved:
		return true
	}
	return false
}

// InventoryStatus is the derived severity label shown on the dashboard.
type InventoryStatus string

const (
	StockInStock       InventoryStatus = "in_stock"
	StockLow           InventoryStatus = "low_stock"
	StockOut           InventoryStatus = "out_of_stock"
	StockReorderNeeded InventoryStatus = "reorder_needed"
	StockResolved      InventoryStatus = "resolved"
)

// InventoryForecast is a per-(product, warehouse) demand projection row
// maintained by the external forecasting pipeline and served read-mostly.
type InventoryForecast struct {
	ForecastID      int                  `json:"forecast_id" gorm:"primaryKey;autoIncrement"`
	ProductID       int                  `json:"product_id" gorm:"not null;uniqueIndex:idx_forecast_pair"`
	WarehouseID     int                  `json:"warehouse_id" gorm:"not null;uniqueIndex:idx_forecast_pair"`
	CurrentStock    int                  `json:"current_stock"`
	Forecast30Days  int                  `json:"forecast_30_days"`
	ReorderPoint    int                  `json:"reorder_point"`
	ReorderQuantity int                  `json:"reorder_quantity"`
	ConfidenceScore decimal.NullDecimal  `json:"confidence_score" gorm:"type:decimal(5,4)"`
	Status          ForecastStatus       `json:"status" gorm:"size:20;not null;default:active;index"`
	LastUpdated     time.Time            `json:"last_updated" gorm:"autoUpdateTime"`

	Product   *Product   `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	Warehouse *Warehouse `json:"warehouse,omitempty" gorm:"foreignKey:WarehouseID"`
}

func (InventoryForecast) TableName() string {
	return "inventory_forecast"
}
