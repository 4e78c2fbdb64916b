package entity

import (
	"time"
)

// OrderStatus is the approval lifecycle of a replenishment order.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderApproved  OrderStatus = "approved"
	OrderOrdered   OrderStatus = "ordered"
	OrderReceived  OrderStatus = "received"
	OrderCancelled OrderStatus = "cancelled"
)

// Valid reports whether s is one of the defined order statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderApproved, OrderOrdered, OrderReceived, OrderCancelled:
		return true
	}
	return false
}

// ReplenishmentOrder is a purchase request raised from a forecast
// recommendation or entered manually on the dashboard.
type ReplenishmentOrder struct {
	OrderID     int         `json:"order_id" gorm:"primaryKey;autoIncrement"`
	OrderNumber string      `json:"order_number" gorm:"size:50;not null;uniqueIndex"`
	ProductID   int         `json:"product_id" gorm:"not null;index"`
	WarehouseID int         `json:"warehouse_id" gorm:"not null;index"`
	Quantity    int         `json:"quantity" gorm:"not null"`
	RequestedBy string      `json:"requested_by" gorm:"size:100;not null"`
	Status      OrderStatus `json:"status" gorm:"size:20;not null;default:pending;index"`
	Notes       string      `json:"notes" gorm:"type:text"`
	ForecastID  *int        `json:"forecast_id" gorm:"index"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`

	Product   *Product   `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	Warehouse *Warehouse `json:"warehouse,omitempty" gorm:"foreignKey:WarehouseID"`
}

func (ReplenishmentOrder) TableName() string {
	return "replenishment_orders"
}
