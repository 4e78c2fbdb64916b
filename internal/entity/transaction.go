package entity

import (
	"time"
)

// TransactionType classifies how a transaction moves stock.
type TransactionType string

const (
	TransactionInbound    TransactionType = "inbound"
	TransactionSale       TransactionType = "sale"
	TransactionAdjustment TransactionType = "adjustment"
)

// Valid reports whether t is one of the defined transaction types.
func (t TransactionType) Valid() bool {
	switch t {
	case TransactionInbound, TransactionSale, TransactionAdjustment:
		return true
	}
	return false
}

// Prefix returns the transaction-number prefix for the type.
func (t TransactionType) Prefix() string {
	switch t {
	case TransactionInbound:
		return "INB"
	case TransactionSale:
		return "SAL"
	case TransactionAdjustment:
		return "ADJ"
	}
	return "TXN"
}

// TransactionStatus is the delivery pipeline state of a transaction.
type TransactionStatus string

const (
	StatusPending    TransactionStatus = "pending"
	StatusConfirmed  TransactionStatus = "confirmed"
	StatusProcessing TransactionStatus = "processing"
	StatusShipped    TransactionStatus = "shipped"
	StatusDelivered  TransactionStatus = "delivered"
	StatusCancelled  TransactionStatus = "cancelled"
)

// Valid reports whether s is one of the defined statuses.
func (s TransactionStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusProcessing, StatusShipped,
		StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// InventoryTransaction is a single stock movement. Quantity is signed:
// positive for inbound, negative for sales and negative adjustments.
type InventoryTransaction struct {
	TransactionID        int               `json:"transaction_id" gorm:"primaryKey;autoIncrement"`
	TransactionNumber    string            `json:"transaction_number" gorm:"size:50;not null;uniqueIndex"`
	ProductID            int               `json:"product_id" gorm:"not null;index"`
	WarehouseID          int               `json:"warehouse_id" gorm:"not null;index"`
	QuantityChange       int               `json:"quantity_change" gorm:"not null"`
	TransactionType      TransactionType   `json:"transaction_type" gorm:"size:20;not null;index"`
	Status               TransactionStatus `json:"status" gorm:"size:20;not null;default:pending;index"`
	Notes                string            `json:"notes" gorm:"type:text"`
	TransactionTimestamp time.Time         `json:"transaction_timestamp" gorm:"not null;index"`
	UpdatedAt            time.Time         `json:"updated_at"`

	Product   *Product   `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	Warehouse *Warehouse `json:"warehouse,omitempty" gorm:"foreignKey:WarehouseID"`
}

func (InventoryTransaction) TableName() string {
	return "inventory_transactions"
}
