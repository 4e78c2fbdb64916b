package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductCategory groups products for demand weighting and reporting.
type ProductCategory string

const (
	CategoryMotors      ProductCategory = "Motors"
	CategoryBatteries   ProductCategory = "Batteries"
	CategoryFrames      ProductCategory = "Frames"
	CategoryWheels      ProductCategory = "Wheels"
	CategoryBrakes      ProductCategory = "Brakes"
	CategoryElectronics ProductCategory = "Electronics"
	CategoryDrivetrain  ProductCategory = "Drivetrain"
	CategoryAccessories ProductCategory = "Accessories"
)

// Product is a catalog item. Immutable after creation except through the
// explicit update endpoint.
type Product struct {
	ProductID    int             `json:"product_id" gorm:"primaryKey;autoIncrement"`
	Name         string          `json:"name" gorm:"size:200;not null"`
	Description  string          `json:"description" gorm:"type:text"`
	SKU          string          `json:"sku" gorm:"size:50;not null;uniqueIndex"`
	Price        decimal.Decimal `json:"price" gorm:"type:decimal(12,2);not null"`
	Unit         string          `json:"unit" gorm:"size:20;not null;default:piece"`
	Category     ProductCategory `json:"category" gorm:"size:50;index"`
	ReorderLevel int             `json:"reorder_level" gorm:"not null;default:10"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func (Product) TableName() string {
	return "products"
}
