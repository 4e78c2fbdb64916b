package repository

import (
	"time"

	"github.com/vulcantech/smartstock/internal/entity"
	"gorm.io/gorm"
)

type TransactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Create(t *entity.InventoryTransaction) error {
	return r.db.Create(t).Error
}

func (r *TransactionRepository) GetByID(id int) (*entity.InventoryTransaction, error) {
	var t entity.InventoryTransaction
	err := r.db.Preload("Product").Preload("Warehouse").
		First(&t, "transaction_id = ?", id).Error
	return &t, err
}

func (r *TransactionRepository) GetByNumber(number string) (*entity.InventoryTransaction, error) {
	var t entity.InventoryTransaction
	err := r.db.Preload("Product").Preload("Warehouse").
		First(&t, "transaction_number = ?", number).Error
	return &t, err
}

type TransactionListParams struct {
	ProductIDs   []int
	WarehouseIDs []int
	Types        []string
	Statuses     []string
	From         *time.Time
	To           *time.Time
	SortBy       string // timestamp, product, warehouse
	SortDesc     bool
	Limit        int
	Offset       int
}

func (r *TransactionRepository) List(params TransactionListParams) ([]entity.InventoryTransaction, int64, error) {
	query := r.db.Model(&entity.InventoryTransaction{})
	if len(params.ProductIDs) > 0 {
		query = query.Where("product_id IN ?", params.ProductIDs)
	}
	if len(params.WarehouseIDs) > 0 {
		query = query.Where("warehouse_id IN ?", params.WarehouseIDs)
	}
	if len(params.Types) > 0 {
		query = query.Where("transaction_type IN ?", params.Types)
	}
	if len(params.Statuses) > 0 {
		query = query.Where("status IN ?", params.Statuses)
	}
	if params.From != nil {
		query = query.Where("transaction_timestamp >= ?", *params.From)
	}
	if params.To != nil {
		query = query.Where("transaction_timestamp <= ?", *params.To)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := "transaction_timestamp"
	switch params.SortBy {
	case "product":
		order = "product_id"
	case "warehouse":
		order = "warehouse_id"
	}
	if params.SortDesc {
		order += " DESC"
	}
	// Tie-break on id so pages stay stable.
	order += ", transaction_id"

	var items []entity.InventoryTransaction
	err := query.Preload("Product").Preload("Warehouse").
		Order(order).Offset(params.Offset).Limit(params.Limit).Find(&items).Error
	return items, total, err
}

func (r *TransactionRepository) UpdateStatus(id int, status entity.TransactionStatus) error {
	return r.db.Model(&entity.InventoryTransaction{}).
		Where("transaction_id = ?", id).
		Update("status", status).Error
}

func (r *TransactionRepository) Delete(id int) error {
	return r.db.Delete(&entity.InventoryTransaction{}, "transaction_id = ?", id).Error
}

// StockLevel is the current position of one product/warehouse pair,
// taken from the latest inventory snapshot.
type StockLevel struct {
	ProductID      int    `json:"product_id"`
	WarehouseID    int    `json:"warehouse_id"`
	InventoryLevel int    `json:"inventory_level"`
	ReorderLevel   int    `json:"reorder_level"`
	ProductName    string `json:"product_name"`
	SKU            string `json:"sku"`
}

// PairSales is the sales volume of one pair over a window.
type PairSales struct {
	ProductID   int
	WarehouseID int
	Units       int
}

// SalesSince sums units sold per pair from the given time onward.
func (r *TransactionRepository) SalesSince(since time.Time) ([]PairSales, error) {
	var sales []PairSales
	err := r.db.Raw(`
		SELECT product_id, warehouse_id, SUM(ABS(quantity_change)) AS units
		FROM inventory_transactions
		WHERE transaction_type = 'sale'
		  AND status != 'cancelled'
		  AND transaction_timestamp >= ?
		GROUP BY product_id, warehouse_id
	`, since).Scan(&sales).Error
	return sales, err
}

// CurrentStock reads the most recent snapshot per pair joined against
// product reorder levels.
func (r *TransactionRepository) CurrentStock() ([]StockLevel, error) {
	var levels []StockLevel
	err := r.db.Raw(`
		SELECT h.product_id, h.warehouse_id, h.inventory_level,
		       p.reorder_level, p.name AS product_name, p.sku
		FROM inventory_history h
		JOIN products p ON p.product_id = h.product_id
		WHERE h.date = (SELECT MAX(date) FROM inventory_history)
		ORDER BY h.product_id, h.warehouse_id
	`).Scan(&levels).Error
	return levels, err
}
