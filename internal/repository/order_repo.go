package repository

import (
	"github.com/vulcantech/smartstock/internal/entity"
	"gorm.io/gorm"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) Create(o *entity.ReplenishmentOrder) error {
	return r.db.Create(o).Error
}

func (r *OrderRepository) GetByID(id int) (*entity.ReplenishmentOrder, error) {
	var o entity.ReplenishmentOrder
	err := r.db.Preload("Product").Preload("Warehouse").
		First(&o, "order_id = ?", id).Error
	return &o, err
}

type OrderListParams struct {
	Status      string
	WarehouseID int
	ProductID   int
	Limit       int
	Offset      int
}

func (r *OrderRepository) List(params OrderListParams) ([]entity.ReplenishmentOrder, int64, error) {
	query := r.db.Model(&entity.ReplenishmentOrder{})
	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}
	if params.WarehouseID > 0 {
		query = query.Where("warehouse_id = ?", params.WarehouseID)
	}
	if params.ProductID > 0 {
		query = query.Where("product_id = ?", params.ProductID)
	}
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var items []entity.ReplenishmentOrder
	err := query.Preload("Product").Preload("Warehouse").
		Order("created_at DESC, order_id DESC").
		Offset(params.Offset).Limit(params.Limit).Find(&items).Error
	return items, total, err
}

func (r *OrderRepository) Update(o *entity.ReplenishmentOrder) error {
	return r.db.Save(o).Error
}

func (r *OrderRepository) Delete(id int) error {
	return r.db.Delete(&entity.ReplenishmentOrder{}, "order_id = ?", id).Error
}
