package repository

import (
	"github.com/vulcantech/smartstock/internal/entity"
	"gorm.io/gorm"
)

type WarehouseRepository struct {
	db *gorm.DB
}

func NewWarehouseRepository(db *gorm.DB) *WarehouseRepository {
	return &WarehouseRepository{db: db}
}

func (r *WarehouseRepository) Create(w *entity.Warehouse) error {
	return r.db.Create(w).Error
}

func (r *WarehouseRepository) GetByID(id int) (*entity.Warehouse, error) {
	var w entity.Warehouse
	err := r.db.First(&w, "warehouse_id = ?", id).Error
	return &w, err
}

func (r *WarehouseRepository) List() ([]entity.Warehouse, error) {
	var items []entity.Warehouse
	err := r.db.Order("warehouse_id").Find(&items).Error
	return items, err
}

func (r *WarehouseRepository) Update(w *entity.Warehouse) error {
	return r.db.Save(w).Error
}

func (r *WarehouseRepository) Delete(id int) error {
	return r.db.Delete(&entity.Warehouse{}, "warehouse_id = ?", id).Error
}

func (r *WarehouseRepository) HasTransactions(id int) (bool, error) {
	var n int64
	err := r.db.Model(&entity.InventoryTransaction{}).
		Where("warehouse_id = ?", id).Limit(1).Count(&n).Error
	return n > 0, err
}
