package repository

import (
	"github.com/vulcantech/smartstock/internal/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ForecastRepository struct {
	db *gorm.DB
}

func NewForecastRepository(db *gorm.DB) *ForecastRepository {
	return &ForecastRepository{db: db}
}

// Upsert keeps one forecast row per product/warehouse pair.
func (r *ForecastRepository) Upsert(f *entity.InventoryForecast) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "product_id"}, {Name: "warehouse_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"current_stock", "forecast_30_days", "reorder_point",
			"reorder_quantity", "confidence_score", "status", "last_updated",
		}),
	}).Create(f).Error
}

func (r *ForecastRepository) GetByID(id int) (*entity.InventoryForecast, error) {
	var f entity.InventoryForecast
	err := r.db.Preload("Product").Preload("Warehouse").
		First(&f, "forecast_id = ?", id).Error
	return &f, err
}

type ForecastListParams struct {
	WarehouseID int
	Status      string
	Limit       int
	Offset      int
}

// List orders forecasts most-urgent first: stockouts, then pairs due for
// reorder, then low stock, with healthy pairs last.
func (r *ForecastRepository) List(params ForecastListParams) ([]entity.InventoryForecast, int64, error) {
	query := r.db.Model(&entity.InventoryForecast{})
	if params.WarehouseID > 0 {
		query = query.Where("warehouse_id = ?", params.WarehouseID)
	}
	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var items []entity.InventoryForecast
	err := query.Preload("Product").Preload("Warehouse").
		Order(`CASE
			WHEN current_stock = 0 THEN 0
			WHEN current_stock <= reorder_point THEN 1
			WHEN current_stock <= reorder_point * 3 / 2 THEN 2
			ELSE 3
		END, current_stock`).
		Offset(params.Offset).Limit(params.Limit).Find(&items).Error
	return items, total, err
}

func (r *ForecastRepository) Delete(id int) error {
	return r.db.Delete(&entity.InventoryForecast{}, "forecast_id = ?", id).Error
}
