package repository

import (
	"github.com/vulcantech/smartstock/internal/entity"
	"gorm.io/gorm"
)

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Create(p *entity.Product) error {
	return r.db.Create(p).Error
}

func (r *ProductRepository) GetByID(id int) (*entity.Product, error) {
	var p entity.Product
	err := r.db.First(&p, "product_id = ?", id).Error
	return &p, err
}

func (r *ProductRepository) GetBySKU(sku string) (*entity.Product, error) {
	var p entity.Product
	err := r.db.First(&p, "sku = ?", sku).Error
	return &p, err
}

type ProductListParams struct {
	Category string
	Keyword  string
	Limit    int
	Offset   int
}

func (r *ProductRepository) List(params ProductListParams) ([]entity.Product, int64, error) {
	query := r.db.Model(&entity.Product{})
	if params.Category != "" {
		query = query.Where("category = ?", params.Category)
	}
	if params.Keyword != "" {
		kw := "%" + params.Keyword + "%"
		query = query.Where("name ILIKE ? OR sku ILIKE ?", kw, kw)
	}
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var items []entity.Product
	err := query.Order("product_id").
		Offset(params.Offset).Limit(params.Limit).Find(&items).Error
	return items, total, err
}

func (r *ProductRepository) Update(p *entity.Product) error {
	return r.db.Save(p).Error
}

func (r *ProductRepository) Delete(id int) error {
	return r.db.Delete(&entity.Product{}, "product_id = ?", id).Error
}

// HasTransactions reports whether any transaction references the product,
// which blocks deletion.
func (r *ProductRepository) HasTransactions(id int) (bool, error) {
	var n int64
	err := r.db.Model(&entity.InventoryTransaction{}).
		Where("product_id = ?", id).Limit(1).Count(&n).Error
	return n > 0, err
}
