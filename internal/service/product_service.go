package service

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/vulcantech/smartstock/internal/entity"
	"github.com/vulcantech/smartstock/internal/repository"
)

// ErrInUse marks a delete blocked by referencing rows.
var ErrInUse = errors.New("resource is referenced by existing transactions")

type ProductService struct {
	repo *repository.ProductRepository
}

func NewProductService(repo *repository.ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

type CreateProductRequest struct {
	Name         string `json:"name" binding:"required,max=255"`
	Description  string `json:"description"`
	SKU          string `json:"sku" binding:"required,max=100"`
	Price        string `json:"price" binding:"required"`
	Unit         string `json:"unit"`
	Category     string `json:"category" binding:"required"`
	ReorderLevel int    `json:"reorder_level" binding:"omitempty,gte=0"`
}

func (s *ProductService) Create(req CreateProductRequest) (*entity.Product, error) {
	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		return nil, fmt.Errorf("invalid price %q: %w", req.Price, err)
	}
	if price.IsNegative() {
		return nil, fmt.Errorf("price must not be negative")
	}

	p := &entity.Product{
		Name:         req.Name,
		Description:  req.Description,
		SKU:          req.SKU,
		Price:        price,
		Unit:         req.Unit,
		Category:     entity.ProductCategory(req.Category),
		ReorderLevel: req.ReorderLevel,
	}
	if p.Unit == "" {
		p.Unit = "piece"
	}
	if p.ReorderLevel == 0 {
		p.ReorderLevel = 10
	}
	if err := s.repo.Create(p); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return p, nil
}

func (s *ProductService) Get(id int) (*entity.Product, error) {
	return s.repo.GetByID(id)
}

func (s *ProductService) List(params repository.ProductListParams) ([]entity.Product, int64, error) {
	if params.Limit <= 0 {
		params.Limit = 50
	}
	return s.repo.List(params)
}

type UpdateProductRequest struct {
	Name         *string `json:"name" binding:"omitempty,max=255"`
	Description  *string `json:"description"`
	Price        *string `json:"price"`
	Unit         *string `json:"unit"`
	Category     *string `json:"category"`
	ReorderLevel *int    `json:"reorder_level" binding:"omitempty,gte=0"`
}

func (s *ProductService) Update(id int, req UpdateProductRequest) (*entity.Product, error) {
	p, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Price != nil {
		price, err := decimal.NewFromString(*req.Price)
		if err != nil {
			return nil, fmt.Errorf("invalid price %q: %w", *req.Price, err)
		}
		if price.IsNegative() {
			return nil, fmt.Errorf("price must not be negative")
		}
		p.Price = price
	}
	if req.Unit != nil {
		p.Unit = *req.Unit
	}
	if req.Category != nil {
		p.Category = entity.ProductCategory(*req.Category)
	}
	if req.ReorderLevel != nil {
		p.ReorderLevel = *req.ReorderLevel
	}
	if err := s.repo.Update(p); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	return p, nil
}

func (s *ProductService) Delete(id int) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return err
	}
	used, err := s.repo.HasTransactions(id)
	if err != nil {
		return fmt.Errorf("check product references: %w", err)
	}
	if used {
		return ErrInUse
	}
	return s.repo.Delete(id)
}
