package service

import (
	"fmt"

	"github.com/vulcantech/smartstock/internal/entity"
	"github.com/vulcantech/smartstock/internal/repository"
)

type WarehouseService struct {
	repo *repository.WarehouseRepository
}

func NewWarehouseService(repo *repository.WarehouseRepository) *WarehouseService {
	return &WarehouseService{repo: repo}
}

type CreateWarehouseRequest struct {
	Name      string `json:"name" binding:"required,max=255"`
	Location  string `json:"location"`
	ManagerID int    `json:"manager_id"`
	Timezone  string `json:"timezone"`
}

func (s *WarehouseService) Create(req CreateWarehouseRequest) (*entity.Warehouse, error) {
	w := &entity.Warehouse{
		Name:      req.Name,
		Location:  req.Location,
		ManagerID: req.ManagerID,
		Timezone:  req.Timezone,
	}
	if w.Timezone == "" {
		w.Timezone = "utc"
	}
	if err := s.repo.Create(w); err != nil {
		return nil, fmt.Errorf("create warehouse: %w", err)
	}
	return w, nil
}

func (s *WarehouseService) Get(id int) (*entity.Warehouse, error) {
	return s.repo.GetByID(id)
}

func (s *WarehouseService) List() ([]entity.Warehouse, error) {
	return s.repo.List()
}

type UpdateWarehouseRequest struct {
	Name      *string `json:"name" binding:"omitempty,max=255"`
	Location  *string `json:"location"`
	ManagerID *int    `json:"manager_id"`
	Timezone  *string `json:"timezone"`
}

func (s *WarehouseService) Update(id int, req UpdateWarehouseRequest) (*entity.Warehouse, error) {
	w, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		w.Name = *req.Name
	}
	if req.Location != nil {
		w.Location = *req.Location
	}
	if req.ManagerID != nil {
		w.ManagerID = *req.ManagerID
	}
	if req.Timezone != nil {
		w.Timezone = *req.Timezone
	}
	if err := s.repo.Update(w); err != nil {
		return nil, fmt.Errorf("update warehouse: %w", err)
	}
	return w, nil
}

func (s *WarehouseService) Delete(id int) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return err
	}
	used, err := s.repo.HasTransactions(id)
	if err != nil {
		return fmt.Errorf("check warehouse references: %w", err)
	}
	if used {
		return ErrInUse
	}
	return s.repo.Delete(id)
}
