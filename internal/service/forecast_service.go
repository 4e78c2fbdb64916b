package service

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vulcantech/smartstock/internal/entity"
	"github.com/vulcantech/smartstock/internal/repository"
)

type ForecastService struct {
	repo *repository.ForecastRepository
	txns *repository.TransactionRepository
}

func NewForecastService(repo *repository.ForecastRepository, txns *repository.TransactionRepository) *ForecastService {
	return &ForecastService{repo: repo, txns: txns}
}

func (s *ForecastService) Get(id int) (*entity.InventoryForecast, error) {
	return s.repo.GetByID(id)
}

func (s *ForecastService) List(params repository.ForecastListParams) ([]entity.InventoryForecast, int64, error) {
	if params.Limit <= 0 {
		params.Limit = 50
	}
	return s.repo.List(params)
}

// Refresh recomputes one forecast row per stock position: current level
// from the latest snapshot, projected level from trailing 30-day sales,
// and a status bucket for the dashboard. Returns the refreshed pair count.
func (s *ForecastService) Refresh(now time.Time) (int, error) {
	stock, err := s.txns.CurrentStock()
	if err != nil {
		return 0, fmt.Errorf("read current stock: %w", err)
	}
	sales, err := s.txns.SalesSince(now.AddDate(0, 0, -30))
	if err != nil {
		return 0, fmt.Errorf("read sales window: %w", err)
	}

	sold := make(map[[2]int]int, len(sales))
	for _, ps := range sales {
		sold[[2]int{ps.ProductID, ps.WarehouseID}] = ps.Units
	}

	for _, lvl := range stock {
		units := sold[[2]int{lvl.ProductID, lvl.WarehouseID}]
		projected := lvl.InventoryLevel - units
		if projected < 0 {
			projected = 0
		}

		reorderQty := 0
		if lvl.InventoryLevel <= lvl.ReorderLevel {
			target := (lvl.ReorderLevel*12 + 9) / 10 // 1.2x, rounded up
			reorderQty = target - lvl.InventoryLevel
			if reorderQty < 1 {
				reorderQty = 1
			}
		}

		// Pairs with real sales history forecast better than idle ones.
		confidence := decimal.NewFromFloat(0.5)
		if units > 0 {
			confidence = decimal.NewFromFloat(0.85)
		}

		f := &entity.InventoryForecast{
			ProductID:       lvl.ProductID,
			WarehouseID:     lvl.WarehouseID,
			CurrentStock:    lvl.InventoryLevel,
			Forecast30Days:  projected,
			ReorderPoint:    lvl.ReorderLevel,
			ReorderQuantity: reorderQty,
			ConfidenceScore: decimal.NullDecimal{Decimal: confidence, Valid: true},
			Status:          entity.ForecastActive,
			LastUpdated:     now,
		}
		if err := s.repo.Upsert(f); err != nil {
			return 0, fmt.Errorf("upsert forecast for product %d warehouse %d: %w",
				lvl.ProductID, lvl.WarehouseID, err)
		}
	}
	return len(stock), nil
}

// InventoryStatus buckets a forecast for display, most urgent first in
// list ordering.
func InventoryStatusOf(f *entity.InventoryForecast) entity.InventoryStatus {
	switch {
	case f.Status == entity.ForecastResolved:
		return entity.StockResolved
	case f.CurrentStock == 0:
		return entity.StockOut
	case f.CurrentStock <= f.ReorderPoint:
		return entity.StockReorderNeeded
	case float64(f.CurrentStock) <= 1.5*float64(f.ReorderPoint):
		return entity.StockLow
	default:
		return entity.StockInStock
	}
}

// ActionFor maps a status bucket to the operator-facing call to action.
func ActionFor(status entity.InventoryStatus) string {
	switch status {
	case entity.StockOut:
		return "Order immediately"
	case entity.StockReorderNeeded:
		return "Reorder now"
	case entity.StockLow:
		return "Monitor closely"
	default:
		return "No action needed"
	}
}

func (s *ForecastService) Delete(id int) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}
