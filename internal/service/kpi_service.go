package service

import (
	"fmt"
	"time"

	"github.com/vulcantech/smartstock/internal/repository"
)

type KPIService struct {
	repo *repository.KPIRepository
}

func NewKPIService(repo *repository.KPIRepository) *KPIService {
	return &KPIService{repo: repo}
}

type TransactionKPI struct {
	WindowDays int                      `json:"window_days"`
	Total      int64                    `json:"total"`
	ByStatus   []repository.StatusCount `json:"by_status"`
}

func (s *KPIService) TransactionStatusKPI(now time.Time, windowDays int) (*TransactionKPI, error) {
	if windowDays <= 0 {
		windowDays = 30
	}
	counts, err := s.repo.TransactionStatusCounts(now.AddDate(0, 0, -windowDays))
	if err != nil {
		return nil, fmt.Errorf("status counts: %w", err)
	}
	kpi := &TransactionKPI{WindowDays: windowDays, ByStatus: counts}
	for _, c := range counts {
		kpi.Total += c.Count
	}
	return kpi, nil
}

func (s *KPIService) StockAlerts() (*repository.StockAlerts, error) {
	return s.repo.StockAlertCounts()
}

type ProcessingRateKPI struct {
	WindowDays   int     `json:"window_days"`
	CurrentRate  float64 `json:"current_rate"`
	PreviousRate float64 `json:"previous_rate"`
	Trend        string  `json:"trend"` // up, down, flat
}

func (s *KPIService) ProcessingRate(now time.Time, windowDays int) (*ProcessingRateKPI, error) {
	if windowDays <= 0 {
		windowDays = 30
	}
	cur, prev, err := s.repo.OnTimeProcessingRate(now, time.Duration(windowDays)*24*time.Hour)
	if err != nil {
		return nil, fmt.Errorf("processing rate: %w", err)
	}
	kpi := &ProcessingRateKPI{
		WindowDays:   windowDays,
		CurrentRate:  cur,
		PreviousRate: prev,
		Trend:        "flat",
	}
	const eps = 0.005
	if cur-prev > eps {
		kpi.Trend = "up"
	} else if prev-cur > eps {
		kpi.Trend = "down"
	}
	return kpi, nil
}

type TurnoverKPI struct {
	WindowDays       int     `json:"window_days"`
	AnnualizedTurns  float64 `json:"annualized_turns"`
	ConsumptionValue float64 `json:"consumption_value"`
	InventoryValue   float64 `json:"inventory_value"`
}

// InventoryTurnover annualizes windowed sales value against the current
// inventory value. Zero inventory reports zero turns rather than an error.
func (s *KPIService) InventoryTurnover(now time.Time, windowDays int) (*TurnoverKPI, error) {
	if windowDays <= 0 {
		windowDays = 90
	}
	in, err := s.repo.TurnoverInputs(now.AddDate(0, 0, -windowDays))
	if err != nil {
		return nil, fmt.Errorf("turnover inputs: %w", err)
	}
	kpi := &TurnoverKPI{
		WindowDays:       windowDays,
		ConsumptionValue: in.ConsumptionValue,
		InventoryValue:   in.InventoryValue,
	}
	if in.InventoryValue > 0 {
		annualized := in.ConsumptionValue * 365.0 / float64(windowDays)
		kpi.AnnualizedTurns = annualized / in.InventoryValue
	}
	return kpi, nil
}
