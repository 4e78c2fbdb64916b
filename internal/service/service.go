// Package service holds the business rules between the HTTP handlers and
// the repositories: request validation, reference numbering, status
// transitions, and KPI math.
package service

import (
	"github.com/vulcantech/smartstock/internal/repository"
)

// Services bundles every service for handler wiring.
type Services struct {
	Product     *ProductService
	Warehouse   *WarehouseService
	Transaction *TransactionService
	Forecast    *ForecastService
	Order       *OrderService
	KPI         *KPIService
}

func New(repos *repository.Repositories) *Services {
	return &Services{
		Product:     NewProductService(repos.Product),
		Warehouse:   NewWarehouseService(repos.Warehouse),
		Transaction: NewTransactionService(repos.Transaction),
		Forecast:    NewForecastService(repos.Forecast, repos.Transaction),
		Order:       NewOrderService(repos.Order, repos.Product, repos.Warehouse),
		KPI:         NewKPIService(repos.KPI),
	}
}
