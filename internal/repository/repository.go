package repository

import "gorm.io/gorm"

// Repositories bundles every repository over one shared connection.
type Repositories struct {
	Product     *ProductRepository
	Warehouse   *WarehouseRepository
	Transaction *TransactionRepository
	Forecast    *ForecastRepository
	Order       *OrderRepository
	KPI         *KPIRepository
}

func New(db *gorm.DB) *Repositories {
	return &Repositories{
		Product:     NewProductRepository(db),
		Warehouse:   NewWarehouseRepository(db),
		Transaction: NewTransactionRepository(db),
		Forecast:    NewForecastRepository(db),
		Order:       NewOrderRepository(db),
		KPI:         NewKPIRepository(db),
	}
}
