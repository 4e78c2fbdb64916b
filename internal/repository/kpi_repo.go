package repository

import (
	"time"

	"gorm.io/gorm"
)

type KPIRepository struct {
	db *gorm.DB
}

func NewKPIRepository(db *gorm.DB) *KPIRepository {
	return &KPIRepository{db: db}
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// TransactionStatusCounts aggregates statuses over the trailing window.
func (r *KPIRepository) TransactionStatusCounts(since time.Time) ([]StatusCount, error) {
	var counts []StatusCount
	err := r.db.Raw(`
		SELECT status, COUNT(*) AS count
		FROM inventory_transactions
		WHERE transaction_timestamp >= ?
		GROUP BY status
		ORDER BY status
	`, since).Scan(&counts).Error
	return counts, err
}

type StockAlerts struct {
	OutOfStock   int64 `json:"out_of_stock"`
	BelowReorder int64 `json:"below_reorder"`
	Total        int64 `json:"total_positions"`
}

// StockAlertCounts reads the latest snapshot and counts troubled pairs.
func (r *KPIRepository) StockAlertCounts() (*StockAlerts, error) {
	var a StockAlerts
	err := r.db.Raw(`
		SELECT
			COUNT(*) FILTER (WHERE h.inventory_level = 0) AS out_of_stock,
			COUNT(*) FILTER (WHERE h.inventory_level < p.reorder_level) AS below_reorder,
			COUNT(*) AS total
		FROM inventory_history h
		JOIN products p ON p.product_id = h.product_id
		WHERE h.date = (SELECT MAX(date) FROM inventory_history)
	`).Scan(&a).Error
	return &a, err
}

type processingWindow struct {
	Delivered int64
	Total     int64
}

// OnTimeProcessingRate compares the delivered share of non-cancelled
// transactions in the trailing window against the window before it.
func (r *KPIRepository) OnTimeProcessingRate(now time.Time, window time.Duration) (current, previous float64, err error) {
	cutoff := now.Add(-window)
	prevCutoff := now.Add(-2 * window)

	read := func(from, to time.Time) (processingWindow, error) {
		var w processingWindow
		err := r.db.Raw(`
			SELECT
				COUNT(*) FILTER (WHERE status = 'delivered') AS delivered,
				COUNT(*) AS total
			FROM inventory_transactions
			WHERE transaction_timestamp >= ? AND transaction_timestamp < ?
			  AND status != 'cancelled'
		`, from, to).Scan(&w).Error
		return w, err
	}

	cur, err := read(cutoff, now)
	if err != nil {
		return 0, 0, err
	}
	prev, err := read(prevCutoff, cutoff)
	if err != nil {
		return 0, 0, err
	}

	if cur.Total > 0 {
		current = float64(cur.Delivered) / float64(cur.Total)
	}
	if prev.Total > 0 {
		previous = float64(prev.Delivered) / float64(prev.Total)
	}
	return current, previous, nil
}

type TurnoverInput struct {
	ConsumptionValue float64
	InventoryValue   float64
}

// TurnoverInputs returns the sales value over the trailing window and the
// current inventory value, both priced at list price.
func (r *KPIRepository) TurnoverInputs(since time.Time) (*TurnoverInput, error) {
	var t TurnoverInput
	err := r.db.Raw(`
		SELECT
			COALESCE((
				SELECT SUM(ABS(t.quantity_change) * p.price)
				FROM inventory_transactions t
				JOIN products p ON p.product_id = t.product_id
				WHERE t.transaction_type = 'sale'
				  AND t.status != 'cancelled'
				  AND t.transaction_timestamp >= ?
			), 0) AS consumption_value,
			COALESCE((
				SELECT SUM(h.inventory_level * p.price)
				FROM inventory_history h
				JOIN products p ON p.product_id = h.product_id
				WHERE h.date = (SELECT MAX(date) FROM inventory_history)
			), 0) AS inventory_value
	`, since).Scan(&t).Error
	return &t, err
}
