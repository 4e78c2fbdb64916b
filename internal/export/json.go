package export

import (
	"encoding/json"
	"os"
	"sort"

	"github.com/vulcantech/smartstock/internal/simulation"
)

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return err
	}
	return f.Close()
}

type historyRecord struct {
	Date           string `json:"date"`
	ProductID      int    `json:"product_id"`
	WarehouseID    int    `json:"warehouse_id"`
	InventoryLevel int    `json:"inventory_level"`
}

func WriteInventoryHistoryJSON(res *simulation.Result, path string) error {
	var records []historyRecord
	for _, snap := range res.Snapshots {
		for _, lvl := range snap.Levels {
			records = append(records, historyRecord{
				Date:           snap.Date.Format("2006-01-02"),
				ProductID:      lvl.ProductID,
				WarehouseID:    lvl.WarehouseID,
				InventoryLevel: lvl.Level,
			})
		}
	}
	return writeJSON(path, records)
}

type transactionSummary struct {
	TotalTransactions int            `json:"total_transactions"`
	DateRange         dateRange      `json:"date_range"`
	ByType            map[string]int `json:"by_type"`
	ByStatus          map[string]int `json:"by_status"`
	ByYear            map[string]int `json:"by_year"`
}

type dateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// WriteTransactionSummary aggregates the run for a quick sanity read
// without loading the full CSV.
func WriteTransactionSummary(res *simulation.Result, path string) error {
	s := transactionSummary{
		TotalTransactions: len(res.Transactions),
		DateRange: dateRange{
			Start: res.Config.Start.Format("2006-01-02"),
			End:   res.Config.End.Format("2006-01-02"),
		},
		ByType:   make(map[string]int),
		ByStatus: make(map[string]int),
		ByYear:   make(map[string]int),
	}
	for _, t := range res.Transactions {
		s.ByType[string(t.TransactionType)]++
		s.ByStatus[string(t.Status)]++
		s.ByYear[t.TransactionTimestamp.Format("2006")]++
	}
	return writeJSON(path, s)
}

type inventoryPosition struct {
	ProductID         int    `json:"product_id"`
	SKU               string `json:"sku"`
	WarehouseID       int    `json:"warehouse_id"`
	InventoryLevel    int    `json:"inventory_level"`
	ReorderLevel      int    `json:"reorder_level"`
	BelowReorderLevel bool   `json:"below_reorder_level"`
}

type inventorySummary struct {
	AsOf               string              `json:"as_of"`
	Positions          []inventoryPosition `json:"positions"`
	OutOfStockCount    int                 `json:"out_of_stock_count"`
	BelowReorderCount  int                 `json:"below_reorder_count"`
	TotalPositionCount int                 `json:"total_position_count"`
}

// WriteInventorySummary reports the closing stock positions from the
// final snapshot, ordered by product then warehouse.
func WriteInventorySummary(res *simulation.Result, path string) error {
	if len(res.Snapshots) == 0 {
		return writeJSON(path, inventorySummary{})
	}
	last := res.Snapshots[len(res.Snapshots)-1]

	reorder := make(map[int]int, len(res.Products))
	skus := make(map[int]string, len(res.Products))
	for _, p := range res.Products {
		reorder[p.ProductID] = p.ReorderLevel
		skus[p.ProductID] = p.SKU
	}

	s := inventorySummary{
		AsOf:               last.Date.Format("2006-01-02"),
		TotalPositionCount: len(last.Levels),
	}
	for _, lvl := range last.Levels {
		pos := inventoryPosition{
			ProductID:         lvl.ProductID,
			SKU:               skus[lvl.ProductID],
			WarehouseID:       lvl.WarehouseID,
			InventoryLevel:    lvl.Level,
			ReorderLevel:      reorder[lvl.ProductID],
			BelowReorderLevel: lvl.Level < reorder[lvl.ProductID],
		}
		if lvl.Level == 0 {
			s.OutOfStockCount++
		}
		if pos.BelowReorderLevel {
			s.BelowReorderCount++
		}
		s.Positions = append(s.Positions, pos)
	}
	sort.SliceStable(s.Positions, func(i, j int) bool {
		if s.Positions[i].ProductID != s.Positions[j].ProductID {
			return s.Positions[i].ProductID < s.Positions[j].ProductID
		}
		return s.Positions[i].WarehouseID < s.Positions[j].WarehouseID
	})
	return writeJSON(path, s)
}
