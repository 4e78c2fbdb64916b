package export

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/vulcantech/smartstock/internal/simulation"
)

func writeCSV(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}

// WriteProductsCSV writes the product master with explicit IDs so the
// transaction references stay stable across loads.
func WriteProductsCSV(res *simulation.Result, path string) error {
	header := []string{"product_id", "name", "description", "sku", "price", "unit", "category", "reorder_level"}
	rows := make([][]string, 0, len(res.Products))
	for _, p := range res.Products {
		rows = append(rows, []string{
			strconv.Itoa(p.ProductID),
			p.Name,
			p.Description,
			p.SKU,
			p.Price.StringFixed(2),
			p.Unit,
			string(p.Category),
			strconv.Itoa(p.ReorderLevel),
		})
	}
	return writeCSV(path, header, rows)
}

func WriteWarehousesCSV(res *simulation.Result, path string) error {
	header := []string{"warehouse_id", "name", "location", "manager_id", "timezone"}
	rows := make([][]string, 0, len(res.Warehouses))
	for _, w := range res.Warehouses {
		rows = append(rows, []string{
			strconv.Itoa(w.WarehouseID),
			w.Name,
			w.Location,
			strconv.Itoa(w.ManagerID),
			w.Timezone,
		})
	}
	return writeCSV(path, header, rows)
}

func WriteTransactionsCSV(res *simulation.Result, path string) error {
	header := []string{
		"transaction_number", "product_id", "warehouse_id", "quantity_change",
		"transaction_type", "status", "notes", "transaction_timestamp", "updated_at",
	}
	rows := make([][]string, 0, len(res.Transactions))
	for _, t := range res.Transactions {
		rows = append(rows, []string{
			t.TransactionNumber,
			strconv.Itoa(t.ProductID),
			strconv.Itoa(t.WarehouseID),
			strconv.Itoa(t.QuantityChange),
			string(t.TransactionType),
			string(t.Status),
			t.Notes,
			t.TransactionTimestamp.Format(timestampLayout),
			t.UpdatedAt.Format(timestampLayout),
		})
	}
	return writeCSV(path, header, rows)
}

// WriteInventoryHistoryCSV writes one row per day, product and warehouse,
// in snapshot order.
func WriteInventoryHistoryCSV(res *simulation.Result, path string) error {
	header := []string{"date", "product_id", "warehouse_id", "inventory_level"}
	var rows [][]string
	for _, snap := range res.Snapshots {
		for _, lvl := range snap.Levels {
			rows = append(rows, []string{
				snap.Date.Format("2006-01-02"),
				strconv.Itoa(lvl.ProductID),
				strconv.Itoa(lvl.WarehouseID),
				strconv.Itoa(lvl.Level),
			})
		}
	}
	return writeCSV(path, header, rows)
}
