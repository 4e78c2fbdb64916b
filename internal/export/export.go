// Package export writes a generation result out as flat files: CSV seed
// data, JSON summaries, and a ready-to-run SQL script. Output is
// deterministic for a deterministic result.
package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vulcantech/smartstock/internal/simulation"
)

const timestampLayout = "2006-01-02 15:04:05"

// WriteAll renders every artifact for a run into dir, creating it if
// needed.
func WriteAll(res *simulation.Result, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	steps := []struct {
		name string
		fn   func(*simulation.Result, string) error
	}{
		{"products.csv", WriteProductsCSV},
		{"warehouses.csv", WriteWarehousesCSV},
		{"transactions.csv", WriteTransactionsCSV},
		{"inventory_history.csv", WriteInventoryHistoryCSV},
		{"inventory_history.json", WriteInventoryHistoryJSON},
		{"transaction_summary.json", WriteTransactionSummary},
		{"inventory_summary.json", WriteInventorySummary},
		{"seed.sql", WriteSeedSQL},
	}
	for _, s := range steps {
		if err := s.fn(res, filepath.Join(dir, s.name)); err != nil {
			return fmt.Errorf("write %s: %w", s.name, err)
		}
	}
	return nil
}
