package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vulcantech/smartstock/internal/catalog"
	"github.com/vulcantech/smartstock/internal/entity"
	"github.com/vulcantech/smartstock/internal/simulation"
)

func smallRun(t *testing.T) *simulation.Result {
	t.Helper()
	cfg := simulation.Config{
		Seed:     42,
		Start:    time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		End:      time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC),
		BaseRate: 150,
		TierSkip: true,
	}
	res, err := simulation.New(cfg, catalog.New(), nil).Run()
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	return res
}

func TestWriteAllProducesEveryArtifact(t *testing.T) {
	res := smallRun(t)
	dir := t.TempDir()

	if err := WriteAll(res, dir); err != nil {
		t.Fatalf("WriteAll failed: %v", err)
	}

	for _, name := range []string{
		"products.csv", "warehouses.csv", "transactions.csv",
		"inventory_history.csv", "inventory_history.json",
		"transaction_summary.json", "inventory_summary.json", "seed.sql",
	} {
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			t.Errorf("missing artifact %s: %v", name, err)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("artifact %s is empty", name)
		}
	}
}

func TestExportIsDeterministic(t *testing.T) {
	a := smallRun(t)
	b := smallRun(t)
	dirA, dirB := t.TempDir(), t.TempDir()

	if err := WriteAll(a, dirA); err != nil {
		t.Fatalf("WriteAll failed: %v", err)
	}
	if err := WriteAll(b, dirB); err != nil {
		t.Fatalf("WriteAll failed: %v", err)
	}

	for _, name := range []string{"transactions.csv", "inventory_history.csv", "seed.sql"} {
		bytesA, err := os.ReadFile(filepath.Join(dirA, name))
		if err != nil {
			t.Fatal(err)
		}
		bytesB, err := os.ReadFile(filepath.Join(dirB, name))
		if err != nil {
			t.Fatal(err)
		}
		if string(bytesA) != string(bytesB) {
			t.Errorf("%s differs between identical runs", name)
		}
	}
}

func TestTransactionsCSVColumns(t *testing.T) {
	res := smallRun(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "transactions.csv")

	if err := WriteTransactionsCSV(res, path); err != nil {
		t.Fatalf("WriteTransactionsCSV failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		"transaction_number", "product_id", "warehouse_id", "quantity_change",
		"transaction_type", "status", "notes", "transaction_timestamp", "updated_at",
	}
	for i, col := range want {
		if records[0][i] != col {
			t.Errorf("header[%d] = %q, want %q", i, records[0][i], col)
		}
	}
	if len(records)-1 != len(res.Transactions) {
		t.Errorf("csv has %d rows, want %d", len(records)-1, len(res.Transactions))
	}
}

func TestSeedSQLEscapesQuotes(t *testing.T) {
	res := &simulation.Result{
		Products: []entity.Product{{
			ProductID:    1,
			Name:         "O'Brien Special",
			SKU:          "TST-001",
			Price:        decimal.RequireFromString("9.99"),
			Unit:         "piece",
			Category:     entity.CategoryAccessories,
			ReorderLevel: 5,
		}},
		Warehouses: []entity.Warehouse{{WarehouseID: 1, Name: "Main", Timezone: "utc"}},
	}
	path := filepath.Join(t.TempDir(), "seed.sql")

	if err := WriteSeedSQL(res, path); err != nil {
		t.Fatalf("WriteSeedSQL failed: %v", err)
	}
	out, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(out), "O''Brien Special") {
		t.Error("single quote not escaped in seed SQL")
	}
	if !strings.Contains(string(out), "TRUNCATE") {
		t.Error("seed SQL missing truncate preamble")
	}
}
