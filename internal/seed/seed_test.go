package seed

import (
	"testing"
	"time"

	"github.com/vulcantech/smartstock/internal/catalog"
	"github.com/vulcantech/smartstock/internal/entity"
	"github.com/vulcantech/smartstock/internal/export"
	"github.com/vulcantech/smartstock/internal/simulation"
	"github.com/vulcantech/smartstock/internal/testutil"
)

func TestLoadDirRoundTrip(t *testing.T) {
	db := testutil.SetupTestDB(t)

	cfg := simulation.Config{
		Seed:     42,
		Start:    time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		End:      time.Date(2024, 6, 8, 0, 0, 0, 0, time.UTC),
		BaseRate: 150,
		TierSkip: true,
	}
	res, err := simulation.New(cfg, catalog.New(), nil).Run()
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	dir := t.TempDir()
	if err := export.WriteAll(res, dir); err != nil {
		t.Fatalf("WriteAll failed: %v", err)
	}

	if err := NewLoader(db, nil).LoadDir(dir); err != nil {
		t.Fatalf("LoadDir failed: %v", err)
	}

	var products, warehouses, transactions, history int64
	db.Model(&entity.Product{}).Count(&products)
	db.Model(&entity.Warehouse{}).Count(&warehouses)
	db.Model(&entity.InventoryTransaction{}).Count(&transactions)
	db.Model(&entity.InventoryLevel{}).Count(&history)

	if int(products) != len(res.Products) {
		t.Errorf("loaded %d products, want %d", products, len(res.Products))
	}
	if int(warehouses) != len(res.Warehouses) {
		t.Errorf("loaded %d warehouses, want %d", warehouses, len(res.Warehouses))
	}
	if int(transactions) != len(res.Transactions) {
		t.Errorf("loaded %d transactions, want %d", transactions, len(res.Transactions))
	}
	wantHistory := 0
	for _, s := range res.Snapshots {
		wantHistory += len(s.Levels)
	}
	if int(history) != wantHistory {
		t.Errorf("loaded %d history rows, want %d", history, wantHistory)
	}

	// Reload replaces rather than appends.
	if err := NewLoader(db, nil).LoadDir(dir); err != nil {
		t.Fatalf("second LoadDir failed: %v", err)
	}
	var again int64
	db.Model(&entity.InventoryTransaction{}).Count(&again)
	if again != transactions {
		t.Errorf("reload changed transaction count: %d vs %d", again, transactions)
	}
}
