package simulation

import (
	"strings"
	"testing"
	"time"

	"github.com/vulcantech/smartstock/internal/catalog"
)

func TestHealthTierStable(t *testing.T) {
	cat := catalog.New()
	for _, p := range cat.Products {
		a := HealthTier(p.SKU)
		b := HealthTier(p.SKU)
		if a != b {
			t.Fatalf("HealthTier(%q) not stable: %d vs %d", p.SKU, a, b)
		}
		if a < 0 || a > 99 {
			t.Fatalf("HealthTier(%q) = %d, out of range", p.SKU, a)
		}
	}
}

func TestTierSkipProbability(t *testing.T) {
	cases := []struct {
		tier int
		want float64
	}{
		{0, 0.95}, {9, 0.95},
		{10, 0.85}, {24, 0.85},
		{25, 0.65}, {44, 0.65},
		{45, 0.30}, {69, 0.30},
		{70, 0}, {99, 0},
	}
	for _, tc := range cases {
		if got := tierSkipProbability(tc.tier); got != tc.want {
			t.Errorf("tierSkipProbability(%d) = %v, want %v", tc.tier, got, tc.want)
		}
	}
}

// newTestGenerator returns a generator with no tier skipping so reorder
// behavior is exercised directly.
func newTestGenerator(t *testing.T) *Generator {
	t.Helper()
	cfg := Config{
		Seed:     99,
		Start:    time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
		End:      time.Date(2024, 7, 3, 0, 0, 0, 0, time.UTC),
		BaseRate: 150,
	}
	return New(cfg, catalog.New(), nil)
}

// topUpAllPairs raises every stock position well above its reorder
// threshold so no pair is eligible for replenishment.
func topUpAllPairs(g *Generator) {
	for _, p := range g.cat.Products {
		for _, wid := range g.cat.WarehouseIDs() {
			target := 2 * p.ReorderLevel
			g.ledger.Apply(p.ProductID, wid, target-g.ledger.Get(p.ProductID, wid))
		}
	}
}

func TestReorderCooldownLimitsToOneOrder(t *testing.T) {
	g := newTestGenerator(t)
	topUpAllPairs(g)

	p := g.cat.Products[0]
	wid := g.cat.WarehouseIDs()[0]

	// Drop one pair below its reorder level.
	low := p.ReorderLevel - p.ReorderLevel/2
	g.ledger.Apply(p.ProductID, wid, low-g.ledger.Get(p.ProductID, wid))

	var reorders int
	day := g.cfg.Start
	for i := 0; i < 7; i++ {
		for _, tx := range g.reorderPass(day) {
			if tx.ProductID == p.ProductID && tx.WarehouseID == wid {
				reorders++
			}
		}
		day = day.AddDate(0, 0, 1)
	}

	if reorders != 1 {
		t.Fatalf("pair reordered %d times in a week, want exactly 1", reorders)
	}
	if got := g.ledger.Get(p.ProductID, wid); got < p.ReorderLevel {
		t.Errorf("stock after reorder = %d, still below reorder level %d", got, p.ReorderLevel)
	}
}

func TestReorderNoteUrgency(t *testing.T) {
	g := newTestGenerator(t)
	topUpAllPairs(g)

	p := g.cat.Products[0]
	wid := g.cat.WarehouseIDs()[0]
	g.ledger.Apply(p.ProductID, wid, -g.ledger.Get(p.ProductID, wid))

	txs := g.reorderPass(g.cfg.Start)
	if len(txs) != 1 {
		t.Fatalf("got %d reorders, want 1", len(txs))
	}
	if !strings.HasPrefix(txs[0].Notes, "CRITICAL:") {
		t.Errorf("stockout note = %q, want CRITICAL prefix", txs[0].Notes)
	}
	if txs[0].QuantityChange < 1 {
		t.Errorf("reorder quantity = %d, want at least 1", txs[0].QuantityChange)
	}
}

func TestReorderSkipsWellStockedPairs(t *testing.T) {
	g := newTestGenerator(t)
	topUpAllPairs(g)

	if txs := g.reorderPass(g.cfg.Start); len(txs) != 0 {
		t.Errorf("got %d reorders from a fully stocked network, want 0", len(txs))
	}
}
