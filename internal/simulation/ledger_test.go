package simulation

import (
	"math/rand"
	"testing"
	"time"

	"github.com/vulcantech/smartstock/internal/catalog"
)

func TestLedgerInitialLevels(t *testing.T) {
	cat := catalog.New()
	l := NewLedger(cat, rand.New(rand.NewSource(1)))

	for _, p := range cat.Products {
		for _, wid := range cat.WarehouseIDs() {
			level := l.Get(p.ProductID, wid)
			if level < p.ReorderLevel {
				t.Errorf("product %d warehouse %d starts at %d, below reorder level %d",
					p.ProductID, wid, level, p.ReorderLevel)
			}
		}
	}
}

func TestLedgerApplyClampsAtZero(t *testing.T) {
	cat := catalog.New()
	l := NewLedger(cat, rand.New(rand.NewSource(1)))

	wid := cat.WarehouseIDs()[0]
	l.Apply(1, wid, -1000000)
	if got := l.Get(1, wid); got != 0 {
		t.Errorf("level after huge withdrawal = %d, want 0", got)
	}
	l.Apply(1, wid, 25)
	if got := l.Get(1, wid); got != 25 {
		t.Errorf("level after restock = %d, want 25", got)
	}
}

func TestSnapshotCoversEveryPairInStableOrder(t *testing.T) {
	cat := catalog.New()
	l := NewLedger(cat, rand.New(rand.NewSource(1)))

	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	s1 := l.Snapshot(day)
	s2 := l.Snapshot(day)

	want := len(cat.Products) * len(cat.WarehouseIDs())
	if len(s1.Levels) != want {
		t.Fatalf("snapshot has %d levels, want %d", len(s1.Levels), want)
	}
	for i := range s1.Levels {
		if s1.Levels[i] != s2.Levels[i] {
			t.Fatalf("snapshot order unstable at %d: %+v vs %+v", i, s1.Levels[i], s2.Levels[i])
		}
	}
}

func TestReorderBookPrune(t *testing.T) {
	b := NewReorderBook()
	old := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	recent := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	b.Record(1, 1, old)
	b.Record(2, 1, recent)

	b.Prune(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC))

	if _, ok := b.Last(1, 1); ok {
		t.Error("stale entry survived prune")
	}
	if _, ok := b.Last(2, 1); !ok {
		t.Error("recent entry was pruned")
	}
	if b.Len() != 1 {
		t.Errorf("book has %d entries, want 1", b.Len())
	}
}
