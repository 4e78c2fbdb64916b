package simulation

import (
	"math/rand"
	"time"

	"github.com/vulcantech/smartstock/internal/catalog"
)

// pairKey identifies a (product, warehouse) stock position.
type pairKey struct {
	ProductID   int
	WarehouseID int
}

// PairLevel is one stock position inside a snapshot.
type PairLevel struct {
	ProductID   int
	WarehouseID int
	Level       int
}

// Snapshot is the end-of-day copy of every stock position. One snapshot
// is recorded per simulated calendar day.
type Snapshot struct {
	Date   time.Time
	Levels []PairLevel
}

// Ledger tracks current stock per (product, warehouse) pair. All stock
// mutation goes through Apply, which floors levels at zero; no caller may
// write levels directly.
type Ledger struct {
	levels map[pairKey]int
	pairs  []pairKey
}

// NewLedger seeds every pair at reorder_level x uniform(1.2, 2.2), scaled
// by the warehouse capacity tier and floored at the reorder level, so the
// run starts with a realistic mix of healthy and near-critical positions.
func NewLedger(cat *catalog.Catalog, rng *rand.Rand) *Ledger {
	l := &Ledger{levels: make(map[pairKey]int)}
	for _, p := range cat.Products {
		for _, w := range cat.Warehouses {
			base := float64(p.ReorderLevel) * uniform(rng, 1.2, 2.2)
			mult := uniform(rng, w.CapacityMin, w.CapacityMax)
			level := int(base * mult)
			if level < p.ReorderLevel {
				level = p.ReorderLevel
			}
			k := pairKey{p.ProductID, w.WarehouseID}
			l.levels[k] = level
			l.pairs = append(l.pairs, k)
		}
	}
	return l
}

// Get returns the current stock for a pair, zero if unseen.
func (l *Ledger) Get(productID, warehouseID int) int {
	return l.levels[pairKey{productID, warehouseID}]
}

// Apply adds delta to the pair's stock, clamping at zero.
func (l *Ledger) Apply(productID, warehouseID, delta int) {
	k := pairKey{productID, warehouseID}
	level := l.levels[k] + delta
	if level < 0 {
		level = 0
	}
	l.levels[k] = level
}

// Snapshot copies every position in seeding order.
func (l *Ledger) Snapshot(date time.Time) Snapshot {
	s := Snapshot{Date: date, Levels: make([]PairLevel, 0, len(l.pairs))}
	for _, k := range l.pairs {
		s.Levels = append(s.Levels, PairLevel{k.ProductID, k.WarehouseID, l.levels[k]})
	}
	return s
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// ReorderBook records the last reorder date per pair to enforce the
// cooldown between replenishments.
type ReorderBook struct {
	last map[pairKey]time.Time
}

// NewReorderBook returns an empty reorder history.
func NewReorderBook() *ReorderBook {
	return &ReorderBook{last: make(map[pairKey]time.Time)}
}

// Last returns the most recent reorder date for a pair.
func (b *ReorderBook) Last(productID, warehouseID int) (time.Time, bool) {
	t, ok := b.last[pairKey{productID, warehouseID}]
	return t, ok
}

// Record notes a reorder for a pair on the given date.
func (b *ReorderBook) Record(productID, warehouseID int, date time.Time) {
	b.last[pairKey{productID, warehouseID}] = date
}

// Prune drops entries older than the cutoff. Entries still inside the
// cooldown window are always newer than the cutoff, so pruning never
// changes a cooldown decision.
func (b *ReorderBook) Prune(cutoff time.Time) {
	for k, t := range b.last {
		if t.Before(cutoff) {
			delete(b.last, k)
		}
	}
}

// Len returns the number of tracked pairs.
func (b *ReorderBook) Len() int {
	return len(b.last)
}
