package simulation

import (
	"fmt"
	"hash/fnv"
	"time"

	"github.com/vulcantech/smartstock/internal/entity"
)

const (
	reorderThreshold = 1.5 // eligible while stock < threshold * reorder level
	reorderTarget    = 1.2 // replenish toward target * reorder level
)

// HealthTier buckets a SKU into 0..99 by a stable hash. Low tiers model
// poorly managed products whose reorders are frequently missed; the bucket
// never changes between runs so the same SKUs stay troubled.
func HealthTier(sku string) int {
	h := fnv.New32a()
	h.Write([]byte(sku))
	return int(h.Sum32() % 100)
}

// tierSkipProbability is the chance a due reorder is simply not placed.
func tierSkipProbability(tier int) float64 {
	switch {
	case tier < 10:
		return 0.95
	case tier < 25:
		return 0.85
	case tier < 45:
		return 0.65
	case tier < 70:
		return 0.30
	default:
		return 0
	}
}

// tierQuantityScale shrinks the orders that do go through for weak tiers.
func tierQuantityScale(tier int) float64 {
	switch {
	case tier < 10:
		return 0.2
	case tier < 25:
		return 0.35
	case tier < 45:
		return 0.55
	default:
		return 1.0
	}
}

// reorderPass scans every product/warehouse pair in catalog order and
// places inbound replenishment for the ones below threshold and out of
// cooldown. Stock is credited immediately.
func (g *Generator) reorderPass(date time.Time) []entity.InventoryTransaction {
	var txs []entity.InventoryTransaction
	for _, p := range g.cat.Products {
		tier := HealthTier(p.SKU)
		for _, wid := range g.cat.WarehouseIDs() {
			stock := g.ledger.Get(p.ProductID, wid)
			level := float64(p.ReorderLevel)
			if float64(stock) >= reorderThreshold*level {
				continue
			}

			// Recently reordered pairs wait out their cooldown. A pair
			// still below its reorder level gets a shorter one.
			cooldown := 7
			if stock < p.ReorderLevel {
				cooldown = 5
			}
			if last, ok := g.book.Last(p.ProductID, wid); ok {
				if int(date.Sub(last).Hours()/24) < cooldown {
					continue
				}
			}

			if g.cfg.TierSkip && g.rng.Float64() < tierSkipProbability(tier) {
				continue
			}

			shortage := reorderTarget*level - float64(stock)
			if shortage < 1 {
				shortage = 1
			}
			var mult float64
			switch {
			case float64(stock) < 0.3*level:
				mult = uniform(g.rng, 1.0, 1.2) // emergency top-up overshoots
			case float64(stock) < 0.8*level:
				mult = uniform(g.rng, 0.8, 1.0)
			default:
				mult = uniform(g.rng, 0.4, 0.6) // proactive, partial
			}
			qty := int(shortage * mult)
			if g.cfg.TierSkip {
				qty = int(float64(qty) * tierQuantityScale(tier))
			}
			if qty < 1 {
				qty = 1
			}

			urgency := "LOW"
			switch {
			case stock == 0:
				urgency = "CRITICAL"
			case float64(stock) < 0.5*level:
				urgency = "URGENT"
			}
			note := fmt.Sprintf("%s: %s reorder - inventory at %d (reorder level: %d)",
				urgency, p.Category, stock, p.ReorderLevel)

			ts := g.businessTimestamp(date)
			txs = append(txs, entity.InventoryTransaction{
				TransactionNumber:    g.transactionNumber(entity.TransactionInbound, date),
				ProductID:            p.ProductID,
				WarehouseID:          wid,
				QuantityChange:       qty,
				TransactionType:      entity.TransactionInbound,
				Status:               g.agedStatus(entity.TransactionInbound, date),
				Notes:                note,
				TransactionTimestamp: ts,
				UpdatedAt:            ts,
			})
			g.ledger.Apply(p.ProductID, wid, qty)
			g.book.Record(p.ProductID, wid, date)
		}
	}
	return txs
}
