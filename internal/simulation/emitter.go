package simulation

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/vulcantech/smartstock/internal/catalog"
	"github.com/vulcantech/smartstock/internal/entity"
)

// typeSpec describes one transaction type: how often it occurs, its
// terminal status mix, and the note templates it draws from. Status
// options are ordered with delivered first; aging pushes more mass onto
// that first entry.
type typeSpec struct {
	frequency     float64
	statuses      []entity.TransactionStatus
	statusWeights []float64
	notes         []string
}

var typeSpecs = map[entity.TransactionType]typeSpec{
	entity.TransactionInbound: {
		frequency: 0.20,
		statuses: []entity.TransactionStatus{
			entity.StatusDelivered, entity.StatusShipped, entity.StatusProcessing,
			entity.StatusConfirmed, entity.StatusPending,
		},
		statusWeights: []float64{0.70, 0.15, 0.10, 0.03, 0.02},
		notes: []string{
			"Scheduled restock - {category}",
			"Supplier delivery received",
			"Bulk order arrival - {category}",
			"Replenishment shipment",
		},
	},
	entity.TransactionSale: {
		frequency: 0.75,
		statuses: []entity.TransactionStatus{
			entity.StatusDelivered, entity.StatusProcessing,
			entity.StatusConfirmed, entity.StatusPending,
		},
		statusWeights: []float64{0.85, 0.10, 0.03, 0.02},
		notes: []string{
			"Customer order",
			"Online sale - {category}",
			"Retail order fulfillment",
			"B2B order - {category}",
		},
	},
	entity.TransactionAdjustment: {
		frequency: 0.05,
		statuses: []entity.TransactionStatus{
			entity.StatusDelivered, entity.StatusConfirmed,
		},
		statusWeights: []float64{0.95, 0.05},
		notes: []string{
			"Inventory count correction",
			"Damaged goods write-off",
			"Cycle count adjustment - {category}",
			"Stock reconciliation",
		},
	},
}

// dailyTransactions emits one day of ordinary flow. The volume follows a
// Poisson draw around the day's activity level, never less than one.
func (g *Generator) dailyTransactions(date time.Time) []entity.InventoryTransaction {
	mean := g.cfg.BaseRate * ActivityLevel(date)
	n := g.poisson(mean)
	if n < 1 {
		n = 1
	}

	// A struggling network receives relatively more inbound stock, a
	// flush one mostly sells.
	weights := g.typeWeights(g.healthFactor())

	var txs []entity.InventoryTransaction
	for i := 0; i < n; i++ {
		t := transactionTypes[weightedIndex(g.rng, weights)]
		p := g.pickProduct()
		wid := g.pickWarehouse(p.ProductID)

		var qty int
		switch t {
		case entity.TransactionInbound:
			qty = g.inboundQuantity(p, wid)
		case entity.TransactionSale:
			qty = -g.saleQuantity(p, wid)
		case entity.TransactionAdjustment:
			qty = g.adjustmentQuantity(p, wid)
		}
		if qty == 0 {
			continue
		}

		ts := g.businessTimestamp(date)
		txs = append(txs, entity.InventoryTransaction{
			TransactionNumber:    g.transactionNumber(t, date),
			ProductID:            p.ProductID,
			WarehouseID:          wid,
			QuantityChange:       qty,
			TransactionType:      t,
			Status:               g.agedStatus(t, date),
			Notes:                g.note(t, p.Category),
			TransactionTimestamp: ts,
			UpdatedAt:            ts,
		})
		g.ledger.Apply(p.ProductID, wid, qty)
	}
	return txs
}

var transactionTypes = []entity.TransactionType{
	entity.TransactionInbound,
	entity.TransactionSale,
	entity.TransactionAdjustment,
}

// healthFactor scales inbound frequency by how much of the network sits
// comfortably above its reorder levels.
func (g *Generator) healthFactor() float64 {
	total, healthy := 0, 0
	for _, p := range g.cat.Products {
		for _, wid := range g.cat.WarehouseIDs() {
			total++
			if float64(g.ledger.Get(p.ProductID, wid)) > 1.2*float64(p.ReorderLevel) {
				healthy++
			}
		}
	}
	ratio := float64(healthy) / float64(total)
	switch {
	case ratio < 0.4:
		return 1.5
	case ratio < 0.6:
		return 1.2
	case ratio < 0.8:
		return 1.0
	case ratio < 0.9:
		return 0.6
	default:
		return 0.3
	}
}

func (g *Generator) typeWeights(healthFactor float64) []float64 {
	weights := make([]float64, len(transactionTypes))
	for i, t := range transactionTypes {
		w := typeSpecs[t].frequency
		if t == entity.TransactionInbound {
			w *= healthFactor
		}
		weights[i] = w
	}
	return weights
}

// pickProduct draws a category weighted by base demand, then a uniform
// product within it.
func (g *Generator) pickProduct() entity.Product {
	weights := make([]float64, len(g.cat.Categories))
	for i, c := range g.cat.Categories {
		weights[i] = g.cat.Profile(c).BaseDemand
	}
	cat := g.cat.Categories[weightedIndex(g.rng, weights)]
	ids := g.cat.Profile(cat).ProductIDs
	return g.cat.Product(ids[g.rng.Intn(len(ids))])
}

// pickWarehouse routes city components toward Hamburg, cargo hardware
// toward Milan, and everything else mostly through Lyon.
func (g *Generator) pickWarehouse(productID int) int {
	ids := g.cat.WarehouseIDs()
	switch {
	case catalog.IsCityComponent(productID):
		if g.rng.Float64() < 0.3 {
			return ids[0]
		}
		return ids[1]
	case catalog.IsCargoComponent(productID):
		if g.rng.Float64() < 0.2 {
			return ids[0]
		}
		return ids[2]
	default:
		r := g.rng.Float64()
		if r < 0.6 {
			return ids[0]
		}
		if r < 0.9 {
			return ids[1]
		}
		return ids[2]
	}
}

// inboundQuantity sizes a delivery by the product's ordering pattern and
// how depleted the pair currently is.
func (g *Generator) inboundQuantity(p entity.Product, warehouseID int) int {
	profile := g.cat.Profile(p.Category)
	var mult float64
	if profile.BulkOrderFrequency > 0.7 {
		mult = uniform(g.rng, 0.9, 1.4)
	} else {
		mult = uniform(g.rng, 0.7, 1.2)
	}

	stock := float64(g.ledger.Get(p.ProductID, warehouseID))
	level := float64(p.ReorderLevel)
	switch {
	case stock < 0.3*level:
		mult *= uniform(g.rng, 1.0, 1.4)
	case stock < 0.8*level:
		mult *= uniform(g.rng, 0.8, 1.2)
	case stock < 1.2*level:
		mult *= uniform(g.rng, 0.6, 0.9)
	default:
		mult *= uniform(g.rng, 0.1, 0.3) // already stocked, token delivery
	}

	qty := int(uniform(g.rng, 5, 80) * mult)
	if qty < 3 {
		qty = 3
	}
	return qty
}

// saleQuantity returns how many units can actually be sold, zero when the
// pair is out of stock. Sales never take more than is on hand, and low
// pairs sell conservatively so a single order cannot wipe them out.
func (g *Generator) saleQuantity(p entity.Product, warehouseID int) int {
	stock := g.ledger.Get(p.ProductID, warehouseID)
	if stock == 0 {
		return 0
	}
	maxSale := stock
	if maxSale > 18 {
		maxSale = 18
	}

	level := float64(p.ReorderLevel)
	limit := maxSale
	switch {
	case float64(stock) < level:
		limit = int(0.2 * float64(stock))
	case float64(stock) < 1.5*level:
		limit = int(0.4 * float64(stock))
	}
	if limit < 1 {
		limit = 1
	}
	if limit < maxSale {
		maxSale = limit
	}

	// Retail skews small: most orders are a handful of units.
	if g.rng.Float64() < 0.8 {
		small := maxSale
		if small > 4 {
			small = 4
		}
		return 1 + g.rng.Intn(small)
	}
	return 1 + g.rng.Intn(maxSale)
}

// adjustmentQuantity is a small signed correction, never deeper than the
// stock on hand. Zero means no adjustment was warranted.
func (g *Generator) adjustmentQuantity(p entity.Product, warehouseID int) int {
	qty := g.rng.Intn(21) - 10
	if qty < 0 {
		if stock := g.ledger.Get(p.ProductID, warehouseID); -qty > stock {
			qty = -stock
		}
	}
	return qty
}

// agedStatus draws a status whose delivered share grows with the age of
// the transaction relative to the end of the run.
func (g *Generator) agedStatus(t entity.TransactionType, date time.Time) entity.TransactionStatus {
	spec := typeSpecs[t]
	age := int(g.cfg.End.Sub(date).Hours() / 24)

	var deliveredP float64
	switch {
	case age > 30:
		deliveredP = 0.98
	case age > 14:
		deliveredP = 0.90
	case age > 7:
		deliveredP = 0.80
	case age > 3:
		deliveredP = 0.65
	case age > 1:
		deliveredP = 0.35
	default:
		return spec.statuses[weightedIndex(g.rng, spec.statusWeights)]
	}

	if g.rng.Float64() < deliveredP {
		return spec.statuses[0]
	}
	// Remainder is spread evenly over the in-flight statuses.
	return spec.statuses[1+g.rng.Intn(len(spec.statuses)-1)]
}

func (g *Generator) note(t entity.TransactionType, category entity.ProductCategory) string {
	spec := typeSpecs[t]
	note := spec.notes[g.rng.Intn(len(spec.notes))]
	note = strings.ReplaceAll(note, "{category}", string(category))
	if g.rng.Float64() < 0.1 && !strings.Contains(note, "URGENT") {
		note = "URGENT: " + note
	}
	return note
}

// Working hours ramp up at 06:00 and wind down by 18:00.
var (
	businessHours       = []int{6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18}
	businessHourWeights = []float64{0.5, 1.0, 1.0, 0.8, 0.8, 0.8, 0.8, 0.8, 0.8, 0.8, 0.8, 0.8, 0.5}
)

func (g *Generator) businessTimestamp(date time.Time) time.Time {
	hour := businessHours[weightedIndex(g.rng, businessHourWeights)]
	minute := g.rng.Intn(60)
	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, time.UTC)
}

const numberAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// transactionNumber issues a unique {PREFIX}-{YYMMDD}-{SUFFIX} reference.
func (g *Generator) transactionNumber(t entity.TransactionType, date time.Time) string {
	for {
		suffix := make([]byte, 5)
		for i := range suffix {
			suffix[i] = numberAlphabet[g.rng.Intn(len(numberAlphabet))]
		}
		num := fmt.Sprintf("%s-%s-%s", t.Prefix(), date.Format("060102"), suffix)
		if !g.seen[num] {
			g.seen[num] = true
			return num
		}
	}
}

// weightedIndex draws an index proportionally to its weight.
func weightedIndex(rng *rand.Rand, weights []float64) int {
	var total float64
	for _, w := range weights {
		total += w
	}
	r := rng.Float64() * total
	for i, w := range weights {
		r -= w
		if r < 0 {
			return i
		}
	}
	return len(weights) - 1
}
