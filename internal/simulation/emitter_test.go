package simulation

import (
	"regexp"
	"testing"
	"time"

	"github.com/vulcantech/smartstock/internal/entity"
)

func TestSaleNeverOversells(t *testing.T) {
	g := newTestGenerator(t)
	p := g.cat.Products[0]
	wid := g.cat.WarehouseIDs()[0]

	g.ledger.Apply(p.ProductID, wid, 5-g.ledger.Get(p.ProductID, wid))

	sold := 0
	sawZero := false
	for i := 0; i < 200; i++ {
		qty := g.saleQuantity(p, wid)
		if qty == 0 {
			sawZero = true
			continue
		}
		if qty > g.ledger.Get(p.ProductID, wid) {
			t.Fatalf("sale of %d exceeds stock %d", qty, g.ledger.Get(p.ProductID, wid))
		}
		g.ledger.Apply(p.ProductID, wid, -qty)
		sold += qty
	}

	if sold > 5 {
		t.Errorf("sold %d units from a stock of 5", sold)
	}
	if !sawZero {
		t.Error("expected zero-quantity draws once the pair ran dry")
	}
	if g.ledger.Get(p.ProductID, wid) < 0 {
		t.Errorf("stock went negative: %d", g.ledger.Get(p.ProductID, wid))
	}
}

func TestAdjustmentClampedToStock(t *testing.T) {
	g := newTestGenerator(t)
	p := g.cat.Products[0]
	wid := g.cat.WarehouseIDs()[0]

	g.ledger.Apply(p.ProductID, wid, 3-g.ledger.Get(p.ProductID, wid))

	for i := 0; i < 500; i++ {
		qty := g.adjustmentQuantity(p, wid)
		if qty < -3 {
			t.Fatalf("adjustment %d deeper than stock 3", qty)
		}
		if qty < -10 || qty > 10 {
			t.Fatalf("adjustment %d outside [-10, 10]", qty)
		}
	}
}

func TestAgedStatusFavorsDeliveredForOldTransactions(t *testing.T) {
	g := newTestGenerator(t)

	countDelivered := func(daysOld int) int {
		date := g.cfg.End.AddDate(0, 0, -daysOld)
		n := 0
		for i := 0; i < 2000; i++ {
			if g.agedStatus(entity.TransactionSale, date) == entity.StatusDelivered {
				n++
			}
		}
		return n
	}

	old := countDelivered(45)
	recent := countDelivered(0)

	if old < 1900 {
		t.Errorf("45-day-old transactions delivered %d/2000, want ~98%%", old)
	}
	if recent >= old {
		t.Errorf("same-day delivered share (%d) should be below 45-day share (%d)", recent, old)
	}
}

func TestAgedStatusBucketBoundaries(t *testing.T) {
	g := newTestGenerator(t)

	countDelivered := func(daysOld int) int {
		date := g.cfg.End.AddDate(0, 0, -daysOld)
		n := 0
		for i := 0; i < 4000; i++ {
			if g.agedStatus(entity.TransactionSale, date) == entity.StatusDelivered {
				n++
			}
		}
		return n
	}

	// Exactly 14 days old belongs to the 80% bucket, not the 90% one.
	at14 := countDelivered(14)
	at15 := countDelivered(15)
	if at14 < 3000 || at14 > 3500 {
		t.Errorf("14-day-old delivered %d/4000, want ~80%%", at14)
	}
	if at14 >= at15 {
		t.Errorf("14-day share (%d) should sit below the 15-day share (%d)", at14, at15)
	}

	// Exactly 1 day old still uses the base distribution (85% delivered
	// for sales), which is higher than the 35% two-day bucket.
	at1 := countDelivered(1)
	at2 := countDelivered(2)
	if at1 <= at2 {
		t.Errorf("1-day share (%d) should exceed the 2-day share (%d)", at1, at2)
	}
}

func TestAgedStatusSpreadsResidualEvenly(t *testing.T) {
	g := newTestGenerator(t)
	date := g.cfg.End.AddDate(0, 0, -2)

	counts := make(map[entity.TransactionStatus]int)
	for i := 0; i < 9000; i++ {
		s := g.agedStatus(entity.TransactionSale, date)
		if s != entity.StatusDelivered {
			counts[s]++
		}
	}

	inflight := typeSpecs[entity.TransactionSale].statuses[1:]
	if len(counts) != len(inflight) {
		t.Fatalf("saw %d in-flight statuses, want %d: %v", len(counts), len(inflight), counts)
	}
	min, max := 1<<31, 0
	for _, s := range inflight {
		if counts[s] < min {
			min = counts[s]
		}
		if counts[s] > max {
			max = counts[s]
		}
	}
	if min == 0 || float64(max)/float64(min) > 1.5 {
		t.Errorf("residual statuses should be drawn evenly, got %v", counts)
	}
}

func TestTransactionNumberFormatAndUniqueness(t *testing.T) {
	g := newTestGenerator(t)
	day := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)

	pattern := regexp.MustCompile(`^INB-240603-[A-Z0-9]{5}$`)
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		num := g.transactionNumber(entity.TransactionInbound, day)
		if !pattern.MatchString(num) {
			t.Fatalf("transaction number %q does not match format", num)
		}
		if seen[num] {
			t.Fatalf("duplicate transaction number %q", num)
		}
		seen[num] = true
	}

	if num := g.transactionNumber(entity.TransactionSale, day); num[:3] != "SAL" {
		t.Errorf("sale number %q should start with SAL", num)
	}
	if num := g.transactionNumber(entity.TransactionAdjustment, day); num[:3] != "ADJ" {
		t.Errorf("adjustment number %q should start with ADJ", num)
	}
}

func TestBusinessTimestampWithinHours(t *testing.T) {
	g := newTestGenerator(t)
	day := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 500; i++ {
		ts := g.businessTimestamp(day)
		if ts.Hour() < 6 || ts.Hour() > 18 {
			t.Fatalf("timestamp %s outside business hours", ts)
		}
		if !ts.Truncate(24 * time.Hour).Equal(day) {
			t.Fatalf("timestamp %s not on requested day", ts)
		}
	}
}

func TestTypeWeightsScaleInboundByHealth(t *testing.T) {
	g := newTestGenerator(t)

	starved := g.typeWeights(1.5)
	flush := g.typeWeights(0.3)

	if starved[0] <= flush[0] {
		t.Errorf("inbound weight should rise when the network is starved: %v vs %v", starved[0], flush[0])
	}
	// Sale and adjustment weights stay fixed.
	if starved[1] != flush[1] || starved[2] != flush[2] {
		t.Errorf("non-inbound weights changed: %v vs %v", starved, flush)
	}
}
