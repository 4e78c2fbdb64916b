// Package simulation generates a multi-year synthetic transaction history
// for the demo database: seasonal daily volumes, an inventory ledger with a
// zero floor, cooldown-limited replenishment, and age-weighted statuses.
// A run is fully determined by its seed and date range.
package simulation

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/vulcantech/smartstock/internal/catalog"
	"github.com/vulcantech/smartstock/internal/entity"
)

// Config controls a generation run.
type Config struct {
	Seed     int64
	Start    time.Time // inclusive, midnight UTC
	End      time.Time // exclusive, midnight UTC
	BaseRate float64   // mean transactions on a fully average day
	TierSkip bool      // let poorly managed health tiers miss reorders
}

// DefaultConfig covers the trailing three years ending today.
func DefaultConfig() Config {
	end := time.Now().UTC().Truncate(24 * time.Hour)
	return Config{
		Seed:     42,
		Start:    end.AddDate(-3, 0, 0),
		End:      end,
		BaseRate: 150,
		TierSkip: true,
	}
}

// Result is the complete output of a run, ready for export.
type Result struct {
	Config       Config
	Products     []entity.Product
	Warehouses   []entity.Warehouse
	Transactions []entity.InventoryTransaction
	Snapshots    []Snapshot
}

// Generator walks the configured date range day by day. It is
// single-threaded; all randomness flows through the one seeded rng so a
// rerun with the same config reproduces the run exactly.
type Generator struct {
	cfg    Config
	rng    *rand.Rand
	cat    *catalog.Catalog
	ledger *Ledger
	book   *ReorderBook
	log    *zap.Logger
	seen   map[string]bool // transaction numbers issued this run
}

// New prepares a generator. A nil logger disables progress output.
func New(cfg Config, cat *catalog.Catalog, log *zap.Logger) *Generator {
	if log == nil {
		log = zap.NewNop()
	}
	rng := rand.New(rand.NewSource(cfg.Seed))
	return &Generator{
		cfg:    cfg,
		rng:    rng,
		cat:    cat,
		ledger: NewLedger(cat, rng),
		book:   NewReorderBook(),
		log:    log,
		seen:   make(map[string]bool),
	}
}

// Run executes the full simulation and returns the generated history.
func (g *Generator) Run() (*Result, error) {
	if !g.cfg.Start.Before(g.cfg.End) {
		return nil, fmt.Errorf("invalid date range: start %s is not before end %s",
			g.cfg.Start.Format("2006-01-02"), g.cfg.End.Format("2006-01-02"))
	}
	totalDays := int(g.cfg.End.Sub(g.cfg.Start).Hours() / 24)

	g.log.Info("generating transaction history",
		zap.String("start", g.cfg.Start.Format("2006-01-02")),
		zap.String("end", g.cfg.End.Format("2006-01-02")),
		zap.Int("days", totalDays),
		zap.Int64("seed", g.cfg.Seed),
	)

	res := &Result{
		Config:   g.cfg,
		Products: g.cat.Products,
	}
	for _, w := range g.cat.Warehouses {
		res.Warehouses = append(res.Warehouses, w.Warehouse)
	}

	date := g.cfg.Start
	for day := 0; day < totalDays; day++ {
		if day%100 == 0 {
			g.log.Info("progress",
				zap.Int("day", day),
				zap.String("date", date.Format("2006-01-02")),
				zap.Int("transactions", len(res.Transactions)),
			)
		}

		// Replenishment sweep before the day's ordinary flow, weekly
		// planning bias on Mondays.
		if isBusinessDay(date) {
			p := 0.2
			if date.Weekday() == time.Monday {
				p = 0.4
			}
			if g.rng.Float64() < p {
				res.Transactions = append(res.Transactions, g.reorderPass(date)...)
			}
		}

		txs := g.dailyTransactions(date)
		applyEventNotes(date, txs)
		res.Transactions = append(res.Transactions, txs...)

		res.Snapshots = append(res.Snapshots, g.ledger.Snapshot(date))

		if day%30 == 0 {
			g.book.Prune(date.AddDate(0, 0, -30))
		}
		date = date.AddDate(0, 0, 1)
	}

	// Present the history in timeline order with sequential IDs. The sort
	// is stable so runs stay byte-reproducible.
	sort.SliceStable(res.Transactions, func(i, j int) bool {
		return res.Transactions[i].TransactionTimestamp.Before(res.Transactions[j].TransactionTimestamp)
	})
	for i := range res.Transactions {
		res.Transactions[i].TransactionID = i + 1
	}

	g.log.Info("generation complete",
		zap.Int("transactions", len(res.Transactions)),
		zap.Int("snapshots", len(res.Snapshots)),
	)
	return res, nil
}

// Black Friday dates inside the supported range.
var blackFridays = []time.Time{
	time.Date(2022, 11, 25, 0, 0, 0, 0, time.UTC),
	time.Date(2023, 11, 24, 0, 0, 0, 0, time.UTC),
	time.Date(2024, 11, 29, 0, 0, 0, 0, time.UTC),
	time.Date(2025, 11, 28, 0, 0, 0, 0, time.UTC),
}

var (
	disruptionStart = time.Date(2022, 3, 1, 0, 0, 0, 0, time.UTC)
	disruptionEnd   = time.Date(2022, 6, 30, 0, 0, 0, 0, time.UTC)
)

// applyEventNotes appends seasonal-event context to the day's notes.
func applyEventNotes(date time.Time, txs []entity.InventoryTransaction) {
	for _, bf := range blackFridays {
		if d := date.Sub(bf).Hours() / 24; d >= -3 && d <= 3 {
			for i := range txs {
				txs[i].Notes += " - Black Friday rush"
			}
			break
		}
	}
	if !date.Before(disruptionStart) && !date.After(disruptionEnd) {
		for i := range txs {
			txs[i].Notes += " - Supply chain disruption"
		}
	}
}
