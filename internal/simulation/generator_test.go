package simulation

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/vulcantech/smartstock/internal/catalog"
)

func shortRunConfig() Config {
	return Config{
		Seed:     42,
		Start:    time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		End:      time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
		BaseRate: 150,
		TierSkip: true,
	}
}

func TestRunIsDeterministic(t *testing.T) {
	cfg := shortRunConfig()

	run := func() *Result {
		res, err := New(cfg, catalog.New(), nil).Run()
		if err != nil {
			t.Fatalf("Run failed: %v", err)
		}
		return res
	}

	a := run()
	b := run()

	if len(a.Transactions) != len(b.Transactions) {
		t.Fatalf("transaction counts differ: %d vs %d", len(a.Transactions), len(b.Transactions))
	}
	if !reflect.DeepEqual(a.Transactions, b.Transactions) {
		t.Error("transactions differ between identical runs")
	}
	if !reflect.DeepEqual(a.Snapshots, b.Snapshots) {
		t.Error("snapshots differ between identical runs")
	}
}

func TestRunOrderingAndSequentialIDs(t *testing.T) {
	res, err := New(shortRunConfig(), catalog.New(), nil).Run()
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(res.Transactions) == 0 {
		t.Fatal("run produced no transactions")
	}

	for i, tx := range res.Transactions {
		if tx.TransactionID != i+1 {
			t.Fatalf("transaction %d has id %d, want %d", i, tx.TransactionID, i+1)
		}
		if i > 0 && tx.TransactionTimestamp.Before(res.Transactions[i-1].TransactionTimestamp) {
			t.Fatalf("transactions out of order at %d", i)
		}
	}
}

func TestRunSnapshotPerDay(t *testing.T) {
	cfg := shortRunConfig()
	cat := catalog.New()
	res, err := New(cfg, cat, nil).Run()
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	days := int(cfg.End.Sub(cfg.Start).Hours() / 24)
	if len(res.Snapshots) != days {
		t.Fatalf("got %d snapshots, want %d", len(res.Snapshots), days)
	}
	pairs := len(cat.Products) * len(cat.WarehouseIDs())
	for _, s := range res.Snapshots {
		if len(s.Levels) != pairs {
			t.Fatalf("snapshot %s has %d levels, want %d", s.Date.Format("2006-01-02"), len(s.Levels), pairs)
		}
		for _, lvl := range s.Levels {
			if lvl.Level < 0 {
				t.Fatalf("negative level in snapshot %s: %+v", s.Date.Format("2006-01-02"), lvl)
			}
		}
	}
}

func TestRunUniqueTransactionNumbers(t *testing.T) {
	res, err := New(shortRunConfig(), catalog.New(), nil).Run()
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	seen := make(map[string]bool, len(res.Transactions))
	for _, tx := range res.Transactions {
		if seen[tx.TransactionNumber] {
			t.Fatalf("duplicate transaction number %s", tx.TransactionNumber)
		}
		seen[tx.TransactionNumber] = true
	}
}

func TestRunRejectsInvalidRange(t *testing.T) {
	cfg := shortRunConfig()
	cfg.Start, cfg.End = cfg.End, cfg.Start
	if _, err := New(cfg, catalog.New(), nil).Run(); err == nil {
		t.Fatal("expected error for reversed date range")
	}
}

func TestEventNotesBlackFriday(t *testing.T) {
	res, err := New(shortRunConfig(), catalog.New(), nil).Run()
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	// June run: no event windows, notes stay clean.
	for _, tx := range res.Transactions {
		if strings.Contains(tx.Notes, "Black Friday") || strings.Contains(tx.Notes, "Supply chain") {
			t.Fatalf("unexpected event note in June: %q", tx.Notes)
		}
	}

	nov := Config{
		Seed:     42,
		Start:    time.Date(2024, 11, 25, 0, 0, 0, 0, time.UTC),
		End:      time.Date(2024, 12, 5, 0, 0, 0, 0, time.UTC),
		BaseRate: 150,
		TierSkip: true,
	}
	res, err = New(nov, catalog.New(), nil).Run()
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	// 2024-11-29 is Black Friday; its window must be tagged.
	tagged := false
	for _, tx := range res.Transactions {
		day := tx.TransactionTimestamp.Format("2006-01-02")
		if day == "2024-11-29" {
			if !strings.HasSuffix(tx.Notes, " - Black Friday rush") {
				t.Fatalf("Black Friday transaction missing note suffix: %q", tx.Notes)
			}
			tagged = true
		}
	}
	if !tagged {
		t.Error("no transactions found on Black Friday")
	}
}
