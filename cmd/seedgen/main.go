// seedgen generates the synthetic transaction history and writes the
// seed artifacts to an output directory.
package main

import (
	"flag"
	"log"
	"time"

	"go.uber.org/zap"

	"github.com/vulcantech/smartstock/internal/catalog"
	"github.com/vulcantech/smartstock/internal/export"
	"github.com/vulcantech/smartstock/internal/simulation"
)

func main() {
	var (
		seed     = flag.Int64("seed", 42, "random seed")
		start    = flag.String("start", "", "start date YYYY-MM-DD (default 3 years ago)")
		end      = flag.String("end", "", "end date YYYY-MM-DD, exclusive (default today)")
		baseRate = flag.Float64("base-rate", 150, "mean transactions on an average day")
		outDir   = flag.String("out", "data", "output directory")
	)
	flag.Parse()

	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer zapLogger.Sync()

	cfg := simulation.DefaultConfig()
	cfg.Seed = *seed
	cfg.BaseRate = *baseRate
	if *start != "" {
		t, err := time.Parse("2006-01-02", *start)
		if err != nil {
			zapLogger.Fatal("Invalid start date", zap.Error(err))
		}
		cfg.Start = t
	}
	if *end != "" {
		t, err := time.Parse("2006-01-02", *end)
		if err != nil {
			zapLogger.Fatal("Invalid end date", zap.Error(err))
		}
		cfg.End = t
	}

	gen := simulation.New(cfg, catalog.New(), zapLogger)
	res, err := gen.Run()
	if err != nil {
		zapLogger.Fatal("Generation failed", zap.Error(err))
	}

	if err := export.WriteAll(res, *outDir); err != nil {
		zapLogger.Fatal("Export failed", zap.Error(err))
	}

	zapLogger.Info("Seed artifacts written",
		zap.String("dir", *outDir),
		zap.Int("transactions", len(res.Transactions)),
	)
}
