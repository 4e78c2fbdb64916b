// seedload loads generated CSV artifacts into the configured Postgres
// database, replacing any existing demo data.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/vulcantech/smartstock/internal/config"
	"github.com/vulcantech/smartstock/internal/entity"
	"github.com/vulcantech/smartstock/internal/seed"
)

func main() {
	dir := flag.String("dir", "data", "directory with generated CSV artifacts")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer zapLogger.Sync()

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		zapLogger.Fatal("Failed to connect to database", zap.Error(err))
	}

	if err := entity.AutoMigrate(db); err != nil {
		zapLogger.Fatal("Failed to migrate database", zap.Error(err))
	}

	loader := seed.NewLoader(db, zapLogger)
	if err := loader.LoadDir(*dir); err != nil {
		zapLogger.Fatal("Seed load failed", zap.Error(err))
	}

	fmt.Println("seed data loaded")
}
