// Package seed bulk-loads generated CSV artifacts into Postgres through
// the same GORM models the API serves.
package seed

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/vulcantech/smartstock/internal/entity"
)

const (
	batchSize       = 500
	timestampLayout = "2006-01-02 15:04:05"
)

type Loader struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewLoader(db *gorm.DB, log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{db: db, log: log}
}

// LoadDir wipes the demo tables and loads every artifact from dir inside
// one transaction. Referenced tables load first.
func (l *Loader) LoadDir(dir string) error {
	return l.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(
			"TRUNCATE inventory_history, inventory_transactions, replenishment_orders, inventory_forecast, products, warehouses RESTART IDENTITY CASCADE",
		).Error; err != nil {
			return fmt.Errorf("truncate tables: %w", err)
		}

		steps := []struct {
			file string
			fn   func(*gorm.DB, string) (int, error)
		}{
			{"products.csv", l.loadProducts},
			{"warehouses.csv", l.loadWarehouses},
			{"transactions.csv", l.loadTransactions},
			{"inventory_history.csv", l.loadHistory},
		}
		for _, s := range steps {
			path := filepath.Join(dir, s.file)
			n, err := s.fn(tx, path)
			if err != nil {
				return fmt.Errorf("load %s: %w", s.file, err)
			}
			l.log.Info("loaded seed file", zap.String("file", s.file), zap.Int("rows", n))
		}
		return nil
	})
}

// readRows streams CSV records after validating the header.
func readRows(path string, header []string, fn func(rec []string) error) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	first, err := r.Read()
	if err != nil {
		return 0, fmt.Errorf("read header: %w", err)
	}
	if len(first) != len(header) {
		return 0, fmt.Errorf("unexpected header %v, want %v", first, header)
	}
	for i, col := range header {
		if first[i] != col {
			return 0, fmt.Errorf("unexpected column %q at %d, want %q", first[i], i, col)
		}
	}

	n := 0
	for {
		rec, err := r.Read()
		if err == io.EOF {
			return n, nil
		}
		if err != nil {
			return n, err
		}
		if err := fn(rec); err != nil {
			return n, fmt.Errorf("row %d: %w", n+1, err)
		}
		n++
	}
}

func (l *Loader) loadProducts(tx *gorm.DB, path string) (int, error) {
	var batch []entity.Product
	n, err := readRows(path,
		[]string{"product_id", "name", "description", "sku", "price", "unit", "category", "reorder_level"},
		func(rec []string) error {
			id, err := strconv.Atoi(rec[0])
			if err != nil {
				return err
			}
			price, err := decimal.NewFromString(rec[4])
			if err != nil {
				return err
			}
			reorder, err := strconv.Atoi(rec[7])
			if err != nil {
				return err
			}
			batch = append(batch, entity.Product{
				ProductID:    id,
				Name:         rec[1],
				Description:  rec[2],
				SKU:          rec[3],
				Price:        price,
				Unit:         rec[5],
				Category:     entity.ProductCategory(rec[6]),
				ReorderLevel: reorder,
			})
			return nil
		})
	if err != nil {
		return n, err
	}
	return n, tx.CreateInBatches(batch, batchSize).Error
}

func (l *Loader) loadWarehouses(tx *gorm.DB, path string) (int, error) {
	var batch []entity.Warehouse
	n, err := readRows(path,
		[]string{"warehouse_id", "name", "location", "manager_id", "timezone"},
		func(rec []string) error {
			id, err := strconv.Atoi(rec[0])
			if err != nil {
				return err
			}
			manager, err := strconv.Atoi(rec[3])
			if err != nil {
				return err
			}
			batch = append(batch, entity.Warehouse{
				WarehouseID: id,
				Name:        rec[1],
				Location:    rec[2],
				ManagerID:   manager,
				Timezone:    rec[4],
			})
			return nil
		})
	if err != nil {
		return n, err
	}
	return n, tx.CreateInBatches(batch, batchSize).Error
}

func (l *Loader) loadTransactions(tx *gorm.DB, path string) (int, error) {
	var batch []entity.InventoryTransaction
	n, err := readRows(path,
		[]string{"transaction_number", "product_id", "warehouse_id", "quantity_change", "transaction_type", "status", "notes", "transaction_timestamp", "updated_at"},
		func(rec []string) error {
			productID, err := strconv.Atoi(rec[1])
			if err != nil {
				return err
			}
			warehouseID, err := strconv.Atoi(rec[2])
			if err != nil {
				return err
			}
			qty, err := strconv.Atoi(rec[3])
			if err != nil {
				return err
			}
			ts, err := time.Parse(timestampLayout, rec[7])
			if err != nil {
				return err
			}
			updated, err := time.Parse(timestampLayout, rec[8])
			if err != nil {
				return err
			}
			batch = append(batch, entity.InventoryTransaction{
				TransactionNumber:    rec[0],
				ProductID:            productID,
				WarehouseID:          warehouseID,
				QuantityChange:       qty,
				TransactionType:      entity.TransactionType(rec[4]),
				Status:               entity.TransactionStatus(rec[5]),
				Notes:                rec[6],
				TransactionTimestamp: ts,
				UpdatedAt:            updated,
			})
			return nil
		})
	if err != nil {
		return n, err
	}
	return n, tx.CreateInBatches(batch, batchSize).Error
}

func (l *Loader) loadHistory(tx *gorm.DB, path string) (int, error) {
	var batch []entity.InventoryLevel
	n, err := readRows(path,
		[]string{"date", "product_id", "warehouse_id", "inventory_level"},
		func(rec []string) error {
			date, err := time.Parse("2006-01-02", rec[0])
			if err != nil {
				return err
			}
			productID, err := strconv.Atoi(rec[1])
			if err != nil {
				return err
			}
			warehouseID, err := strconv.Atoi(rec[2])
			if err != nil {
				return err
			}
			level, err := strconv.Atoi(rec[3])
			if err != nil {
				return err
			}
			batch = append(batch, entity.InventoryLevel{
				Date:           date,
				ProductID:      productID,
				WarehouseID:    warehouseID,
				InventoryLevel: level,
			})
			return nil
		})
	if err != nil {
		return n, err
	}
	return n, tx.CreateInBatches(batch, batchSize).Error
}
