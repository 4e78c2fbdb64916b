package export

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/vulcantech/smartstock/internal/simulation"
)

// WriteSeedSQL renders a single script that wipes and repopulates the
// demo tables. Inserts are batched to keep the file loadable with plain
// psql.
func WriteSeedSQL(res *simulation.Result, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)

	fmt.Fprintln(w, "-- Generated seed data. Reloading replaces all existing rows.")
	fmt.Fprintln(w, "BEGIN;")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "TRUNCATE inventory_history, inventory_transactions, replenishment_orders, inventory_forecast, products, warehouses RESTART IDENTITY CASCADE;")
	fmt.Fprintln(w)

	for _, p := range res.Products {
		fmt.Fprintf(w,
			"INSERT INTO products (product_id, name, description, sku, price, unit, category, reorder_level) VALUES (%d, %s, %s, %s, %s, %s, %s, %d);\n",
			p.ProductID, quote(p.Name), quote(p.Description), quote(p.SKU),
			p.Price.StringFixed(2), quote(p.Unit), quote(string(p.Category)), p.ReorderLevel)
	}
	fmt.Fprintln(w)

	for _, wh := range res.Warehouses {
		fmt.Fprintf(w,
			"INSERT INTO warehouses (warehouse_id, name, location, manager_id, timezone) VALUES (%d, %s, %s, %d, %s);\n",
			wh.WarehouseID, quote(wh.Name), quote(wh.Location), wh.ManagerID, quote(wh.Timezone))
	}
	fmt.Fprintln(w)

	const batch = 500
	for i, t := range res.Transactions {
		if i%batch == 0 {
			if i > 0 {
				fmt.Fprintln(w, ";")
			}
			fmt.Fprintln(w, "INSERT INTO inventory_transactions (transaction_number, product_id, warehouse_id, quantity_change, transaction_type, status, notes, transaction_timestamp, updated_at) VALUES")
		} else {
			fmt.Fprintln(w, ",")
		}
		fmt.Fprintf(w, "(%s, %d, %d, %d, %s, %s, %s, %s, %s)",
			quote(t.TransactionNumber), t.ProductID, t.WarehouseID, t.QuantityChange,
			quote(string(t.TransactionType)), quote(string(t.Status)), quote(t.Notes),
			quote(t.TransactionTimestamp.Format(timestampLayout)),
			quote(t.UpdatedAt.Format(timestampLayout)))
	}
	if len(res.Transactions) > 0 {
		fmt.Fprintln(w, ";")
	}
	fmt.Fprintln(w)

	n := 0
	for _, snap := range res.Snapshots {
		for _, lvl := range snap.Levels {
			if n%batch == 0 {
				if n > 0 {
					fmt.Fprintln(w, ";")
				}
				fmt.Fprintln(w, "INSERT INTO inventory_history (date, product_id, warehouse_id, inventory_level) VALUES")
			} else {
				fmt.Fprintln(w, ",")
			}
			fmt.Fprintf(w, "(%s, %d, %d, %d)",
				quote(snap.Date.Format("2006-01-02")), lvl.ProductID, lvl.WarehouseID, lvl.Level)
			n++
		}
	}
	if n > 0 {
		fmt.Fprintln(w, ";")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "SELECT setval(pg_get_serial_sequence('products', 'product_id'), (SELECT MAX(product_id) FROM products));")
	fmt.Fprintln(w, "SELECT setval(pg_get_serial_sequence('warehouses', 'warehouse_id'), (SELECT MAX(warehouse_id) FROM warehouses));")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "COMMIT;")

	if err := w.Flush(); err != nil {
		return err
	}
	return f.Close()
}

func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
