package catalog

import (
	"testing"

	"github.com/vulcantech/smartstock/internal/entity"
)

func TestCatalogShape(t *testing.T) {
	c := New()

	if len(c.Products) != 41 {
		t.Errorf("got %d products, want 41", len(c.Products))
	}
	if len(c.Warehouses) != 3 {
		t.Errorf("got %d warehouses, want 3", len(c.Warehouses))
	}
	if len(c.Categories) != 8 {
		t.Errorf("got %d categories, want 8", len(c.Categories))
	}
}

func TestCatalogSKUsUnique(t *testing.T) {
	c := New()
	seen := make(map[string]int)
	for _, p := range c.Products {
		if prev, ok := seen[p.SKU]; ok {
			t.Errorf("SKU %q shared by products %d and %d", p.SKU, prev, p.ProductID)
		}
		seen[p.SKU] = p.ProductID
	}
}

func TestProfilesPartitionProducts(t *testing.T) {
	c := New()
	covered := make(map[int]entity.ProductCategory)
	for _, cat := range c.Categories {
		prof := c.Profile(cat)
		if prof == nil {
			t.Fatalf("no profile for category %s", cat)
		}
		if prof.BaseDemand <= 0 {
			t.Errorf("category %s has non-positive base demand", cat)
		}
		for _, id := range prof.ProductIDs {
			if prev, ok := covered[id]; ok {
				t.Errorf("product %d in both %s and %s", id, prev, cat)
			}
			covered[id] = cat
			if c.Product(id).Category != cat {
				t.Errorf("product %d listed under %s but categorized %s", id, cat, c.Product(id).Category)
			}
		}
	}
	if len(covered) != len(c.Products) {
		t.Errorf("profiles cover %d products, want %d", len(covered), len(c.Products))
	}
}

func TestComponentRouting(t *testing.T) {
	if !IsCityComponent(2) {
		t.Error("product 2 should be a city component")
	}
	if !IsCargoComponent(3) {
		t.Error("product 3 should be a cargo component")
	}
	if IsCityComponent(3) || IsCargoComponent(2) {
		t.Error("city and cargo component sets must not overlap")
	}
}

func TestWarehouseCapacityTiers(t *testing.T) {
	c := New()
	for _, w := range c.Warehouses {
		if w.CapacityMin <= 0 || w.CapacityMax <= w.CapacityMin {
			t.Errorf("warehouse %s has invalid capacity range [%v, %v]",
				w.Name, w.CapacityMin, w.CapacityMax)
		}
	}
}
