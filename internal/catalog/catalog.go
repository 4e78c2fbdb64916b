// Package catalog holds the static VulcanTech e-bike catalog used to seed
// demo data: the product master, the three European warehouses, and the
// per-category demand profiles that drive the transaction generator.
package catalog

import (
	"time"

	"github.com/vulcantech/smartstock/internal/entity"
)

// Profile captures how a product category behaves commercially.
type Profile struct {
	BaseDemand         float64
	Seasonality        float64
	LeadTimeDays       int
	BulkOrderFrequency float64
	ProductIDs         []int
}

// Catalog is the full static dataset. Product and warehouse IDs are
// 1-based positions in their slices.
type Catalog struct {
	Products   []entity.Product
	Warehouses []Warehouse
	Categories []entity.ProductCategory
	profiles   map[entity.ProductCategory]*Profile
}

// Warehouse extends the entity with the capacity tier used when seeding
// initial stock. Min/Max bound the random capacity multiplier.
type Warehouse struct {
	entity.Warehouse
	CapacityMin float64
	CapacityMax float64
}

// New builds the catalog with creation timestamps spaced an hour apart
// from the reference epoch, matching the seeded products table.
func New() *Catalog {
	base := time.Date(2022, 1, 1, 9, 0, 0, 0, time.UTC)

	products := productDefinitions()
	for i := range products {
		products[i].ProductID = i + 1
		products[i].CreatedAt = base.Add(time.Duration(i) * time.Hour)
		products[i].UpdatedAt = products[i].CreatedAt
	}

	c := &Catalog{
		Products:   products,
		Warehouses: warehouseDefinitions(base),
		profiles:   categoryProfiles(),
	}

	// Category order follows first appearance in the product list so that
	// weighted draws are reproducible.
	seen := make(map[entity.ProductCategory]bool)
	for _, p := range products {
		if !seen[p.Category] {
			seen[p.Category] = true
			c.Categories = append(c.Categories, p.Category)
		}
		c.profiles[p.Category].ProductIDs = append(c.profiles[p.Category].ProductIDs, p.ProductID)
	}
	return c
}

// Product returns the product with the given 1-based ID.
func (c *Catalog) Product(id int) entity.Product {
	return c.Products[id-1]
}

// Profile returns the demand profile for a category.
func (c *Catalog) Profile(cat entity.ProductCategory) *Profile {
	return c.profiles[cat]
}

// WarehouseIDs lists all warehouse IDs in seeding order.
func (c *Catalog) WarehouseIDs() []int {
	ids := make([]int, len(c.Warehouses))
	for i := range c.Warehouses {
		ids[i] = c.Warehouses[i].WarehouseID
	}
	return ids
}

// Product groups that route to specialist warehouses: Hamburg assembles
// city bikes, Milan assembles cargo bikes.
var (
	cityComponents  = map[int]bool{2: true, 6: true, 11: true, 15: true, 20: true}
	cargoComponents = map[int]bool{3: true, 7: true, 12: true, 16: true}
)

// IsCityComponent reports whether the product is a city-bike part.
func IsCityComponent(productID int) bool { return cityComponents[productID] }

// IsCargoComponent reports whether the product is a cargo-bike part.
func IsCargoComponent(productID int) bool { return cargoComponents[productID] }

func categoryProfiles() map[entity.ProductCategory]*Profile {
	return map[entity.ProductCategory]*Profile{
		entity.CategoryMotors:      {BaseDemand: 0.8, Seasonality: 0.3, LeadTimeDays: 14, BulkOrderFrequency: 0.7},
		entity.CategoryBatteries:   {BaseDemand: 0.9, Seasonality: 0.2, LeadTimeDays: 21, BulkOrderFrequency: 0.8},
		entity.CategoryFrames:      {BaseDemand: 0.6, Seasonality: 0.4, LeadTimeDays: 28, BulkOrderFrequency: 0.6},
		entity.CategoryWheels:      {BaseDemand: 0.7, Seasonality: 0.3, LeadTimeDays: 14, BulkOrderFrequency: 0.7},
		entity.CategoryBrakes:      {BaseDemand: 0.8, Seasonality: 0.2, LeadTimeDays: 10, BulkOrderFrequency: 0.8},
		entity.CategoryElectronics: {BaseDemand: 0.7, Seasonality: 0.1, LeadTimeDays: 7, BulkOrderFrequency: 0.6},
		entity.CategoryDrivetrain:  {BaseDemand: 0.6, Seasonality: 0.3, LeadTimeDays: 14, BulkOrderFrequency: 0.7},
		entity.CategoryAccessories: {BaseDemand: 0.5, Seasonality: 0.4, LeadTimeDays: 7, BulkOrderFrequency: 0.5},
	}
}

func warehouseDefinitions(created time.Time) []Warehouse {
	return []Warehouse{
		{
			Warehouse: entity.Warehouse{
				WarehouseID: 1,
				Name:        "Lyon Main Warehouse",
				Location:    "Zone Industrielle, 69007 Lyon, France",
				ManagerID:   101,
				Timezone:    "Europe/Paris",
				CreatedAt:   created,
				UpdatedAt:   created,
			},
			CapacityMin: 1.0,
			CapacityMax: 1.4,
		},
		{
			Warehouse: entity.Warehouse{
				WarehouseID: 2,
				Name:        "Hamburg Distribution Center",
				Location:    "Hafencity, 20457 Hamburg, Germany",
				ManagerID:   102,
				Timezone:    "Europe/Berlin",
				CreatedAt:   created,
				UpdatedAt:   created,
			},
			CapacityMin: 0.8,
			CapacityMax: 1.2,
		},
		{
			Warehouse: entity.Warehouse{
				WarehouseID: 3,
				Name:        "Milan Assembly Hub",
				Location:    "Via Industriale, 20090 Segrate MI, Italy",
				ManagerID:   103,
				Timezone:    "Europe/Rome",
				CreatedAt:   created,
				UpdatedAt:   created,
			},
			CapacityMin: 0.6,
			CapacityMax: 1.0,
		},
	}
}
