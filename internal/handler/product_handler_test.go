package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/vulcantech/smartstock/internal/entity"
	"github.com/vulcantech/smartstock/internal/repository"
	"github.com/vulcantech/smartstock/internal/service"
	"github.com/vulcantech/smartstock/internal/testutil"
)

func setupAPI(t *testing.T) (*gorm.DB, *gin.Engine) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	handlers := NewHandlers(service.New(repository.New(db)))

	r := testutil.SetupRouter()
	handlers.RegisterRoutes(r.Group("/api/v1"))
	return db, r
}

func body(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	return testutil.ParseResponse(w)
}

func TestProductCRUD(t *testing.T) {
	_, r := setupAPI(t)

	w := testutil.DoRequest(r, http.MethodPost, "/api/v1/products", service.CreateProductRequest{
		Name:         "Test Motor",
		SKU:          "TST-MTR-01",
		Price:        "199.99",
		Category:     string(entity.CategoryMotors),
		ReorderLevel: 12,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", w.Code, w.Body.String())
	}
	data := body(t, w)["data"].(map[string]interface{})
	if data["product_id"].(float64) == 0 {
		t.Fatal("created product has no id")
	}

	w = testutil.DoRequest(r, http.MethodGet, "/api/v1/products", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d", w.Code)
	}
	meta := body(t, w)["data"].(map[string]interface{})["meta"].(map[string]interface{})
	if meta["total"].(float64) != 1 {
		t.Errorf("list total = %v, want 1", meta["total"])
	}
	if meta["has_next"].(bool) || meta["has_prev"].(bool) {
		t.Error("single page should have no next/prev")
	}

	w = testutil.DoRequest(r, http.MethodPut, "/api/v1/products/1", map[string]interface{}{"reorder_level": 20})
	if w.Code != http.StatusOK {
		t.Fatalf("update status = %d, body %s", w.Code, w.Body.String())
	}
	data = body(t, w)["data"].(map[string]interface{})
	if data["reorder_level"].(float64) != 20 {
		t.Errorf("reorder_level = %v, want 20", data["reorder_level"])
	}

	if w = testutil.DoRequest(r, http.MethodDelete, "/api/v1/products/1", nil); w.Code != http.StatusOK {
		t.Fatalf("delete status = %d", w.Code)
	}
	if w = testutil.DoRequest(r, http.MethodGet, "/api/v1/products/1", nil); w.Code != http.StatusNotFound {
		t.Errorf("get after delete status = %d, want 404", w.Code)
	}
}

func TestProductCreateRejectsBadPrice(t *testing.T) {
	_, r := setupAPI(t)

	w := testutil.DoRequest(r, http.MethodPost, "/api/v1/products", service.CreateProductRequest{
		Name:     "Broken",
		SKU:      "TST-BAD-01",
		Price:    "not-a-price",
		Category: string(entity.CategoryMotors),
	})
	if w.Code < 400 {
		t.Errorf("bad price status = %d, want an error status", w.Code)
	}
}

func TestProductDeleteBlockedWhenReferenced(t *testing.T) {
	db, r := setupAPI(t)

	p := testutil.SeedProduct(t, db, &entity.Product{
		Name: "Wired Motor", SKU: "TST-REF-01",
		Price: decimal.RequireFromString("10.00"), Unit: "piece",
		Category: entity.CategoryMotors, ReorderLevel: 5,
	})
	wh := testutil.SeedWarehouse(t, db, &entity.Warehouse{Name: "Lyon", Timezone: "utc"})
	if err := db.Create(&entity.InventoryTransaction{
		TransactionNumber: "INB-240601-AAAAA",
		ProductID:         p.ProductID,
		WarehouseID:       wh.WarehouseID,
		QuantityChange:    5,
		TransactionType:   entity.TransactionInbound,
		Status:            entity.StatusDelivered,
	}).Error; err != nil {
		t.Fatalf("seed transaction: %v", err)
	}

	if w := testutil.DoRequest(r, http.MethodDelete, "/api/v1/products/1", nil); w.Code != http.StatusConflict {
		t.Errorf("delete referenced product status = %d, want 409", w.Code)
	}
}
