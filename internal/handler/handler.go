package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vulcantech/smartstock/internal/service"
)

// Handlers bundles the HTTP layer for route registration.
type Handlers struct {
	Product     *ProductHandler
	Warehouse   *WarehouseHandler
	Transaction *TransactionHandler
	Forecast    *ForecastHandler
	Order       *OrderHandler
	KPI         *KPIHandler
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Product:     NewProductHandler(services.Product),
		Warehouse:   NewWarehouseHandler(services.Warehouse),
		Transaction: NewTransactionHandler(services.Transaction),
		Forecast:    NewForecastHandler(services.Forecast),
		Order:       NewOrderHandler(services.Order),
		KPI:         NewKPIHandler(services.KPI),
	}
}

// RegisterRoutes mounts the API under /api/v1.
func (h *Handlers) RegisterRoutes(v1 *gin.RouterGroup) {
	products := v1.Group("/products")
	{
		products.GET("", h.Product.List)
		products.POST("", h.Product.Create)
		products.GET("/:id", h.Product.Get)
		products.PUT("/:id", h.Product.Update)
		products.DELETE("/:id", h.Product.Delete)
	}

	warehouses := v1.Group("/warehouses")
	{
		warehouses.GET("", h.Warehouse.List)
		warehouses.POST("", h.Warehouse.Create)
		warehouses.GET("/:id", h.Warehouse.Get)
		warehouses.PUT("/:id", h.Warehouse.Update)
		warehouses.DELETE("/:id", h.Warehouse.Delete)
	}

	transactions := v1.Group("/transactions")
	{
		transactions.GET("", h.Transaction.List)
		transactions.POST("", h.Transaction.Create)
		transactions.GET("/stock", h.Transaction.CurrentStock)
		transactions.GET("/:id", h.Transaction.Get)
		transactions.PUT("/:id/status", h.Transaction.UpdateStatus)
		transactions.DELETE("/:id", h.Transaction.Delete)
	}

	forecasts := v1.Group("/forecasts")
	{
		forecasts.GET("", h.Forecast.List)
		forecasts.POST("/refresh", h.Forecast.Refresh)
		forecasts.GET("/:id", h.Forecast.Get)
		forecasts.DELETE("/:id", h.Forecast.Delete)
	}

	orders := v1.Group("/orders")
	{
		orders.GET("", h.Order.List)
		orders.POST("", h.Order.Create)
		orders.GET("/:id", h.Order.Get)
		orders.PUT("/:id/status", h.Order.UpdateStatus)
		orders.DELETE("/:id", h.Order.Delete)
	}

	kpis := v1.Group("/kpis")
	{
		kpis.GET("/transactions", h.KPI.TransactionStatus)
		kpis.GET("/stock-alerts", h.KPI.StockAlerts)
		kpis.GET("/processing-rate", h.KPI.ProcessingRate)
		kpis.GET("/inventory-turnover", h.KPI.InventoryTurnover)
	}
}

// Meta is the pagination block returned with every list response.
type Meta struct {
	Total   int64 `json:"total"`
	Limit   int   `json:"limit"`
	Offset  int   `json:"offset"`
	HasNext bool  `json:"has_next"`
	HasPrev bool  `json:"has_prev"`
}

func newMeta(total int64, limit, offset int) Meta {
	return Meta{
		Total:   total,
		Limit:   limit,
		Offset:  offset,
		HasNext: int64(offset+limit) < total,
		HasPrev: offset > 0,
	}
}

func ok(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"code": 0, "message": "success", "data": data})
}

func created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"code": 0, "message": "success", "data": data})
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"code": 10001, "message": err.Error()})
}

func serverError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{"code": 50001, "message": err.Error()})
}

// fail maps common service errors onto status codes.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"code": 10002, "message": "resource not found"})
	case errors.Is(err, service.ErrInUse):
		c.JSON(http.StatusConflict, gin.H{"code": 10003, "message": err.Error()})
	default:
		serverError(c, err)
	}
}

func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"code": 10001, "message": "invalid id"})
		return 0, false
	}
	return id, true
}

func pagination(c *gin.Context) (limit, offset int) {
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

func queryInts(c *gin.Context, key string) []int {
	var out []int
	for _, raw := range c.QueryArray(key) {
		if v, err := strconv.Atoi(raw); err == nil {
			out = append(out, v)
		}
	}
	return out
}
