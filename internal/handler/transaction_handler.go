package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vulcantech/smartstock/internal/entity"
	"github.com/vulcantech/smartstock/internal/repository"
	"github.com/vulcantech/smartstock/internal/service"
)

type TransactionHandler struct {
	svc *service.TransactionService
}

func NewTransactionHandler(svc *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{svc: svc}
}

// List supports repeated filter params (status, transaction_type,
// product_id, warehouse_id), a date range, and sorting by timestamp,
// product or warehouse.
func (h *TransactionHandler) List(c *gin.Context) {
	limit, offset := pagination(c)
	params := repository.TransactionListParams{
		ProductIDs:   queryInts(c, "product_id"),
		WarehouseIDs: queryInts(c, "warehouse_id"),
		Types:        c.QueryArray("transaction_type"),
		Statuses:     c.QueryArray("status"),
		SortBy:       c.DefaultQuery("sort_by", "timestamp"),
		SortDesc:     c.DefaultQuery("sort_dir", "desc") == "desc",
		Limit:        limit,
		Offset:       offset,
	}
	if raw := c.Query("date_from"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			badRequest(c, err)
			return
		}
		params.From = &t
	}
	if raw := c.Query("date_to"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			badRequest(c, err)
			return
		}
		// Inclusive end of day.
		t = t.Add(24*time.Hour - time.Second)
		params.To = &t
	}

	items, total, err := h.svc.List(params)
	if err != nil {
		serverError(c, err)
		return
	}
	ok(c, gin.H{"items": items, "meta": newMeta(total, params.Limit, offset)})
}

func (h *TransactionHandler) Get(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}
	t, err := h.svc.Get(id)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, t)
}

func (h *TransactionHandler) Create(c *gin.Context) {
	var req service.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	t, err := h.svc.Create(req)
	if err != nil {
		fail(c, err)
		return
	}
	created(c, t)
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *TransactionHandler) UpdateStatus(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	t, err := h.svc.UpdateStatus(id, entity.TransactionStatus(req.Status))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, t)
}

func (h *TransactionHandler) Delete(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}
	if err := h.svc.Delete(id); err != nil {
		fail(c, err)
		return
	}
	ok(c, nil)
}

func (h *TransactionHandler) CurrentStock(c *gin.Context) {
	levels, err := h.svc.CurrentStock()
	if err != nil {
		serverError(c, err)
		return
	}
	ok(c, gin.H{"items": levels})
}
