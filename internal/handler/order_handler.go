package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vulcantech/smartstock/internal/entity"
	"github.com/vulcantech/smartstock/internal/repository"
	"github.com/vulcantech/smartstock/internal/service"
)

type OrderHandler struct {
	svc *service.OrderService
}

func NewOrderHandler(svc *service.OrderService) *OrderHandler {
	return &OrderHandler{svc: svc}
}

func (h *OrderHandler) List(c *gin.Context) {
	limit, offset := pagination(c)
	warehouseID, _ := strconv.Atoi(c.Query("warehouse_id"))
	productID, _ := strconv.Atoi(c.Query("product_id"))
	params := repository.OrderListParams{
		Status:      c.Query("status"),
		WarehouseID: warehouseID,
		ProductID:   productID,
		Limit:       limit,
		Offset:      offset,
	}
	items, total, err := h.svc.List(params)
	if err != nil {
		serverError(c, err)
		return
	}
	ok(c, gin.H{"items": items, "meta": newMeta(total, limit, offset)})
}

func (h *OrderHandler) Get(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}
	o, err := h.svc.Get(id)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, o)
}

func (h *OrderHandler) Create(c *gin.Context) {
	var req service.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	o, err := h.svc.Create(req)
	if err != nil {
		fail(c, err)
		return
	}
	created(c, o)
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	o, err := h.svc.UpdateStatus(id, entity.OrderStatus(req.Status))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, o)
}

func (h *OrderHandler) Delete(c *gin.Context) {
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
