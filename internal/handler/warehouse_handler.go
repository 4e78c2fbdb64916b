package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/vulcantech/smartstock/internal/service"
)

type WarehouseHandler struct {
	svc *service.WarehouseService
}

func NewWarehouseHandler(svc *service.WarehouseService) *WarehouseHandler {
	return &WarehouseHandler{svc: svc}
}

func (h *WarehouseHandler) List(c *gin.Context) {
	items, err := h.svc.List()
	if err != nil {
		serverError(c, err)
		return
	}
	ok(c, gin.H{"items": items})
}

func (h *WarehouseHandler) Get(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}
	w, err := h.svc.Get(id)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, w)
}

func (h *WarehouseHandler) Create(c *gin.Context) {
	var req service.CreateWarehouseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	w, err := h.svc.Create(req)
	if err != nil {
		fail(c, err)
		return
	}
	created(c, w)
}

func (h *WarehouseHandler) Update(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}
	var req service.UpdateWarehouseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	w, err := h.svc.Update(id, req)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, w)
}

func (h *WarehouseHandler) Delete(c *gin.Context) {
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
