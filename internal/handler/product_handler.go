package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/vulcantech/smartstock/internal/repository"
	"github.com/vulcantech/smartstock/internal/service"
)

type ProductHandler struct {
	svc *service.ProductService
}

func NewProductHandler(svc *service.ProductService) *ProductHandler {
	return &ProductHandler{svc: svc}
}

func (h *ProductHandler) List(c *gin.Context) {
	limit, offset := pagination(c)
	params := repository.ProductListParams{
		Category: c.Query("category"),
		Keyword:  c.Query("keyword"),
		Limit:    limit,
		Offset:   offset,
	}
	items, total, err := h.svc.List(params)
	if err != nil {
		serverError(c, err)
		return
	}
	ok(c, gin.H{"items": items, "meta": newMeta(total, limit, offset)})
}

func (h *ProductHandler) Get(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}
	p, err := h.svc.Get(id)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, p)
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req service.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	p, err := h.svc.Create(req)
	if err != nil {
		fail(c, err)
		return
	}
	created(c, p)
}

func (h *ProductHandler) Update(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}
	var req service.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	p, err := h.svc.Update(id, req)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, p)
}

func (h *ProductHandler) Delete(c *gin.Context) {
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
