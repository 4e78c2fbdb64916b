package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vulcantech/smartstock/internal/service"
)

type KPIHandler struct {
	svc *service.KPIService
}

func NewKPIHandler(svc *service.KPIService) *KPIHandler {
	return &KPIHandler{svc: svc}
}

func windowDays(c *gin.Context, fallback int) int {
	days, _ := strconv.Atoi(c.DefaultQuery("window_days", strconv.Itoa(fallback)))
	if days <= 0 {
		days = fallback
	}
	return days
}

func (h *KPIHandler) TransactionStatus(c *gin.Context) {
	kpi, err := h.svc.TransactionStatusKPI(time.Now().UTC(), windowDays(c, 30))
	if err != nil {
		serverError(c, err)
		return
	}
	ok(c, kpi)
}

func (h *KPIHandler) StockAlerts(c *gin.Context) {
	alerts, err := h.svc.StockAlerts()
	if err != nil {
		serverError(c, err)
		return
	}
	ok(c, alerts)
}

func (h *KPIHandler) ProcessingRate(c *gin.Context) {
	kpi, err := h.svc.ProcessingRate(time.Now().UTC(), windowDays(c, 30))
	if err != nil {
		serverError(c, err)
		return
	}
	ok(c, kpi)
}

func (h *KPIHandler) InventoryTurnover(c *gin.Context) {
	kpi, err := h.svc.InventoryTurnover(time.Now().UTC(), windowDays(c, 90))
	if err != nil {
		serverError(c, err)
		return
	}
	ok(c, kpi)
}
