package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vulcantech/smartstock/internal/entity"
	"github.com/vulcantech/smartstock/internal/repository"
	"github.com/vulcantech/smartstock/internal/service"
)

type ForecastHandler struct {
	svc *service.ForecastService
}

func NewForecastHandler(svc *service.ForecastService) *ForecastHandler {
	return &ForecastHandler{svc: svc}
}

// forecastView decorates a forecast row with its severity bucket and the
// suggested action.
type forecastView struct {
	entity.InventoryForecast
	InventoryStatus entity.InventoryStatus `json:"inventory_status"`
	Action          string                 `json:"action"`
}

func (h *ForecastHandler) List(c *gin.Context) {
	limit, offset := pagination(c)
	warehouseID, _ := strconv.Atoi(c.Query("warehouse_id"))
	params := repository.ForecastListParams{
		WarehouseID: warehouseID,
		Status:      c.Query("status"),
		Limit:       limit,
		Offset:      offset,
	}
	items, total, err := h.svc.List(params)
	if err != nil {
		serverError(c, err)
		return
	}
	views := make([]forecastView, 0, len(items))
	for i := range items {
		status := service.InventoryStatusOf(&items[i])
		views = append(views, forecastView{
			InventoryForecast: items[i],
			InventoryStatus:   status,
			Action:            service.ActionFor(status),
		})
	}
	ok(c, gin.H{"items": views, "meta": newMeta(total, limit, offset)})
}

func (h *ForecastHandler) Get(c *gin.Context) {
	id, valid := pathID(c)
	if !valid {
		return
	}
	f, err := h.svc.Get(id)
	if err != nil {
		fail(c, err)
		return
	}
	status := service.InventoryStatusOf(f)
	ok(c, forecastView{
		InventoryForecast: *f,
		InventoryStatus:   status,
		Action:            service.ActionFor(status),
	})
}

func (h *ForecastHandler) Refresh(c *gin.Context) {
	n, err := h.svc.Refresh(time.Now().UTC())
	if err != nil {
		serverError(c, err)
		return
	}
	ok(c, gin.H{"refreshed": n})
}

func (h *ForecastHandler) Delete(c *gin.Context) {
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
