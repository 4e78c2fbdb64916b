package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vulcantech/smartstock/internal/entity"
	"github.com/vulcantech/smartstock/internal/repository"
)

type OrderService struct {
	repo       *repository.OrderRepository
	products   *repository.ProductRepository
	warehouses *repository.WarehouseRepository
}

func NewOrderService(repo *repository.OrderRepository, products *repository.ProductRepository, warehouses *repository.WarehouseRepository) *OrderService {
	return &OrderService{repo: repo, products: products, warehouses: warehouses}
}

type CreateOrderRequest struct {
	ProductID   int    `json:"product_id" binding:"required,gt=0"`
	WarehouseID int    `json:"warehouse_id" binding:"required,gt=0"`
	Quantity    int    `json:"quantity" binding:"required,gt=0"`
	RequestedBy string `json:"requested_by" binding:"required,max=255"`
	Notes       string `json:"notes"`
	ForecastID  *int   `json:"forecast_id"`
}

func (s *OrderService) Create(req CreateOrderRequest) (*entity.ReplenishmentOrder, error) {
	if _, err := s.products.GetByID(req.ProductID); err != nil {
		return nil, fmt.Errorf("product %d: %w", req.ProductID, err)
	}
	if _, err := s.warehouses.GetByID(req.WarehouseID); err != nil {
		return nil, fmt.Errorf("warehouse %d: %w", req.WarehouseID, err)
	}

	now := time.Now().UTC()
	o := &entity.ReplenishmentOrder{
		OrderNumber: newOrderNumber(now),
		ProductID:   req.ProductID,
		WarehouseID: req.WarehouseID,
		Quantity:    req.Quantity,
		RequestedBy: req.RequestedBy,
		Status:      entity.OrderPending,
		Notes:       req.Notes,
		ForecastID:  req.ForecastID,
	}
	if err := s.repo.Create(o); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	return o, nil
}

func newOrderNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:6])
	return fmt.Sprintf("ORD-%s-%s", now.Format("060102"), suffix)
}

func (s *OrderService) Get(id int) (*entity.ReplenishmentOrder, error) {
	return s.repo.GetByID(id)
}

func (s *OrderService) List(params repository.OrderListParams) ([]entity.ReplenishmentOrder, int64, error) {
	if params.Limit <= 0 {
		params.Limit = 50
	}
	return s.repo.List(params)
}

// Replenishment orders move forward only; received and cancelled are
// terminal.
var orderTransitions = map[entity.OrderStatus][]entity.OrderStatus{
	entity.OrderPending:  {entity.OrderApproved, entity.OrderCancelled},
	entity.OrderApproved: {entity.OrderOrdered, entity.OrderCancelled},
	entity.OrderOrdered:  {entity.OrderReceived, entity.OrderCancelled},
}

func (s *OrderService) UpdateStatus(id int, status entity.OrderStatus) (*entity.ReplenishmentOrder, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("unknown order status %q", status)
	}
	o, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	allowed := false
	for _, next := range orderTransitions[o.Status] {
		if next == status {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, fmt.Errorf("cannot move order from %s to %s", o.Status, status)
	}
	o.Status = status
	if err := s.repo.Update(o); err != nil {
		return nil, fmt.Errorf("update order: %w", err)
	}
	return o, nil
}

func (s *OrderService) Delete(id int) error {
	o, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if o.Status != entity.OrderPending && o.Status != entity.OrderCancelled {
		return fmt.Errorf("only pending or cancelled orders can be deleted")
	}
	return s.repo.Delete(id)
}
