package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vulcantech/smartstock/internal/entity"
	"github.com/vulcantech/smartstock/internal/repository"
)

type TransactionService struct {
	repo *repository.TransactionRepository
}

func NewTransactionService(repo *repository.TransactionRepository) *TransactionService {
	return &TransactionService{repo: repo}
}

type CreateTransactionRequest struct {
	ProductID       int    `json:"product_id" binding:"required,gt=0"`
	WarehouseID     int    `json:"warehouse_id" binding:"required,gt=0"`
	QuantityChange  int    `json:"quantity_change" binding:"required"`
	TransactionType string `json:"transaction_type" binding:"required,oneof=inbound sale adjustment"`
	Status          string `json:"status" binding:"omitempty,oneof=pending confirmed processing shipped delivered cancelled"`
	Notes           string `json:"notes"`
}

func (s *TransactionService) Create(req CreateTransactionRequest) (*entity.InventoryTransaction, error) {
	txType := entity.TransactionType(req.TransactionType)

	// Sales leave stock, inbound arrives; a mismatched sign is a caller
	// bug, not data.
	switch txType {
	case entity.TransactionSale:
		if req.QuantityChange > 0 {
			return nil, fmt.Errorf("sale quantity_change must be negative")
		}
	case entity.TransactionInbound:
		if req.QuantityChange < 0 {
			return nil, fmt.Errorf("inbound quantity_change must be positive")
		}
	}

	status := entity.StatusPending
	if req.Status != "" {
		status = entity.TransactionStatus(req.Status)
	}

	now := time.Now().UTC()
	t := &entity.InventoryTransaction{
		TransactionNumber:    newTransactionNumber(txType, now),
		ProductID:            req.ProductID,
		WarehouseID:          req.WarehouseID,
		QuantityChange:       req.QuantityChange,
		TransactionType:      txType,
		Status:               status,
		Notes:                req.Notes,
		TransactionTimestamp: now,
		UpdatedAt:            now,
	}
	if err := s.repo.Create(t); err != nil {
		return nil, fmt.Errorf("create transaction: %w", err)
	}
	return t, nil
}

func newTransactionNumber(t entity.TransactionType, now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:5])
	return fmt.Sprintf("%s-%s-%s", t.Prefix(), now.Format("060102"), suffix)
}

func (s *TransactionService) Get(id int) (*entity.InventoryTransaction, error) {
	return s.repo.GetByID(id)
}

func (s *TransactionService) List(params repository.TransactionListParams) ([]entity.InventoryTransaction, int64, error) {
	if params.Limit <= 0 {
		params.Limit = 50
	}
	if params.Limit > 500 {
		params.Limit = 500
	}
	return s.repo.List(params)
}

var statusTransitions = map[entity.TransactionStatus][]entity.TransactionStatus{
	entity.StatusPending:    {entity.StatusConfirmed, entity.StatusCancelled},
	entity.StatusConfirmed:  {entity.StatusProcessing, entity.StatusCancelled},
	entity.StatusProcessing: {entity.StatusShipped, entity.StatusDelivered, entity.StatusCancelled},
	entity.StatusShipped:    {entity.StatusDelivered, entity.StatusCancelled},
}

func (s *TransactionService) UpdateStatus(id int, status entity.TransactionStatus) (*entity.InventoryTransaction, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("unknown status %q", status)
	}
	t, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	allowed := false
	for _, next := range statusTransitions[t.Status] {
		if next == status {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, fmt.Errorf("cannot move transaction from %s to %s", t.Status, status)
	}
	if err := s.repo.UpdateStatus(id, status); err != nil {
		return nil, fmt.Errorf("update transaction status: %w", err)
	}
	t.Status = status
	return t, nil
}

func (s *TransactionService) Delete(id int) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}

func (s *TransactionService) CurrentStock() ([]repository.StockLevel, error) {
	return s.repo.CurrentStock()
}
