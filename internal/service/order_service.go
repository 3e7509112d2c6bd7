package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/zndrme19-del/soda-pop-pos/internal/apperrors"
	"github.com/zndrme19-del/soda-pop-pos/internal/repositories"
	"github.com/zndrme19-del/soda-pop-pos/models"
	"github.com/zndrme19-del/soda-pop-pos/pkg/logger"
)

// PlaceOrderRequest carries the cart lines from the register. The client
// also sends its own running total and a status field; both are ignored
// here — the ledger recomputes the total from the line snapshots and every
// new order starts out pending.
type PlaceOrderRequest struct {
	Items  []models.OrderLine `json:"items"`
	Total  decimal.Decimal    `json:"total"`
	Status models.OrderStatus `json:"status"`
}

// OrderService interface
type OrderServiceInterface interface {
	ListOrders() ([]models.Order, error)
	PlaceOrder(req PlaceOrderRequest) (*models.Order, error)
	FinishOrder(id int) (*models.Order, error)
}

// OrderService owns the active order queue
type OrderService struct {
	orderRepo repositories.OrderRepositoryInterface
	logger    *logger.Logger
}

// NewOrderService creates a new OrderService with the given repository and logger
func NewOrderService(orderRepo repositories.OrderRepositoryInterface, log *logger.Logger) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		logger:    log.WithComponent("order_service"),
	}
}

// ListOrders retrieves all active orders
func (s *OrderService) ListOrders() ([]models.Order, error) {
	s.logger.Info("Fetching all orders")

	orders, err := s.orderRepo.GetAll()
	if err != nil {
		s.logger.Error("Failed to fetch orders", "error", err)
		return nil, err
	}

	s.logger.Info("Fetched orders", "count", len(orders))
	return orders, nil
}

// PlaceOrder creates a new pending order from the given line snapshots.
// The line prices and names come from the caller as placed and are never
// re-derived from the catalog afterwards.
func (s *OrderService) PlaceOrder(req PlaceOrderRequest) (*models.Order, error) {
	s.logger.Info("Placing new order", "line_count", len(req.Items))

	if err := s.validateOrderData(req); err != nil {
		s.logger.Warn("Place failed: invalid order data", "error", err)
		return nil, err
	}

	total := decimal.Zero
	for _, line := range req.Items {
		total = total.Add(line.LineTotal())
	}

	order := &models.Order{
		Items:  req.Items,
		Total:  total,
		Status: models.OrderStatusPending,
	}

	if err := s.orderRepo.Create(order); err != nil {
		s.logger.Error("Failed to place order", "error", err)
		return nil, err
	}

	s.logger.Info("Order placed", "order_id", order.ID, "total", order.Total)
	return order, nil
}

// FinishOrder transitions an order to finished
func (s *OrderService) FinishOrder(id int) (*models.Order, error) {
	s.logger.Info("Finishing order", "order_id", id)

	order, err := s.orderRepo.Finish(id)
	if err != nil {
		s.logger.Warn("Failed to finish order", "order_id", id, "error", err)
		return nil, err
	}

	s.logger.Info("Order finished", "order_id", id)
	return &order, nil
}

// validation functions

func (s *OrderService) validateOrderData(req PlaceOrderRequest) error {
	if len(req.Items) == 0 {
		return fmt.Errorf("order must contain at least one item: %w", apperrors.ErrValidation)
	}
	for i, line := range req.Items {
		if line.Quantity < 1 {
			return fmt.Errorf("item %d: quantity must be at least 1: %w", i+1, apperrors.ErrValidation)
		}
		if line.UnitPrice.IsNegative() {
			return fmt.Errorf("item %d: price cannot be negative: %w", i+1, apperrors.ErrValidation)
		}
	}
	return nil
}
