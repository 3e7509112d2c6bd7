package repositories

import (
	"fmt"

	"github.com/zndrme19-del/soda-pop-pos/internal/apperrors"
	"github.com/zndrme19-del/soda-pop-pos/models"
	"github.com/zndrme19-del/soda-pop-pos/pkg/jsonstore"
	"github.com/zndrme19-del/soda-pop-pos/pkg/logger"
)

type OrderRepositoryInterface interface {
	GetAll() ([]models.Order, error)
	Create(order *models.Order) error
	Finish(id int) (models.Order, error)
}

type OrderRepository struct {
	logger *logger.Logger
	store  *jsonstore.Store
}

func NewOrderRepository(log *logger.Logger, store *jsonstore.Store) *OrderRepository {
	return &OrderRepository{
		logger: log.WithComponent("order_repository"),
		store:  store,
	}
}

// GetAll retrieves all active orders, pending and finished alike
func (r *OrderRepository) GetAll() ([]models.Order, error) {
	r.logger.Debug("Retrieving all orders")

	var orders []models.Order
	err := r.store.View(func(doc *jsonstore.Document) error {
		orders = doc.Orders
		return nil
	})
	if err != nil {
		r.logger.Error("Failed to read orders", "error", err)
		return nil, err
	}

	return orders, nil
}

// Create appends a new order, assigning the next sequential id
func (r *OrderRepository) Create(order *models.Order) error {
	r.logger.Debug("Adding new order", "line_count", len(order.Items))

	err := r.store.Update(func(doc *jsonstore.Document) error {
		order.ID = nextOrderID(doc.Orders)
		doc.Orders = append(doc.Orders, *order)
		return nil
	})
	if err != nil {
		r.logger.Error("Failed to add order", "error", err)
		return err
	}

	r.logger.Info("Added order", "order_id", order.ID, "total", order.Total)
	return nil
}

// Finish sets an order's status to finished and returns the updated
// order. Finishing an already-finished order is a harmless no-op.
func (r *OrderRepository) Finish(id int) (models.Order, error) {
	r.logger.Debug("Finishing order", "order_id", id)

	var finished models.Order
	err := r.store.Update(func(doc *jsonstore.Document) error {
		for i := range doc.Orders {
			if doc.Orders[i].ID == id {
				doc.Orders[i].Status = models.OrderStatusFinished
				finished = doc.Orders[i]
				return nil
			}
		}
		return fmt.Errorf("order with id %d: %w", id, apperrors.ErrNotFound)
	})
	if err != nil {
		r.logger.Warn("Failed to finish order", "order_id", id, "error", err)
		return models.Order{}, err
	}

	r.logger.Info("Finished order", "order_id", id, "total", finished.Total)
	return finished, nil
}
