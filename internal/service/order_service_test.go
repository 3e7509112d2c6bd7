package service

import (
	"errors"
	"testing"

	"github.com/zndrme19-del/soda-pop-pos/internal/apperrors"
	"github.com/zndrme19-del/soda-pop-pos/internal/repositories"
	"github.com/zndrme19-del/soda-pop-pos/models"
)

func newOrderService(t *testing.T) *OrderService {
	t.Helper()
	store := newTestStore(t)
	log := newTestLogger()
	return NewOrderService(repositories.NewOrderRepository(log, store), log)
}

func TestPlaceOrderValidation(t *testing.T) {
	svc := newOrderService(t)

	tests := []struct {
		name string
		req  PlaceOrderRequest
	}{
		{"no items", PlaceOrderRequest{}},
		{"zero quantity", PlaceOrderRequest{Items: []models.OrderLine{
			{MenuItemID: 1, Name: "Cola", UnitPrice: price("1.50"), Quantity: 0},
		}}},
		{"negative price", PlaceOrderRequest{Items: []models.OrderLine{
			{MenuItemID: 1, Name: "Cola", UnitPrice: price("-1.50"), Quantity: 1},
		}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.PlaceOrder(tt.req)
			if !errors.Is(err, apperrors.ErrValidation) {
				t.Errorf("PlaceOrder(%+v) error = %v, want ErrValidation", tt.req, err)
			}
		})
	}
}

func TestPlaceOrderComputesTotal(t *testing.T) {
	svc := newOrderService(t)

	// The client's own total and status claims are passthrough noise.
	order, err := svc.PlaceOrder(PlaceOrderRequest{
		Items: []models.OrderLine{
			{CartID: "1-16oz", MenuItemID: 1, Name: "Latte", Size: "16oz", UnitPrice: price("3.00"), Quantity: 2},
			{CartID: "2-default", MenuItemID: 2, Name: "Muffin", Size: models.SizeDefault, UnitPrice: price("2.25"), Quantity: 1},
		},
		Total:  price("99.99"),
		Status: models.OrderStatusFinished,
	})
	if err != nil {
		t.Fatalf("PlaceOrder() error = %v", err)
	}

	if !order.Total.Equal(price("8.25")) {
		t.Errorf("total = %s, want 8.25 recomputed from lines", order.Total)
	}
	if order.Status != models.OrderStatusPending {
		t.Errorf("status = %q, want new orders to start pending", order.Status)
	}
	if order.ID != 1 {
		t.Errorf("id = %d, want 1", order.ID)
	}
}

func TestFinishOrder(t *testing.T) {
	svc := newOrderService(t)

	placed, err := svc.PlaceOrder(PlaceOrderRequest{
		Items: []models.OrderLine{
			{MenuItemID: 1, Name: "Cola", UnitPrice: price("1.50"), Quantity: 1},
		},
	})
	if err != nil {
		t.Fatalf("PlaceOrder() error = %v", err)
	}

	finished, err := svc.FinishOrder(placed.ID)
	if err != nil {
		t.Fatalf("FinishOrder() error = %v", err)
	}
	if finished.Status != models.OrderStatusFinished {
		t.Errorf("status = %q, want %q", finished.Status, models.OrderStatusFinished)
	}

	// Finishing again is a harmless repeat, not an error.
	again, err := svc.FinishOrder(placed.ID)
	if err != nil {
		t.Fatalf("FinishOrder() second call error = %v", err)
	}
	if again.Status != models.OrderStatusFinished {
		t.Errorf("status after refinish = %q, want %q", again.Status, models.OrderStatusFinished)
	}
}

func TestFinishOrderNotFound(t *testing.T) {
	svc := newOrderService(t)
	if _, err := svc.FinishOrder(7); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("FinishOrder(7) error = %v, want ErrNotFound", err)
	}
}
