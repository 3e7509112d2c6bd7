package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/zndrme19-del/soda-pop-pos/internal/repositories"
	"github.com/zndrme19-del/soda-pop-pos/models"
	"github.com/zndrme19-del/soda-pop-pos/pkg/jsonstore"
	"github.com/zndrme19-del/soda-pop-pos/pkg/logger"
)

type posServices struct {
	catalog *CatalogService
	orders  *OrderService
	sales   *SalesService
	store   *jsonstore.Store
	log     *logger.Logger
}

// newPOSServices wires all three services over one shared store, the way
// main does.
func newPOSServices(t *testing.T) *posServices {
	t.Helper()
	store := newTestStore(t)
	log := newTestLogger()
	return &posServices{
		catalog: NewCatalogService(
			repositories.NewCategoryRepository(log, store),
			repositories.NewMenuRepository(log, store),
			log,
		),
		orders: NewOrderService(repositories.NewOrderRepository(log, store), log),
		sales:  NewSalesService(repositories.NewSalesRepository(log, store), log),
		store:  store,
		log:    log,
	}
}

func TestResetDayNothingFinished(t *testing.T) {
	pos := newPOSServices(t)

	if _, err := pos.orders.PlaceOrder(PlaceOrderRequest{
		Items: []models.OrderLine{{MenuItemID: 1, Name: "Cola", UnitPrice: price("1.50"), Quantity: 1}},
	}); err != nil {
		t.Fatalf("PlaceOrder() error = %v", err)
	}

	record, err := pos.sales.ResetDay()
	if err != nil {
		t.Fatalf("ResetDay() error = %v", err)
	}
	if record != nil {
		t.Errorf("record = %+v, want nil when nothing is finished", record)
	}

	orders, err := pos.orders.ListOrders()
	if err != nil {
		t.Fatalf("ListOrders() error = %v", err)
	}
	if len(orders) != 1 {
		t.Errorf("orders length = %d, want pending order untouched", len(orders))
	}
	history, err := pos.sales.GetHistory()
	if err != nil {
		t.Fatalf("GetHistory() error = %v", err)
	}
	if len(history) != 0 {
		t.Errorf("history length = %d, want 0", len(history))
	}
}

func TestResetDayArchivesOnlyFinished(t *testing.T) {
	pos := newPOSServices(t)
	settledAt := time.Date(2024, 6, 1, 22, 0, 0, 0, time.UTC)
	pos.sales.now = func() time.Time { return settledAt }

	line := func(p string) []models.OrderLine {
		return []models.OrderLine{{MenuItemID: 1, Name: "Cola", UnitPrice: price(p), Quantity: 1}}
	}
	first, err := pos.orders.PlaceOrder(PlaceOrderRequest{Items: line("2.50")})
	if err != nil {
		t.Fatalf("PlaceOrder() error = %v", err)
	}
	second, err := pos.orders.PlaceOrder(PlaceOrderRequest{Items: line("5.00")})
	if err != nil {
		t.Fatalf("PlaceOrder() error = %v", err)
	}
	third, err := pos.orders.PlaceOrder(PlaceOrderRequest{Items: line("1.00")})
	if err != nil {
		t.Fatalf("PlaceOrder() error = %v", err)
	}

	for _, id := range []int{first.ID, second.ID} {
		if _, err := pos.orders.FinishOrder(id); err != nil {
			t.Fatalf("FinishOrder(%d) error = %v", id, err)
		}
	}

	record, err := pos.sales.ResetDay()
	if err != nil {
		t.Fatalf("ResetDay() error = %v", err)
	}
	if record == nil {
		t.Fatal("ResetDay() record = nil, want settlement record")
	}
	if !record.Total.Equal(price("7.50")) {
		t.Errorf("record total = %s, want 7.50", record.Total)
	}
	if len(record.Orders) != 2 {
		t.Errorf("archived orders = %d, want 2", len(record.Orders))
	}
	if !record.Date.Equal(settledAt) {
		t.Errorf("record date = %s, want %s", record.Date, settledAt)
	}

	orders, err := pos.orders.ListOrders()
	if err != nil {
		t.Fatalf("ListOrders() error = %v", err)
	}
	if len(orders) != 1 || orders[0].ID != third.ID {
		t.Errorf("remaining orders = %+v, want only pending order %d", orders, third.ID)
	}

	history, err := pos.sales.GetHistory()
	if err != nil {
		t.Fatalf("GetHistory() error = %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("history length = %d, want 1", len(history))
	}
}

// TestDayAtTheRegister walks a day end to end: set up the catalog, ring
// up a latte, finish it, settle the day.
func TestDayAtTheRegister(t *testing.T) {
	pos := newPOSServices(t)

	coffee, err := pos.catalog.CreateCategory(CreateCategoryRequest{Name: "Coffee", Type: models.CategoryTypeDrink})
	if err != nil {
		t.Fatalf("CreateCategory() error = %v", err)
	}
	if coffee.ID != 1 {
		t.Fatalf("category id = %d, want 1", coffee.ID)
	}

	latte, err := pos.catalog.CreateMenuItem(CreateMenuItemRequest{
		Name:       "Latte",
		CategoryID: &coffee.ID,
		Prices: map[string]decimal.Decimal{
			"16oz": price("3.00"),
			"22oz": price("4.00"),
		},
	})
	if err != nil {
		t.Fatalf("CreateMenuItem() error = %v", err)
	}
	if latte.ID != 1 {
		t.Fatalf("item id = %d, want 1", latte.ID)
	}

	order, err := pos.orders.PlaceOrder(PlaceOrderRequest{
		Items: []models.OrderLine{{
			CartID:     "1-16oz",
			MenuItemID: latte.ID,
			Name:       latte.Name,
			Size:       "16oz",
			UnitPrice:  latte.Prices["16oz"],
			Quantity:   2,
		}},
	})
	if err != nil {
		t.Fatalf("PlaceOrder() error = %v", err)
	}
	if !order.Total.Equal(price("6.00")) {
		t.Fatalf("order total = %s, want 6.00", order.Total)
	}
	if order.Status != models.OrderStatusPending {
		t.Fatalf("order status = %q, want pending", order.Status)
	}

	if _, err := pos.orders.FinishOrder(order.ID); err != nil {
		t.Fatalf("FinishOrder() error = %v", err)
	}

	record, err := pos.sales.ResetDay()
	if err != nil {
		t.Fatalf("ResetDay() error = %v", err)
	}
	if record == nil {
		t.Fatal("ResetDay() record = nil, want settlement record")
	}
	if !record.Total.Equal(price("6.00")) {
		t.Errorf("settled total = %s, want 6.00", record.Total)
	}
	if len(record.Orders) != 1 || record.Orders[0].ID != order.ID {
		t.Errorf("archived orders = %+v, want order %d", record.Orders, order.ID)
	}

	orders, err := pos.orders.ListOrders()
	if err != nil {
		t.Fatalf("ListOrders() error = %v", err)
	}
	if len(orders) != 0 {
		t.Errorf("orders after reset = %d, want empty queue", len(orders))
	}
}

// A settled record is a snapshot: repricing the menu afterwards must not
// rewrite history.
func TestHistorySurvivesMenuRepricing(t *testing.T) {
	pos := newPOSServices(t)

	item, err := pos.catalog.CreateMenuItem(CreateMenuItemRequest{
		Name:   "Espresso",
		Prices: map[string]decimal.Decimal{models.SizeDefault: price("2.00")},
	})
	if err != nil {
		t.Fatalf("CreateMenuItem() error = %v", err)
	}

	order, err := pos.orders.PlaceOrder(PlaceOrderRequest{
		Items: []models.OrderLine{{
			MenuItemID: item.ID,
			Name:       item.Name,
			Size:       models.SizeDefault,
			UnitPrice:  item.Prices[models.SizeDefault],
			Quantity:   3,
		}},
	})
	if err != nil {
		t.Fatalf("PlaceOrder() error = %v", err)
	}
	if _, err := pos.orders.FinishOrder(order.ID); err != nil {
		t.Fatalf("FinishOrder() error = %v", err)
	}
	if _, err := pos.sales.ResetDay(); err != nil {
		t.Fatalf("ResetDay() error = %v", err)
	}

	if _, err := pos.catalog.UpdateMenuItem(item.ID, models.MenuItemPatch{
		Prices: map[string]decimal.Decimal{models.SizeDefault: price("9.00")},
	}); err != nil {
		t.Fatalf("UpdateMenuItem() error = %v", err)
	}

	history, err := pos.sales.GetHistory()
	if err != nil {
		t.Fatalf("GetHistory() error = %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("history length = %d, want 1", len(history))
	}
	if !history[0].Total.Equal(price("6.00")) {
		t.Errorf("settled total = %s, want 6.00 despite repricing", history[0].Total)
	}
	if !history[0].Orders[0].Items[0].UnitPrice.Equal(price("2.00")) {
		t.Errorf("archived line price = %s, want original 2.00", history[0].Orders[0].Items[0].UnitPrice)
	}
}
