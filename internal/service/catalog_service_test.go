package service

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/zndrme19-del/soda-pop-pos/internal/apperrors"
	"github.com/zndrme19-del/soda-pop-pos/internal/repositories"
	"github.com/zndrme19-del/soda-pop-pos/models"
	"github.com/zndrme19-del/soda-pop-pos/pkg/jsonstore"
	"github.com/zndrme19-del/soda-pop-pos/pkg/logger"
)

func newTestLogger() *logger.Logger {
	return logger.New(logger.Config{
		Level:  logger.LevelError,
		Format: "text",
		Output: "stderr",
	})
}

func newTestStore(t *testing.T) *jsonstore.Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "database.json")
	store, err := jsonstore.Open(jsonstore.Config{Path: path}, newTestLogger())
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	return store
}

func newCatalogService(t *testing.T) *CatalogService {
	t.Helper()
	store := newTestStore(t)
	log := newTestLogger()
	return NewCatalogService(
		repositories.NewCategoryRepository(log, store),
		repositories.NewMenuRepository(log, store),
		log,
	)
}

func price(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func intPtr(v int) *int { return &v }

func TestCreateCategoryValidation(t *testing.T) {
	svc := newCatalogService(t)

	tests := []struct {
		name string
		req  CreateCategoryRequest
	}{
		{"missing name", CreateCategoryRequest{Type: models.CategoryTypeDrink}},
		{"missing type", CreateCategoryRequest{Name: "Soda"}},
		{"blank name", CreateCategoryRequest{Name: "   ", Type: models.CategoryTypeDrink}},
		{"unknown type", CreateCategoryRequest{Name: "Soda", Type: "frozen"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateCategory(tt.req)
			if !errors.Is(err, apperrors.ErrValidation) {
				t.Errorf("CreateCategory(%+v) error = %v, want ErrValidation", tt.req, err)
			}
		})
	}
}

func TestCreateCategoryAssignsSequentialIDs(t *testing.T) {
	svc := newCatalogService(t)

	first, err := svc.CreateCategory(CreateCategoryRequest{Name: "Soda", Type: models.CategoryTypeDrink})
	if err != nil {
		t.Fatalf("CreateCategory() error = %v", err)
	}
	second, err := svc.CreateCategory(CreateCategoryRequest{Name: "Snacks", Type: models.CategoryTypeOther})
	if err != nil {
		t.Fatalf("CreateCategory() error = %v", err)
	}

	if first.ID != 1 || second.ID != 2 {
		t.Errorf("assigned ids = %d, %d; want 1, 2", first.ID, second.ID)
	}
}

func TestDeleteCategoryUncategorizesItems(t *testing.T) {
	svc := newCatalogService(t)

	soda, err := svc.CreateCategory(CreateCategoryRequest{Name: "Soda", Type: models.CategoryTypeDrink})
	if err != nil {
		t.Fatalf("CreateCategory() error = %v", err)
	}

	item, err := svc.CreateMenuItem(CreateMenuItemRequest{
		Name:       "Cola",
		CategoryID: intPtr(soda.ID),
		Prices:     map[string]decimal.Decimal{"16oz": price("1.50"), "22oz": price("2.00")},
	})
	if err != nil {
		t.Fatalf("CreateMenuItem() error = %v", err)
	}

	if err := svc.DeleteCategory(soda.ID); err != nil {
		t.Fatalf("DeleteCategory() error = %v", err)
	}

	items, err := svc.ListMenuItems()
	if err != nil {
		t.Fatalf("ListMenuItems() error = %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("items length = %d, want item to survive category delete", len(items))
	}
	if items[0].ID != item.ID || items[0].CategoryID != nil {
		t.Errorf("surviving item = %+v, want categoryId nil", items[0])
	}
}

func TestDeleteCategoryNotFound(t *testing.T) {
	svc := newCatalogService(t)
	if err := svc.DeleteCategory(5); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("DeleteCategory(5) error = %v, want ErrNotFound", err)
	}
}

func TestCreateMenuItemValidation(t *testing.T) {
	svc := newCatalogService(t)

	if _, err := svc.CreateMenuItem(CreateMenuItemRequest{Name: ""}); !errors.Is(err, apperrors.ErrValidation) {
		t.Errorf("empty name error = %v, want ErrValidation", err)
	}

	req := CreateMenuItemRequest{
		Name:   "Cola",
		Prices: map[string]decimal.Decimal{models.SizeDefault: price("-1.00")},
	}
	if _, err := svc.CreateMenuItem(req); !errors.Is(err, apperrors.ErrValidation) {
		t.Errorf("negative price error = %v, want ErrValidation", err)
	}
}

func TestCreateMenuItemDoesNotCheckPriceShape(t *testing.T) {
	svc := newCatalogService(t)

	// Shaping prices to the category type is the caller's job: a sized
	// price map without any category must be accepted as-is.
	item, err := svc.CreateMenuItem(CreateMenuItemRequest{
		Name:   "Mystery Drink",
		Prices: map[string]decimal.Decimal{"16oz": price("3.00"), "22oz": price("4.00")},
	})
	if err != nil {
		t.Fatalf("CreateMenuItem() error = %v", err)
	}
	if len(item.Prices) != 2 {
		t.Errorf("prices = %v, want stored verbatim", item.Prices)
	}
}

func TestUpdateMenuItemMerge(t *testing.T) {
	svc := newCatalogService(t)

	item, err := svc.CreateMenuItem(CreateMenuItemRequest{
		Name:       "Cola",
		CategoryID: intPtr(1),
		Prices:     map[string]decimal.Decimal{"16oz": price("1.50")},
	})
	if err != nil {
		t.Fatalf("CreateMenuItem() error = %v", err)
	}

	newName := "Cherry Cola"
	updated, err := svc.UpdateMenuItem(item.ID, models.MenuItemPatch{
		Name:   &newName,
		Prices: map[string]decimal.Decimal{"16oz": price("1.75"), "22oz": price("2.25")},
	})
	if err != nil {
		t.Fatalf("UpdateMenuItem() error = %v", err)
	}

	if updated.Name != newName {
		t.Errorf("name = %q, want %q", updated.Name, newName)
	}
	if updated.CategoryID == nil || *updated.CategoryID != 1 {
		t.Errorf("categoryId = %v, want untouched 1", updated.CategoryID)
	}
	if !updated.Prices["22oz"].Equal(price("2.25")) {
		t.Errorf("prices = %v, want replaced map", updated.Prices)
	}
}

func TestUpdateMenuItemRejectsEmptyName(t *testing.T) {
	svc := newCatalogService(t)

	item, err := svc.CreateMenuItem(CreateMenuItemRequest{
		Name:   "Cola",
		Prices: map[string]decimal.Decimal{models.SizeDefault: price("1.50")},
	})
	if err != nil {
		t.Fatalf("CreateMenuItem() error = %v", err)
	}

	blank := "  "
	_, err = svc.UpdateMenuItem(item.ID, models.MenuItemPatch{Name: &blank})
	if !errors.Is(err, apperrors.ErrValidation) {
		t.Errorf("UpdateMenuItem(blank name) error = %v, want ErrValidation", err)
	}
}

func TestUpdateMenuItemNotFound(t *testing.T) {
	svc := newCatalogService(t)
	_, err := svc.UpdateMenuItem(9, models.MenuItemPatch{})
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("UpdateMenuItem(9) error = %v, want ErrNotFound", err)
	}
}

func TestDeleteMenuItemNotFound(t *testing.T) {
	svc := newCatalogService(t)
	if err := svc.DeleteMenuItem(9); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("DeleteMenuItem(9) error = %v, want ErrNotFound", err)
	}
}
