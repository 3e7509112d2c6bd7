package service

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/zndrme19-del/soda-pop-pos/internal/apperrors"
	"github.com/zndrme19-del/soda-pop-pos/internal/repositories"
	"github.com/zndrme19-del/soda-pop-pos/models"
	"github.com/zndrme19-del/soda-pop-pos/pkg/logger"
)

// Define request structs
type CreateCategoryRequest struct {
	Name string              `json:"name"`
	Type models.CategoryType `json:"type"`
}

type CreateMenuItemRequest struct {
	Name       string                     `json:"name"`
	CategoryID *int                       `json:"categoryId"`
	Prices     map[string]decimal.Decimal `json:"prices"`
}

// CatalogService interface
type CatalogServiceInterface interface {
	ListCategories() ([]models.Category, error)
	CreateCategory(req CreateCategoryRequest) (*models.Category, error)
	DeleteCategory(id int) error
	ListMenuItems() ([]models.MenuItem, error)
	CreateMenuItem(req CreateMenuItemRequest) (*models.MenuItem, error)
	UpdateMenuItem(id int, patch models.MenuItemPatch) (*models.MenuItem, error)
	DeleteMenuItem(id int) error
}

// CatalogService owns category and menu item lifecycles
type CatalogService struct {
	categoryRepo repositories.CategoryRepositoryInterface
	menuRepo     repositories.MenuRepositoryInterface
	logger       *logger.Logger
}

// NewCatalogService creates a new CatalogService with the given repositories and logger
func NewCatalogService(categoryRepo repositories.CategoryRepositoryInterface, menuRepo repositories.MenuRepositoryInterface, log *logger.Logger) *CatalogService {
	return &CatalogService{
		categoryRepo: categoryRepo,
		menuRepo:     menuRepo,
		logger:       log.WithComponent("catalog_service"),
	}
}

// ListCategories retrieves all categories
func (s *CatalogService) ListCategories() ([]models.Category, error) {
	s.logger.Info("Fetching all categories")

	categories, err := s.categoryRepo.GetAll()
	if err != nil {
		s.logger.Error("Failed to fetch categories", "error", err)
		return nil, err
	}

	s.logger.Info("Fetched categories", "count", len(categories))
	return categories, nil
}

// CreateCategory creates a new category
func (s *CatalogService) CreateCategory(req CreateCategoryRequest) (*models.Category, error) {
	s.logger.Info("Creating new category", "name", req.Name, "type", req.Type)

	if err := s.validateCategoryData(req); err != nil {
		s.logger.Warn("Create failed: invalid category data", "error", err)
		return nil, err
	}

	category := &models.Category{
		Name: strings.TrimSpace(req.Name),
		Type: req.Type,
	}

	if err := s.categoryRepo.Create(category); err != nil {
		s.logger.Error("Failed to create category", "error", err)
		return nil, err
	}

	s.logger.Info("Category created", "category_id", category.ID, "name", category.Name)
	return category, nil
}

// DeleteCategory removes a category; referencing menu items become uncategorized
func (s *CatalogService) DeleteCategory(id int) error {
	s.logger.Info("Deleting category", "category_id", id)

	if err := s.categoryRepo.Delete(id); err != nil {
		s.logger.Warn("Failed to delete category", "category_id", id, "error", err)
		return err
	}

	s.logger.Info("Category deleted", "category_id", id)
	return nil
}

// ListMenuItems retrieves all menu items
func (s *CatalogService) ListMenuItems() ([]models.MenuItem, error) {
	s.logger.Info("Fetching all menu items")

	items, err := s.menuRepo.GetAll()
	if err != nil {
		s.logger.Error("Failed to fetch menu items", "error", err)
		return nil, err
	}

	s.logger.Info("Fetched menu items", "count", len(items))
	return items, nil
}

// CreateMenuItem creates a new menu item. The price map is taken as the
// caller shaped it: sized prices for drink categories, a single "default"
// price otherwise; the correspondence is not enforced here.
func (s *CatalogService) CreateMenuItem(req CreateMenuItemRequest) (*models.MenuItem, error) {
	s.logger.Info("Creating new menu item", "name", req.Name)

	if err := s.validateMenuItemData(req.Name, req.Prices); err != nil {
		s.logger.Warn("Create failed: invalid menu item data", "error", err)
		return nil, err
	}

	item := &models.MenuItem{
		Name:       strings.TrimSpace(req.Name),
		CategoryID: req.CategoryID,
		Prices:     req.Prices,
	}
	if item.Prices == nil {
		item.Prices = map[string]decimal.Decimal{}
	}

	if err := s.menuRepo.Create(item); err != nil {
		s.logger.Error("Failed to create menu item", "error", err)
		return nil, err
	}

	s.logger.Info("Menu item created", "item_id", item.ID, "name", item.Name)
	return item, nil
}

// UpdateMenuItem merges the patch over an existing item
func (s *CatalogService) UpdateMenuItem(id int, patch models.MenuItemPatch) (*models.MenuItem, error) {
	s.logger.Info("Updating menu item", "item_id", id)

	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		s.logger.Warn("Update failed: empty item name", "item_id", id)
		return nil, fmt.Errorf("item name cannot be empty: %w", apperrors.ErrValidation)
	}
	if err := s.validatePrices(patch.Prices); err != nil {
		s.logger.Warn("Update failed: invalid prices", "item_id", id, "error", err)
		return nil, err
	}

	merged, err := s.menuRepo.Update(id, patch)
	if err != nil {
		s.logger.Warn("Failed to update menu item", "item_id", id, "error", err)
		return nil, err
	}

	s.logger.Info("Menu item updated", "item_id", id, "name", merged.Name)
	return &merged, nil
}

// DeleteMenuItem removes a menu item
func (s *CatalogService) DeleteMenuItem(id int) error {
	s.logger.Info("Deleting menu item", "item_id", id)

	if err := s.menuRepo.Delete(id); err != nil {
		s.logger.Warn("Failed to delete menu item", "item_id", id, "error", err)
		return err
	}

	s.logger.Info("Menu item deleted", "item_id", id)
	return nil
}

// validation functions

func (s *CatalogService) validateCategoryData(req CreateCategoryRequest) error {
	if strings.TrimSpace(req.Name) == "" || req.Type == "" {
		return fmt.Errorf("category name and type are required: %w", apperrors.ErrValidation)
	}
	if !req.Type.IsValid() {
		return fmt.Errorf("category type must be %q or %q: %w",
			models.CategoryTypeDrink, models.CategoryTypeOther, apperrors.ErrValidation)
	}
	return nil
}

func (s *CatalogService) validateMenuItemData(name string, prices map[string]decimal.Decimal) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("item name cannot be empty: %w", apperrors.ErrValidation)
	}
	return s.validatePrices(prices)
}

func (s *CatalogService) validatePrices(prices map[string]decimal.Decimal) error {
	for size, price := range prices {
		if price.IsNegative() {
			return fmt.Errorf("price for size %q cannot be negative: %w", size, apperrors.ErrValidation)
		}
	}
	return nil
}
