package repositories

import (
	"fmt"

	"github.com/zndrme19-del/soda-pop-pos/internal/apperrors"
	"github.com/zndrme19-del/soda-pop-pos/models"
	"github.com/zndrme19-del/soda-pop-pos/pkg/jsonstore"
	"github.com/zndrme19-del/soda-pop-pos/pkg/logger"
)

type MenuRepositoryInterface interface {
	GetAll() ([]models.MenuItem, error)
	GetByID(id int) (models.MenuItem, error)
	Create(item *models.MenuItem) error
	Update(id int, patch models.MenuItemPatch) (models.MenuItem, error)
	Delete(id int) error
}

type MenuRepository struct {
	logger *logger.Logger
	store  *jsonstore.Store
}

func NewMenuRepository(log *logger.Logger, store *jsonstore.Store) *MenuRepository {
	return &MenuRepository{
		logger: log.WithComponent("menu_repository"),
		store:  store,
	}
}

// GetAll retrieves all menu items
func (r *MenuRepository) GetAll() ([]models.MenuItem, error) {
	r.logger.Debug("Retrieving all menu items")

	var items []models.MenuItem
	err := r.store.View(func(doc *jsonstore.Document) error {
		items = doc.Menu
		return nil
	})
	if err != nil {
		r.logger.Error("Failed to read menu items", "error", err)
		return nil, err
	}

	return items, nil
}

// GetByID retrieves a menu item by id
func (r *MenuRepository) GetByID(id int) (models.MenuItem, error) {
	r.logger.Debug("Retrieving menu item", "item_id", id)

	var item models.MenuItem
	err := r.store.View(func(doc *jsonstore.Document) error {
		for _, candidate := range doc.Menu {
			if candidate.ID == id {
				item = candidate
				return nil
			}
		}
		return fmt.Errorf("menu item with id %d: %w", id, apperrors.ErrNotFound)
	})
	if err != nil {
		r.logger.Warn("Menu item not found", "item_id", id, "error", err)
		return models.MenuItem{}, err
	}

	return item, nil
}

// Create appends a new menu item, assigning the next sequential id
func (r *MenuRepository) Create(item *models.MenuItem) error {
	r.logger.Debug("Adding new menu item", "item_name", item.Name)

	err := r.store.Update(func(doc *jsonstore.Document) error {
		item.ID = nextMenuItemID(doc.Menu)
		doc.Menu = append(doc.Menu, *item)
		return nil
	})
	if err != nil {
		r.logger.Error("Failed to add menu item", "item_name", item.Name, "error", err)
		return err
	}

	r.logger.Info("Added menu item", "item_id", item.ID, "name", item.Name)
	return nil
}

// Update merges the patch over an existing item in one read-modify-write
// cycle and returns the merged record. The id is immutable.
func (r *MenuRepository) Update(id int, patch models.MenuItemPatch) (models.MenuItem, error) {
	r.logger.Debug("Updating menu item", "item_id", id)

	var merged models.MenuItem
	err := r.store.Update(func(doc *jsonstore.Document) error {
		for i := range doc.Menu {
			if doc.Menu[i].ID == id {
				patch.Apply(&doc.Menu[i])
				doc.Menu[i].ID = id
				merged = doc.Menu[i]
				return nil
			}
		}
		return fmt.Errorf("menu item with id %d: %w", id, apperrors.ErrNotFound)
	})
	if err != nil {
		r.logger.Warn("Failed to update menu item", "item_id", id, "error", err)
		return models.MenuItem{}, err
	}

	r.logger.Info("Updated menu item", "item_id", id, "name", merged.Name)
	return merged, nil
}

// Delete removes a menu item by id
func (r *MenuRepository) Delete(id int) error {
	r.logger.Debug("Deleting menu item", "item_id", id)

	err := r.store.Update(func(doc *jsonstore.Document) error {
		for i, item := range doc.Menu {
			if item.ID == id {
				doc.Menu = append(doc.Menu[:i], doc.Menu[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("menu item with id %d: %w", id, apperrors.ErrNotFound)
	})
	if err != nil {
		r.logger.Warn("Failed to delete menu item", "item_id", id, "error", err)
		return err
	}

	r.logger.Info("Deleted menu item", "item_id", id)
	return nil
}
