package repositories

import (
	"fmt"

	"github.com/zndrme19-del/soda-pop-pos/internal/apperrors"
	"github.com/zndrme19-del/soda-pop-pos/models"
	"github.com/zndrme19-del/soda-pop-pos/pkg/jsonstore"
	"github.com/zndrme19-del/soda-pop-pos/pkg/logger"
)

type CategoryRepositoryInterface interface {
	GetAll() ([]models.Category, error)
	Create(category *models.Category) error
	Delete(id int) error
}

type CategoryRepository struct {
	logger *logger.Logger
	store  *jsonstore.Store
}

func NewCategoryRepository(log *logger.Logger, store *jsonstore.Store) *CategoryRepository {
	return &CategoryRepository{
		logger: log.WithComponent("category_repository"),
		store:  store,
	}
}

// GetAll retrieves all categories
func (r *CategoryRepository) GetAll() ([]models.Category, error) {
	r.logger.Debug("Retrieving all categories")

	var categories []models.Category
	err := r.store.View(func(doc *jsonstore.Document) error {
		categories = doc.Categories
		return nil
	})
	if err != nil {
		r.logger.Error("Failed to read categories", "error", err)
		return nil, err
	}

	return categories, nil
}

// Create appends a new category, assigning the next sequential id
func (r *CategoryRepository) Create(category *models.Category) error {
	r.logger.Debug("Adding new category", "name", category.Name)

	err := r.store.Update(func(doc *jsonstore.Document) error {
		category.ID = nextCategoryID(doc.Categories)
		doc.Categories = append(doc.Categories, *category)
		return nil
	})
	if err != nil {
		r.logger.Error("Failed to add category", "name", category.Name, "error", err)
		return err
	}

	r.logger.Info("Added category", "category_id", category.ID, "name", category.Name)
	return nil
}

// Delete removes a category and nulls out categoryId on every menu item
// that referenced it. Items themselves are never cascade-deleted.
func (r *CategoryRepository) Delete(id int) error {
	r.logger.Debug("Deleting category", "category_id", id)

	cleared := 0
	err := r.store.Update(func(doc *jsonstore.Document) error {
		index := -1
		for i, c := range doc.Categories {
			if c.ID == id {
				index = i
				break
			}
		}
		if index == -1 {
			return fmt.Errorf("category with id %d: %w", id, apperrors.ErrNotFound)
		}

		doc.Categories = append(doc.Categories[:index], doc.Categories[index+1:]...)

		for i := range doc.Menu {
			if doc.Menu[i].CategoryID != nil && *doc.Menu[i].CategoryID == id {
				doc.Menu[i].CategoryID = nil
				cleared++
			}
		}
		return nil
	})
	if err != nil {
		r.logger.Warn("Failed to delete category", "category_id", id, "error", err)
		return err
	}

	r.logger.Info("Deleted category", "category_id", id, "items_uncategorized", cleared)
	return nil
}
