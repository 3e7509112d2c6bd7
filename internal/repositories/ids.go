package repositories

import "github.com/zndrme19-del/soda-pop-pos/models"

// ID assignment: max(existing ids)+1, or 1 for an empty collection.
// Holes left by deletions below the maximum are never refilled. Callers
// run these inside a store Update, so two creates can never observe the
// same maximum.

func nextCategoryID(categories []models.Category) int {
	max := 0
	for _, c := range categories {
		if c.ID > max {
			max = c.ID
		}
	}
	return max + 1
}

func nextMenuItemID(items []models.MenuItem) int {
	max := 0
	for _, item := range items {
		if item.ID > max {
			max = item.ID
		}
	}
	return max + 1
}

func nextOrderID(orders []models.Order) int {
	max := 0
	for _, o := range orders {
		if o.ID > max {
			max = o.ID
		}
	}
	return max + 1
}
