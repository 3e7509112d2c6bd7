package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// CategoryType determines the pricing shape of items in a category:
// "drink" categories price per size label, everything else uses the
// single "default" price.
type CategoryType string

const (
	CategoryTypeDrink CategoryType = "drink"
	CategoryTypeOther CategoryType = "other"
)

// SizeDefault is the sentinel price key for flat-priced items.
const SizeDefault = "default"

type Category struct {
	ID   int          `json:"id"`
	Name string       `json:"name"`
	Type CategoryType `json:"type"`
}

// IsValid reports whether the category type is one of the known values.
func (t CategoryType) IsValid() bool {
	return t == CategoryTypeDrink || t == CategoryTypeOther
}

// MenuItem is a sellable product. CategoryID is nil for uncategorized
// items, including items whose category was deleted after creation.
// Prices maps a size label to a unit price; flat-priced items hold a
// single entry under SizeDefault.
type MenuItem struct {
	ID         int                        `json:"id"`
	Name       string                     `json:"name"`
	CategoryID *int                       `json:"categoryId"`
	Prices     map[string]decimal.Decimal `json:"prices"`
}

// OptionalCategoryID distinguishes an absent categoryId field from an
// explicit null in a partial update.
type OptionalCategoryID struct {
	Set   bool
	Value *int
}

func (o *OptionalCategoryID) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

// MenuItemPatch is the explicit merge set for updating a menu item:
// name, categoryId and prices are mergeable, the id is immutable.
// A nil/absent field leaves the existing value untouched; provided
// prices replace the whole price map.
type MenuItemPatch struct {
	Name       *string                    `json:"name"`
	CategoryID OptionalCategoryID         `json:"categoryId"`
	Prices     map[string]decimal.Decimal `json:"prices"`
}

// Apply merges the patch over the item.
func (p MenuItemPatch) Apply(item *MenuItem) {
	if p.Name != nil {
		item.Name = *p.Name
	}
	if p.CategoryID.Set {
		item.CategoryID = p.CategoryID.Value
	}
	if p.Prices != nil {
		item.Prices = p.Prices
	}
}
