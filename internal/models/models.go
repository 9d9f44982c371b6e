package models

import (
	"fmt"

	"github.com/google/uuid"
)

// Category groups items in the inventory. Name is required; Description may
// be empty.
type Category struct {
	ID          uuid.UUID `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
}

// URL returns the canonical path for the category. Derived, never stored.
func (c Category) URL() string {
	return "/category/" + c.ID.String()
}

// CategoryWithCount decorates a category with the number of items that
// reference it, for the category list view.
type CategoryWithCount struct {
	Category
	ItemCount int
}

// Item is a product in the inventory. CategoryID references a Category but is
// not enforced by the store; deleting a category leaves its items dangling.
// Image is the public path of an uploaded file, empty when none was uploaded.
type Item struct {
	ID          uuid.UUID `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	CategoryID  uuid.UUID `db:"category_id"`
	Price       float64   `db:"price"`
	Stock       int       `db:"stock"`
	Image       string    `db:"image"`
}

// URL returns the canonical path for the item. Derived, never stored.
func (i Item) URL() string {
	return "/item/" + i.ID.String()
}

// PriceFormatted renders the price with exactly two decimals.
func (i Item) PriceFormatted() string {
	return fmt.Sprintf("%.2f", i.Price)
}

// HasImage reports whether an uploaded image is attached.
func (i Item) HasImage() bool {
	return i.Image != ""
}

// ItemWithCategory pairs an item with its resolved category for the detail
// view. Category is nil when the referenced category no longer exists.
type ItemWithCategory struct {
	Item
	Category *Category
}
