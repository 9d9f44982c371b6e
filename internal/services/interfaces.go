package services

import (
	"context"
	"io"

	"inventory-app/internal/models"
	"inventory-app/internal/transport/forms"
)

// ImageUpload is an accepted uploaded file handed to the item workflows.
type ImageUpload struct {
	Ext  string // extension including the leading dot
	Data io.Reader
}

// CategoryService defines the category workflows.
type CategoryService interface {
	// List returns all categories sorted by name, each with the count of
	// items referencing it.
	List(ctx context.Context) ([]models.CategoryWithCount, error)
	// Get returns a category and its items (sorted by name).
	Get(ctx context.Context, id string) (*models.Category, []models.Item, error)
	Create(ctx context.Context, input forms.CategoryInput) (*models.Category, error)
	Update(ctx context.Context, id string, input forms.CategoryInput) (*models.Category, error)
	// Delete removes the category document. It does NOT cascade to items;
	// their references are left dangling.
	Delete(ctx context.Context, id string) error
}

// ItemService defines the item workflows, including the cascading image file
// side effects.
type ItemService interface {
	// List returns all items sorted by category, then name.
	List(ctx context.Context) ([]models.Item, error)
	// Get returns an item with its category resolved for display.
	Get(ctx context.Context, id string) (*models.ItemWithCategory, error)
	Create(ctx context.Context, input forms.ItemInput, image *ImageUpload) (*models.Item, error)
	Update(ctx context.Context, id string, input forms.ItemInput, image *ImageUpload) (*models.Item, error)
	Delete(ctx context.Context, id string) error
}
