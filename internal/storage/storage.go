package storage

import (
	"context"
	"io"

	"inventory-app/internal/models"
)

// CategoryRepository defines the interface for category document operations.
// Lookups return ErrNotFound when no document matches; any other error is a
// store failure.
type CategoryRepository interface {
	GetAll(ctx context.Context) ([]models.Category, error) // sorted by name
	GetByID(ctx context.Context, id string) (*models.Category, error)
	Create(ctx context.Context, category *models.Category) error
	Update(ctx context.Context, id string, category *models.Category) error
	Delete(ctx context.Context, id string) error
}

// ItemRepository defines the interface for item document operations.
type ItemRepository interface {
	GetAll(ctx context.Context) ([]models.Item, error) // sorted by category, then name
	GetByID(ctx context.Context, id string) (*models.Item, error)
	GetByCategory(ctx context.Context, categoryID string) ([]models.Item, error) // sorted by name
	CountByCategory(ctx context.Context, categoryID string) (int, error)
	Create(ctx context.Context, item *models.Item) error
	Update(ctx context.Context, id string, item *models.Item) error
	Delete(ctx context.Context, id string) error
}

// ImageStore persists uploaded image files and serves them back by public
// path (e.g. "/images/<name>").
type ImageStore interface {
	// Save writes the image and returns its public path. The extension must
	// include the leading dot.
	Save(ext string, r io.Reader) (string, error)
	// Remove deletes the file behind a public path. Removing a path that no
	// longer exists is not an error.
	Remove(publicPath string) error
}
