package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"inventory-app/internal/models"
	"inventory-app/internal/storage"
	"inventory-app/internal/transport/forms"

	"github.com/google/uuid"
)

type itemService struct {
	items      storage.ItemRepository
	categories storage.CategoryRepository
	images     storage.ImageStore
}

// NewItemService creates a new instance of ItemService.
func NewItemService(items storage.ItemRepository, categories storage.CategoryRepository, images storage.ImageStore) ItemService {
	return &itemService{
		items:      items,
		categories: categories,
		images:     images,
	}
}

var _ ItemService = (*itemService)(nil)

func (s *itemService) List(ctx context.Context) ([]models.Item, error) {
	items, err := s.items.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: listing items: %v", ErrStoreUnavailable, err)
	}
	return items, nil
}

func (s *itemService) Get(ctx context.Context, id string) (*models.ItemWithCategory, error) {
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: fetching item %s: %v", ErrStoreUnavailable, id, err)
	}

	details := &models.ItemWithCategory{Item: *item}

	category, err := s.categories.GetByID(ctx, item.CategoryID.String())
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%w: resolving category of item %s: %v", ErrStoreUnavailable, id, err)
		}
		// The reference is not enforced at write time; a deleted category
		// simply leaves the item uncategorized on display.
		slog.Warn("Item references missing category", "item_id", id, "category_id", item.CategoryID)
	} else {
		details.Category = category
	}

	return details, nil
}

func (s *itemService) Create(ctx context.Context, input forms.ItemInput, image *ImageUpload) (*models.Item, error) {
	item := &models.Item{
		ID:          uuid.New(),
		Name:        input.Name,
		Description: input.Description,
		CategoryID:  input.CategoryID,
		Price:       input.Price,
		Stock:       input.Stock,
	}

	if image != nil {
		path, err := s.images.Save(image.Ext, image.Data)
		if err != nil {
			return nil, fmt.Errorf("%w: saving image: %v", ErrUnknown, err)
		}
		item.Image = path
	}

	if err := s.items.Create(ctx, item); err != nil {
		// Roll back the file so nothing is partially saved.
		if item.Image != "" {
			if rmErr := s.images.Remove(item.Image); rmErr != nil {
				slog.Error("Failed to roll back image after create failure", "path", item.Image, "error", rmErr)
			}
		}
		return nil, fmt.Errorf("%w: creating item: %v", ErrStoreUnavailable, err)
	}

	return item, nil
}

// Update overwrites every item field. When a new image is accepted, the new
// file is written first, then the document is updated, then the old file is
// removed. A failed document update rolls the new file back; a failed
// old-file removal after a committed update leaves the document consistent
// and surfaces the orphaned file as ErrUnknown.
func (s *itemService) Update(ctx context.Context, id string, input forms.ItemInput, image *ImageUpload) (*models.Item, error) {
	current, err := s.items.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: fetching item %s: %v", ErrStoreUnavailable, id, err)
	}

	next := &models.Item{
		ID:          current.ID,
		Name:        input.Name,
		Description: input.Description,
		CategoryID:  input.CategoryID,
		Price:       input.Price,
		Stock:       input.Stock,
		Image:       current.Image,
	}

	var newPath string
	if image != nil {
		newPath, err = s.images.Save(image.Ext, image.Data)
		if err != nil {
			return nil, fmt.Errorf("%w: saving replacement image: %v", ErrUnknown, err)
		}
		next.Image = newPath
	}

	if err := s.items.Update(ctx, id, next); err != nil {
		if newPath != "" {
			if rmErr := s.images.Remove(newPath); rmErr != nil {
				slog.Error("Failed to roll back image after update failure", "path", newPath, "error", rmErr)
			}
		}
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: updating item %s: %v", ErrStoreUnavailable, id, err)
	}

	if newPath != "" && current.Image != "" {
		if err := s.images.Remove(current.Image); err != nil {
			return nil, fmt.Errorf("%w: removing replaced image %s: %v", ErrUnknown, current.Image, err)
		}
	}

	return next, nil
}

// Delete removes the item document first, then its image file. A file
// failure after the document is gone is a genuine partial-failure state and
// surfaces as ErrUnknown.
func (s *itemService) Delete(ctx context.Context, id string) error {
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("%w: fetching item %s: %v", ErrStoreUnavailable, id, err)
	}

	if err := s.items.Delete(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("%w: deleting item %s: %v", ErrStoreUnavailable, id, err)
	}

	if item.HasImage() {
		if err := s.images.Remove(item.Image); err != nil {
			return fmt.Errorf("%w: removing image %s of deleted item: %v", ErrUnknown, item.Image, err)
		}
	}

	return nil
}
