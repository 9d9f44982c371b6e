package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"inventory-app/internal/models"
	"inventory-app/internal/storage"
	"inventory-app/internal/transport/forms"

	"github.com/google/uuid"
)

type categoryService struct {
	categories storage.CategoryRepository
	items      storage.ItemRepository
}

// NewCategoryService creates a new instance of CategoryService.
func NewCategoryService(categories storage.CategoryRepository, items storage.ItemRepository) CategoryService {
	return &categoryService{
		categories: categories,
		items:      items,
	}
}

var _ CategoryService = (*categoryService)(nil)

func (s *categoryService) List(ctx context.Context) ([]models.CategoryWithCount, error) {
	categories, err := s.categories.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: listing categories: %v", ErrStoreUnavailable, err)
	}

	// One count query per category, fanned out in parallel.
	out := make([]models.CategoryWithCount, len(categories))
	errs := make([]error, len(categories))
	var wg sync.WaitGroup
	for i, category := range categories {
		out[i].Category = category
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			out[i].ItemCount, errs[i] = s.items.CountByCategory(ctx, id)
		}(i, category.ID.String())
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("%w: counting items: %v", ErrStoreUnavailable, err)
		}
	}

	return out, nil
}

func (s *categoryService) Get(ctx context.Context, id string) (*models.Category, []models.Item, error) {
	var (
		category *models.Category
		items    []models.Item
		catErr   error
		itemsErr error
	)

	// Entity and related list fetched in parallel.
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		category, catErr = s.categories.GetByID(ctx, id)
	}()
	go func() {
		defer wg.Done()
		items, itemsErr = s.items.GetByCategory(ctx, id)
	}()
	wg.Wait()

	if catErr != nil {
		if errors.Is(catErr, storage.ErrNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, fmt.Errorf("%w: fetching category %s: %v", ErrStoreUnavailable, id, catErr)
	}
	if itemsErr != nil {
		return nil, nil, fmt.Errorf("%w: fetching items of category %s: %v", ErrStoreUnavailable, id, itemsErr)
	}

	return category, items, nil
}

func (s *categoryService) Create(ctx context.Context, input forms.CategoryInput) (*models.Category, error) {
	category := &models.Category{
		ID:          uuid.New(),
		Name:        input.Name,
		Description: input.Description,
	}

	if err := s.categories.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("%w: creating category: %v", ErrStoreUnavailable, err)
	}
	return category, nil
}

func (s *categoryService) Update(ctx context.Context, id string, input forms.CategoryInput) (*models.Category, error) {
	category := &models.Category{
		Name:        input.Name,
		Description: input.Description,
	}

	if err := s.categories.Update(ctx, id, category); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: updating category %s: %v", ErrStoreUnavailable, id, err)
	}

	parsed, err := uuid.Parse(id)
	if err != nil {
		// Update succeeded, so the id was addressable.
		return nil, fmt.Errorf("%w: parsing category id %s: %v", ErrUnknown, id, err)
	}
	category.ID = parsed
	return category, nil
}

func (s *categoryService) Delete(ctx context.Context, id string) error {
	if err := s.categories.Delete(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("%w: deleting category %s: %v", ErrStoreUnavailable, id, err)
	}
	return nil
}
