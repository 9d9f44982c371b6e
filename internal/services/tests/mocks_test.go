package services_test

import (
	"context"
	"io"

	"inventory-app/internal/models"
	"inventory-app/internal/storage"

	"github.com/stretchr/testify/mock"
)

// MockCategoryRepo is a mock type for the storage.CategoryRepository interface
type MockCategoryRepo struct {
	mock.Mock
}

var _ storage.CategoryRepository = (*MockCategoryRepo)(nil)

func (m *MockCategoryRepo) GetAll(ctx context.Context) ([]models.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockCategoryRepo) GetByID(ctx context.Context, id string) (*models.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepo) Create(ctx context.Context, category *models.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepo) Update(ctx context.Context, id string, category *models.Category) error {
	args := m.Called(ctx, id, category)
	return args.Error(0)
}

func (m *MockCategoryRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockItemRepo is a mock type for the storage.ItemRepository interface
type MockItemRepo struct {
	mock.Mock
}

var _ storage.ItemRepository = (*MockItemRepo)(nil)

func (m *MockItemRepo) GetAll(ctx context.Context) ([]models.Item, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Item), args.Error(1)
}

func (m *MockItemRepo) GetByID(ctx context.Context, id string) (*models.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Item), args.Error(1)
}

func (m *MockItemRepo) GetByCategory(ctx context.Context, categoryID string) ([]models.Item, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Item), args.Error(1)
}

func (m *MockItemRepo) CountByCategory(ctx context.Context, categoryID string) (int, error) {
	args := m.Called(ctx, categoryID)
	return args.Int(0), args.Error(1)
}

func (m *MockItemRepo) Create(ctx context.Context, item *models.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockItemRepo) Update(ctx context.Context, id string, item *models.Item) error {
	args := m.Called(ctx, id, item)
	return args.Error(0)
}

func (m *MockItemRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockImageStore is a mock type for the storage.ImageStore interface
type MockImageStore struct {
	mock.Mock
}

var _ storage.ImageStore = (*MockImageStore)(nil)

func (m *MockImageStore) Save(ext string, r io.Reader) (string, error) {
	args := m.Called(ext, r)
	return args.String(0), args.Error(1)
}

func (m *MockImageStore) Remove(publicPath string) error {
	args := m.Called(publicPath)
	return args.Error(0)
}
