package handlers_test

import (
	"context"
	"mime/multipart"
	"testing"

	"inventory-app/internal/api/handlers"
	"inventory-app/internal/api/routes"
	"inventory-app/internal/models"
	"inventory-app/internal/services"
	"inventory-app/internal/transport/forms"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/mock"
)

// MockCategoryService is a mock type for the services.CategoryService interface
type MockCategoryService struct {
	mock.Mock
}

var _ services.CategoryService = (*MockCategoryService)(nil)

func (m *MockCategoryService) List(ctx context.Context) ([]models.CategoryWithCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CategoryWithCount), args.Error(1)
}

func (m *MockCategoryService) Get(ctx context.Context, id string) (*models.Category, []models.Item, error) {
	args := m.Called(ctx, id)
	var category *models.Category
	if args.Get(0) != nil {
		category = args.Get(0).(*models.Category)
	}
	var items []models.Item
	if args.Get(1) != nil {
		items = args.Get(1).([]models.Item)
	}
	return category, items, args.Error(2)
}

func (m *MockCategoryService) Create(ctx context.Context, input forms.CategoryInput) (*models.Category, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryService) Update(ctx context.Context, id string, input forms.CategoryInput) (*models.Category, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockItemService is a mock type for the services.ItemService interface
type MockItemService struct {
	mock.Mock
}

var _ services.ItemService = (*MockItemService)(nil)

func (m *MockItemService) List(ctx context.Context) ([]models.Item, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Item), args.Error(1)
}

func (m *MockItemService) Get(ctx context.Context, id string) (*models.ItemWithCategory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ItemWithCategory), args.Error(1)
}

func (m *MockItemService) Create(ctx context.Context, input forms.ItemInput, image *services.ImageUpload) (*models.Item, error) {
	args := m.Called(ctx, input, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Item), args.Error(1)
}

func (m *MockItemService) Update(ctx context.Context, id string, input forms.ItemInput, image *services.ImageUpload) (*models.Item, error) {
	args := m.Called(ctx, id, input, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Item), args.Error(1)
}

func (m *MockItemService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// newRouter builds a gin engine with the real templates and the mocked
// services wired through the production route registration.
func newRouter(t *testing.T, categories services.CategoryService, items services.ItemService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.LoadHTMLGlob("../../../../web/templates/*.html")

	validate := validator.New()
	routes.RegisterCategoryRoutes(router, handlers.NewCategoryHandler(categories, validate))
	routes.RegisterItemRoutes(router, handlers.NewItemHandler(items, categories, validate))
	router.NoRoute(handlers.NotFoundPage)

	return router
}

// writeField adds a simple text field to a multipart form.
func writeField(t *testing.T, w *multipart.Writer, name, value string) {
	t.Helper()
	if err := w.WriteField(name, value); err != nil {
		t.Fatalf("writing field %s: %v", name, err)
	}
}
