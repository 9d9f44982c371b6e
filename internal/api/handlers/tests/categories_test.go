package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"inventory-app/internal/models"
	"inventory-app/internal/services"
	"inventory-app/internal/transport/forms"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func postForm(router http.Handler, path string, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func get(router http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCategoryList(t *testing.T) {
	categorySvc := new(MockCategoryService)
	router := newRouter(t, categorySvc, new(MockItemService))

	categorySvc.On("List", mock.Anything).Return([]models.CategoryWithCount{
		{Category: models.Category{ID: uuid.New(), Name: "Stationery"}, ItemCount: 2},
	}, nil)

	w := get(router, "/category/list")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Stationery")
	assert.Contains(t, w.Body.String(), "2 items")
}

func TestCategoryListStoreFailure(t *testing.T) {
	categorySvc := new(MockCategoryService)
	router := newRouter(t, categorySvc, new(MockItemService))

	categorySvc.On("List", mock.Anything).Return(nil, services.ErrStoreUnavailable)

	w := get(router, "/category/list")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "No Database Response")
}

func TestCategoryDetailsNotFound(t *testing.T) {
	categorySvc := new(MockCategoryService)
	router := newRouter(t, categorySvc, new(MockItemService))

	id := uuid.NewString()
	categorySvc.On("Get", mock.Anything, id).Return(nil, nil, services.ErrNotFound)

	w := get(router, "/category/"+id)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Category Not Found")
}

func TestCategoryCreateValidationFailure(t *testing.T) {
	categorySvc := new(MockCategoryService)
	router := newRouter(t, categorySvc, new(MockItemService))

	// Empty name: re-render the form with a field error, persist nothing.
	w := postForm(router, "/category/create", url.Values{
		"name":        {""},
		"description": {"x"},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Name must not be empty")
	assert.Contains(t, w.Body.String(), `data-field="name"`)
	categorySvc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCategoryCreateSuccessRedirects(t *testing.T) {
	categorySvc := new(MockCategoryService)
	router := newRouter(t, categorySvc, new(MockItemService))

	created := &models.Category{ID: uuid.New(), Name: "Office"}
	categorySvc.On("Create", mock.Anything, forms.CategoryInput{Name: "Office", Description: "Desks"}).
		Return(created, nil)

	w := postForm(router, "/category/create", url.Values{
		"name":        {"Office"},
		"description": {"Desks"},
	})

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, created.URL(), w.Header().Get("Location"))
}

func TestCategoryUpdateValidationFailureDoesNotMutate(t *testing.T) {
	categorySvc := new(MockCategoryService)
	router := newRouter(t, categorySvc, new(MockItemService))

	id := uuid.NewString()
	w := postForm(router, "/category/"+id+"/update", url.Values{"name": {"   "}})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Name must not be empty")
	categorySvc.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestCategoryDeleteRedirectsToList(t *testing.T) {
	categorySvc := new(MockCategoryService)
	router := newRouter(t, categorySvc, new(MockItemService))

	id := uuid.NewString()
	categorySvc.On("Delete", mock.Anything, id).Return(nil)

	w := postForm(router, "/category/"+id+"/delete", url.Values{})

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/category/list", w.Header().Get("Location"))
}

func TestUnmatchedRouteRenders404(t *testing.T) {
	router := newRouter(t, new(MockCategoryService), new(MockItemService))

	w := get(router, "/no/such/page")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Page Not Found")
}
