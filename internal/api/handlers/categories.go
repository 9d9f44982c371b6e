package handlers

import (
	"net/http"

	"inventory-app/internal/services"
	"inventory-app/internal/transport/forms"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// CategoryHandler holds the service dependency for category workflows.
type CategoryHandler struct {
	svc      services.CategoryService
	validate *validator.Validate
}

// NewCategoryHandler creates a new CategoryHandler with the given service.
func NewCategoryHandler(svc services.CategoryService, validate *validator.Validate) *CategoryHandler {
	return &CategoryHandler{svc: svc, validate: validate}
}

// List renders all categories with their item counts.
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.svc.List(c.Request.Context())
	if err != nil {
		renderWorkflowError(c, "Category", err)
		return
	}
	c.HTML(http.StatusOK, "category-list.html", gin.H{
		"Title":      "Product Categories",
		"Categories": categories,
	})
}

// Details renders one category and the items referencing it.
func (h *CategoryHandler) Details(c *gin.Context) {
	category, items, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		renderWorkflowError(c, "Category", err)
		return
	}
	c.HTML(http.StatusOK, "category-details.html", gin.H{
		"Title":    category.Name,
		"Category": category,
		"Items":    items,
	})
}

// CreateForm renders an empty category form.
func (h *CategoryHandler) CreateForm(c *gin.Context) {
	c.HTML(http.StatusOK, "category-form.html", gin.H{
		"Title":  "Create New Category",
		"Action": "/category/create",
		"Form":   forms.CategoryForm{},
	})
}

// Create validates the posted form and persists a new category. Validation
// failure re-renders the form with every field error; nothing is persisted.
func (h *CategoryHandler) Create(c *gin.Context) {
	form := forms.CategoryForm{
		Name:        c.PostForm("name"),
		Description: c.PostForm("description"),
	}

	input, fieldErrs := form.Parse(h.validate)
	if len(fieldErrs) > 0 {
		c.HTML(http.StatusOK, "category-form.html", gin.H{
			"Title":  "Create New Category",
			"Action": "/category/create",
			"Form":   form,
			"Errors": fieldErrs,
		})
		return
	}

	category, err := h.svc.Create(c.Request.Context(), input)
	if err != nil {
		renderWorkflowError(c, "Category", err)
		return
	}
	c.Redirect(http.StatusSeeOther, category.URL())
}

// UpdateForm renders the category form pre-populated with the stored fields.
func (h *CategoryHandler) UpdateForm(c *gin.Context) {
	category, _, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		renderWorkflowError(c, "Category", err)
		return
	}
	c.HTML(http.StatusOK, "category-form.html", gin.H{
		"Title":  "Update Category",
		"Action": category.URL() + "/update",
		"Form": forms.CategoryForm{
			Name:        category.Name,
			Description: category.Description,
		},
	})
}

// Update validates the posted form and overwrites the stored fields.
func (h *CategoryHandler) Update(c *gin.Context) {
	id := c.Param("id")
	form := forms.CategoryForm{
		Name:        c.PostForm("name"),
		Description: c.PostForm("description"),
	}

	input, fieldErrs := form.Parse(h.validate)
	if len(fieldErrs) > 0 {
		c.HTML(http.StatusOK, "category-form.html", gin.H{
			"Title":  "Update Category",
			"Action": "/category/" + id + "/update",
			"Form":   form,
			"Errors": fieldErrs,
		})
		return
	}

	category, err := h.svc.Update(c.Request.Context(), id, input)
	if err != nil {
		renderWorkflowError(c, "Category", err)
		return
	}
	c.Redirect(http.StatusSeeOther, category.URL())
}

// DeleteForm renders the confirmation page, listing the items that still
// reference the category.
func (h *CategoryHandler) DeleteForm(c *gin.Context) {
	category, items, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		renderWorkflowError(c, "Category", err)
		return
	}
	c.HTML(http.StatusOK, "category-delete.html", gin.H{
		"Title":    "Delete Category",
		"Category": category,
		"Items":    items,
	})
}

// Delete removes the category. Items referencing it are left in place.
func (h *CategoryHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		renderWorkflowError(c, "Category", err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/category/list")
}
