package handlers

import (
	"net/http"
	"strconv"

	"inventory-app/internal/models"
	"inventory-app/internal/services"
	"inventory-app/internal/transport/forms"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ItemHandler holds the service dependencies for item workflows. The
// category service supplies the category select of the item form.
type ItemHandler struct {
	items      services.ItemService
	categories services.CategoryService
	validate   *validator.Validate
}

// NewItemHandler creates a new ItemHandler with the given services.
func NewItemHandler(items services.ItemService, categories services.CategoryService, validate *validator.Validate) *ItemHandler {
	return &ItemHandler{items: items, categories: categories, validate: validate}
}

// List renders all items sorted by category, then name.
func (h *ItemHandler) List(c *gin.Context) {
	items, err := h.items.List(c.Request.Context())
	if err != nil {
		renderWorkflowError(c, "Item", err)
		return
	}
	c.HTML(http.StatusOK, "item-list.html", gin.H{
		"Title": "All Products",
		"Items": items,
	})
}

// Details renders one item with its category resolved.
func (h *ItemHandler) Details(c *gin.Context) {
	item, err := h.items.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		renderWorkflowError(c, "Item", err)
		return
	}
	c.HTML(http.StatusOK, "item-details.html", gin.H{
		"Title": item.Name,
		"Item":  item,
	})
}

// CreateForm renders an empty item form.
func (h *ItemHandler) CreateForm(c *gin.Context) {
	h.renderForm(c, "Create New Product", "/item/create", forms.ItemForm{}, nil)
}

// Create runs the full create workflow: upload filter, validation, persist,
// redirect. A rejected upload or any field error re-renders the form with
// nothing persisted.
func (h *ItemHandler) Create(c *gin.Context) {
	form := itemFormFromRequest(c)
	input, fieldErrs := form.Parse(h.validate)

	upload, rejected := formImage(c)
	if rejected {
		fieldErrs = append(fieldErrs, forms.RejectedImageError())
	}

	if len(fieldErrs) > 0 {
		h.renderForm(c, "Create New Product", "/item/create", form, fieldErrs)
		return
	}

	item, err := h.items.Create(c.Request.Context(), input, upload)
	if err != nil {
		renderWorkflowError(c, "Item", err)
		return
	}
	c.Redirect(http.StatusSeeOther, item.URL())
}

// UpdateForm renders the item form pre-populated with the stored fields.
func (h *ItemHandler) UpdateForm(c *gin.Context) {
	item, err := h.items.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		renderWorkflowError(c, "Item", err)
		return
	}
	form := forms.ItemForm{
		Name:        item.Name,
		Description: item.Description,
		Category:    item.CategoryID.String(),
		Price:       strconv.FormatFloat(item.Price, 'f', -1, 64),
		Stock:       strconv.Itoa(item.Stock),
	}
	h.renderForm(c, "Update Product", item.URL()+"/update", form, nil)
}

// Update runs the full update workflow, including the image replacement
// cascade when a new file is accepted.
func (h *ItemHandler) Update(c *gin.Context) {
	id := c.Param("id")
	form := itemFormFromRequest(c)
	input, fieldErrs := form.Parse(h.validate)

	upload, rejected := formImage(c)
	if rejected {
		fieldErrs = append(fieldErrs, forms.RejectedImageError())
	}

	if len(fieldErrs) > 0 {
		h.renderForm(c, "Update Product", "/item/"+id+"/update", form, fieldErrs)
		return
	}

	item, err := h.items.Update(c.Request.Context(), id, input, upload)
	if err != nil {
		renderWorkflowError(c, "Item", err)
		return
	}
	c.Redirect(http.StatusSeeOther, item.URL())
}

// DeleteForm renders the confirmation page for an item.
func (h *ItemHandler) DeleteForm(c *gin.Context) {
	item, err := h.items.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		renderWorkflowError(c, "Item", err)
		return
	}
	c.HTML(http.StatusOK, "item-delete.html", gin.H{
		"Title": "Delete Product",
		"Item":  item,
	})
}

// Delete removes the item document and, if one exists, its image file.
func (h *ItemHandler) Delete(c *gin.Context) {
	if err := h.items.Delete(c.Request.Context(), c.Param("id")); err != nil {
		renderWorkflowError(c, "Item", err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/item/list")
}

func itemFormFromRequest(c *gin.Context) forms.ItemForm {
	return forms.ItemForm{
		Name:        c.PostForm("name"),
		Description: c.PostForm("description"),
		Category:    c.PostForm("category"),
		Price:       c.PostForm("price"),
		Stock:       c.PostForm("stock"),
	}
}

// renderForm renders the item form. The category select needs the category
// list; if that lookup fails the whole request fails as a store error.
func (h *ItemHandler) renderForm(c *gin.Context, title, action string, form forms.ItemForm, fieldErrs []forms.FieldError) {
	categories, err := h.categories.List(c.Request.Context())
	if err != nil {
		renderWorkflowError(c, "Category", err)
		return
	}

	data := gin.H{
		"Title":      title,
		"Action":     action,
		"Form":       form,
		"Categories": categoriesOnly(categories),
	}
	if len(fieldErrs) > 0 {
		data["Errors"] = fieldErrs
	}
	c.HTML(http.StatusOK, "item-form.html", data)
}

func categoriesOnly(withCounts []models.CategoryWithCount) []models.Category {
	categories := make([]models.Category, len(withCounts))
	for i, cwc := range withCounts {
		categories[i] = cwc.Category
	}
	return categories
}
