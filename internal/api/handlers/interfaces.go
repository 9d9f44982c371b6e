package handlers

import "github.com/gin-gonic/gin"

// CategoryHandlerInterface defines the methods needed by the category routes.
type CategoryHandlerInterface interface {
	List(c *gin.Context)
	Details(c *gin.Context)
	CreateForm(c *gin.Context)
	Create(c *gin.Context)
	UpdateForm(c *gin.Context)
	Update(c *gin.Context)
	DeleteForm(c *gin.Context)
	Delete(c *gin.Context)
}

// ItemHandlerInterface defines the methods needed by the item routes.
type ItemHandlerInterface interface {
	List(c *gin.Context)
	Details(c *gin.Context)
	CreateForm(c *gin.Context)
	Create(c *gin.Context)
	UpdateForm(c *gin.Context)
	Update(c *gin.Context)
	DeleteForm(c *gin.Context)
	Delete(c *gin.Context)
}

// Ensure handlers implement the interfaces (compile-time check)
var _ CategoryHandlerInterface = (*CategoryHandler)(nil)
var _ ItemHandlerInterface = (*ItemHandler)(nil)
