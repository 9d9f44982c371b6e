package routes

import (
	"inventory-app/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterCategoryRoutes registers all routes related to categories
func RegisterCategoryRoutes(router *gin.Engine, categoryHandler handlers.CategoryHandlerInterface) {

	category := router.Group("/category")
	{
		category.GET("/list", categoryHandler.List)
		category.GET("/create", categoryHandler.CreateForm)
		category.POST("/create", categoryHandler.Create)
		category.GET("/:id", categoryHandler.Details)
		category.GET("/:id/update", categoryHandler.UpdateForm)
		category.POST("/:id/update", categoryHandler.Update)
		category.GET("/:id/delete", categoryHandler.DeleteForm)
		category.POST("/:id/delete", categoryHandler.Delete)
	}
}
