package routes

import (
	"inventory-app/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterItemRoutes registers all routes related to items
func RegisterItemRoutes(router *gin.Engine, itemHandler handlers.ItemHandlerInterface) {

	item := router.Group("/item")
	{
		item.GET("/list", itemHandler.List)
		item.GET("/create", itemHandler.CreateForm)
		item.POST("/create", itemHandler.Create)
		item.GET("/:id", itemHandler.Details)
		item.GET("/:id/update", itemHandler.UpdateForm)
		item.POST("/:id/update", itemHandler.Update)
		item.GET("/:id/delete", itemHandler.DeleteForm)
		item.POST("/:id/delete", itemHandler.Delete)
	}
}
