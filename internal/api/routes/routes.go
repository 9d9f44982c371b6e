package routes

import (
	"inventory-app/internal/api/handlers"
	"inventory-app/internal/app"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes sets up the routes by calling resource-specific registration functions
func RegisterRoutes(router *gin.Engine, app *app.Application) {

	// --- Create handlers ---
	categoryHandler := handlers.NewCategoryHandler(app.Categories, app.Validator)
	itemHandler := handlers.NewItemHandler(app.Items, app.Categories, app.Validator)

	// --- Register Resource Routes ---
	RegisterCategoryRoutes(router, categoryHandler)
	RegisterItemRoutes(router, itemHandler)

	// --- Index, Health, Metrics ---
	router.GET("/", handlers.Index)
	router.GET("/health", handlers.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// --- Static Assets ---
	router.Static(app.Config.Uploads.PublicPath, app.Config.Uploads.Dir)
	router.Static("/javascripts", "./public/javascripts")

	// --- Unmatched Routes ---
	router.NoRoute(handlers.NotFoundPage)
}
