package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Index renders the landing page.
func Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Title": "Inventory Application",
	})
}

// HealthCheck handles the health check endpoint
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}
