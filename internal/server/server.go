package server

import (
	"fmt"
	"log/slog"
	"time"

	"inventory-app/internal/api/middleware"
	"inventory-app/internal/api/routes"
	"inventory-app/internal/app"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Server struct {
	router *gin.Engine
	app    *app.Application // Store the application container
}

func NewServer(app *app.Application) *Server {
	if !app.Config.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Metrics())
	router.Use(gin.Recovery())

	// --- Configure and Apply CORS Middleware ---
	if len(app.Config.CORS.AllowedOrigins) > 0 {
		slog.Info("Configuring CORS", "origins", app.Config.CORS.AllowedOrigins)
		corsConfig := cors.Config{
			AllowOriginFunc: func(origin string) bool {
				for _, allowed := range app.Config.CORS.AllowedOrigins {
					if allowed == "*" || allowed == origin {
						return true
					}
				}
				return false
			},
			AllowMethods: []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
			MaxAge:       12 * time.Hour,
		}
		router.Use(cors.New(corsConfig))
	}

	router.LoadHTMLGlob("web/templates/*.html")

	router.SetTrustedProxies(nil) // Remove the gin warning about untrusted proxies

	return &Server{
		router: router,
		app:    app,
	}
}

func (s *Server) Start() error {
	// Pass the container to routes
	routes.RegisterRoutes(s.router, s.app)

	addr := fmt.Sprintf("%s:%d", s.app.Config.Server.Host, s.app.Config.Server.Port) // Get config from container
	slog.Info("Server starting", "addr", addr)
	return s.router.Run(addr)
}
