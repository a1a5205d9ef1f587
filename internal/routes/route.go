package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/visitpazar/api/internal/container"
	"github.com/visitpazar/api/internal/handlers"
	"github.com/visitpazar/api/internal/middleware"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(ct *container.Container) *gin.Engine {
	if ct.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:   []string{"Content-Length"},
	}))

	// Add middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(ct.Logger))
	r.Use(gin.Recovery())

	r.GET("/", handlers.Root())
	r.GET("/test", handlers.TestDatabase(ct.Store, ct.Config))

	api := r.Group("/api")
	{
		api.GET("/places", handlers.ListPlaces(ct.PlaceService))
		api.POST("/places", handlers.CreatePlace(ct.PlaceService))
		api.GET("/recommended", handlers.ListRecommended(ct.PlaceService))

		api.GET("/guides", handlers.ListGuides(ct.CatalogService))
		api.POST("/guides", handlers.CreateGuide(ct.CatalogService))

		api.GET("/events", handlers.ListEvents(ct.CatalogService))
		api.POST("/events", handlers.CreateEvent(ct.CatalogService))

		api.GET("/tours", handlers.ListTours(ct.CatalogService))
		api.POST("/tours", handlers.CreateTour(ct.CatalogService))

		api.GET("/premium", handlers.ListPremium(ct.CatalogService))
		api.POST("/premium", handlers.CreatePremium(ct.CatalogService))

		api.POST("/bookings", handlers.CreateBooking(ct.CatalogService))

		api.GET("/wiki/summary", handlers.WikiSummary(ct.Wiki))
		api.GET("/wiki/search", handlers.WikiSearch(ct.Wiki))

		api.GET("/monetization", handlers.Monetization())
	}

	return r
}
