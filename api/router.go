package api

import (
	"net/http"
	"time"

	"github.com/Domenick1991/flightregistry/internal/service/booking"
	"github.com/Domenick1991/flightregistry/internal/service/flights"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter wires the flight and booking handlers under /api/v1.
func NewRouter(flightSvc flights.FlightUseCase, bookingSvc booking.BookingUseCase, allowOrigins []string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	if len(allowOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:  allowOrigins,
			AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
			ExposeHeaders: []string{"Content-Length"},
			MaxAge:        12 * time.Hour,
		}))
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	v1 := router.Group("/api/v1")
	NewFlightHandler(flightSvc, bookingSvc).Register(v1.Group("/flights"))
	NewBookingHandler(bookingSvc).Register(v1)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})
	return router
}
