package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers the travel search API routes.
func RegisterRoutes(e *echo.Echo, h *SearchHandler) {
	// Health check endpoint (no version prefix)
	e.GET("/health", h.Health)

	api := e.Group("/api/v1")

	flights := api.Group("/flights")
	flights.GET("/search", h.SearchFlights)
	flights.GET("/cheapest", h.CheapestFlights)

	hotels := api.Group("/hotels")
	hotels.GET("/search", h.SearchHotels)

	cars := api.Group("/cars")
	cars.GET("/search", h.SearchCars)

	bookings := api.Group("/bookings")
	bookings.POST("", h.CreateBooking)
	bookings.GET("", h.ListBookings)
}
