package http

import (
	"github.com/xuanthe01656/travelhub/internal/domain"
)

// Response DTOs returned by the search and booking endpoints. Offer shapes
// come straight from the domain; these wrappers add result counts.

// FlightSearchResponse is the payload for GET /api/v1/flights/search.
type FlightSearchResponse struct {
	// Count is the number of offers returned
	Count int `json:"count"`

	// Offers are the normalized flight offers
	Offers []domain.FlightOffer `json:"offers"`
}

// CheapestFlightsResponse is the payload for GET /api/v1/flights/cheapest.
type CheapestFlightsResponse struct {
	// Count is the number of destinations returned
	Count int `json:"count"`

	// Destinations are the discounted destinations
	Destinations []domain.CheapDestination `json:"destinations"`
}

// HotelSearchResponse is the payload for GET /api/v1/hotels/search.
type HotelSearchResponse struct {
	Count  int                 `json:"count"`
	Offers []domain.HotelOffer `json:"offers"`
}

// CarSearchResponse is the payload for GET /api/v1/cars/search.
type CarSearchResponse struct {
	Count  int               `json:"count"`
	Offers []domain.CarOffer `json:"offers"`
}

// BookingHistoryResponse is the payload for GET /api/v1/bookings.
type BookingHistoryResponse struct {
	Count     int               `json:"count"`
	Purchases []domain.Purchase `json:"purchases"`
}
