package domain

import "context"

//go:generate mockgen -source=provider.go -destination=mock_provider.go -package=domain

// FlightDictionaries map provider carrier and aircraft codes to display
// names. They accompany every flight-offer payload; normalizers fall back to
// the raw code when a lookup misses.
type FlightDictionaries struct {
	Carriers map[string]string
	Aircraft map[string]string
}

// FlightProvider is the upstream source of flight inventory.
// Implementations return offers already normalized to domain shapes.
type FlightProvider interface {
	// SearchOffers returns normalized flight offers for the query.
	// An empty result is not an error.
	SearchOffers(ctx context.Context, q FlightQuery) ([]FlightOffer, error)

	// NearestAirport resolves geo-coordinates to the closest airport's
	// IATA code.
	NearestAirport(ctx context.Context, latitude, longitude float64) (string, error)

	// CheapestDestinations returns discounted destinations from an origin.
	CheapestDestinations(ctx context.Context, origin string) ([]CheapDestination, error)
}

// HotelProvider is the upstream source of hotel inventory.
type HotelProvider interface {
	SearchOffers(ctx context.Context, q HotelQuery) ([]HotelOffer, error)
}

// CarProvider is the upstream source of car-rental inventory.
type CarProvider interface {
	SearchOffers(ctx context.Context, q CarQuery) ([]CarOffer, error)
}
