package amadeus

import (
	"context"

	"github.com/xuanthe01656/travelhub/internal/currency"
	"github.com/xuanthe01656/travelhub/internal/domain"
	"github.com/xuanthe01656/travelhub/internal/infrastructure/retry"
)

// maxHotelIDsPerSearch caps how many hotels from the city list are priced in
// one offer search, keeping the upstream request within its URL limits.
const maxHotelIDsPerSearch = 20

// retryConfig retries transient provider failures but gives up immediately
// on validation rejections.
var retryConfig = retry.ProviderConfig.WithRetryIf(domain.IsRetryable)

// FlightAdapter implements domain.FlightProvider against the provider API.
type FlightAdapter struct {
	client        *Client
	conv          *currency.Converter
	localCurrency string
}

// NewFlightAdapter creates a FlightAdapter. conv converts provider-currency
// fares into localCurrency amounts.
func NewFlightAdapter(client *Client, conv *currency.Converter, localCurrency string) *FlightAdapter {
	return &FlightAdapter{client: client, conv: conv, localCurrency: localCurrency}
}

// SearchOffers fetches and normalizes flight offers for the query.
func (a *FlightAdapter) SearchOffers(ctx context.Context, q domain.FlightQuery) ([]domain.FlightOffer, error) {
	payload, err := retry.DoWithResult(ctx, func() (*flightOffersResponse, error) {
		return a.client.FlightOffers(ctx, q)
	}, retryConfig)
	if err != nil {
		return nil, err
	}
	return NormalizeFlightOffers(payload.Data, payload.dictionaries(), q.Adults, a.conv, a.localCurrency), nil
}

// NearestAirport resolves geo-coordinates to the closest airport code.
func (a *FlightAdapter) NearestAirport(ctx context.Context, latitude, longitude float64) (string, error) {
	return retry.DoWithResult(ctx, func() (string, error) {
		return a.client.NearestAirport(ctx, latitude, longitude)
	}, retryConfig)
}

// CheapestDestinations fetches and normalizes discounted destinations.
func (a *FlightAdapter) CheapestDestinations(ctx context.Context, origin string) ([]domain.CheapDestination, error) {
	records, err := retry.DoWithResult(ctx, func() ([]DestinationRecord, error) {
		return a.client.FlightDestinations(ctx, origin)
	}, retryConfig)
	if err != nil {
		return nil, err
	}
	return NormalizeDestinations(records), nil
}

// HotelAdapter implements domain.HotelProvider against the provider API.
// One search is two upstream calls: list the city's hotels, then price a
// bounded batch of them.
type HotelAdapter struct {
	client        *Client
	localCurrency string
}

// NewHotelAdapter creates a HotelAdapter.
func NewHotelAdapter(client *Client, localCurrency string) *HotelAdapter {
	return &HotelAdapter{client: client, localCurrency: localCurrency}
}

// SearchOffers fetches and normalizes hotel offers for the query.
func (a *HotelAdapter) SearchOffers(ctx context.Context, q domain.HotelQuery) ([]domain.HotelOffer, error) {
	hotels, err := retry.DoWithResult(ctx, func() ([]HotelListRecord, error) {
		return a.client.HotelsByCity(ctx, q.CityCode)
	}, retryConfig)
	if err != nil {
		return nil, err
	}
	if len(hotels) == 0 {
		return []domain.HotelOffer{}, nil
	}

	ids := make([]string, 0, maxHotelIDsPerSearch)
	for _, h := range hotels {
		if h.HotelID == "" {
			continue
		}
		ids = append(ids, h.HotelID)
		if len(ids) == maxHotelIDsPerSearch {
			break
		}
	}

	records, err := retry.DoWithResult(ctx, func() ([]HotelOfferRecord, error) {
		return a.client.HotelOffers(ctx, ids, q)
	}, retryConfig)
	if err != nil {
		return nil, err
	}
	return NormalizeHotelOffers(records, a.localCurrency), nil
}

// CarAdapter implements domain.CarProvider against the provider API.
type CarAdapter struct {
	client *Client
	conv   *currency.Converter
}

// NewCarAdapter creates a CarAdapter.
func NewCarAdapter(client *Client, conv *currency.Converter) *CarAdapter {
	return &CarAdapter{client: client, conv: conv}
}

// SearchOffers fetches and normalizes car-rental offers for the query.
func (a *CarAdapter) SearchOffers(ctx context.Context, q domain.CarQuery) ([]domain.CarOffer, error) {
	records, err := retry.DoWithResult(ctx, func() ([]CarOfferRecord, error) {
		return a.client.CarOffers(ctx, q)
	}, retryConfig)
	if err != nil {
		return nil, err
	}
	return NormalizeCarOffers(records, a.conv), nil
}

// Compile-time interface checks.
var (
	_ domain.FlightProvider = (*FlightAdapter)(nil)
	_ domain.HotelProvider  = (*HotelAdapter)(nil)
	_ domain.CarProvider    = (*CarAdapter)(nil)
)
