package amadeus

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuanthe01656/travelhub/internal/domain"
	"github.com/xuanthe01656/travelhub/internal/infrastructure/logger"
	"github.com/xuanthe01656/travelhub/internal/infrastructure/timeutil"
)

// providerStub runs an httptest server that answers the token endpoint and
// delegates everything else to handle.
type providerStub struct {
	server     *httptest.Server
	tokenCalls atomic.Int32
}

func newProviderStub(t *testing.T, handle http.HandlerFunc) *providerStub {
	t.Helper()

	stub := &providerStub{}
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/security/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		stub.tokenCalls.Add(1)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.FormValue("grant_type"))
		json.NewEncoder(w).Encode(tokenResponse{AccessToken: "test-token", ExpiresIn: 1800})
	})
	mux.HandleFunc("/", handle)

	stub.server = httptest.NewServer(mux)
	t.Cleanup(stub.server.Close)
	return stub
}

func newTestClient(baseURL string) *Client {
	return NewClient(ClientConfig{
		BaseURL:   baseURL,
		APIKey:    "key",
		APISecret: "secret",
	}, logger.Nop())
}

func TestClientFlightOffersDecodesPayload(t *testing.T) {
	stub := newProviderStub(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/shopping/flight-offers", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "SGN", r.URL.Query().Get("originLocationCode"))
		assert.Equal(t, "HAN", r.URL.Query().Get("destinationLocationCode"))
		assert.Equal(t, "ECONOMY", r.URL.Query().Get("travelClass"))
		assert.Empty(t, r.URL.Query().Get("returnDate"))

		json.NewEncoder(w).Encode(flightOffersResponse{
			Data: []FlightOfferRecord{{ID: "1", Price: PriceRecord{Total: "100.00"}}},
			Dictionaries: &dictionariesRecord{
				Carriers: map[string]string{"VN": "Vietnam Airlines"},
			},
		})
	})
	client := newTestClient(stub.server.URL)

	resp, err := client.FlightOffers(context.Background(), domain.FlightQuery{
		Origin:        "SGN",
		Destination:   "HAN",
		DepartureDate: "2025-01-10",
		Adults:        2,
		CabinClass:    "economy",
	})

	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "1", resp.Data[0].ID)
	assert.Equal(t, "Vietnam Airlines", resp.dictionaries().Carriers["VN"])
}

func TestClientMapsBadRequestToValidationError(t *testing.T) {
	stub := newProviderStub(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(errorResponse{
			Errors: []errorRecord{{Status: 400, Title: "INVALID DATE", Detail: "departure in the past"}},
		})
	})
	client := newTestClient(stub.server.URL)

	_, err := client.FlightOffers(context.Background(), domain.FlightQuery{
		Origin: "SGN", Destination: "HAN", DepartureDate: "2020-01-01", Adults: 1,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUpstreamValidation)
	assert.False(t, domain.IsRetryable(err), "provider rejections must not be retried")
	assert.Contains(t, err.Error(), "INVALID DATE")
}

func TestClientMapsNotFoundToUnsupportedLocation(t *testing.T) {
	stub := newProviderStub(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	client := newTestClient(stub.server.URL)

	_, err := client.FlightDestinations(context.Background(), "XXX")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnsupportedLocation)
}

func TestClientMapsServerErrorsToRetryableUnavailable(t *testing.T) {
	for _, status := range []int{http.StatusTooManyRequests, http.StatusInternalServerError, http.StatusBadGateway} {
		stub := newProviderStub(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		})
		client := newTestClient(stub.server.URL)

		_, err := client.HotelsByCity(context.Background(), "SGN")

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
		assert.True(t, domain.IsRetryable(err), "status %d should be retryable", status)
	}
}

func TestClientNetworkFailureIsRetryable(t *testing.T) {
	stub := newProviderStub(t, func(w http.ResponseWriter, r *http.Request) {})
	client := newTestClient(stub.server.URL)
	stub.server.Close()

	_, err := client.CarOffers(context.Background(), domain.CarQuery{
		PickupLocation: "SGN", PickupDate: "2025-03-01",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
	assert.True(t, domain.IsRetryable(err))
}

func TestClientReusesTokenUntilExpiry(t *testing.T) {
	stub := newProviderStub(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(hotelListResponse{})
	})

	clock := timeutil.NewMockClock(time.Now())
	client := newTestClient(stub.server.URL)
	client.clock = clock

	ctx := context.Background()
	_, err := client.HotelsByCity(ctx, "SGN")
	require.NoError(t, err)
	_, err = client.HotelsByCity(ctx, "SGN")
	require.NoError(t, err)
	assert.Equal(t, int32(1), stub.tokenCalls.Load(), "second call reuses the cached token")

	// Past the token lifetime the next call must re-authenticate.
	clock.Advance(31 * time.Minute)
	_, err = client.HotelsByCity(ctx, "SGN")
	require.NoError(t, err)
	assert.Equal(t, int32(2), stub.tokenCalls.Load())
}

func TestClientNearestAirport(t *testing.T) {
	stub := newProviderStub(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/reference-data/locations/airports", r.URL.Path)
		json.NewEncoder(w).Encode(locationsResponse{
			Data: []LocationRecord{{IataCode: "SGN", Name: "Tan Son Nhat"}, {IataCode: "HAN"}},
		})
	})
	client := newTestClient(stub.server.URL)

	code, err := client.NearestAirport(context.Background(), 10.82, 106.63)

	require.NoError(t, err)
	assert.Equal(t, "SGN", code)
}

func TestClientNearestAirportNoResults(t *testing.T) {
	stub := newProviderStub(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(locationsResponse{})
	})
	client := newTestClient(stub.server.URL)

	_, err := client.NearestAirport(context.Background(), 0, 0)

	require.Error(t, err)
}

func TestCabinClassParam(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"economy", "ECONOMY"},
		{"BUSINESS", "BUSINESS"},
		{"premium_economy", "PREMIUM_ECONOMY"},
		{"first", "FIRST"},
		{"luxury", "ECONOMY"},
		{"", "ECONOMY"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, cabinClassParam(tt.in), "input %q", tt.in)
	}
}
