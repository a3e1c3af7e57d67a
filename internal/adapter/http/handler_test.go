package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuanthe01656/travelhub/internal/adapter/http/response"
	"github.com/xuanthe01656/travelhub/internal/domain"
	"github.com/xuanthe01656/travelhub/internal/usecase"
)

// Stub use cases returning canned results, so handler tests exercise only
// binding, validation, and error mapping.

type stubFlightSearch struct {
	offers []domain.FlightOffer
	err    error
	gotQ   domain.FlightQuery
}

func (s *stubFlightSearch) Search(_ context.Context, q domain.FlightQuery) ([]domain.FlightOffer, error) {
	s.gotQ = q
	return s.offers, s.err
}

type stubCheapFlights struct {
	dests []domain.CheapDestination
	err   error
	gotR  usecase.CheapFlightsRequest
}

func (s *stubCheapFlights) Cheapest(_ context.Context, r usecase.CheapFlightsRequest) ([]domain.CheapDestination, error) {
	s.gotR = r
	return s.dests, s.err
}

type stubHotelSearch struct {
	offers []domain.HotelOffer
	err    error
}

func (s *stubHotelSearch) Search(context.Context, domain.HotelQuery) ([]domain.HotelOffer, error) {
	return s.offers, s.err
}

type stubCarSearch struct {
	offers []domain.CarOffer
	err    error
}

func (s *stubCarSearch) Search(context.Context, domain.CarQuery) ([]domain.CarOffer, error) {
	return s.offers, s.err
}

type stubBooking struct {
	purchase  domain.Purchase
	purchases []domain.Purchase
	err       error
}

func (s *stubBooking) Record(context.Context, domain.Purchase) (domain.Purchase, error) {
	return s.purchase, s.err
}

func (s *stubBooking) History(context.Context, string) ([]domain.Purchase, error) {
	return s.purchases, s.err
}

type handlerStubs struct {
	flights  *stubFlightSearch
	cheapest *stubCheapFlights
	hotels   *stubHotelSearch
	cars     *stubCarSearch
	bookings *stubBooking
}

func newTestHandler() (*SearchHandler, *handlerStubs) {
	stubs := &handlerStubs{
		flights:  &stubFlightSearch{},
		cheapest: &stubCheapFlights{},
		hotels:   &stubHotelSearch{},
		cars:     &stubCarSearch{},
		bookings: &stubBooking{},
	}
	h := NewSearchHandler(stubs.flights, stubs.cheapest, stubs.hotels, stubs.cars, stubs.bookings)
	return h, stubs
}

func doGet(t *testing.T, handler echo.HandlerFunc, target string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	require.NoError(t, handler(e.NewContext(req, rec)))
	return rec
}

func doPost(t *testing.T, handler echo.HandlerFunc, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, handler(e.NewContext(req, rec)))
	return rec
}

func TestSearchFlightsSuccess(t *testing.T) {
	h, stubs := newTestHandler()
	stubs.flights.offers = []domain.FlightOffer{{ID: "1"}, {ID: "2"}}

	rec := doGet(t, h.SearchFlights, "/api/v1/flights/search?origin=sgn&destination=HAN&departureDate=2025-01-10&adults=2&cabinClass=economy")

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp FlightSearchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Count)
	assert.Len(t, resp.Offers, 2)
	assert.Equal(t, "SGN", stubs.flights.gotQ.Origin, "codes are normalized before the use case")
	assert.Equal(t, 2, stubs.flights.gotQ.Adults)
}

func TestSearchFlightsValidationError(t *testing.T) {
	h, _ := newTestHandler()

	rec := doGet(t, h.SearchFlights, "/api/v1/flights/search?origin=SGN&destination=SGN&departureDate=2025-01-10")

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var detail response.ErrorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	assert.Equal(t, response.CodeValidationError, detail.Code)
	assert.Contains(t, detail.Details, "destination")
}

func TestSearchFlightsErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "upstream rejection is the caller's error",
			err:        domain.NewProviderError("flight-offers", domain.ErrUpstreamValidation),
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   response.CodeUpstreamRejected,
		},
		{
			name:       "upstream outage",
			err:        domain.NewRetryableProviderError("flight-offers", domain.ErrUpstreamUnavailable),
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   response.CodeServiceUnavailable,
		},
		{
			name:       "timeout",
			err:        context.DeadlineExceeded,
			wantStatus: http.StatusGatewayTimeout,
			wantCode:   response.CodeTimeout,
		},
		{
			name:       "unsupported location",
			err:        domain.NewProviderError("flight-offers", domain.ErrUnsupportedLocation),
			wantStatus: http.StatusNotFound,
			wantCode:   response.CodeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, stubs := newTestHandler()
			stubs.flights.err = tt.err

			rec := doGet(t, h.SearchFlights, "/api/v1/flights/search?origin=SGN&destination=HAN&departureDate=2025-01-10")

			assert.Equal(t, tt.wantStatus, rec.Code)

			var detail response.ErrorDetail
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
			assert.Equal(t, tt.wantCode, detail.Code)
		})
	}
}

func TestCheapestFlightsPassesCoordinates(t *testing.T) {
	h, stubs := newTestHandler()
	stubs.cheapest.dests = []domain.CheapDestination{{Destination: "BKK"}}

	rec := doGet(t, h.CheapestFlights, "/api/v1/flights/cheapest?latitude=10.82&longitude=106.63")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, stubs.cheapest.gotR.HasCoordinates)
	assert.Equal(t, 10.82, stubs.cheapest.gotR.Latitude)

	var resp CheapestFlightsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Count)
}

func TestCheapestFlightsRejectsLoneLatitude(t *testing.T) {
	h, _ := newTestHandler()

	rec := doGet(t, h.CheapestFlights, "/api/v1/flights/cheapest?latitude=10.82")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearchHotelsSuccess(t *testing.T) {
	h, stubs := newTestHandler()
	stubs.hotels.offers = []domain.HotelOffer{{ID: "H1"}}

	rec := doGet(t, h.SearchHotels, "/api/v1/hotels/search?location=SGN&checkInDate=2025-03-01&checkOutDate=2025-03-03&guests=2&rooms=1")

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp HotelSearchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Count)
}

func TestSearchCarsEmptyListIsOK(t *testing.T) {
	h, stubs := newTestHandler()
	stubs.cars.offers = []domain.CarOffer{}

	rec := doGet(t, h.SearchCars, "/api/v1/cars/search?pickupLocation=SGN&pickupDate=2025-03-01")

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp CarSearchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Count)
	assert.NotNil(t, resp.Offers)
}

func TestCreateBookingSuccess(t *testing.T) {
	h, stubs := newTestHandler()
	stubs.bookings.purchase = domain.Purchase{ID: "p-1", Email: "user@example.com", Kind: domain.PurchaseFlight}

	rec := doPost(t, h.CreateBooking, "/api/v1/bookings",
		`{"email":"user@example.com","kind":"flight","reference":"offer-1","amount":5100000,"currency":"VND"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var p domain.Purchase
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	assert.Equal(t, "p-1", p.ID)
}

func TestCreateBookingValidationError(t *testing.T) {
	h, _ := newTestHandler()

	rec := doPost(t, h.CreateBooking, "/api/v1/bookings", `{"email":"","kind":"flight"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var detail response.ErrorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	assert.Equal(t, response.CodeValidationError, detail.Code)
}

func TestListBookings(t *testing.T) {
	h, stubs := newTestHandler()
	stubs.bookings.purchases = []domain.Purchase{{ID: "p-1"}, {ID: "p-2"}}

	rec := doGet(t, h.ListBookings, "/api/v1/bookings?email=user@example.com")

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp BookingHistoryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Count)
}

func TestHealth(t *testing.T) {
	h, _ := newTestHandler()

	rec := doGet(t, h.Health, "/health")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestRegisterRoutes(t *testing.T) {
	h, stubs := newTestHandler()
	stubs.flights.offers = []domain.FlightOffer{}
	stubs.cars.offers = []domain.CarOffer{}

	e := echo.New()
	RegisterRoutes(e, h)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/cars/search?pickupLocation=SGN&pickupDate=2025-03-01", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
