package http

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/xuanthe01656/travelhub/internal/adapter/http/response"
	"github.com/xuanthe01656/travelhub/internal/domain"
	"github.com/xuanthe01656/travelhub/internal/usecase"
)

// SearchHandler handles HTTP requests for the search and booking endpoints.
type SearchHandler struct {
	flights  usecase.FlightSearchUseCase
	cheapest usecase.CheapFlightsUseCase
	hotels   usecase.HotelSearchUseCase
	cars     usecase.CarSearchUseCase
	bookings usecase.BookingUseCase
}

// NewSearchHandler creates a SearchHandler wired to the given use cases.
func NewSearchHandler(
	flights usecase.FlightSearchUseCase,
	cheapest usecase.CheapFlightsUseCase,
	hotels usecase.HotelSearchUseCase,
	cars usecase.CarSearchUseCase,
	bookings usecase.BookingUseCase,
) *SearchHandler {
	return &SearchHandler{
		flights:  flights,
		cheapest: cheapest,
		hotels:   hotels,
		cars:     cars,
		bookings: bookings,
	}
}

// SearchFlights handles GET /api/v1/flights/search
//
// @Summary Search for flights
// @Description Search for flight offers between two airports on a date
// @Tags flights
// @Produce json
// @Param origin query string true "Origin IATA code" example(SGN)
// @Param destination query string true "Destination IATA code" example(HAN)
// @Param departureDate query string true "Departure date (YYYY-MM-DD)"
// @Param returnDate query string false "Return date for round trips (YYYY-MM-DD)"
// @Param adults query int false "Number of adult passengers (1-9)"
// @Param cabinClass query string false "economy, premium_economy, business, or first"
// @Success 200 {object} FlightSearchResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 422 {object} response.ErrorDetail "Search rejected by provider"
// @Failure 503 {object} response.ErrorDetail "Provider unavailable"
// @Router /api/v1/flights/search [get]
func (h *SearchHandler) SearchFlights(c echo.Context) error {
	var req SearchFlightsRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	offers, err := h.flights.Search(c.Request().Context(), req.ToQuery())
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, &FlightSearchResponse{Count: len(offers), Offers: offers})
}

// CheapestFlights handles GET /api/v1/flights/cheapest
//
// @Summary List discounted destinations
// @Description List the cheapest destinations from an origin airport.
// @Description Without an origin the caller's coordinates are resolved to the
// @Description nearest airport; failing that, the default origin is used.
// @Tags flights
// @Produce json
// @Param origin query string false "Origin IATA code"
// @Param latitude query number false "Caller latitude"
// @Param longitude query number false "Caller longitude"
// @Success 200 {object} CheapestFlightsResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 503 {object} response.ErrorDetail "Provider unavailable"
// @Router /api/v1/flights/cheapest [get]
func (h *SearchHandler) CheapestFlights(c echo.Context) error {
	var req CheapestFlightsRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	dests, err := h.cheapest.Cheapest(c.Request().Context(), req.ToRequest())
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, &CheapestFlightsResponse{Count: len(dests), Destinations: dests})
}

// SearchHotels handles GET /api/v1/hotels/search
//
// @Summary Search for hotels
// @Description Search for hotel offers in a city for a stay window
// @Tags hotels
// @Produce json
// @Param location query string true "IATA city code" example(SGN)
// @Param checkInDate query string true "Check-in date (YYYY-MM-DD)"
// @Param checkOutDate query string true "Check-out date (YYYY-MM-DD)"
// @Param guests query int false "Number of guests"
// @Param rooms query int false "Number of rooms"
// @Success 200 {object} HotelSearchResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 503 {object} response.ErrorDetail "Provider unavailable"
// @Router /api/v1/hotels/search [get]
func (h *SearchHandler) SearchHotels(c echo.Context) error {
	var req SearchHotelsRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	offers, err := h.hotels.Search(c.Request().Context(), req.ToQuery())
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, &HotelSearchResponse{Count: len(offers), Offers: offers})
}

// SearchCars handles GET /api/v1/cars/search
//
// @Summary Search for rental cars
// @Description Search for car-rental offers at a pickup location. Upstream
// @Description failures yield an empty offer list, not an error.
// @Tags cars
// @Produce json
// @Param pickupLocation query string true "Pickup IATA code" example(SGN)
// @Param pickupDate query string true "Pickup date (YYYY-MM-DD)"
// @Param dropoffDate query string false "Dropoff date (YYYY-MM-DD)"
// @Success 200 {object} CarSearchResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Router /api/v1/cars/search [get]
func (h *SearchHandler) SearchCars(c echo.Context) error {
	var req SearchCarsRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	offers, err := h.cars.Search(c.Request().Context(), req.ToQuery())
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, &CarSearchResponse{Count: len(offers), Offers: offers})
}

// CreateBooking handles POST /api/v1/bookings
//
// @Summary Record a purchase
// @Description Record a completed flight, hotel, or car purchase
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body CreateBookingRequest true "Purchase details"
// @Success 201 {object} domain.Purchase
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Router /api/v1/bookings [post]
func (h *SearchHandler) CreateBooking(c echo.Context) error {
	var req CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	purchase, err := h.bookings.Record(c.Request().Context(), req.ToPurchase())
	if err != nil {
		return h.handleError(c, err)
	}

	return response.Created(c, purchase)
}

// ListBookings handles GET /api/v1/bookings
//
// @Summary List purchases
// @Description List the purchases recorded for an email, newest first
// @Tags bookings
// @Produce json
// @Param email query string true "Purchaser email"
// @Success 200 {object} BookingHistoryResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Router /api/v1/bookings [get]
func (h *SearchHandler) ListBookings(c echo.Context) error {
	purchases, err := h.bookings.History(c.Request().Context(), c.QueryParam("email"))
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, &BookingHistoryResponse{Count: len(purchases), Purchases: purchases})
}

// Health handles GET /health
func (h *SearchHandler) Health(c echo.Context) error {
	return response.Health(c)
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *SearchHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to HTTP responses. Provider rejections of
// the search content are the caller's problem; provider outages are ours.
func (h *SearchHandler) handleError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		return response.ValidationErrorWithMessage(c, err.Error())
	case errors.Is(err, domain.ErrUpstreamValidation):
		return response.UpstreamRejected(c)
	case errors.Is(err, domain.ErrUnsupportedLocation):
		return response.NotFound(c, "The requested location is not supported")
	case errors.Is(err, context.DeadlineExceeded):
		return response.GatewayTimeout(c)
	case errors.Is(err, context.Canceled):
		return response.RequestCancelled(c)
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		return response.ServiceUnavailable(c)
	default:
		return response.InternalServerError(c)
	}
}
