// Package amadeus adapts the external travel-data provider to the domain
// provider interfaces. The client speaks the provider's HTTP API; the
// normalizers in this package turn its raw payloads into domain records.
package amadeus

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/xuanthe01656/travelhub/internal/domain"
	"github.com/xuanthe01656/travelhub/internal/infrastructure/logger"
	"github.com/xuanthe01656/travelhub/internal/infrastructure/timeutil"
)

// DefaultTimeout bounds every provider request so a hung upstream surfaces
// as a system error instead of stalling the caller indefinitely.
const DefaultTimeout = 10 * time.Second

// tokenSlack refreshes the OAuth token slightly before the provider's
// reported expiry to avoid racing it.
const tokenSlack = 30 * time.Second

// cabinClassParams maps accepted cabin class inputs to the provider's enum.
var cabinClassParams = map[string]string{
	"economy":         "ECONOMY",
	"premium_economy": "PREMIUM_ECONOMY",
	"business":        "BUSINESS",
	"first":           "FIRST",
}

// ClientConfig holds the provider connection settings.
type ClientConfig struct {
	BaseURL   string
	APIKey    string
	APISecret string
	Timeout   time.Duration
}

// Client is a thin HTTP client for the provider API. It handles OAuth2
// client-credentials authentication with expiry-aware token reuse and maps
// provider error payloads onto the domain error taxonomy.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	apiSecret  string
	clock      timeutil.Clock
	log        *logger.Logger

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
}

// NewClient creates a provider client. A zero timeout uses DefaultTimeout.
func NewClient(cfg ClientConfig, log *logger.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if log == nil {
		log = logger.Nop()
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		apiSecret:  cfg.APISecret,
		clock:      timeutil.NewRealClock(),
		log:        log.WithComponent("amadeus"),
	}
}

// FlightOffers calls the flight-offer-search operation.
func (c *Client) FlightOffers(ctx context.Context, q domain.FlightQuery) (*flightOffersResponse, error) {
	params := url.Values{}
	params.Set("originLocationCode", q.Origin)
	params.Set("destinationLocationCode", q.Destination)
	params.Set("departureDate", q.DepartureDate)
	if q.ReturnDate != "" {
		params.Set("returnDate", q.ReturnDate)
	}
	params.Set("adults", strconv.Itoa(q.Adults))
	params.Set("travelClass", cabinClassParam(q.CabinClass))

	var resp flightOffersResponse
	if err := c.get(ctx, "flight-offers", "/v2/shopping/flight-offers", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// NearestAirport calls the geo airport-lookup operation and returns the
// closest airport's IATA code.
func (c *Client) NearestAirport(ctx context.Context, latitude, longitude float64) (string, error) {
	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(latitude, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(longitude, 'f', -1, 64))

	var resp locationsResponse
	if err := c.get(ctx, "nearest-airport", "/v1/reference-data/locations/airports", params, &resp); err != nil {
		return "", err
	}
	if len(resp.Data) == 0 {
		return "", domain.NewProviderError("nearest-airport", fmt.Errorf("no airport near %f,%f", latitude, longitude))
	}
	return resp.Data[0].IataCode, nil
}

// FlightDestinations calls the flight-destinations ("cheap flights")
// operation.
func (c *Client) FlightDestinations(ctx context.Context, origin string) ([]DestinationRecord, error) {
	params := url.Values{}
	params.Set("origin", origin)

	var resp flightDestinationsResponse
	if err := c.get(ctx, "flight-destinations", "/v1/shopping/flight-destinations", params, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// HotelsByCity calls the hotel-list-by-city operation.
func (c *Client) HotelsByCity(ctx context.Context, cityCode string) ([]HotelListRecord, error) {
	params := url.Values{}
	params.Set("cityCode", cityCode)

	var resp hotelListResponse
	if err := c.get(ctx, "hotel-list", "/v1/reference-data/locations/hotels/by-city", params, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// HotelOffers calls the hotel-offer-search operation for a set of hotel IDs.
func (c *Client) HotelOffers(ctx context.Context, hotelIDs []string, q domain.HotelQuery) ([]HotelOfferRecord, error) {
	params := url.Values{}
	params.Set("hotelIds", strings.Join(hotelIDs, ","))
	params.Set("checkInDate", q.CheckInDate)
	params.Set("checkOutDate", q.CheckOutDate)
	params.Set("adults", strconv.Itoa(q.Guests))
	params.Set("roomQuantity", strconv.Itoa(q.Rooms))

	var resp hotelOffersResponse
	if err := c.get(ctx, "hotel-offers", "/v3/shopping/hotel-offers", params, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// CarOffers calls the car-rental-search operation.
func (c *Client) CarOffers(ctx context.Context, q domain.CarQuery) ([]CarOfferRecord, error) {
	params := url.Values{}
	params.Set("pickUpLocationCode", q.PickupLocation)
	params.Set("pickUpDate", q.PickupDate)
	if q.DropoffDate != "" {
		params.Set("dropOffDate", q.DropoffDate)
	}

	var resp carOffersResponse
	if err := c.get(ctx, "car-offers", "/v1/shopping/transfer-offers", params, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// get performs an authenticated GET and decodes the payload into out.
func (c *Client) get(ctx context.Context, op, path string, params url.Values, out any) error {
	token, err := c.accessToken(ctx)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return domain.NewProviderError(op, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Network failures and timeouts may succeed on retry.
		return domain.NewRetryableProviderError(op, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.mapError(op, resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return domain.NewProviderError(op, fmt.Errorf("%w: decode response: %v", domain.ErrUpstreamUnavailable, err))
	}
	return nil
}

// mapError classifies a non-200 provider response. 400-class responses mean
// the provider rejected the request content and are surfaced as validation
// errors; everything else is a system-side failure.
func (c *Client) mapError(op string, resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var payload errorResponse
	detail := ""
	if json.Unmarshal(body, &payload) == nil && len(payload.Errors) > 0 {
		detail = payload.Errors[0].Title
		if payload.Errors[0].Detail != "" {
			detail = detail + ": " + payload.Errors[0].Detail
		}
	}

	c.log.Warn().
		Str("operation", op).
		Int("status", resp.StatusCode).
		Str("detail", detail).
		Msg("Provider request failed")

	switch {
	case resp.StatusCode == http.StatusBadRequest:
		return domain.NewProviderError(op, fmt.Errorf("%w: %s", domain.ErrUpstreamValidation, detail))
	case resp.StatusCode == http.StatusNotFound:
		return domain.NewProviderError(op, fmt.Errorf("%w: %s", domain.ErrUnsupportedLocation, detail))
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return domain.NewRetryableProviderError(op, fmt.Errorf("%w: status %d", domain.ErrUpstreamUnavailable, resp.StatusCode))
	default:
		return domain.NewProviderError(op, fmt.Errorf("%w: status %d", domain.ErrUpstreamUnavailable, resp.StatusCode))
	}
}

// accessToken returns a cached OAuth token, fetching a fresh one when the
// cached token is absent or about to expire.
func (c *Client) accessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && c.clock.Now().Add(tokenSlack).Before(c.tokenExpiry) {
		return c.token, nil
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.apiKey)
	form.Set("client_secret", c.apiSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/security/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", domain.NewProviderError("token", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", domain.NewRetryableProviderError("token", fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", domain.NewProviderError("token", fmt.Errorf("%w: token request status %d", domain.ErrUpstreamUnavailable, resp.StatusCode))
	}

	var tok tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		return "", domain.NewProviderError("token", fmt.Errorf("%w: decode token: %v", domain.ErrUpstreamUnavailable, err))
	}

	c.token = tok.AccessToken
	c.tokenExpiry = c.clock.Now().Add(time.Duration(tok.ExpiresIn) * time.Second)
	c.log.Debug().Time("expiry", c.tokenExpiry).Msg("Provider token refreshed")

	return c.token, nil
}

// cabinClassParam maps a cabin class input to the provider enum, defaulting
// to economy for unrecognized values.
func cabinClassParam(class string) string {
	if param, ok := cabinClassParams[strings.ToLower(class)]; ok {
		return param
	}
	return "ECONOMY"
}
