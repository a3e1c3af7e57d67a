// Package http provides the HTTP handler layer for the travel search API.
// It handles request parsing, validation, response formatting, and error
// mapping.
package http

import (
	"regexp"
	"strings"
	"time"

	"github.com/xuanthe01656/travelhub/internal/domain"
	"github.com/xuanthe01656/travelhub/internal/usecase"
)

// Validation regex patterns.
var (
	locationCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)
	datePattern         = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// Valid cabin classes. Empty defaults to economy.
var validCabinClasses = map[string]bool{
	"economy":         true,
	"premium_economy": true,
	"business":        true,
	"first":           true,
	"":                true,
}

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{Field: field, Message: message})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// validateLocation checks a required 3-letter IATA code, normalizing it to
// uppercase in place.
func validateLocation(errs *ValidationErrors, field string, value *string) {
	if *value == "" {
		errs.Add(field, field+" is required")
		return
	}
	code := strings.ToUpper(strings.TrimSpace(*value))
	if !locationCodePattern.MatchString(code) {
		errs.Add(field, field+" must be a valid 3-letter IATA code")
		return
	}
	*value = code
}

// validateDate checks a YYYY-MM-DD date. required controls whether empty is
// an error.
func validateDate(errs *ValidationErrors, field, value string, required bool) {
	if value == "" {
		if required {
			errs.Add(field, field+" is required")
		}
		return
	}
	if !datePattern.MatchString(value) {
		errs.Add(field, field+" must be in YYYY-MM-DD format")
		return
	}
	if _, err := time.Parse("2006-01-02", value); err != nil {
		errs.Add(field, field+" is not a valid date")
	}
}

// SearchFlightsRequest carries the query parameters for flight search.
type SearchFlightsRequest struct {
	// Origin is the IATA code of the departure airport (e.g., "SGN")
	Origin string `query:"origin"`

	// Destination is the IATA code of the arrival airport (e.g., "HAN")
	Destination string `query:"destination"`

	// DepartureDate is the desired departure date in YYYY-MM-DD format
	DepartureDate string `query:"departureDate"`

	// ReturnDate makes the search a round trip when present
	ReturnDate string `query:"returnDate"`

	// Adults is the number of adult passengers (defaults to 1)
	Adults int `query:"adults"`

	// CabinClass is economy, premium_economy, business, or first
	CabinClass string `query:"cabinClass"`
}

// Validate validates the request and returns field-level errors.
func (r *SearchFlightsRequest) Validate() error {
	errs := &ValidationErrors{}

	validateLocation(errs, "origin", &r.Origin)
	validateLocation(errs, "destination", &r.Destination)
	if r.Origin != "" && r.Origin == r.Destination {
		errs.Add("destination", "origin and destination must be different")
	}
	validateDate(errs, "departureDate", r.DepartureDate, true)
	validateDate(errs, "returnDate", r.ReturnDate, false)
	if r.Adults < 0 || r.Adults > 9 {
		errs.Add("adults", "adults must be between 1 and 9")
	}
	if !validCabinClasses[strings.ToLower(r.CabinClass)] {
		errs.Add("cabinClass", "cabinClass must be one of: economy, premium_economy, business, first")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// ToQuery converts the request to a domain flight query.
func (r *SearchFlightsRequest) ToQuery() domain.FlightQuery {
	return domain.FlightQuery{
		Origin:        r.Origin,
		Destination:   r.Destination,
		DepartureDate: r.DepartureDate,
		ReturnDate:    r.ReturnDate,
		Adults:        r.Adults,
		CabinClass:    r.CabinClass,
	}
}

// CheapestFlightsRequest carries the query parameters for the discounted
// destinations lookup. All parameters are optional.
type CheapestFlightsRequest struct {
	// Origin overrides the default departure airport
	Origin string `query:"origin"`

	// Latitude and Longitude locate the caller when no origin is given
	Latitude  *float64 `query:"latitude"`
	Longitude *float64 `query:"longitude"`
}

// Validate validates the request.
func (r *CheapestFlightsRequest) Validate() error {
	errs := &ValidationErrors{}

	if r.Origin != "" {
		validateLocation(errs, "origin", &r.Origin)
	}
	if (r.Latitude == nil) != (r.Longitude == nil) {
		errs.Add("latitude", "latitude and longitude must be provided together")
	}
	if r.Latitude != nil && (*r.Latitude < -90 || *r.Latitude > 90) {
		errs.Add("latitude", "latitude must be between -90 and 90")
	}
	if r.Longitude != nil && (*r.Longitude < -180 || *r.Longitude > 180) {
		errs.Add("longitude", "longitude must be between -180 and 180")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// ToRequest converts the request to a use-case request.
func (r *CheapestFlightsRequest) ToRequest() usecase.CheapFlightsRequest {
	req := usecase.CheapFlightsRequest{Origin: r.Origin}
	if r.Latitude != nil && r.Longitude != nil {
		req.Latitude = *r.Latitude
		req.Longitude = *r.Longitude
		req.HasCoordinates = true
	}
	return req
}

// SearchHotelsRequest carries the query parameters for hotel search.
type SearchHotelsRequest struct {
	// Location is the IATA city code (e.g., "SGN")
	Location string `query:"location"`

	// CheckInDate and CheckOutDate are in YYYY-MM-DD format
	CheckInDate  string `query:"checkInDate"`
	CheckOutDate string `query:"checkOutDate"`

	// Guests is the number of guests (defaults to 1)
	Guests int `query:"guests"`

	// Rooms is the number of rooms (defaults to 1)
	Rooms int `query:"rooms"`
}

// Validate validates the request.
func (r *SearchHotelsRequest) Validate() error {
	errs := &ValidationErrors{}

	validateLocation(errs, "location", &r.Location)
	validateDate(errs, "checkInDate", r.CheckInDate, true)
	validateDate(errs, "checkOutDate", r.CheckOutDate, true)
	if r.CheckInDate != "" && r.CheckOutDate != "" && r.CheckOutDate <= r.CheckInDate {
		errs.Add("checkOutDate", "checkOutDate must be after checkInDate")
	}
	if r.Guests < 0 {
		errs.Add("guests", "guests must be a positive number")
	}
	if r.Rooms < 0 {
		errs.Add("rooms", "rooms must be a positive number")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// ToQuery converts the request to a domain hotel query.
func (r *SearchHotelsRequest) ToQuery() domain.HotelQuery {
	return domain.HotelQuery{
		CityCode:     r.Location,
		CheckInDate:  r.CheckInDate,
		CheckOutDate: r.CheckOutDate,
		Guests:       r.Guests,
		Rooms:        r.Rooms,
	}
}

// SearchCarsRequest carries the query parameters for car-rental search.
type SearchCarsRequest struct {
	// PickupLocation is the IATA code of the pickup point
	PickupLocation string `query:"pickupLocation"`

	// PickupDate is in YYYY-MM-DD format
	PickupDate string `query:"pickupDate"`

	// DropoffDate is optional
	DropoffDate string `query:"dropoffDate"`
}

// Validate validates the request.
func (r *SearchCarsRequest) Validate() error {
	errs := &ValidationErrors{}

	validateLocation(errs, "pickupLocation", &r.PickupLocation)
	validateDate(errs, "pickupDate", r.PickupDate, true)
	validateDate(errs, "dropoffDate", r.DropoffDate, false)

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// ToQuery converts the request to a domain car query.
func (r *SearchCarsRequest) ToQuery() domain.CarQuery {
	return domain.CarQuery{
		PickupLocation: r.PickupLocation,
		PickupDate:     r.PickupDate,
		DropoffDate:    r.DropoffDate,
	}
}

// CreateBookingRequest is the request body for recording a purchase.
type CreateBookingRequest struct {
	// Email identifies the purchaser
	Email string `json:"email"`

	// Kind is flight, hotel, or car
	Kind string `json:"kind"`

	// Reference is the offer identifier that was purchased
	Reference string `json:"reference"`

	// Amount is the paid amount in whole local-currency units
	Amount int64 `json:"amount"`

	// Currency is the ISO 4217 code of the paid amount
	Currency string `json:"currency"`
}

// Validate validates the request.
func (r *CreateBookingRequest) Validate() error {
	errs := &ValidationErrors{}

	if strings.TrimSpace(r.Email) == "" {
		errs.Add("email", "email is required")
	}
	if r.Kind == "" {
		errs.Add("kind", "kind is required")
	}
	if r.Reference == "" {
		errs.Add("reference", "reference is required")
	}
	if r.Amount <= 0 {
		errs.Add("amount", "amount must be a positive number")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// ToPurchase converts the request to a domain purchase.
func (r *CreateBookingRequest) ToPurchase() domain.Purchase {
	return domain.Purchase{
		Email:     r.Email,
		Kind:      domain.PurchaseKind(strings.ToLower(r.Kind)),
		Reference: r.Reference,
		Amount:    r.Amount,
		Currency:  r.Currency,
	}
}
