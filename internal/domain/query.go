package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// iataCodeRegex matches IATA airport/city codes (3 uppercase letters).
var iataCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// dateRegex matches dates in YYYY-MM-DD format.
var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// validCabinClasses defines the accepted cabin class inputs.
var validCabinClasses = map[string]bool{
	"economy":         true,
	"premium_economy": true,
	"business":        true,
	"first":           true,
}

// ValidateLocationCode checks that code is a 3-letter IATA code.
func ValidateLocationCode(code string) error {
	if !iataCodeRegex.MatchString(code) {
		return fmt.Errorf("%w: location must be a 3-letter IATA code, got %q", ErrInvalidRequest, code)
	}
	return nil
}

// FlightQuery holds the user-supplied parameters for one flight search.
// It is immutable once normalized and is used only to derive a cache key
// and an upstream request.
type FlightQuery struct {
	Origin        string
	Destination   string
	DepartureDate string
	ReturnDate    string
	Adults        int
	CabinClass    string
	TripType      TripType
}

// Normalize applies defaults and canonical casing so that semantically
// identical queries produce identical cache keys. Unrecognized cabin classes
// fold to economy rather than failing the search.
func (q *FlightQuery) Normalize() {
	q.Origin = strings.ToUpper(strings.TrimSpace(q.Origin))
	q.Destination = strings.ToUpper(strings.TrimSpace(q.Destination))
	if q.Adults < 1 {
		q.Adults = 1
	}
	q.CabinClass = strings.ToLower(strings.TrimSpace(q.CabinClass))
	if !validCabinClasses[q.CabinClass] {
		q.CabinClass = "economy"
	}
	if q.TripType == "" {
		if q.ReturnDate != "" {
			q.TripType = TripRoundTrip
		} else {
			q.TripType = TripOneWay
		}
	}
}

// Validate checks that the required fields are present and well formed.
// Returns a wrapped ErrInvalidRequest error if validation fails.
func (q *FlightQuery) Validate() error {
	if q.Origin == "" {
		return fmt.Errorf("%w: origin is required", ErrInvalidRequest)
	}
	if !iataCodeRegex.MatchString(q.Origin) {
		return fmt.Errorf("%w: origin must be a 3-letter IATA code, got %q", ErrInvalidRequest, q.Origin)
	}
	if q.Destination == "" {
		return fmt.Errorf("%w: destination is required", ErrInvalidRequest)
	}
	if !iataCodeRegex.MatchString(q.Destination) {
		return fmt.Errorf("%w: destination must be a 3-letter IATA code, got %q", ErrInvalidRequest, q.Destination)
	}
	if q.Origin == q.Destination {
		return fmt.Errorf("%w: origin and destination must be different", ErrInvalidRequest)
	}
	if q.DepartureDate == "" {
		return fmt.Errorf("%w: departureDate is required", ErrInvalidRequest)
	}
	if !dateRegex.MatchString(q.DepartureDate) {
		return fmt.Errorf("%w: departureDate must be in YYYY-MM-DD format, got %q", ErrInvalidRequest, q.DepartureDate)
	}
	if q.ReturnDate != "" && !dateRegex.MatchString(q.ReturnDate) {
		return fmt.Errorf("%w: returnDate must be in YYYY-MM-DD format, got %q", ErrInvalidRequest, q.ReturnDate)
	}
	if q.Adults > 9 {
		return fmt.Errorf("%w: adults cannot exceed 9", ErrInvalidRequest)
	}
	return nil
}

// CacheKey derives the deterministic cache key for this query. Every field
// that affects the upstream result is part of the key; an empty return date
// keeps its slot so one-way and round-trip searches never collide.
func (q *FlightQuery) CacheKey() string {
	return fmt.Sprintf("flight:%s:%s:%s:%s:%d:%s",
		q.Origin, q.Destination, q.DepartureDate, q.ReturnDate, q.Adults, q.CabinClass)
}

// HotelQuery holds the user-supplied parameters for one hotel search.
type HotelQuery struct {
	CityCode     string
	CheckInDate  string
	CheckOutDate string
	Guests       int
	Rooms        int
}

// Normalize applies defaults and canonical casing.
func (q *HotelQuery) Normalize() {
	q.CityCode = strings.ToUpper(strings.TrimSpace(q.CityCode))
	if q.Guests < 1 {
		q.Guests = 1
	}
	if q.Rooms < 1 {
		q.Rooms = 1
	}
}

// Validate checks that the required fields are present and well formed.
func (q *HotelQuery) Validate() error {
	if q.CityCode == "" {
		return fmt.Errorf("%w: location is required", ErrInvalidRequest)
	}
	if !iataCodeRegex.MatchString(q.CityCode) {
		return fmt.Errorf("%w: location must be a 3-letter IATA city code, got %q", ErrInvalidRequest, q.CityCode)
	}
	if q.CheckInDate == "" {
		return fmt.Errorf("%w: checkInDate is required", ErrInvalidRequest)
	}
	if !dateRegex.MatchString(q.CheckInDate) {
		return fmt.Errorf("%w: checkInDate must be in YYYY-MM-DD format, got %q", ErrInvalidRequest, q.CheckInDate)
	}
	if q.CheckOutDate == "" {
		return fmt.Errorf("%w: checkOutDate is required", ErrInvalidRequest)
	}
	if !dateRegex.MatchString(q.CheckOutDate) {
		return fmt.Errorf("%w: checkOutDate must be in YYYY-MM-DD format, got %q", ErrInvalidRequest, q.CheckOutDate)
	}
	return nil
}

// CacheKey derives the deterministic cache key for this query.
func (q *HotelQuery) CacheKey() string {
	return fmt.Sprintf("hotels_%s_%s_%s_%d_%d",
		q.CityCode, q.CheckInDate, q.CheckOutDate, q.Guests, q.Rooms)
}

// CarQuery holds the user-supplied parameters for one car-rental search.
type CarQuery struct {
	PickupLocation string
	PickupDate     string
	DropoffDate    string
}

// Normalize applies canonical casing.
func (q *CarQuery) Normalize() {
	q.PickupLocation = strings.ToUpper(strings.TrimSpace(q.PickupLocation))
}

// Validate checks that the required fields are present and well formed.
func (q *CarQuery) Validate() error {
	if q.PickupLocation == "" {
		return fmt.Errorf("%w: pickupLocation is required", ErrInvalidRequest)
	}
	if !iataCodeRegex.MatchString(q.PickupLocation) {
		return fmt.Errorf("%w: pickupLocation must be a 3-letter IATA code, got %q", ErrInvalidRequest, q.PickupLocation)
	}
	if q.PickupDate == "" {
		return fmt.Errorf("%w: pickupDate is required", ErrInvalidRequest)
	}
	if !dateRegex.MatchString(q.PickupDate) {
		return fmt.Errorf("%w: pickupDate must be in YYYY-MM-DD format, got %q", ErrInvalidRequest, q.PickupDate)
	}
	if q.DropoffDate != "" && !dateRegex.MatchString(q.DropoffDate) {
		return fmt.Errorf("%w: dropoffDate must be in YYYY-MM-DD format, got %q", ErrInvalidRequest, q.DropoffDate)
	}
	return nil
}

// CacheKey derives the deterministic cache key for this query.
func (q *CarQuery) CacheKey() string {
	return fmt.Sprintf("cars_%s_%s_%s", q.PickupLocation, q.PickupDate, q.DropoffDate)
}
