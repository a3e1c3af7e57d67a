// Package domain contains the core business entities and rules for the travel
// booking system. These entities are provider-agnostic: the raw payloads of the
// upstream travel-data provider are normalized into these shapes before they
// leave the adapter layer.
package domain

// TripType distinguishes one-way from round-trip flight offers.
type TripType string

// Supported trip types.
const (
	TripOneWay    TripType = "oneway"
	TripRoundTrip TripType = "roundtrip"
)

// FlightOffer is a normalized flight itinerary offer.
type FlightOffer struct {
	// ID is the provider's offer identifier
	ID string `json:"id"`

	// TripType is "oneway" or "roundtrip"
	TripType TripType `json:"tripType"`

	// Price contains the converted local-currency pricing
	Price FlightPrice `json:"price"`

	// Outbound is the departing itinerary
	Outbound Itinerary `json:"outbound"`

	// Inbound is the returning itinerary, present only for round trips
	Inbound *Itinerary `json:"inbound,omitempty"`

	// ValidatingAirlines are the IATA codes of the ticketing carriers
	ValidatingAirlines []string `json:"validatingAirlines,omitempty"`
}

// FlightPrice contains pricing for a flight offer in local currency.
type FlightPrice struct {
	// Total is the grand total for all passengers, rounded to whole units
	Total int64 `json:"total"`

	// PerPassenger is the per-passenger amount, rounded to whole units
	PerPassenger int64 `json:"perPassenger"`

	// Currency is the ISO 4217 currency code of the converted amounts
	Currency string `json:"currency"`
}

// Itinerary is one direction of a flight offer (outbound or inbound).
// Timestamps are carried verbatim from the provider as ISO-8601 strings;
// no timezone conversion is performed at this layer.
type Itinerary struct {
	// Origin is the IATA code of the first segment's departure airport
	Origin string `json:"origin"`

	// Destination is the IATA code of the last segment's arrival airport
	Destination string `json:"destination"`

	// DepartureTime is the first segment's departure timestamp
	DepartureTime string `json:"departureTime"`

	// ArrivalTime is the last segment's arrival timestamp
	ArrivalTime string `json:"arrivalTime"`

	// Duration is a display string such as "7h 30m"
	Duration string `json:"duration"`

	// CarrierName is the resolved airline display name
	CarrierName string `json:"carrierName"`

	// CarrierLogo is a logo URL derived from the carrier code
	CarrierLogo string `json:"carrierLogo,omitempty"`

	// AircraftName is the resolved aircraft display name
	AircraftName string `json:"aircraftName,omitempty"`

	// Stops is the number of intermediate stops (0 = direct)
	Stops int `json:"stops"`

	// Segments lists the individual flight legs in order
	Segments []FlightSegment `json:"segments"`
}

// FlightSegment is a single flight leg within an itinerary.
type FlightSegment struct {
	From         string `json:"from"`
	To           string `json:"to"`
	FlightNumber string `json:"flightNumber"`
}
