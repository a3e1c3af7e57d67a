package amadeus

import "github.com/xuanthe01656/travelhub/internal/domain"

// Raw payload shapes for the subset of provider fields the normalizers read.
// The provider's responses are loosely typed and deeply nested; every field
// here is optional and every consumer must tolerate its zero value.

// flightOffersResponse is the raw flight-offer-search payload.
type flightOffersResponse struct {
	Data         []FlightOfferRecord `json:"data"`
	Dictionaries *dictionariesRecord `json:"dictionaries"`
}

// dictionariesRecord carries the code→name lookup tables accompanying
// flight offers.
type dictionariesRecord struct {
	Carriers map[string]string `json:"carriers"`
	Aircraft map[string]string `json:"aircraft"`
}

// FlightOfferRecord is one raw flight offer.
type FlightOfferRecord struct {
	ID                     string            `json:"id"`
	Itineraries            []ItineraryRecord `json:"itineraries"`
	Price                  PriceRecord       `json:"price"`
	ValidatingAirlineCodes []string          `json:"validatingAirlineCodes"`
}

// ItineraryRecord is one direction of a raw flight offer.
type ItineraryRecord struct {
	// Duration is an ISO-8601 duration such as "PT7H30M"
	Duration string          `json:"duration"`
	Segments []SegmentRecord `json:"segments"`
}

// SegmentRecord is a single raw flight leg.
type SegmentRecord struct {
	Departure   PointRecord    `json:"departure"`
	Arrival     PointRecord    `json:"arrival"`
	CarrierCode string         `json:"carrierCode"`
	Number      string         `json:"number"`
	Aircraft    AircraftRecord `json:"aircraft"`
}

// PointRecord is a raw departure or arrival point.
type PointRecord struct {
	IataCode string `json:"iataCode"`
	// At is an ISO-8601 local timestamp, carried verbatim
	At string `json:"at"`
}

// AircraftRecord holds a raw aircraft code.
type AircraftRecord struct {
	Code string `json:"code"`
}

// PriceRecord holds a raw price block. Total is a decimal string.
type PriceRecord struct {
	Total    string `json:"total"`
	Currency string `json:"currency"`
}

// locationsResponse is the raw airport/location lookup payload.
type locationsResponse struct {
	Data []LocationRecord `json:"data"`
}

// LocationRecord is one raw location result.
type LocationRecord struct {
	IataCode string `json:"iataCode"`
	Name     string `json:"name"`
}

// flightDestinationsResponse is the raw cheap-flights payload.
type flightDestinationsResponse struct {
	Data []DestinationRecord `json:"data"`
}

// DestinationRecord is one raw discounted destination.
type DestinationRecord struct {
	Origin        string      `json:"origin"`
	Destination   string      `json:"destination"`
	DepartureDate string      `json:"departureDate"`
	ReturnDate    string      `json:"returnDate"`
	Price         PriceRecord `json:"price"`
}

// hotelListResponse is the raw hotel-list-by-city payload.
type hotelListResponse struct {
	Data []HotelListRecord `json:"data"`
}

// HotelListRecord identifies one hotel in a city.
type HotelListRecord struct {
	HotelID string `json:"hotelId"`
}

// hotelOffersResponse is the raw hotel-offer-search payload.
type hotelOffersResponse struct {
	Data []HotelOfferRecord `json:"data"`
}

// HotelOfferRecord is one raw hotel with its room offers.
type HotelOfferRecord struct {
	Hotel  HotelRecord       `json:"hotel"`
	Offers []RoomOfferRecord `json:"offers"`
}

// HotelRecord is the raw hotel sub-record.
type HotelRecord struct {
	HotelID   string   `json:"hotelId"`
	Name      string   `json:"name"`
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Amenities []string `json:"amenities"`
}

// RoomOfferRecord is one raw room offer.
type RoomOfferRecord struct {
	Price PriceRecord `json:"price"`
	Room  RoomRecord  `json:"room"`
}

// RoomRecord is the raw room sub-record.
type RoomRecord struct {
	TypeEstimated RoomTypeRecord `json:"typeEstimated"`
}

// RoomTypeRecord carries the estimated room category.
type RoomTypeRecord struct {
	Category string `json:"category"`
}

// carOffersResponse is the raw car-rental-search payload.
type carOffersResponse struct {
	Data []CarOfferRecord `json:"data"`
}

// CarOfferRecord is one raw car-rental offer.
type CarOfferRecord struct {
	ID              string                `json:"id"`
	ServiceProvider ServiceProviderRecord `json:"serviceProvider"`
	Vehicle         VehicleRecord         `json:"vehicle"`
	Quotation       QuotationRecord       `json:"quotation"`
}

// ServiceProviderRecord is the raw rental company sub-record.
type ServiceProviderRecord struct {
	Name string `json:"name"`
}

// VehicleRecord is the raw vehicle sub-record.
type VehicleRecord struct {
	Description  string       `json:"description"`
	Category     string       `json:"category"`
	Transmission string       `json:"transmission"`
	Fuel         string       `json:"fuel"`
	Seats        []SeatRecord `json:"seats"`
}

// SeatRecord holds a raw seat count.
type SeatRecord struct {
	Count int `json:"count"`
}

// QuotationRecord holds a raw rental quotation.
// MonetaryAmount is a decimal string.
type QuotationRecord struct {
	MonetaryAmount string `json:"monetaryAmount"`
	CurrencyCode   string `json:"currencyCode"`
}

// tokenResponse is the OAuth2 client-credentials token payload.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

// errorResponse is the provider's error payload.
type errorResponse struct {
	Errors []errorRecord `json:"errors"`
}

// errorRecord is one provider-reported error.
type errorRecord struct {
	Status int    `json:"status"`
	Code   int    `json:"code"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

// dictionaries converts the raw lookup tables to the domain shape.
// A missing dictionaries block yields empty maps, so normalizer lookups fall
// back to raw codes instead of dereferencing nil.
func (r *flightOffersResponse) dictionaries() domain.FlightDictionaries {
	d := domain.FlightDictionaries{
		Carriers: map[string]string{},
		Aircraft: map[string]string{},
	}
	if r.Dictionaries != nil {
		if r.Dictionaries.Carriers != nil {
			d.Carriers = r.Dictionaries.Carriers
		}
		if r.Dictionaries.Aircraft != nil {
			d.Aircraft = r.Dictionaries.Aircraft
		}
	}
	return d
}
