package amadeus

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/xuanthe01656/travelhub/internal/currency"
	"github.com/xuanthe01656/travelhub/internal/domain"
)

// Display defaults applied when the provider omits a field. Missing fields
// are a first-class case here: one sparse record must never abort a batch.
const (
	DefaultRoomType = "Standard"
	DefaultFuelType = "Xăng"
	DefaultSeats    = 5
)

// carrierLogoURL templates an airline logo from its IATA code.
const carrierLogoURL = "https://pics.avs.io/200/200/%s.png"

// placeholderImageURL templates a stand-in image for hotels and cars.
// The upstream payloads carry no image URLs.
const placeholderImageURL = "https://placehold.co/600x400?text=%s"

// NormalizeFlightOffers maps raw flight offers to domain offers. It is a pure
// function: inputs are never mutated and no I/O is performed. Offers with no
// itineraries are skipped; every other missing field falls back to a default.
func NormalizeFlightOffers(records []FlightOfferRecord, dicts domain.FlightDictionaries, adults int, conv *currency.Converter, localCurrency string) []domain.FlightOffer {
	if adults < 1 {
		adults = 1
	}

	offers := make([]domain.FlightOffer, 0, len(records))
	for _, rec := range records {
		if len(rec.Itineraries) == 0 {
			continue
		}

		tripType := domain.TripOneWay
		var inbound *domain.Itinerary
		if len(rec.Itineraries) > 1 {
			tripType = domain.TripRoundTrip
			in := normalizeItinerary(rec.Itineraries[1], dicts)
			inbound = &in
		}

		perPassenger := conv.ToLocal(parseAmount(rec.Price.Total))

		offers = append(offers, domain.FlightOffer{
			ID:       rec.ID,
			TripType: tripType,
			Price: domain.FlightPrice{
				Total:        perPassenger * int64(adults),
				PerPassenger: perPassenger,
				Currency:     localCurrency,
			},
			Outbound:           normalizeItinerary(rec.Itineraries[0], dicts),
			Inbound:            inbound,
			ValidatingAirlines: rec.ValidatingAirlineCodes,
		})
	}
	return offers
}

// normalizeItinerary extracts one direction's details. Origin comes from the
// first segment and destination from the last; with a single segment both
// point at the same record and stops is 0.
func normalizeItinerary(rec ItineraryRecord, dicts domain.FlightDictionaries) domain.Itinerary {
	it := domain.Itinerary{
		Duration: FormatDuration(rec.Duration),
		Segments: []domain.FlightSegment{},
	}
	if len(rec.Segments) == 0 {
		return it
	}

	first := rec.Segments[0]
	last := rec.Segments[len(rec.Segments)-1]

	it.Origin = first.Departure.IataCode
	it.Destination = last.Arrival.IataCode
	it.DepartureTime = first.Departure.At
	it.ArrivalTime = last.Arrival.At
	it.CarrierName = lookupOrCode(dicts.Carriers, first.CarrierCode)
	it.CarrierLogo = fmt.Sprintf(carrierLogoURL, first.CarrierCode)
	it.AircraftName = lookupOrCode(dicts.Aircraft, first.Aircraft.Code)
	it.Stops = len(rec.Segments) - 1

	for _, seg := range rec.Segments {
		it.Segments = append(it.Segments, domain.FlightSegment{
			From:         seg.Departure.IataCode,
			To:           seg.Arrival.IataCode,
			FlightNumber: seg.CarrierCode + seg.Number,
		})
	}
	return it
}

// FormatDuration turns an ISO-8601 duration into a display string:
// "PT7H30M" becomes "7h 30m". This is a formatting transform, not a temporal
// computation; a duration with no minute component ("PT2H") yields "2h ".
func FormatDuration(iso string) string {
	s := strings.TrimPrefix(iso, "PT")
	s = strings.ReplaceAll(s, "H", "h ")
	s = strings.ReplaceAll(s, "M", "m")
	return s
}

// NormalizeHotelOffers maps raw hotel offers to domain offers. A record with
// no room offers is skipped; missing price currency, room category, and
// amenities fall back to defaults.
func NormalizeHotelOffers(records []HotelOfferRecord, localCurrency string) []domain.HotelOffer {
	offers := make([]domain.HotelOffer, 0, len(records))
	for _, rec := range records {
		if len(rec.Offers) == 0 {
			continue
		}
		first := rec.Offers[0]

		curr := first.Price.Currency
		if curr == "" {
			curr = localCurrency
		}

		roomType := first.Room.TypeEstimated.Category
		if roomType == "" {
			roomType = DefaultRoomType
		}

		amenities := rec.Hotel.Amenities
		if amenities == nil {
			amenities = []string{}
		}

		offers = append(offers, domain.HotelOffer{
			ID:        rec.Hotel.HotelID,
			Name:      rec.Hotel.Name,
			Latitude:  rec.Hotel.Latitude,
			Longitude: rec.Hotel.Longitude,
			Price: domain.HotelPrice{
				Amount:   parseAmount(first.Price.Total),
				Currency: curr,
			},
			RoomType:  roomType,
			Amenities: amenities,
			ImageURL:  fmt.Sprintf(placeholderImageURL, url.QueryEscape(rec.Hotel.Name)),
		})
	}
	return offers
}

// NormalizeCarOffers maps raw car-rental offers to domain offers, carrying
// both the provider-currency total and the converted local total.
func NormalizeCarOffers(records []CarOfferRecord, conv *currency.Converter) []domain.CarOffer {
	offers := make([]domain.CarOffer, 0, len(records))
	for _, rec := range records {
		amount := parseAmount(rec.Quotation.MonetaryAmount)

		offers = append(offers, domain.CarOffer{
			ID:           rec.ID,
			ProviderName: rec.ServiceProvider.Name,
			Vehicle: domain.Vehicle{
				Name:         rec.Vehicle.Description,
				Category:     rec.Vehicle.Category,
				Transmission: transmissionLabel(rec.Vehicle.Transmission),
				Fuel:         fuelLabel(rec.Vehicle.Fuel),
				Seats:        seatCount(rec.Vehicle.Seats),
			},
			Price: domain.CarPrice{
				SourceTotal: amount,
				LocalTotal:  conv.ToLocal(amount),
				Currency:    rec.Quotation.CurrencyCode,
			},
			ImageURL: fmt.Sprintf(placeholderImageURL, url.QueryEscape(rec.Vehicle.Category)),
		})
	}
	return offers
}

// NormalizeDestinations maps raw cheap-flight destinations to domain records.
func NormalizeDestinations(records []DestinationRecord) []domain.CheapDestination {
	dests := make([]domain.CheapDestination, 0, len(records))
	for _, rec := range records {
		dests = append(dests, domain.CheapDestination{
			Origin:        rec.Origin,
			Destination:   rec.Destination,
			DepartureDate: rec.DepartureDate,
			ReturnDate:    rec.ReturnDate,
			Price:         rec.Price.Total,
		})
	}
	return dests
}

// lookupOrCode resolves a code through a dictionary, falling back to the raw
// code when the dictionary has no entry.
func lookupOrCode(dict map[string]string, code string) string {
	if name, ok := dict[code]; ok && name != "" {
		return name
	}
	return code
}

// parseAmount parses a decimal price string, treating malformed or missing
// values as zero rather than failing the record.
func parseAmount(s string) float64 {
	amount, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return amount
}

// transmissionLabel maps the provider's transmission enum to a display label.
func transmissionLabel(raw string) string {
	if raw == "Automatic" {
		return "Số tự động"
	}
	return "Số sàn"
}

// fuelLabel returns the fuel display value, defaulting when absent.
func fuelLabel(raw string) string {
	if raw == "" {
		return DefaultFuelType
	}
	return raw
}

// seatCount returns the first listed seat count, defaulting when absent.
func seatCount(seats []SeatRecord) int {
	if len(seats) == 0 || seats[0].Count <= 0 {
		return DefaultSeats
	}
	return seats[0].Count
}
