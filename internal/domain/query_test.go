package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlightQueryCacheKey(t *testing.T) {
	tests := []struct {
		name  string
		query FlightQuery
		want  string
	}{
		{
			name: "lowercase codes with default class and no return date",
			query: FlightQuery{
				Origin:        "sgn",
				Destination:   "han",
				DepartureDate: "2025-01-10",
				Adults:        2,
			},
			want: "flight:SGN:HAN:2025-01-10::2:economy",
		},
		{
			name: "round trip business class",
			query: FlightQuery{
				Origin:        "SGN",
				Destination:   "DAD",
				DepartureDate: "2025-03-01",
				ReturnDate:    "2025-03-08",
				Adults:        1,
				CabinClass:    "business",
			},
			want: "flight:SGN:DAD:2025-03-01:2025-03-08:1:business",
		},
		{
			name: "unrecognized class folds to economy",
			query: FlightQuery{
				Origin:        "SGN",
				Destination:   "HAN",
				DepartureDate: "2025-01-10",
				Adults:        1,
				CabinClass:    "luxury",
			},
			want: "flight:SGN:HAN:2025-01-10::1:economy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.query.Normalize()
			assert.Equal(t, tt.want, tt.query.CacheKey())
		})
	}
}

// Changing any single field must change the key: logically distinct searches
// must never collide.
func TestFlightQueryCacheKeyInjective(t *testing.T) {
	base := FlightQuery{
		Origin:        "SGN",
		Destination:   "HAN",
		DepartureDate: "2025-01-10",
		Adults:        2,
	}
	base.Normalize()

	variants := []FlightQuery{
		{Origin: "DAD", Destination: "HAN", DepartureDate: "2025-01-10", Adults: 2},
		{Origin: "SGN", Destination: "DAD", DepartureDate: "2025-01-10", Adults: 2},
		{Origin: "SGN", Destination: "HAN", DepartureDate: "2025-01-11", Adults: 2},
		{Origin: "SGN", Destination: "HAN", DepartureDate: "2025-01-10", ReturnDate: "2025-01-20", Adults: 2},
		{Origin: "SGN", Destination: "HAN", DepartureDate: "2025-01-10", Adults: 3},
		{Origin: "SGN", Destination: "HAN", DepartureDate: "2025-01-10", Adults: 2, CabinClass: "first"},
	}

	seen := map[string]bool{base.CacheKey(): true}
	for i := range variants {
		variants[i].Normalize()
		key := variants[i].CacheKey()
		assert.False(t, seen[key], "key %q collides with an earlier variant", key)
		seen[key] = true
	}
}

// Case-folded but semantically identical queries must share a key.
func TestFlightQueryCacheKeyCaseFolding(t *testing.T) {
	a := FlightQuery{Origin: "sgn", Destination: "Han", DepartureDate: "2025-01-10", Adults: 2}
	b := FlightQuery{Origin: "SGN", Destination: "HAN", DepartureDate: "2025-01-10", Adults: 2}
	a.Normalize()
	b.Normalize()

	assert.Equal(t, a.CacheKey(), b.CacheKey())
}

func TestFlightQueryValidate(t *testing.T) {
	tests := []struct {
		name    string
		query   FlightQuery
		wantErr string
	}{
		{
			name:  "valid one way",
			query: FlightQuery{Origin: "SGN", Destination: "HAN", DepartureDate: "2025-01-10", Adults: 1},
		},
		{
			name:    "missing origin",
			query:   FlightQuery{Destination: "HAN", DepartureDate: "2025-01-10", Adults: 1},
			wantErr: "origin is required",
		},
		{
			name:    "missing destination",
			query:   FlightQuery{Origin: "SGN", DepartureDate: "2025-01-10", Adults: 1},
			wantErr: "destination is required",
		},
		{
			name:    "missing departure date",
			query:   FlightQuery{Origin: "SGN", Destination: "HAN", Adults: 1},
			wantErr: "departureDate is required",
		},
		{
			name:    "bad origin code",
			query:   FlightQuery{Origin: "SAIGON", Destination: "HAN", DepartureDate: "2025-01-10", Adults: 1},
			wantErr: "3-letter IATA code",
		},
		{
			name:    "same origin and destination",
			query:   FlightQuery{Origin: "SGN", Destination: "SGN", DepartureDate: "2025-01-10", Adults: 1},
			wantErr: "must be different",
		},
		{
			name:    "bad date format",
			query:   FlightQuery{Origin: "SGN", Destination: "HAN", DepartureDate: "10-01-2025", Adults: 1},
			wantErr: "YYYY-MM-DD",
		},
		{
			name:    "bad return date format",
			query:   FlightQuery{Origin: "SGN", Destination: "HAN", DepartureDate: "2025-01-10", ReturnDate: "Jan 20", Adults: 1},
			wantErr: "returnDate",
		},
		{
			name:    "too many adults",
			query:   FlightQuery{Origin: "SGN", Destination: "HAN", DepartureDate: "2025-01-10", Adults: 10},
			wantErr: "cannot exceed 9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.query.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidRequest))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestFlightQueryNormalizeTripType(t *testing.T) {
	oneway := FlightQuery{Origin: "SGN", Destination: "HAN", DepartureDate: "2025-01-10"}
	oneway.Normalize()
	assert.Equal(t, TripOneWay, oneway.TripType)
	assert.Equal(t, 1, oneway.Adults)

	round := FlightQuery{Origin: "SGN", Destination: "HAN", DepartureDate: "2025-01-10", ReturnDate: "2025-01-20"}
	round.Normalize()
	assert.Equal(t, TripRoundTrip, round.TripType)
}

func TestHotelQueryCacheKey(t *testing.T) {
	q := HotelQuery{CityCode: "par", CheckInDate: "2025-05-01", CheckOutDate: "2025-05-03"}
	q.Normalize()

	assert.Equal(t, "hotels_PAR_2025-05-01_2025-05-03_1_1", q.CacheKey())

	other := HotelQuery{CityCode: "PAR", CheckInDate: "2025-05-01", CheckOutDate: "2025-05-03", Guests: 2, Rooms: 1}
	other.Normalize()
	assert.NotEqual(t, q.CacheKey(), other.CacheKey())
}

func TestHotelQueryValidate(t *testing.T) {
	tests := []struct {
		name    string
		query   HotelQuery
		wantErr string
	}{
		{
			name:  "valid",
			query: HotelQuery{CityCode: "PAR", CheckInDate: "2025-05-01", CheckOutDate: "2025-05-03"},
		},
		{
			name:    "missing location",
			query:   HotelQuery{CheckInDate: "2025-05-01", CheckOutDate: "2025-05-03"},
			wantErr: "location is required",
		},
		{
			name:    "missing check-in",
			query:   HotelQuery{CityCode: "PAR", CheckOutDate: "2025-05-03"},
			wantErr: "checkInDate is required",
		},
		{
			name:    "missing check-out",
			query:   HotelQuery{CityCode: "PAR", CheckInDate: "2025-05-01"},
			wantErr: "checkOutDate is required",
		},
		{
			name:    "bad city code",
			query:   HotelQuery{CityCode: "PARIS", CheckInDate: "2025-05-01", CheckOutDate: "2025-05-03"},
			wantErr: "IATA city code",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.query.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidRequest))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCarQueryCacheKey(t *testing.T) {
	withDropoff := CarQuery{PickupLocation: "sgn", PickupDate: "2025-02-01", DropoffDate: "2025-02-05"}
	withDropoff.Normalize()
	assert.Equal(t, "cars_SGN_2025-02-01_2025-02-05", withDropoff.CacheKey())

	withoutDropoff := CarQuery{PickupLocation: "SGN", PickupDate: "2025-02-01"}
	withoutDropoff.Normalize()
	assert.Equal(t, "cars_SGN_2025-02-01_", withoutDropoff.CacheKey())

	assert.NotEqual(t, withDropoff.CacheKey(), withoutDropoff.CacheKey())
}

func TestCarQueryValidate(t *testing.T) {
	tests := []struct {
		name    string
		query   CarQuery
		wantErr string
	}{
		{
			name:  "valid without dropoff",
			query: CarQuery{PickupLocation: "SGN", PickupDate: "2025-02-01"},
		},
		{
			name:    "missing pickup location",
			query:   CarQuery{PickupDate: "2025-02-01"},
			wantErr: "pickupLocation is required",
		},
		{
			name:    "missing pickup date",
			query:   CarQuery{PickupLocation: "SGN"},
			wantErr: "pickupDate is required",
		},
		{
			name:    "bad dropoff date",
			query:   CarQuery{PickupLocation: "SGN", PickupDate: "2025-02-01", DropoffDate: "05/02/2025"},
			wantErr: "dropoffDate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.query.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidRequest))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
