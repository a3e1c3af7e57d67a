package domain

// HotelOffer is a normalized hotel offer.
type HotelOffer struct {
	// ID is the provider's hotel identifier
	ID string `json:"id"`

	// Name is the hotel display name
	Name string `json:"name"`

	// Latitude and Longitude are the hotel's geo-coordinates
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`

	// Price is the first offer's total price
	Price HotelPrice `json:"price"`

	// RoomType is the offered room category ("Standard" when unknown)
	RoomType string `json:"roomType"`

	// Amenities lists the hotel's amenities (empty when unknown)
	Amenities []string `json:"amenities"`

	// ImageURL is a placeholder image keyed by the hotel name.
	// The upstream payloads carry no image URLs.
	ImageURL string `json:"imageUrl"`
}

// HotelPrice contains pricing for a hotel offer.
type HotelPrice struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}
