package domain

// CheapDestination is a discounted-destination summary returned by the
// cheap-flights search.
type CheapDestination struct {
	// Origin is the IATA code the fares depart from
	Origin string `json:"origin"`

	// Destination is the IATA code of the discounted destination
	Destination string `json:"destination"`

	// DepartureDate and ReturnDate bound the discounted travel window
	DepartureDate string `json:"departureDate"`
	ReturnDate    string `json:"returnDate,omitempty"`

	// Price is the fare total in the provider's currency
	Price string `json:"price"`
}
