package domain

// CarOffer is a normalized car-rental offer.
type CarOffer struct {
	// ID is the provider's offer identifier
	ID string `json:"id"`

	// ProviderName is the rental company display name
	ProviderName string `json:"providerName"`

	// Vehicle describes the offered vehicle
	Vehicle Vehicle `json:"vehicle"`

	// Price carries both the provider-currency and local-currency totals
	Price CarPrice `json:"price"`

	// ImageURL is a placeholder image keyed by the vehicle category
	ImageURL string `json:"imageUrl"`
}

// Vehicle describes a rental vehicle.
type Vehicle struct {
	Name         string `json:"name"`
	Category     string `json:"category"`
	Transmission string `json:"transmission"`
	Fuel         string `json:"fuel"`
	Seats        int    `json:"seats"`
}

// CarPrice contains pricing for a car offer.
type CarPrice struct {
	// SourceTotal is the total in the provider's currency
	SourceTotal float64 `json:"sourceTotal"`

	// LocalTotal is the converted local-currency total, whole units
	LocalTotal int64 `json:"localTotal"`

	// Currency is the provider's currency code
	Currency string `json:"currency"`
}
