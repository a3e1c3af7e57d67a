package domain

import (
	"context"
	"time"
)

// PurchaseKind identifies what a purchase paid for.
type PurchaseKind string

// Supported purchase kinds.
const (
	PurchaseFlight PurchaseKind = "flight"
	PurchaseHotel  PurchaseKind = "hotel"
	PurchaseCar    PurchaseKind = "car"
)

// Purchase records one completed payment. The canonical purchase ledger is an
// external collaborator; this type is the shape handed to it.
type Purchase struct {
	ID        string       `json:"id"`
	Email     string       `json:"email"`
	Kind      PurchaseKind `json:"kind"`
	Reference string       `json:"reference"`
	Amount    int64        `json:"amount"`
	Currency  string       `json:"currency"`
	CreatedAt time.Time    `json:"createdAt"`
}

// PurchaseStore persists purchase records.
type PurchaseStore interface {
	// Save stores the purchase, assigning ID and CreatedAt if unset.
	Save(ctx context.Context, p *Purchase) error

	// ListByEmail returns all purchases recorded for an email address,
	// newest first.
	ListByEmail(ctx context.Context, email string) ([]Purchase, error)
}
