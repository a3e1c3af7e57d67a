package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/xuanthe01656/travelhub/internal/domain"
	"github.com/xuanthe01656/travelhub/internal/infrastructure/logger"
)

// validPurchaseKinds defines the accepted purchase kinds.
var validPurchaseKinds = map[domain.PurchaseKind]bool{
	domain.PurchaseFlight: true,
	domain.PurchaseHotel:  true,
	domain.PurchaseCar:    true,
}

// BookingUseCase records completed purchases and lists purchase history.
type BookingUseCase interface {
	// Record validates and stores a purchase, returning it with its
	// assigned ID and timestamp.
	Record(ctx context.Context, p domain.Purchase) (domain.Purchase, error)

	// History returns the purchases recorded for an email, newest first.
	History(ctx context.Context, email string) ([]domain.Purchase, error)
}

// bookingUseCase implements BookingUseCase.
type bookingUseCase struct {
	purchases domain.PurchaseStore
	log       *logger.Logger
}

// NewBookingUseCase creates a BookingUseCase backed by the given store.
func NewBookingUseCase(purchases domain.PurchaseStore, log *logger.Logger) BookingUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &bookingUseCase{purchases: purchases, log: log.WithComponent("booking")}
}

// Record implements BookingUseCase.Record.
func (uc *bookingUseCase) Record(ctx context.Context, p domain.Purchase) (domain.Purchase, error) {
	p.Email = strings.ToLower(strings.TrimSpace(p.Email))
	if p.Email == "" || !strings.Contains(p.Email, "@") {
		return domain.Purchase{}, fmt.Errorf("%w: a valid email is required", domain.ErrInvalidRequest)
	}
	if !validPurchaseKinds[p.Kind] {
		return domain.Purchase{}, fmt.Errorf("%w: kind must be flight, hotel, or car", domain.ErrInvalidRequest)
	}
	if p.Reference == "" {
		return domain.Purchase{}, fmt.Errorf("%w: reference is required", domain.ErrInvalidRequest)
	}
	if p.Amount <= 0 {
		return domain.Purchase{}, fmt.Errorf("%w: amount must be positive", domain.ErrInvalidRequest)
	}

	if err := uc.purchases.Save(ctx, &p); err != nil {
		return domain.Purchase{}, err
	}

	uc.log.Info().Str("id", p.ID).Str("kind", string(p.Kind)).Msg("Purchase recorded")
	return p, nil
}

// History implements BookingUseCase.History.
func (uc *bookingUseCase) History(ctx context.Context, email string) ([]domain.Purchase, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrInvalidRequest)
	}
	return uc.purchases.ListByEmail(ctx, email)
}

var _ BookingUseCase = (*bookingUseCase)(nil)
