package usecase

import (
	"context"
	"time"

	"github.com/xuanthe01656/travelhub/internal/cache"
	"github.com/xuanthe01656/travelhub/internal/domain"
	"github.com/xuanthe01656/travelhub/internal/infrastructure/logger"
)

// HotelSearchUseCase defines the hotel search operation.
type HotelSearchUseCase interface {
	// Search returns hotel offers for the query, served from cache when a
	// fresh entry exists.
	Search(ctx context.Context, q domain.HotelQuery) ([]domain.HotelOffer, error)
}

// hotelSearchUseCase implements HotelSearchUseCase.
type hotelSearchUseCase struct {
	provider domain.HotelProvider
	store    *cache.Store[[]domain.HotelOffer]
	timeout  time.Duration
	log      *logger.Logger
}

// NewHotelSearchUseCase creates a HotelSearchUseCase.
func NewHotelSearchUseCase(provider domain.HotelProvider, store *cache.Store[[]domain.HotelOffer], timeout time.Duration, log *logger.Logger) HotelSearchUseCase {
	if timeout <= 0 {
		timeout = DefaultUpstreamTimeout
	}
	if log == nil {
		log = logger.Nop()
	}

	return &hotelSearchUseCase{
		provider: provider,
		store:    store,
		timeout:  timeout,
		log:      log.WithComponent("hotel-search"),
	}
}

// Search implements HotelSearchUseCase.Search.
func (uc *hotelSearchUseCase) Search(ctx context.Context, q domain.HotelQuery) ([]domain.HotelOffer, error) {
	q.Normalize()
	if err := q.Validate(); err != nil {
		return nil, err
	}

	key := q.CacheKey()
	if offers, ok := uc.store.Get(key); ok {
		uc.log.Debug().Str("key", key).Msg("Cache hit")
		return offers, nil
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	offers, err := uc.provider.SearchOffers(ctx, q)
	if err != nil {
		return nil, err
	}
	if offers == nil {
		offers = []domain.HotelOffer{}
	}

	if len(offers) > 0 {
		uc.store.Set(key, offers)
	}

	uc.log.Info().Str("key", key).Int("results", len(offers)).Msg("Hotel search completed")
	return offers, nil
}

var _ HotelSearchUseCase = (*hotelSearchUseCase)(nil)
