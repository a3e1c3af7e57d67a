package usecase

import (
	"context"
	"time"

	"github.com/xuanthe01656/travelhub/internal/cache"
	"github.com/xuanthe01656/travelhub/internal/domain"
	"github.com/xuanthe01656/travelhub/internal/infrastructure/logger"
)

// CarSearchUseCase defines the car-rental search operation.
type CarSearchUseCase interface {
	// Search returns car-rental offers for the query. Upstream failures of
	// any kind, including unsupported rental markets, yield an empty list
	// rather than an error; only input validation can fail the call.
	Search(ctx context.Context, q domain.CarQuery) ([]domain.CarOffer, error)
}

// carSearchUseCase implements CarSearchUseCase.
type carSearchUseCase struct {
	provider domain.CarProvider
	store    *cache.Store[[]domain.CarOffer]
	timeout  time.Duration
	log      *logger.Logger
}

// NewCarSearchUseCase creates a CarSearchUseCase.
func NewCarSearchUseCase(provider domain.CarProvider, store *cache.Store[[]domain.CarOffer], timeout time.Duration, log *logger.Logger) CarSearchUseCase {
	if timeout <= 0 {
		timeout = DefaultUpstreamTimeout
	}
	if log == nil {
		log = logger.Nop()
	}

	return &carSearchUseCase{
		provider: provider,
		store:    store,
		timeout:  timeout,
		log:      log.WithComponent("car-search"),
	}
}

// Search implements CarSearchUseCase.Search.
func (uc *carSearchUseCase) Search(ctx context.Context, q domain.CarQuery) ([]domain.CarOffer, error) {
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
		// Car rental is an optional add-on for the storefront; a failed
		// lookup degrades to "nothing available" instead of an error page.
		uc.log.Warn().Err(err).Str("key", key).Msg("Car search failed, returning empty result")
		return []domain.CarOffer{}, nil
	}
	if offers == nil {
		offers = []domain.CarOffer{}
	}

	if len(offers) > 0 {
		uc.store.Set(key, offers)
	}

	uc.log.Info().Str("key", key).Int("results", len(offers)).Msg("Car search completed")
	return offers, nil
}

var _ CarSearchUseCase = (*carSearchUseCase)(nil)
