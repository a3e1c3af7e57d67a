// Package usecase contains the search orchestrators. Each use case runs the
// same pipeline: validate the query, consult the domain's cache, call the
// upstream provider on a miss, store non-empty results, respond. The
// per-domain differences are in how upstream failures are surfaced.
package usecase

import (
	"context"
	"time"

	"github.com/xuanthe01656/travelhub/internal/cache"
	"github.com/xuanthe01656/travelhub/internal/domain"
	"github.com/xuanthe01656/travelhub/internal/infrastructure/logger"
)

// DefaultUpstreamTimeout bounds one upstream search when no timeout is
// configured.
const DefaultUpstreamTimeout = 10 * time.Second

// FlightSearchUseCase defines the flight search operation.
type FlightSearchUseCase interface {
	// Search returns flight offers for the query, served from cache when a
	// fresh entry exists. Validation failures wrap domain.ErrInvalidRequest;
	// upstream rejections wrap domain.ErrUpstreamValidation; everything else
	// is a system-side failure.
	Search(ctx context.Context, q domain.FlightQuery) ([]domain.FlightOffer, error)
}

// flightSearchUseCase implements FlightSearchUseCase.
type flightSearchUseCase struct {
	provider domain.FlightProvider
	store    *cache.Store[[]domain.FlightOffer]
	timeout  time.Duration
	log      *logger.Logger
}

// NewFlightSearchUseCase creates a FlightSearchUseCase. The store's default
// TTL governs how long results stay fresh. A non-positive timeout uses
// DefaultUpstreamTimeout.
func NewFlightSearchUseCase(provider domain.FlightProvider, store *cache.Store[[]domain.FlightOffer], timeout time.Duration, log *logger.Logger) FlightSearchUseCase {
	if timeout <= 0 {
		timeout = DefaultUpstreamTimeout
	}
	if log == nil {
		log = logger.Nop()
	}

	return &flightSearchUseCase{
		provider: provider,
		store:    store,
		timeout:  timeout,
		log:      log.WithComponent("flight-search"),
	}
}

// Search implements FlightSearchUseCase.Search.
func (uc *flightSearchUseCase) Search(ctx context.Context, q domain.FlightQuery) ([]domain.FlightOffer, error) {
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
		offers = []domain.FlightOffer{}
	}

	// An empty result is a valid answer but a poor thing to pin for the
	// TTL window; the next identical search goes upstream again.
	if len(offers) > 0 {
		uc.store.Set(key, offers)
	}

	uc.log.Info().Str("key", key).Int("results", len(offers)).Msg("Flight search completed")
	return offers, nil
}

var _ FlightSearchUseCase = (*flightSearchUseCase)(nil)
