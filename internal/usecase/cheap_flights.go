package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/xuanthe01656/travelhub/internal/cache"
	"github.com/xuanthe01656/travelhub/internal/domain"
	"github.com/xuanthe01656/travelhub/internal/infrastructure/logger"
)

// CheapFlightsRequest carries the inputs for a cheapest-destinations lookup.
// Either an explicit origin or a pair of coordinates may be supplied; with
// neither, the configured default origin is used.
type CheapFlightsRequest struct {
	Origin         string
	Latitude       float64
	Longitude      float64
	HasCoordinates bool
}

// CheapFlightsUseCase defines the discounted-destinations operation.
type CheapFlightsUseCase interface {
	// Cheapest returns discounted destinations from the resolved origin.
	// A failed geo lookup falls back to the default origin instead of
	// failing the request.
	Cheapest(ctx context.Context, req CheapFlightsRequest) ([]domain.CheapDestination, error)
}

// cheapFlightsUseCase implements CheapFlightsUseCase.
type cheapFlightsUseCase struct {
	provider      domain.FlightProvider
	store         *cache.Store[[]domain.CheapDestination]
	defaultOrigin string
	timeout       time.Duration
	log           *logger.Logger
}

// NewCheapFlightsUseCase creates a CheapFlightsUseCase. defaultOrigin is used
// when the request names no origin and geo resolution is absent or fails.
func NewCheapFlightsUseCase(provider domain.FlightProvider, store *cache.Store[[]domain.CheapDestination], defaultOrigin string, timeout time.Duration, log *logger.Logger) CheapFlightsUseCase {
	if timeout <= 0 {
		timeout = DefaultUpstreamTimeout
	}
	if log == nil {
		log = logger.Nop()
	}

	return &cheapFlightsUseCase{
		provider:      provider,
		store:         store,
		defaultOrigin: strings.ToUpper(defaultOrigin),
		timeout:       timeout,
		log:           log.WithComponent("cheap-flights"),
	}
}

// Cheapest implements CheapFlightsUseCase.Cheapest.
func (uc *cheapFlightsUseCase) Cheapest(ctx context.Context, req CheapFlightsRequest) ([]domain.CheapDestination, error) {
	origin, err := uc.resolveOrigin(ctx, req)
	if err != nil {
		return nil, err
	}

	key := "cheap-flights:" + origin
	if dests, ok := uc.store.Get(key); ok {
		uc.log.Debug().Str("key", key).Msg("Cache hit")
		return dests, nil
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	dests, err := uc.provider.CheapestDestinations(ctx, origin)
	if err != nil {
		return nil, err
	}
	if dests == nil {
		dests = []domain.CheapDestination{}
	}

	if len(dests) > 0 {
		uc.store.Set(key, dests)
	}

	uc.log.Info().Str("origin", origin).Int("results", len(dests)).Msg("Cheapest destinations fetched")
	return dests, nil
}

// resolveOrigin picks the search origin: an explicit origin wins, then a geo
// lookup of the supplied coordinates, then the default. Only an explicit but
// malformed origin is a caller error; a geo lookup that fails degrades to the
// default origin.
func (uc *cheapFlightsUseCase) resolveOrigin(ctx context.Context, req CheapFlightsRequest) (string, error) {
	if origin := strings.ToUpper(strings.TrimSpace(req.Origin)); origin != "" {
		if err := domain.ValidateLocationCode(origin); err != nil {
			return "", err
		}
		return origin, nil
	}

	if req.HasCoordinates {
		ctx, cancel := context.WithTimeout(ctx, uc.timeout)
		defer cancel()

		origin, err := uc.provider.NearestAirport(ctx, req.Latitude, req.Longitude)
		if err == nil && origin != "" {
			return strings.ToUpper(origin), nil
		}
		uc.log.Warn().Err(err).
			Float64("latitude", req.Latitude).
			Float64("longitude", req.Longitude).
			Str("fallback", uc.defaultOrigin).
			Msg("Geo lookup failed, using default origin")
	}

	return uc.defaultOrigin, nil
}

var _ CheapFlightsUseCase = (*cheapFlightsUseCase)(nil)
