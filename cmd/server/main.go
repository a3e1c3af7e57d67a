// Package main is the entry point for the travel storefront service.
//
//	@title						TravelHub Storefront API
//	@version					1.0.0
//	@description				A travel storefront backend that searches flights, hotels, and rental cars through an upstream provider, normalizes offers into local pricing, and caches results.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/xuanthe01656/travelhub/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/xuanthe01656/travelhub/docs"

	travelhttp "github.com/xuanthe01656/travelhub/internal/adapter/http"
	"github.com/xuanthe01656/travelhub/internal/adapter/http/middleware"
	"github.com/xuanthe01656/travelhub/internal/adapter/provider/amadeus"
	"github.com/xuanthe01656/travelhub/internal/cache"
	"github.com/xuanthe01656/travelhub/internal/config"
	"github.com/xuanthe01656/travelhub/internal/currency"
	"github.com/xuanthe01656/travelhub/internal/domain"
	"github.com/xuanthe01656/travelhub/internal/infrastructure/logger"
	"github.com/xuanthe01656/travelhub/internal/storage/memory"
	"github.com/xuanthe01656/travelhub/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.MustLoad()

	log := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: "travelhub",
	})

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Msg("Configuration loaded")

	// Upstream provider client and per-domain adapters.
	client := amadeus.NewClient(amadeus.ClientConfig{
		BaseURL:   cfg.Provider.BaseURL,
		APIKey:    cfg.Provider.APIKey,
		APISecret: cfg.Provider.APISecret,
		Timeout:   cfg.Provider.Timeout,
	}, log.WithComponent("provider"))

	flightProvider := amadeus.NewFlightAdapter(client, currency.NewConverter(cfg.Exchange.FlightRate), cfg.Exchange.LocalCurrency)
	hotelProvider := amadeus.NewHotelAdapter(client, cfg.Exchange.LocalCurrency)
	carProvider := amadeus.NewCarAdapter(client, currency.NewConverter(cfg.Exchange.CarRate))

	// One cache store per result type. Flight fares move faster than hotel
	// and car inventory, so they get the shorter TTL.
	flightStore := cache.New[[]domain.FlightOffer](cfg.Cache.FlightTTL, cfg.Cache.SweepInterval)
	cheapStore := cache.New[[]domain.CheapDestination](cfg.Cache.DefaultTTL, cfg.Cache.SweepInterval)
	hotelStore := cache.New[[]domain.HotelOffer](cfg.Cache.DefaultTTL, cfg.Cache.SweepInterval)
	carStore := cache.New[[]domain.CarOffer](cfg.Cache.DefaultTTL, cfg.Cache.SweepInterval)
	defer func() {
		flightStore.Close()
		cheapStore.Close()
		hotelStore.Close()
		carStore.Close()
	}()

	purchases := memory.NewPurchaseStore()

	handler := travelhttp.NewSearchHandler(
		usecase.NewFlightSearchUseCase(flightProvider, flightStore, cfg.Provider.Timeout, log.WithComponent("flight-search")),
		usecase.NewCheapFlightsUseCase(flightProvider, cheapStore, cfg.Search.DefaultOrigin, cfg.Provider.Timeout, log.WithComponent("cheap-flights")),
		usecase.NewHotelSearchUseCase(hotelProvider, hotelStore, cfg.Provider.Timeout, log.WithComponent("hotel-search")),
		usecase.NewCarSearchUseCase(carProvider, carStore, cfg.Provider.Timeout, log.WithComponent("car-search")),
		usecase.NewBookingUseCase(purchases, log.WithComponent("booking")),
	)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.Setup(e, log.Logger)
	travelhttp.RegisterRoutes(e, handler)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	gracefulShutdown(e, log)
}

// gracefulShutdown blocks until an interrupt signal arrives, then drains
// in-flight requests before returning.
func gracefulShutdown(e *echo.Echo, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
