// README: Demo harness; wires config, logger, adapters and the trip engine for one estimate.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"taxifare/internal/config"
	"taxifare/internal/logging"
	"taxifare/internal/maps"
	"taxifare/internal/modules/destinations"
	"taxifare/internal/modules/location"
	"taxifare/internal/modules/tariff"
	"taxifare/internal/modules/trip"
	"taxifare/internal/types"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := logging.New(cfg.Log.Level)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	ctx := context.Background()

	// Fixed-table mode: search the nearest origin's table.
	tables, err := destinations.Load()
	if err != nil {
		logger.Fatal("fare tables", zap.Error(err))
	}

	position := types.Coordinates{Lat: 36.70, Lng: -6.05}
	originID, originKm := location.NearestOrigin(position)
	fmt.Printf("Origen más cercano: %s (%.1f km)\n\n", originID, originKm)

	now := tariff.Resolve(time.Now())
	for _, d := range destinations.Search(tables.ForOrigin(originID), queryArg(), destinations.CategoryAll) {
		fmt.Printf("  %-28s %5.0f km  %7.2f €  (%s)\n", d.Name, d.Km, d.Price(now.ID), now.Label)
	}
	fmt.Println()

	// Free-route mode against the live upstreams.
	routeSvc := maps.NewRouteService(cfg.Routing.BaseURL, cfg.HTTP.Timeout, cfg.HTTP.UserAgent, logger)
	geocodeSvc := maps.NewGeocodeService(cfg.Geocoding.BaseURL, cfg.HTTP.Timeout, cfg.HTTP.UserAgent, logger)
	weatherSvc := maps.NewWeatherService(cfg.Weather.BaseURL, cfg.HTTP.Timeout, cfg.HTTP.UserAgent, logger)
	trafficSvc := maps.NewTrafficService(cfg.Traffic.BaseURL, cfg.HTTP.Timeout, cfg.HTTP.UserAgent, logger)

	engine := trip.NewEngine(trip.Deps{
		Locator:   location.NewCachedLocator(location.StaticLocator{Position: position}, location.DefaultOptions()),
		Router:    routeSvc,
		Geocoder:  geocodeSvc,
		Suggester: geocodeSvc,
		Weather:   weatherSvc,
		Traffic:   trafficSvc,
		Log:       logger,
		Debounce:  cfg.Suggest.Debounce,
		Settle:    cfg.Suggest.Settle,
	})

	engine.SetDestinationText(queryArg(), nil)
	snap, err := engine.Calculate(ctx)
	if err != nil {
		logger.Fatal("calculation rejected", zap.Error(err))
	}
	if snap.State == trip.StateError {
		logger.Fatal("calculation failed", zap.String("message", snap.ErrorMessage))
	}

	fmt.Printf("Desde %s hasta %s\n", snap.OriginLabel, snap.DestinationName)
	fmt.Printf("  %.1f km, %.0f min — %.2f € (%s, %s)\n",
		snap.Fare.DistanceKm, snap.Fare.DurationMin, snap.Fare.Total, snap.Fare.TariffLabel, snap.TariffReason)
	if snap.Weather != nil {
		fmt.Printf("  Tiempo en destino: %d°C %s %s\n", snap.Weather.Temperature, snap.Weather.Condition, snap.Weather.Icon)
	}
	for _, inc := range snap.Incidents {
		fmt.Printf("  Incidencia [%s] %s: %s\n", inc.Severity, inc.Road, inc.Description)
	}
	fmt.Printf("  Navegación: %s\n", maps.NavigationURL(userAgent(), snap.Origin, snap.Destination))
}

func queryArg() string {
	if len(os.Args) > 1 {
		return os.Args[1]
	}
	return "Sevilla"
}

func userAgent() string {
	if ua := os.Getenv("TAXIFARE_DEMO_USER_AGENT"); ua != "" {
		return ua
	}
	return "fare-demo"
}
