// Package bootstrap is the dependency-injection root: every component is
// constructed exactly once at process start and handed down by reference.
// There is no lazily built container and no ambient global state.
package bootstrap

import (
	"fmt"

	"flightdesk/amadeus"
	"flightdesk/config"
	"flightdesk/mcpserver"
	"flightdesk/search"
)

// App holds the initialized components of the application
type App struct {
	Config  *config.Config
	Flights *search.Flights
	Cities  *search.Cities
	Server  *mcpserver.Server
}

// Setup validates the configuration and wires the object graph
func Setup(cfg *config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	client := amadeus.NewClient(cfg.Amadeus.APIBase, cfg.Amadeus.APIKey, cfg.Amadeus.APISecret)

	flights := search.NewFlights(search.NewFlightService(amadeus.NewFlightGateway(client)))
	cities := search.NewCities(amadeus.NewCityGateway(client))

	return &App{
		Config:  cfg,
		Flights: flights,
		Cities:  cities,
		Server:  mcpserver.New(cfg, flights, cities),
	}, nil
}
