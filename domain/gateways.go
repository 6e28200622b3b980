package domain

import (
	"context"
	"encoding/json"
)

// FlightGateway searches flight offers against the travel-data provider
// and reconstructs them as entities.
type FlightGateway interface {
	SearchFlights(ctx context.Context, params FlightSearchParams) ([]FlightOffer, error)
}

// CityGateway searches city and airport reference data. The gateway returns
// the provider payload verbatim; mapping to City entities is a separate step
// one layer up. The asymmetry with flights is deliberate: the raw payload is
// part of the city-search contract with callers.
type CityGateway interface {
	SearchCities(ctx context.Context, params CitySearchParams) (json.RawMessage, error)
}
