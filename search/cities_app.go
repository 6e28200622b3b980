package search

import (
	"context"
	"encoding/json"

	"flightdesk/domain"
)

// Cities is the application service behind the city search operation.
// The gateway hands back the provider payload verbatim; mapping to City
// entities lives here, one layer above it.
type Cities struct {
	gateway domain.CityGateway
}

// NewCities builds the application service
func NewCities(gateway domain.CityGateway) *Cities {
	return &Cities{gateway: gateway}
}

// Search returns the raw city/airport payload for the request
func (c *Cities) Search(ctx context.Context, req CitySearchRequest) (json.RawMessage, error) {
	params, err := toCityParams(req)
	if err != nil {
		return nil, err
	}
	return c.gateway.SearchCities(ctx, params)
}

// SearchRecords runs the same search but maps the payload into typed
// city views with their airports
func (c *Cities) SearchRecords(ctx context.Context, req CitySearchRequest) ([]CityView, error) {
	raw, err := c.Search(ctx, req)
	if err != nil {
		return nil, err
	}

	cities, err := MapCities(raw)
	if err != nil {
		return nil, err
	}

	views := make([]CityView, 0, len(cities))
	for _, city := range cities {
		views = append(views, toCityView(city))
	}
	return views, nil
}

func toCityParams(req CitySearchRequest) (domain.CitySearchParams, error) {
	opts := domain.CitySearchOptions{
		CountryCode: req.CountryCode,
		MaxResults:  req.MaxResults,
	}
	if req.IncludeAirports {
		opts.Include = "AIRPORTS"
	}
	return domain.NewCitySearchParams(req.Keyword, opts)
}

func toCityView(city domain.City) CityView {
	view := CityView{
		Name:        city.Name,
		IataCode:    city.IataCode,
		CountryCode: city.CountryCode,
		CountryName: city.CountryName,
		StateCode:   city.StateCode,
		Airports:    make([]AirportView, 0, len(city.Airports)),
	}
	if city.Coordinates != nil {
		view.Latitude = &city.Coordinates.Latitude
		view.Longitude = &city.Coordinates.Longitude
	}
	for _, airport := range city.Airports {
		av := AirportView{
			IataCode: airport.IataCode,
			Name:     airport.Name,
		}
		if airport.Coordinates != nil {
			av.Coordinates = &CoordinatesView{
				Latitude:  airport.Coordinates.Latitude,
				Longitude: airport.Coordinates.Longitude,
			}
		}
		view.Airports = append(view.Airports, av)
	}
	return view
}
