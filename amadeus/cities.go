package amadeus

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"

	"flightdesk/domain"
)

// CityGateway implements domain.CityGateway against the Amadeus city
// reference-data endpoint. It returns the provider payload verbatim;
// entity mapping happens one layer up (see search.MapCities).
type CityGateway struct {
	client *Client
}

// NewCityGateway wraps a client
func NewCityGateway(client *Client) *CityGateway {
	return &CityGateway{client: client}
}

// SearchCities queries cities by keyword and returns the raw payload
func (g *CityGateway) SearchCities(ctx context.Context, params domain.CitySearchParams) (json.RawMessage, error) {
	return g.client.Get(ctx, "/v1/reference-data/locations/cities", buildCityQuery(params))
}

func buildCityQuery(params domain.CitySearchParams) url.Values {
	query := url.Values{}
	query.Set("keyword", params.Keyword)

	if params.CountryCode != "" {
		query.Set("countryCode", params.CountryCode)
	}
	if params.MaxResults != nil {
		query.Set("max", strconv.Itoa(*params.MaxResults))
	}
	if params.Include != "" {
		query.Set("include", params.Include)
	}
	return query
}
