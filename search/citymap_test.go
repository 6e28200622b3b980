package search

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flightdesk/domain"
)

const cityPayload = `{
  "data": [
    {
      "type": "location",
      "subType": "city",
      "name": "PARIS",
      "iataCode": "PAR",
      "address": {"countryCode": "FR", "stateCode": "FR-75"},
      "geoCode": {"latitude": 48.85341, "longitude": 2.3488},
      "relationships": [
        {"id": "CDG", "type": "Airport"},
        {"id": "ORY", "type": "Airport"}
      ]
    }
  ],
  "included": {
    "airports": {
      "CDG": {
        "name": "CHARLES DE GAULLE",
        "iataCode": "CDG",
        "address": {"cityName": "PARIS", "countryCode": "FR"},
        "geoCode": {"latitude": 49.01278, "longitude": 2.55}
      },
      "ORY": {
        "name": "ORLY",
        "iataCode": "ORY",
        "address": {"cityName": "PARIS", "countryCode": "FR"}
      }
    }
  }
}`

func TestMapCities(t *testing.T) {
	cities, err := MapCities(json.RawMessage(cityPayload))
	require.NoError(t, err)
	require.Len(t, cities, 1)

	city := cities[0]
	assert.Equal(t, "PARIS", city.Name)
	assert.Equal(t, "PAR", city.IataCode)
	assert.Equal(t, "FR", city.CountryCode)
	assert.Equal(t, "FR-75", city.StateCode)
	require.NotNil(t, city.Coordinates)
	assert.Equal(t, 48.85341, city.Coordinates.Latitude)

	require.Len(t, city.Airports, 2)
	assert.Equal(t, "CDG", city.Airports[0].IataCode)
	require.NotNil(t, city.Airports[0].Coordinates)
	assert.Equal(t, "ORY", city.Airports[1].IataCode)
	// No geo code in the payload means no coordinates, not zeroes
	assert.Nil(t, city.Airports[1].Coordinates)
}

func TestMapCities_ContractMismatch(t *testing.T) {
	cases := map[string]string{
		"not json":         `[`,
		"missing name":     `{"data":[{"iataCode":"PAR"}]}`,
		"missing iataCode": `{"data":[{"name":"PARIS"}]}`,
		"bad coordinates":  `{"data":[{"name":"PARIS","iataCode":"PAR","geoCode":{"latitude":123.0,"longitude":0}}]}`,
	}

	for name, payload := range cases {
		_, err := MapCities(json.RawMessage(payload))
		require.Error(t, err, name)
		assert.Equal(t, domain.KindMapping, domain.KindOf(err), name)
	}
}

type stubCityGateway struct {
	raw json.RawMessage
	err error
}

func (s *stubCityGateway) SearchCities(ctx context.Context, params domain.CitySearchParams) (json.RawMessage, error) {
	return s.raw, s.err
}

func TestCities_SearchRecords(t *testing.T) {
	app := NewCities(&stubCityGateway{raw: json.RawMessage(cityPayload)})

	views, err := app.SearchRecords(context.Background(), CitySearchRequest{
		Keyword:         "Paris",
		IncludeAirports: true,
	})
	require.NoError(t, err)
	require.Len(t, views, 1)

	view := views[0]
	assert.Equal(t, "PARIS", view.Name)
	require.NotNil(t, view.Latitude)
	assert.Equal(t, 48.85341, *view.Latitude)
	require.Len(t, view.Airports, 2)
	assert.Nil(t, view.Airports[1].Coordinates)
}

func TestCities_Search_KeywordValidated(t *testing.T) {
	app := NewCities(&stubCityGateway{raw: json.RawMessage(`{}`)})

	_, err := app.Search(context.Background(), CitySearchRequest{Keyword: "P"})
	require.Error(t, err)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
}
