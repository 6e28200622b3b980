package search

import (
	"encoding/json"

	"flightdesk/domain"
)

// Wire structs for the city reference-data payload. Airports arrive in a
// top-level "included" block keyed by IATA code, linked from each city
// through its relationships.

type cityResponse struct {
	Data     []cityData `json:"data"`
	Included struct {
		Airports map[string]airportData `json:"airports"`
	} `json:"included"`
}

type cityData struct {
	Name          string             `json:"name"`
	IataCode      string             `json:"iataCode"`
	Address       addressData        `json:"address"`
	GeoCode       *geoCodeData       `json:"geoCode"`
	Relationships []relationshipData `json:"relationships"`
}

type airportData struct {
	Name     string       `json:"name"`
	IataCode string       `json:"iataCode"`
	Address  addressData  `json:"address"`
	GeoCode  *geoCodeData `json:"geoCode"`
}

type addressData struct {
	CityName    string `json:"cityName"`
	CountryCode string `json:"countryCode"`
	CountryName string `json:"countryName"`
	StateCode   string `json:"stateCode"`
}

type geoCodeData struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type relationshipData struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

// MapCities reconstructs City entities, each owning the airports the
// provider linked to it. A city without a name or IATA code is a contract
// mismatch and fails the whole mapping.
func MapCities(raw json.RawMessage) ([]domain.City, error) {
	var resp cityResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, domain.NewMappingError("malformed city response: %v", err)
	}

	cities := make([]domain.City, 0, len(resp.Data))
	for _, data := range resp.Data {
		if data.Name == "" {
			return nil, domain.NewMappingError("city record missing name")
		}
		if data.IataCode == "" {
			return nil, domain.NewMappingError("city %q missing iataCode", data.Name)
		}

		coords, err := mapGeoCode(data.GeoCode)
		if err != nil {
			return nil, domain.NewMappingError("city %s has invalid coordinates: %v", data.IataCode, err)
		}

		city := domain.City{
			Name:        data.Name,
			IataCode:    data.IataCode,
			CountryCode: data.Address.CountryCode,
			CountryName: data.Address.CountryName,
			StateCode:   data.Address.StateCode,
			Coordinates: coords,
		}

		for _, rel := range data.Relationships {
			if rel.Type != "Airport" {
				continue
			}
			record, ok := resp.Included.Airports[rel.ID]
			if !ok {
				continue
			}
			airportCoords, err := mapGeoCode(record.GeoCode)
			if err != nil {
				return nil, domain.NewMappingError("airport %s has invalid coordinates: %v", record.IataCode, err)
			}
			city.Airports = append(city.Airports, domain.Airport{
				IataCode:    record.IataCode,
				Name:        record.Name,
				CityName:    record.Address.CityName,
				CountryCode: record.Address.CountryCode,
				Coordinates: airportCoords,
			})
		}

		cities = append(cities, city)
	}
	return cities, nil
}

func mapGeoCode(geo *geoCodeData) (*domain.Coordinates, error) {
	if geo == nil {
		return nil, nil
	}
	coords, err := domain.NewCoordinates(geo.Latitude, geo.Longitude)
	if err != nil {
		return nil, err
	}
	return &coords, nil
}
