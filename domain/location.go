// Package domain holds the value objects, entities and errors shared by
// the gateways and search services. Value objects validate on construction
// and are immutable once built.
package domain

import "regexp"

var iataCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)

// LocationCode is a 3-letter uppercase IATA airport or city code
type LocationCode struct {
	code string
}

// NewLocationCode validates and wraps an IATA code
func NewLocationCode(code string) (LocationCode, error) {
	if !iataCodePattern.MatchString(code) {
		return LocationCode{}, NewValidationError("invalid IATA code: %q", code)
	}
	return LocationCode{code: code}, nil
}

func (l LocationCode) String() string {
	return l.code
}

// Coordinates is a validated latitude/longitude pair
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// NewCoordinates validates the ranges [-90,90] and [-180,180]
func NewCoordinates(latitude, longitude float64) (Coordinates, error) {
	if latitude < -90 || latitude > 90 {
		return Coordinates{}, NewValidationError("invalid latitude: %v", latitude)
	}
	if longitude < -180 || longitude > 180 {
		return Coordinates{}, NewValidationError("invalid longitude: %v", longitude)
	}
	return Coordinates{Latitude: latitude, Longitude: longitude}, nil
}
