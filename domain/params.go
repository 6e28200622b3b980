package domain

import "time"

// FlightSearchOptions carries the optional flight search fields. A nil
// pointer or empty string means "not set" and the corresponding query
// parameter is omitted entirely when the request is built.
type FlightSearchOptions struct {
	ReturnDate           *time.Time
	Children             *int
	Infants              *int
	TravelClass          string
	IncludedAirlineCodes string
	ExcludedAirlineCodes string
	NonStop              *bool
	CurrencyCode         string
	MaxPrice             *int
	MaxResults           *int
}

// FlightSearchParams is the validated parameter bundle for a flight search
type FlightSearchParams struct {
	Origin        LocationCode
	Destination   LocationCode
	DepartureDate time.Time
	Adults        int
	FlightSearchOptions
}

// NewFlightSearchParams validates passenger counts and builds the bundle.
// Adults must be 1-9; children and infants, when set, 0-9.
func NewFlightSearchParams(origin, destination LocationCode, departureDate time.Time, adults int, opts FlightSearchOptions) (FlightSearchParams, error) {
	if adults < 1 || adults > 9 {
		return FlightSearchParams{}, NewValidationError("number of adults must be between 1 and 9, got %d", adults)
	}
	if opts.Children != nil && (*opts.Children < 0 || *opts.Children > 9) {
		return FlightSearchParams{}, NewValidationError("number of children must be between 0 and 9, got %d", *opts.Children)
	}
	if opts.Infants != nil && (*opts.Infants < 0 || *opts.Infants > 9) {
		return FlightSearchParams{}, NewValidationError("number of infants must be between 0 and 9, got %d", *opts.Infants)
	}
	return FlightSearchParams{
		Origin:              origin,
		Destination:         destination,
		DepartureDate:       departureDate,
		Adults:              adults,
		FlightSearchOptions: opts,
	}, nil
}

// CitySearchOptions carries the optional city search fields
type CitySearchOptions struct {
	CountryCode string
	MaxResults  *int
	Include     string
}

// CitySearchParams is the validated parameter bundle for a city search
type CitySearchParams struct {
	Keyword string
	CitySearchOptions
}

// NewCitySearchParams validates the keyword and builds the bundle
func NewCitySearchParams(keyword string, opts CitySearchOptions) (CitySearchParams, error) {
	if len(keyword) < 2 {
		return CitySearchParams{}, NewValidationError("keyword must have at least 2 characters")
	}
	return CitySearchParams{Keyword: keyword, CitySearchOptions: opts}, nil
}
