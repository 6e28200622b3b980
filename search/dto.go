package search

// FlightSearchRequest is the caller-facing flight search input. Strings and
// zero values mark unset optionals; validation happens when the request is
// converted to domain params.
type FlightSearchRequest struct {
	OriginLocationCode      string
	DestinationLocationCode string
	DepartureDate           string // YYYY-MM-DD
	Adults                  int
	ReturnDate              string
	Children                *int
	Infants                 *int
	TravelClass             string
	IncludedAirlineCodes    string
	ExcludedAirlineCodes    string
	NonStop                 *bool
	CurrencyCode            string
	MaxPrice                *int
	MaxResults              *int
}

// FlightOfferView is the flattened offer handed back to callers
type FlightOfferView struct {
	ID             string  `json:"id"`
	Origin         string  `json:"origin"`
	Destination    string  `json:"destination"`
	DepartureTime  string  `json:"departure_time"`
	ArrivalTime    string  `json:"arrival_time"`
	Duration       string  `json:"duration"`
	Price          float64 `json:"price"`
	Currency       string  `json:"currency"`
	Airline        string  `json:"airline"`
	FlightNumber   string  `json:"flight_number"`
	IsDirect       bool    `json:"is_direct"`
	SeatsAvailable int     `json:"seats_available"`
	TravelClass    string  `json:"travel_class"`
}

// CitySearchRequest is the caller-facing city search input
type CitySearchRequest struct {
	Keyword         string
	CountryCode     string
	MaxResults      *int
	IncludeAirports bool
}

// AirportView is one airport attached to a city result
type AirportView struct {
	IataCode    string           `json:"iata_code"`
	Name        string           `json:"name"`
	Coordinates *CoordinatesView `json:"coordinates,omitempty"`
}

// CoordinatesView is a latitude/longitude pair in a city result
type CoordinatesView struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CityView is the city record handed back to callers
type CityView struct {
	Name        string        `json:"name"`
	IataCode    string        `json:"iata_code"`
	CountryCode string        `json:"country_code"`
	CountryName string        `json:"country_name,omitempty"`
	StateCode   string        `json:"state_code,omitempty"`
	Latitude    *float64      `json:"latitude,omitempty"`
	Longitude   *float64      `json:"longitude,omitempty"`
	Airports    []AirportView `json:"airports"`
}
