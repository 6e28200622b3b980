package domain

// Airport is one airport record attached to a city
type Airport struct {
	IataCode    string
	Name        string
	CityName    string
	CountryCode string
	Coordinates *Coordinates // nil when the provider omits the geo code
}

// City is a city record with the airports the provider included.
// A city exclusively owns its airport list; both are built together
// from one response and discarded together.
type City struct {
	Name        string
	IataCode    string
	CountryCode string
	CountryName string
	StateCode   string
	Coordinates *Coordinates
	Airports    []Airport
}
