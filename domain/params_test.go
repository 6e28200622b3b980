package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCode(t *testing.T, code string) LocationCode {
	t.Helper()
	lc, err := NewLocationCode(code)
	require.NoError(t, err)
	return lc
}

func TestNewFlightSearchParams_Adults(t *testing.T) {
	origin := mustCode(t, "MAD")
	destination := mustCode(t, "JFK")
	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	for _, adults := range []int{1, 5, 9} {
		params, err := NewFlightSearchParams(origin, destination, date, adults, FlightSearchOptions{})
		assert.NoError(t, err, adults)
		assert.Equal(t, adults, params.Adults)
	}

	for _, adults := range []int{0, -1, 10} {
		_, err := NewFlightSearchParams(origin, destination, date, adults, FlightSearchOptions{})
		assert.Error(t, err, adults)
		assert.Equal(t, KindValidation, KindOf(err))
	}
}

func TestNewFlightSearchParams_ChildrenAndInfants(t *testing.T) {
	origin := mustCode(t, "MAD")
	destination := mustCode(t, "JFK")
	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	zero, nine, ten, minus := 0, 9, 10, -1

	_, err := NewFlightSearchParams(origin, destination, date, 1, FlightSearchOptions{Children: &zero, Infants: &nine})
	assert.NoError(t, err)

	_, err = NewFlightSearchParams(origin, destination, date, 1, FlightSearchOptions{Children: &ten})
	assert.Error(t, err)

	_, err = NewFlightSearchParams(origin, destination, date, 1, FlightSearchOptions{Infants: &minus})
	assert.Error(t, err)
}

func TestNewCitySearchParams(t *testing.T) {
	params, err := NewCitySearchParams("Pa", CitySearchOptions{CountryCode: "FR"})
	assert.NoError(t, err)
	assert.Equal(t, "Pa", params.Keyword)
	assert.Equal(t, "FR", params.CountryCode)

	for _, keyword := range []string{"", "P"} {
		_, err := NewCitySearchParams(keyword, CitySearchOptions{})
		assert.Error(t, err, keyword)
		assert.Equal(t, KindValidation, KindOf(err))
	}
}
