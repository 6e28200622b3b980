package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func segmentBetween(t *testing.T, from, to string, departure, arrival time.Time) FlightSegment {
	t.Helper()
	return FlightSegment{
		Departure:     mustCode(t, from),
		Arrival:       mustCode(t, to),
		DepartureTime: departure,
		ArrivalTime:   arrival,
		CarrierCode:   "IB",
		FlightNumber:  "6251",
	}
}

func TestFlightOffer_TotalDuration(t *testing.T) {
	depart := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	offer := FlightOffer{Segments: []FlightSegment{
		segmentBetween(t, "MAD", "LHR", depart, depart.Add(2*time.Hour+30*time.Minute)),
		segmentBetween(t, "LHR", "JFK", depart.Add(4*time.Hour), depart.Add(11*time.Hour+5*time.Minute)),
	}}
	assert.Equal(t, "11H05M", offer.TotalDuration())

	empty := FlightOffer{}
	assert.Equal(t, "0H00M", empty.TotalDuration())
}

func TestFlightOffer_IsDirect(t *testing.T) {
	depart := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	direct := FlightOffer{Segments: []FlightSegment{
		segmentBetween(t, "MAD", "JFK", depart, depart.Add(8*time.Hour)),
	}}
	assert.True(t, direct.IsDirect())

	connecting := FlightOffer{Segments: []FlightSegment{
		segmentBetween(t, "MAD", "LHR", depart, depart.Add(2*time.Hour)),
		segmentBetween(t, "LHR", "JFK", depart.Add(4*time.Hour), depart.Add(11*time.Hour)),
	}}
	assert.False(t, connecting.IsDirect())
	assert.False(t, FlightOffer{}.IsDirect())
}

func TestErrorKinds(t *testing.T) {
	apiErr := NewAPIError(404, "API error")
	assert.Equal(t, KindAPI, KindOf(apiErr))
	assert.Contains(t, apiErr.Error(), "404")

	cause := errors.New("connection refused")
	unavailable := NewServiceUnavailable("service temporarily unavailable", cause)
	assert.Equal(t, KindServiceUnavailable, KindOf(unavailable))
	assert.ErrorIs(t, unavailable, cause)

	assert.Equal(t, ErrorKind(0), KindOf(errors.New("plain")))
}
