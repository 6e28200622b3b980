package search

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flightdesk/domain"
)

type stubFlightGateway struct {
	offers []domain.FlightOffer
	err    error
	params domain.FlightSearchParams
}

func (s *stubFlightGateway) SearchFlights(ctx context.Context, params domain.FlightSearchParams) ([]domain.FlightOffer, error) {
	s.params = params
	return s.offers, s.err
}

func offerWith(t *testing.T, id string, segments int, price float64) domain.FlightOffer {
	t.Helper()
	depart := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	code := func(c string) domain.LocationCode {
		lc, err := domain.NewLocationCode(c)
		require.NoError(t, err)
		return lc
	}

	offer := domain.FlightOffer{ID: id, Price: price, Currency: "EUR"}
	for i := 0; i < segments; i++ {
		offer.Segments = append(offer.Segments, domain.FlightSegment{
			Departure:     code("MAD"),
			Arrival:       code("JFK"),
			DepartureTime: depart.Add(time.Duration(i) * 3 * time.Hour),
			ArrivalTime:   depart.Add(time.Duration(i)*3*time.Hour + 2*time.Hour),
			CarrierCode:   "IB",
			FlightNumber:  "6251",
		})
	}
	return offer
}

func TestSearchBestFlights_DirectFirstThenPrice(t *testing.T) {
	a := offerWith(t, "A", 2, 500)
	b := offerWith(t, "B", 1, 800)
	c := offerWith(t, "C", 1, 600)

	gateway := &stubFlightGateway{offers: []domain.FlightOffer{a, b, c}}
	service := NewFlightService(gateway)

	params := mustParams(t)
	ranked, err := service.SearchBestFlights(context.Background(), params)
	require.NoError(t, err)

	ids := []string{ranked[0].ID, ranked[1].ID, ranked[2].ID}
	assert.Equal(t, []string{"C", "B", "A"}, ids)
}

func TestRankOffers_StableOnTies(t *testing.T) {
	// Equal (is-direct, price) pairs keep provider order
	offers := []domain.FlightOffer{
		offerWith(t, "X", 1, 600),
		offerWith(t, "Y", 1, 600),
		offerWith(t, "Z", 2, 600),
	}

	ranked := rankOffers(offers)
	assert.Equal(t, "X", ranked[0].ID)
	assert.Equal(t, "Y", ranked[1].ID)
	assert.Equal(t, "Z", ranked[2].ID)

	// Idempotence: ranking an already-ranked sequence changes nothing
	again := rankOffers(ranked)
	assert.Equal(t, ranked, again)

	// Input slice is not mutated
	assert.Equal(t, "X", offers[0].ID)
}

func mustParams(t *testing.T) domain.FlightSearchParams {
	t.Helper()
	origin, err := domain.NewLocationCode("MAD")
	require.NoError(t, err)
	destination, err := domain.NewLocationCode("JFK")
	require.NoError(t, err)
	params, err := domain.NewFlightSearchParams(origin, destination,
		time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), 1, domain.FlightSearchOptions{})
	require.NoError(t, err)
	return params
}
