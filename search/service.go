// Package search holds the ranking policy over flight offers and the
// application services that translate caller DTOs to domain calls.
package search

import (
	"context"
	"sort"

	"flightdesk/domain"
	"flightdesk/log"
)

// FlightService applies the best-flight ranking over retrieved offers
type FlightService struct {
	gateway domain.FlightGateway
}

// NewFlightService builds the domain service
func NewFlightService(gateway domain.FlightGateway) *FlightService {
	return &FlightService{gateway: gateway}
}

// SearchBestFlights retrieves offers and ranks them: direct flights before
// connecting ones, ascending price within each group
func (s *FlightService) SearchBestFlights(ctx context.Context, params domain.FlightSearchParams) ([]domain.FlightOffer, error) {
	offers, err := s.gateway.SearchFlights(ctx, params)
	if err != nil {
		return nil, err
	}

	log.Infof(ctx, "ranking %d offers for %s-%s", len(offers), params.Origin, params.Destination)
	return rankOffers(offers), nil
}

// rankOffers sorts a copy of the offers. Stable sort so equal
// (is-direct, price) pairs keep the provider order.
func rankOffers(offers []domain.FlightOffer) []domain.FlightOffer {
	ranked := make([]domain.FlightOffer, len(offers))
	copy(ranked, offers)

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].IsDirect() != ranked[j].IsDirect() {
			return ranked[i].IsDirect()
		}
		return ranked[i].Price < ranked[j].Price
	})
	return ranked
}
