package search

import (
	"context"
	"time"

	"flightdesk/domain"
)

// Flights is the application service behind the flight search operation
type Flights struct {
	service *FlightService
}

// NewFlights builds the application service
func NewFlights(service *FlightService) *Flights {
	return &Flights{service: service}
}

// Search converts the request into validated domain params, runs the
// ranked search and returns caller DTOs. Validation errors propagate
// directly from value object construction.
func (f *Flights) Search(ctx context.Context, req FlightSearchRequest) ([]FlightOfferView, error) {
	params, err := toSearchParams(req)
	if err != nil {
		return nil, err
	}

	offers, err := f.service.SearchBestFlights(ctx, params)
	if err != nil {
		return nil, err
	}

	views := make([]FlightOfferView, 0, len(offers))
	for _, offer := range offers {
		views = append(views, toOfferView(offer))
	}
	return views, nil
}

func toSearchParams(req FlightSearchRequest) (domain.FlightSearchParams, error) {
	origin, err := domain.NewLocationCode(req.OriginLocationCode)
	if err != nil {
		return domain.FlightSearchParams{}, err
	}
	destination, err := domain.NewLocationCode(req.DestinationLocationCode)
	if err != nil {
		return domain.FlightSearchParams{}, err
	}
	departureDate, err := parseDate(req.DepartureDate)
	if err != nil {
		return domain.FlightSearchParams{}, domain.NewValidationError("invalid departure date %q", req.DepartureDate)
	}

	opts := domain.FlightSearchOptions{
		Children:             req.Children,
		Infants:              req.Infants,
		TravelClass:          req.TravelClass,
		IncludedAirlineCodes: req.IncludedAirlineCodes,
		ExcludedAirlineCodes: req.ExcludedAirlineCodes,
		NonStop:              req.NonStop,
		CurrencyCode:         req.CurrencyCode,
		MaxPrice:             req.MaxPrice,
		MaxResults:           req.MaxResults,
	}
	if req.ReturnDate != "" {
		returnDate, err := parseDate(req.ReturnDate)
		if err != nil {
			return domain.FlightSearchParams{}, domain.NewValidationError("invalid return date %q", req.ReturnDate)
		}
		opts.ReturnDate = &returnDate
	}

	return domain.NewFlightSearchParams(origin, destination, departureDate, req.Adults, opts)
}

func parseDate(value string) (time.Time, error) {
	return time.Parse("2006-01-02", value)
}

func toOfferView(offer domain.FlightOffer) FlightOfferView {
	view := FlightOfferView{
		ID:             offer.ID,
		Duration:       offer.TotalDuration(),
		Price:          offer.Price,
		Currency:       offer.Currency,
		IsDirect:       offer.IsDirect(),
		SeatsAvailable: offer.SeatsAvailable,
		TravelClass:    offer.TravelClass,
	}
	if len(offer.Segments) > 0 {
		first := offer.Segments[0]
		last := offer.Segments[len(offer.Segments)-1]
		view.Origin = first.Departure.String()
		view.Destination = last.Arrival.String()
		view.DepartureTime = first.DepartureTime.Format(time.RFC3339)
		view.ArrivalTime = last.ArrivalTime.Format(time.RFC3339)
		view.Airline = first.CarrierCode
		view.FlightNumber = first.FlightNumber
	}
	return view
}
