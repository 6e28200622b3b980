package amadeus

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"time"

	"flightdesk/domain"
	"flightdesk/log"
)

// FlightGateway implements domain.FlightGateway against the Amadeus
// flight-offers search endpoint.
type FlightGateway struct {
	client *Client
}

// NewFlightGateway wraps a client
func NewFlightGateway(client *Client) *FlightGateway {
	return &FlightGateway{client: client}
}

// Wire structs for the flight-offers payload, trimmed to the fields the
// mapping reads.

type flightOffersResponse struct {
	Data []offerData `json:"data"`
}

type offerData struct {
	ID                       string            `json:"id"`
	InstantTicketingRequired bool              `json:"instantTicketingRequired"`
	NonHomogeneous           bool              `json:"nonHomogeneous"`
	OneWay                   bool              `json:"oneWay"`
	LastTicketingDate        string            `json:"lastTicketingDate"`
	NumberOfBookableSeats    int               `json:"numberOfBookableSeats"`
	Itineraries              []itineraryData   `json:"itineraries"`
	Price                    priceData         `json:"price"`
	ValidatingAirlineCodes   []string          `json:"validatingAirlineCodes"`
	TravelerPricings         []travelerPricing `json:"travelerPricings"`
}

type itineraryData struct {
	Duration string        `json:"duration"`
	Segments []segmentData `json:"segments"`
}

type segmentData struct {
	Departure   endpointData `json:"departure"`
	Arrival     endpointData `json:"arrival"`
	CarrierCode string       `json:"carrierCode"`
	Number      string       `json:"number"`
	Aircraft    struct {
		Code string `json:"code"`
	} `json:"aircraft"`
	Duration string `json:"duration"`
}

type endpointData struct {
	IataCode string `json:"iataCode"`
	At       string `json:"at"`
}

type priceData struct {
	Currency string `json:"currency"`
	Total    string `json:"total"`
}

type travelerPricing struct {
	FareDetailsBySegment []fareDetails `json:"fareDetailsBySegment"`
}

type fareDetails struct {
	Class string `json:"class"`
}

// SearchFlights queries flight offers and maps them to entities
func (g *FlightGateway) SearchFlights(ctx context.Context, params domain.FlightSearchParams) ([]domain.FlightOffer, error) {
	query := buildFlightQuery(params)

	body, err := g.client.Get(ctx, "/v2/shopping/flight-offers", query)
	if err != nil {
		return nil, err
	}

	var resp flightOffersResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, domain.NewMappingError("malformed flight offers response: %v", err)
	}

	offers := make([]domain.FlightOffer, 0, len(resp.Data))
	for _, data := range resp.Data {
		offer, err := mapOffer(data)
		if err != nil {
			return nil, err
		}
		offers = append(offers, offer)
	}

	log.Debugf(ctx, "mapped %d flight offers", len(offers))
	return offers, nil
}

// buildFlightQuery flattens the params into provider query parameters.
// Required fields are always present; an unset optional field means the
// key is omitted from the query entirely.
func buildFlightQuery(params domain.FlightSearchParams) url.Values {
	query := url.Values{}
	query.Set("originLocationCode", params.Origin.String())
	query.Set("destinationLocationCode", params.Destination.String())
	query.Set("departureDate", params.DepartureDate.Format("2006-01-02"))
	query.Set("adults", strconv.Itoa(params.Adults))

	if params.ReturnDate != nil {
		query.Set("returnDate", params.ReturnDate.Format("2006-01-02"))
	}
	if params.Children != nil {
		query.Set("children", strconv.Itoa(*params.Children))
	}
	if params.Infants != nil {
		query.Set("infants", strconv.Itoa(*params.Infants))
	}
	if params.TravelClass != "" {
		query.Set("travelClass", params.TravelClass)
	}
	if params.IncludedAirlineCodes != "" {
		query.Set("includedAirlineCodes", params.IncludedAirlineCodes)
	}
	if params.ExcludedAirlineCodes != "" {
		query.Set("excludedAirlineCodes", params.ExcludedAirlineCodes)
	}
	if params.NonStop != nil {
		query.Set("nonStop", strconv.FormatBool(*params.NonStop))
	}
	if params.CurrencyCode != "" {
		query.Set("currencyCode", params.CurrencyCode)
	}
	if params.MaxPrice != nil {
		query.Set("maxPrice", strconv.Itoa(*params.MaxPrice))
	}
	if params.MaxResults != nil {
		query.Set("max", strconv.Itoa(*params.MaxResults))
	}
	return query
}

// mapOffer reconstructs one FlightOffer. Itineraries are flattened into a
// single segment sequence in itinerary-then-segment order. A missing or
// malformed required field is a mapping error, never a silent default.
func mapOffer(data offerData) (domain.FlightOffer, error) {
	if data.ID == "" {
		return domain.FlightOffer{}, domain.NewMappingError("flight offer missing id")
	}

	var segments []domain.FlightSegment
	for _, itinerary := range data.Itineraries {
		for _, seg := range itinerary.Segments {
			segment, err := mapSegment(data.ID, seg)
			if err != nil {
				return domain.FlightOffer{}, err
			}
			segments = append(segments, segment)
		}
	}

	if data.Price.Total == "" {
		return domain.FlightOffer{}, domain.NewMappingError("offer %s missing price.total", data.ID)
	}
	price, err := strconv.ParseFloat(data.Price.Total, 64)
	if err != nil {
		return domain.FlightOffer{}, domain.NewMappingError("offer %s has malformed price.total %q", data.ID, data.Price.Total)
	}
	if data.Price.Currency == "" {
		return domain.FlightOffer{}, domain.NewMappingError("offer %s missing price.currency", data.ID)
	}

	return domain.FlightOffer{
		ID:                       data.ID,
		Segments:                 segments,
		Price:                    price,
		Currency:                 data.Price.Currency,
		SeatsAvailable:           data.NumberOfBookableSeats,
		TravelClass:              travelClassOf(data),
		ValidatingAirlineCodes:   data.ValidatingAirlineCodes,
		InstantTicketingRequired: data.InstantTicketingRequired,
		NonHomogeneous:           data.NonHomogeneous,
		OneWay:                   data.OneWay,
		LastTicketingDate:        data.LastTicketingDate,
	}, nil
}

func mapSegment(offerID string, seg segmentData) (domain.FlightSegment, error) {
	departure, err := domain.NewLocationCode(seg.Departure.IataCode)
	if err != nil {
		return domain.FlightSegment{}, domain.NewMappingError("offer %s segment has invalid departure code %q", offerID, seg.Departure.IataCode)
	}
	arrival, err := domain.NewLocationCode(seg.Arrival.IataCode)
	if err != nil {
		return domain.FlightSegment{}, domain.NewMappingError("offer %s segment has invalid arrival code %q", offerID, seg.Arrival.IataCode)
	}
	departureTime, err := parseTimestamp(seg.Departure.At)
	if err != nil {
		return domain.FlightSegment{}, domain.NewMappingError("offer %s segment has malformed departure time %q", offerID, seg.Departure.At)
	}
	arrivalTime, err := parseTimestamp(seg.Arrival.At)
	if err != nil {
		return domain.FlightSegment{}, domain.NewMappingError("offer %s segment has malformed arrival time %q", offerID, seg.Arrival.At)
	}
	if seg.CarrierCode == "" {
		return domain.FlightSegment{}, domain.NewMappingError("offer %s segment missing carrierCode", offerID)
	}
	if seg.Number == "" {
		return domain.FlightSegment{}, domain.NewMappingError("offer %s segment missing flight number", offerID)
	}

	return domain.FlightSegment{
		Departure:     departure,
		Arrival:       arrival,
		DepartureTime: departureTime,
		ArrivalTime:   arrivalTime,
		CarrierCode:   seg.CarrierCode,
		FlightNumber:  seg.Number,
		Aircraft:      seg.Aircraft.Code,
		Duration:      seg.Duration,
	}, nil
}

// parseTimestamp accepts the provider's local timestamps with or without
// an offset ("2024-06-01T10:30:00" or a "Z"/offset suffix)
func parseTimestamp(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02T15:04:05", value)
}

// travelClassOf reads the first traveler pricing's first fare detail,
// defaulting to empty when absent
func travelClassOf(data offerData) string {
	if len(data.TravelerPricings) == 0 {
		return ""
	}
	details := data.TravelerPricings[0].FareDetailsBySegment
	if len(details) == 0 {
		return ""
	}
	return details[0].Class
}
