package domain

import (
	"fmt"
	"time"
)

// FlightSegment is one non-stop leg within an offer
type FlightSegment struct {
	Departure     LocationCode
	Arrival       LocationCode
	DepartureTime time.Time
	ArrivalTime   time.Time
	CarrierCode   string
	FlightNumber  string
	Aircraft      string // empty when the provider omits it
	Duration      string // provider duration string, e.g. "PT7H25M"
}

// FlightOffer is a priced itinerary option returned by the provider.
// Segments are ordered itinerary-then-segment as received.
type FlightOffer struct {
	ID                       string
	Segments                 []FlightSegment
	Price                    float64
	Currency                 string
	SeatsAvailable           int
	TravelClass              string
	ValidatingAirlineCodes   []string
	InstantTicketingRequired bool
	NonHomogeneous           bool
	OneWay                   bool
	LastTicketingDate        string
}

// TotalDuration spans from the first segment's departure to the last
// segment's arrival, formatted as "7H25M"
func (o FlightOffer) TotalDuration() string {
	if len(o.Segments) == 0 {
		return "0H00M"
	}
	d := o.Segments[len(o.Segments)-1].ArrivalTime.Sub(o.Segments[0].DepartureTime)
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	return fmt.Sprintf("%dH%02dM", hours, minutes)
}

// IsDirect reports whether the offer has exactly one segment
func (o FlightOffer) IsDirect() bool {
	return len(o.Segments) == 1
}
