package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"flightdesk/domain"
	"flightdesk/log"
	"flightdesk/reqid"
	"flightdesk/search"
)

func (s *Server) registerTools() {
	s.mcp.AddTool(mcp.NewTool("search_flights",
		mcp.WithDescription("Searches flight offers using the Amadeus API."),
		mcp.WithString("origin_location_code", mcp.Required(), mcp.Description("Origin IATA code, e.g. MAD")),
		mcp.WithString("destination_location_code", mcp.Required(), mcp.Description("Destination IATA code, e.g. JFK")),
		mcp.WithString("departure_date", mcp.Required(), mcp.Description("Departure date, YYYY-MM-DD")),
		mcp.WithNumber("adults", mcp.Description("Number of adult passengers (1-9)"), mcp.DefaultNumber(1)),
		mcp.WithString("return_date", mcp.Description("Return date for round trips, YYYY-MM-DD")),
		mcp.WithNumber("children", mcp.Description("Number of children (0-9)"), mcp.DefaultNumber(0)),
		mcp.WithNumber("infants", mcp.Description("Number of infants (0-9)"), mcp.DefaultNumber(0)),
		mcp.WithString("travel_class", mcp.Description("ECONOMY, PREMIUM_ECONOMY, BUSINESS or FIRST")),
		mcp.WithString("included_airline_codes", mcp.Description("Comma-separated airline codes to include")),
		mcp.WithString("excluded_airline_codes", mcp.Description("Comma-separated airline codes to exclude")),
		mcp.WithBoolean("non_stop", mcp.Description("Only direct flights"), mcp.DefaultBool(false)),
		mcp.WithString("currency_code", mcp.Description("ISO currency code for prices")),
		mcp.WithNumber("max_price", mcp.Description("Maximum price per traveler")),
		mcp.WithNumber("max_results", mcp.Description("Maximum number of offers"), mcp.DefaultNumber(20)),
	), s.handleSearchFlights)

	s.mcp.AddTool(mcp.NewTool("search_cities",
		mcp.WithDescription("Searches city and airport data using the Amadeus API."),
		mcp.WithString("keyword", mcp.Required(), mcp.Description("City name or prefix, at least 2 characters")),
		mcp.WithString("country_code", mcp.Description("ISO country code filter")),
		mcp.WithNumber("max_results", mcp.Description("Maximum number of cities"), mcp.DefaultNumber(10)),
		mcp.WithBoolean("include_airports", mcp.Description("Attach airports to each city"), mcp.DefaultBool(true)),
	), s.handleSearchCities)
}

func (s *Server) handleSearchFlights(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ctx = reqid.With(ctx, reqid.New())

	origin, err := request.RequireString("origin_location_code")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	destination, err := request.RequireString("destination_location_code")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	departureDate, err := request.RequireString("departure_date")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	children := request.GetInt("children", 0)
	infants := request.GetInt("infants", 0)
	nonStop := request.GetBool("non_stop", false)
	maxResults := request.GetInt("max_results", 20)

	req := search.FlightSearchRequest{
		OriginLocationCode:      origin,
		DestinationLocationCode: destination,
		DepartureDate:           departureDate,
		Adults:                  request.GetInt("adults", 1),
		ReturnDate:              request.GetString("return_date", ""),
		Children:                &children,
		Infants:                 &infants,
		TravelClass:             request.GetString("travel_class", ""),
		IncludedAirlineCodes:    request.GetString("included_airline_codes", ""),
		ExcludedAirlineCodes:    request.GetString("excluded_airline_codes", ""),
		NonStop:                 &nonStop,
		CurrencyCode:            request.GetString("currency_code", ""),
		MaxResults:              &maxResults,
	}
	if v, ok := request.GetArguments()["max_price"]; ok {
		if f, ok := v.(float64); ok {
			maxPrice := int(f)
			req.MaxPrice = &maxPrice
		}
	}

	log.Infof(ctx, "search_flights %s-%s on %s", origin, destination, departureDate)

	flights, err := s.flights.Search(ctx, req)
	if err != nil {
		return toolError(ctx, "flight search", err), nil
	}

	return jsonResult(map[string]interface{}{"flights": flights})
}

func (s *Server) handleSearchCities(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ctx = reqid.With(ctx, reqid.New())

	keyword, err := request.RequireString("keyword")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	maxResults := request.GetInt("max_results", 10)
	req := search.CitySearchRequest{
		Keyword:         keyword,
		CountryCode:     request.GetString("country_code", ""),
		MaxResults:      &maxResults,
		IncludeAirports: request.GetBool("include_airports", true),
	}

	log.Infof(ctx, "search_cities %q", keyword)

	raw, err := s.cities.Search(ctx, req)
	if err != nil {
		return toolError(ctx, "city search", err), nil
	}

	return mcp.NewToolResultText(string(raw)), nil
}

// toolError converts any failure into a structured tool error. Invalid
// input logs at warning level, everything else at error level.
func toolError(ctx context.Context, operation string, err error) *mcp.CallToolResult {
	kind := domain.KindOf(err)
	switch kind {
	case domain.KindInvalidParameters, domain.KindValidation:
		log.Warnf(ctx, "invalid parameters for %s: %v", operation, err)
	default:
		log.Errorf(ctx, "%s failed: %v", operation, err)
	}

	payload := map[string]string{"error": err.Error()}
	if kind != 0 {
		payload["kind"] = kind.String()
	}
	encoded, merr := json.Marshal(payload)
	if merr != nil {
		return mcp.NewToolResultError(err.Error())
	}
	return mcp.NewToolResultError(string(encoded))
}

func jsonResult(payload interface{}) (*mcp.CallToolResult, error) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(encoded)), nil
}
