package mcpserver

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/mark3labs/mcp-go/mcp"

	"flightdesk/log"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var promptTemplates = template.Must(template.New("prompts").Funcs(template.FuncMap{
	"join": strings.Join,
}).ParseFS(templateFS, "templates/*.tmpl"))

func (s *Server) registerPrompts() {
	s.mcp.AddPrompt(mcp.NewPrompt("vacation_prompt",
		mcp.WithPromptDescription("Guides the vacation flight search process"),
		mcp.WithArgument("destination", mcp.ArgumentDescription("Destination city"), mcp.RequiredArgument()),
		mcp.WithArgument("origin", mcp.ArgumentDescription("Origin city")),
		mcp.WithArgument("duration", mcp.ArgumentDescription("Trip duration in days")),
		mcp.WithArgument("vacation_month", mcp.ArgumentDescription("Preferred month of travel")),
		mcp.WithArgument("budget", mcp.ArgumentDescription("Total budget")),
		mcp.WithArgument("interests", mcp.ArgumentDescription("Comma-separated interests")),
	), s.handleVacationPrompt)

	s.mcp.AddPrompt(mcp.NewPrompt("flight_search_prompt",
		mcp.WithPromptDescription("Guides a specific flight search"),
		mcp.WithArgument("origin", mcp.ArgumentDescription("Origin IATA code"), mcp.RequiredArgument()),
		mcp.WithArgument("destination", mcp.ArgumentDescription("Destination IATA code"), mcp.RequiredArgument()),
		mcp.WithArgument("departure_date", mcp.ArgumentDescription("Departure date, YYYY-MM-DD"), mcp.RequiredArgument()),
		mcp.WithArgument("return_date", mcp.ArgumentDescription("Return date, YYYY-MM-DD")),
		mcp.WithArgument("adults", mcp.ArgumentDescription("Number of adults")),
		mcp.WithArgument("travel_class", mcp.ArgumentDescription("Cabin class")),
		mcp.WithArgument("max_price", mcp.ArgumentDescription("Maximum price")),
		mcp.WithArgument("non_stop", mcp.ArgumentDescription("Only direct flights")),
	), s.handleFlightSearchPrompt)
}

func (s *Server) handleVacationPrompt(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	args := request.Params.Arguments

	data := map[string]interface{}{
		"Destination":   args["destination"],
		"Origin":        args["origin"],
		"Duration":      args["duration"],
		"VacationMonth": args["vacation_month"],
		"Budget":        args["budget"],
		"Interests":     splitInterests(args["interests"]),
	}

	text, err := renderPrompt("vacation_prompt.tmpl", data)
	if err != nil {
		log.Errorf(ctx, "error rendering vacation template: %v", err)
		// Fallback to a basic prompt when rendering fails
		text = fmt.Sprintf(
			"Help the user find the best flight options from %s to %s. "+
				"Provide flight suggestions, best travel times and money-saving tips.",
			orDefault(args["origin"], "their location"), args["destination"])
	}

	return promptResult("Vacation flight search guidance", text), nil
}

func (s *Server) handleFlightSearchPrompt(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	args := request.Params.Arguments

	data := map[string]interface{}{
		"Origin":        args["origin"],
		"Destination":   args["destination"],
		"DepartureDate": args["departure_date"],
		"ReturnDate":    args["return_date"],
		"Adults":        orDefault(args["adults"], "1"),
		"TravelClass":   args["travel_class"],
		"MaxPrice":      args["max_price"],
		"NonStop":       args["non_stop"],
	}

	text, err := renderPrompt("flight_search_prompt.tmpl", data)
	if err != nil {
		log.Errorf(ctx, "error rendering flight search template: %v", err)
		text = fmt.Sprintf(
			"Search flights from %s to %s departing on %s for %s adult(s). "+
				"Use the search tools to find the best options.",
			args["origin"], args["destination"], args["departure_date"], orDefault(args["adults"], "1"))
	}

	return promptResult("Flight search guidance", text), nil
}

func renderPrompt(name string, data map[string]interface{}) (string, error) {
	var buf bytes.Buffer
	if err := promptTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func promptResult(description, text string) *mcp.GetPromptResult {
	return mcp.NewGetPromptResult(description, []mcp.PromptMessage{
		mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(text)),
	})
}

func splitInterests(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
