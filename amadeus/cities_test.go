package amadeus

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flightdesk/domain"
)

func TestBuildCityQuery(t *testing.T) {
	params, err := domain.NewCitySearchParams("Paris", domain.CitySearchOptions{})
	require.NoError(t, err)

	query := buildCityQuery(params)
	assert.Equal(t, "Paris", query.Get("keyword"))
	assert.Len(t, query, 1)

	maxResults := 10
	params, err = domain.NewCitySearchParams("Paris", domain.CitySearchOptions{
		CountryCode: "FR",
		MaxResults:  &maxResults,
		Include:     "AIRPORTS",
	})
	require.NoError(t, err)

	query = buildCityQuery(params)
	assert.Equal(t, "FR", query.Get("countryCode"))
	assert.Equal(t, "10", query.Get("max"))
	assert.Equal(t, "AIRPORTS", query.Get("include"))
}

func TestSearchCities_ReturnsRawPayload(t *testing.T) {
	payload := `{"data":[{"name":"PARIS","iataCode":"PAR"}]}`
	p := newMockProvider(func(call int32, w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/reference-data/locations/cities", r.URL.Path)
		assert.Equal(t, "Paris", r.URL.Query().Get("keyword"))
		w.Write([]byte(payload))
	})
	defer p.server.Close()

	g := NewCityGateway(NewClient(p.server.URL, "id", "secret"))

	params, err := domain.NewCitySearchParams("Paris", domain.CitySearchOptions{})
	require.NoError(t, err)

	raw, err := g.SearchCities(context.Background(), params)
	require.NoError(t, err)
	// Passthrough: the provider payload comes back verbatim
	assert.JSONEq(t, payload, string(raw))
}
