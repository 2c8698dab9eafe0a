package fetcher

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mfaj-cod/AstroKnowMe/internal/model"
)

func TestFlattenNEO(t *testing.T) {
	got := FlattenNEO([]byte(`{"element_count":2,"near_earth_objects":{"2024-01-01":[{"name":"a"},{"name":"b"}]}}`))

	require.NotNil(t, got.Date)
	assert.Equal(t, "2024-01-01", *got.Date)
	assert.Equal(t, model.List{
		map[string]any{"name": "a"},
		map[string]any{"name": "b"},
	}, got.Items)
}

func TestFlattenNEOEmpty(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty nested object", body: `{"near_earth_objects":{}}`},
		{name: "missing nested object", body: `{"element_count":0}`},
		{name: "empty feed", body: `{}`},
		{name: "no body", body: ``},
		{name: "nested list", body: `{"near_earth_objects":[]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FlattenNEO([]byte(tt.body))
			assert.Nil(t, got.Date)
			assert.Equal(t, model.List{}, got.Items)
		})
	}
}

func TestFlattenNEOUsesDocumentOrder(t *testing.T) {
	// Lexical and Go map order would both pick 2024-01-01.
	got := FlattenNEO([]byte(`{"near_earth_objects":{"2024-01-03":[{"name":"late"}],"2024-01-01":[{"name":"early"}]}}`))

	require.NotNil(t, got.Date)
	assert.Equal(t, "2024-01-03", *got.Date)
	assert.Equal(t, model.List{map[string]any{"name": "late"}}, got.Items)
}

func TestFlattenNEONonListDate(t *testing.T) {
	got := FlattenNEO([]byte(`{"near_earth_objects":{"2024-01-01":null}}`))

	require.NotNil(t, got.Date)
	assert.Equal(t, model.List{}, got.Items)
}

func TestTodayAsteroidsQuery(t *testing.T) {
	var start, end, key string
	f, _ := newTestFetcher(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		start, end, key = q.Get("start_date"), q.Get("end_date"), q.Get("api_key")
		jsonHandler(http.StatusOK, `{"near_earth_objects":{"2024-01-01":[{"name":"(2024 AA)"}]}}`)(w, r)
	}))

	got := f.TodayAsteroids(context.Background())

	assert.Equal(t, "2024-01-01", start)
	assert.Equal(t, "2024-01-01", end)
	assert.Equal(t, "test-key", key)
	require.NotNil(t, got.Date)
	assert.Len(t, got.Items, 1)
}
