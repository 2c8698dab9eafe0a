package fetcher

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mfaj-cod/AstroKnowMe/internal/model"
)

func TestPictureOfDay(t *testing.T) {
	var apiKey string
	f, _ := newTestFetcher(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey = r.URL.Query().Get("api_key")
		routes(map[string]string{
			"/apod": `{"title":"Pillars","url":"https://apod.nasa.gov/x.jpg","media_type":"image"}`,
		})(w, r)
	}))

	apod := f.PictureOfDay(context.Background())

	assert.Equal(t, "test-key", apiKey)
	assert.Equal(t, "Pillars", apod.GetString("title"))
	assert.True(t, apod.Has("url"))
}

func TestMarsWeather(t *testing.T) {
	f, _ := newTestFetcher(t, routes(map[string]string{
		"/mars": `{"sol":4000,"min_temp":-80,"max_temp":-20,"season":"Month 7"}`,
	}))

	mars := f.MarsWeather(context.Background())

	assert.Equal(t, 4000.0, mars["sol"])
	assert.Equal(t, "Month 7", mars.GetString("season"))
}

func TestExoplanetsPostsQuery(t *testing.T) {
	var method, contentType, query, format string
	f, _ := newTestFetcher(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		contentType = r.Header.Get("Content-Type")
		assert.NoError(t, r.ParseForm())
		query = r.PostForm.Get("query")
		format = r.PostForm.Get("format")
		jsonHandler(http.StatusOK, `[{"pl_name":"TOI-1","hostname":"TOI","disc_year":2025,"disc_facility":"TESS"}]`)(w, r)
	}))

	planets := f.Exoplanets(context.Background())

	assert.Equal(t, http.MethodPost, method)
	assert.Equal(t, "application/x-www-form-urlencoded", contentType)
	assert.Contains(t, query, "SELECT TOP 5 pl_name, hostname, disc_year, disc_facility")
	assert.Contains(t, query, "ORDER BY disc_year DESC")
	assert.Equal(t, "json", format)
	require.Len(t, planets, 1)
	assert.Equal(t, "TOI-1", planets[0].(map[string]any)["pl_name"])
}

func TestAdapterShapesOnFailure(t *testing.T) {
	f, _ := newTestFetcher(t, jsonHandler(http.StatusServiceUnavailable, `down`))
	ctx := context.Background()

	assert.Equal(t, model.Object{}, f.PictureOfDay(ctx))
	assert.Equal(t, model.Object{}, f.NearEarthObjects(ctx))
	assert.Equal(t, model.List{}, f.Exoplanets(ctx))
	assert.Equal(t, model.Object{}, f.MarsWeather(ctx))
	assert.Equal(t, model.List{}, f.GlobalImagery(ctx))
	assert.Equal(t, model.NewCosmicWeather(), f.CosmicWeather(ctx))

	asteroids := f.TodayAsteroids(ctx)
	assert.Nil(t, asteroids.Date)
	assert.Equal(t, model.List{}, asteroids.Items)
}

func TestAdapterShapesOnWrongKind(t *testing.T) {
	f, _ := newTestFetcher(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/apod", "/mars", "/neo":
			jsonHandler(http.StatusOK, `[1,2]`)(w, r)
		default:
			jsonHandler(http.StatusOK, `{"error":"moved"}`)(w, r)
		}
	}))
	ctx := context.Background()

	assert.Equal(t, model.Object{}, f.PictureOfDay(ctx))
	assert.Equal(t, model.Object{}, f.MarsWeather(ctx))
	assert.Equal(t, model.Object{}, f.NearEarthObjects(ctx))
	assert.Equal(t, model.List{}, f.Exoplanets(ctx))
	assert.Equal(t, model.List{}, f.GlobalImagery(ctx))
	assert.Equal(t, model.NewCosmicWeather(), f.CosmicWeather(ctx))
}

func TestExoplanetsNonOKIsEmptyList(t *testing.T) {
	f, _ := newTestFetcher(t, jsonHandler(http.StatusBadRequest, `ERROR: bad ADQL`))

	planets := f.Exoplanets(context.Background())

	assert.NotNil(t, planets)
	assert.Empty(t, planets)
}

func TestGlobalImageryCoalescesEmptyObject(t *testing.T) {
	f, _ := newTestFetcher(t, routes(map[string]string{"/epic": `{}`}))

	images := f.GlobalImagery(context.Background())

	assert.NotNil(t, images)
	assert.Empty(t, images)
}
