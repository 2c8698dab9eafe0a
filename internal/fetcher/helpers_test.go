package fetcher

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Mfaj-cod/AstroKnowMe/internal/config"
)

// newTestFetcher points every endpoint at a single httptest server. Paths
// are /apod, /neo, /exoplanets, /mars, /epic, /solar-wind, /k-index, /alerts.
func newTestFetcher(t *testing.T, handler http.Handler) (*Fetcher, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{
		NASAAPIKey:   "test-key",
		FetchTimeout: 2 * time.Second,
		Endpoints: config.Endpoints{
			APOD:        srv.URL + "/apod",
			NEO:         srv.URL + "/neo",
			Exoplanets:  srv.URL + "/exoplanets",
			MarsWeather: srv.URL + "/mars",
			EPIC:        srv.URL + "/epic",
			SolarWind:   srv.URL + "/solar-wind",
			KIndex:      srv.URL + "/k-index",
			SpaceAlerts: srv.URL + "/alerts",
		},
	}
	f := New(cfg)
	f.now = func() time.Time { return time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC) }
	return f, srv
}

func jsonHandler(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

// routes serves a fixed body per path and 404 for everything else.
func routes(bodies map[string]string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, ok := bodies[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		jsonHandler(http.StatusOK, body)(w, r)
	}
}
