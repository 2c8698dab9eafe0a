package fetcher

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/Mfaj-cod/AstroKnowMe/internal/model"
)

// Exoplanets asks the NASA Exoplanet Archive TAP service for the five most
// recently discovered planets. It returns [] on failure.
func (f *Fetcher) Exoplanets(ctx context.Context) model.List {
	slog.Debug("fetching exoplanets")

	return f.Fetch(ctx, Request{
		Source: sourceExoplanets,
		Method: http.MethodPost,
		URL:    f.cfg.Endpoints.Exoplanets,
		Form: url.Values{
			"query":  {exoplanetQuery},
			"format": {"json"},
		},
	}).List()
}
