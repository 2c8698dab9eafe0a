package fetcher

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/Mfaj-cod/AstroKnowMe/internal/model"
)

// PictureOfDay returns NASA's astronomy picture of the day, or {} on failure.
func (f *Fetcher) PictureOfDay(ctx context.Context) model.Object {
	slog.Debug("fetching picture of the day")

	return f.Fetch(ctx, Request{
		Source: sourceAPOD,
		Method: http.MethodGet,
		URL:    f.cfg.Endpoints.APOD,
		Query:  url.Values{"api_key": {f.cfg.NASAAPIKey}},
	}).Object()
}
