package fetcher

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/Mfaj-cod/AstroKnowMe/internal/model"
)

// MarsWeather returns the latest MAAS2 sol report, or {} on failure.
func (f *Fetcher) MarsWeather(ctx context.Context) model.Object {
	slog.Debug("fetching mars weather")

	return f.Fetch(ctx, Request{
		Source: sourceMarsWeather,
		Method: http.MethodGet,
		URL:    f.cfg.Endpoints.MarsWeather,
	}).Object()
}
