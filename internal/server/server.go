package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Mfaj-cod/AstroKnowMe/internal/config"
	"github.com/Mfaj-cod/AstroKnowMe/internal/fetcher"
	"github.com/Mfaj-cod/AstroKnowMe/internal/model"
	"github.com/Mfaj-cod/AstroKnowMe/internal/pipeline"
	"github.com/Mfaj-cod/AstroKnowMe/internal/view"
)

// Sources is implemented by *fetcher.Fetcher.
type Sources interface {
	pipeline.Sources
	TodayAsteroids(ctx context.Context) model.Asteroids
	CosmicWeather(ctx context.Context) model.CosmicWeather
}

// Server holds dependencies for HTTP handlers.
type Server struct {
	cfg      *config.Config
	sources  Sources
	pipeline *pipeline.Pipeline
	renderer *view.Renderer
	started  time.Time
}

func New(cfg *config.Config, sources Sources, renderer *view.Renderer) *Server {
	return &Server{
		cfg:      cfg,
		sources:  sources,
		pipeline: pipeline.New(sources),
		renderer: renderer,
		started:  time.Now(),
	}
}

// Router returns the HTTP handler with all routes registered.
func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/", s.handleOverview)
	mux.HandleFunc("/PictureOfTheDay", s.handlePictureOfDay)
	mux.HandleFunc("/NearEarthObjects", s.handleNearEarthObjects)
	mux.HandleFunc("/Exoplanets", s.handleExoplanets)
	mux.HandleFunc("/MarsWeather", s.handleMarsWeather)
	mux.HandleFunc("/GlobalImagery", s.handleGlobalImagery)
	mux.HandleFunc("/CosmicWeather", s.handleCosmicWeather)

	mux.Handle("/api/", s.corsMiddleware(http.HandlerFunc(s.handleAPI)))
	mux.HandleFunc("/healthz", s.handleHealth)

	return requestLogger(mux)
}

// ErrUnknownSource is returned by SourceData for names outside SourceNames.
var ErrUnknownSource = errors.New("unknown source")

// SourceNames lists the names accepted by SourceData, in display order.
var SourceNames = []string{"overview", "apod", "neo", "exoplanets", "mars", "epic", "cosmic"}

// SourceData returns one source's normalized output, as served by /api/{name}.
// Only "epic" can fail, when an image record's date cannot be parsed.
func (s *Server) SourceData(ctx context.Context, name string) (any, error) {
	switch name {
	case "overview":
		return s.pipeline.Overview(ctx), nil
	case "apod":
		return s.sources.PictureOfDay(ctx), nil
	case "neo":
		return s.sources.TodayAsteroids(ctx), nil
	case "exoplanets":
		return s.sources.Exoplanets(ctx), nil
	case "mars":
		return s.sources.MarsWeather(ctx), nil
	case "epic":
		return fetcher.BuildImageRecords(s.sources.GlobalImagery(ctx))
	case "cosmic":
		return s.sources.CosmicWeather(ctx), nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownSource, name)
}
