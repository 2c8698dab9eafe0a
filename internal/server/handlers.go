package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/Mfaj-cod/AstroKnowMe/internal/fetcher"
	"github.com/Mfaj-cod/AstroKnowMe/internal/view"
)

func (s *Server) handleOverview(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if !allowRead(w, r) {
		return
	}
	data := view.OverviewData{Overview: s.pipeline.Overview(r.Context())}
	s.render(w, r, view.PageOverview, data)
}

func (s *Server) handlePictureOfDay(w http.ResponseWriter, r *http.Request) {
	if !allowRead(w, r) {
		return
	}
	data := view.PictureOfDay(s.sources.PictureOfDay(r.Context()))
	s.render(w, r, view.PagePictureOfDay, data)
}

func (s *Server) handleNearEarthObjects(w http.ResponseWriter, r *http.Request) {
	if !allowRead(w, r) {
		return
	}
	data := view.NearEarth(s.sources.TodayAsteroids(r.Context()))
	s.render(w, r, view.PageNearEarth, data)
}

func (s *Server) handleExoplanets(w http.ResponseWriter, r *http.Request) {
	if !allowRead(w, r) {
		return
	}
	data := view.ExoplanetsData{Planets: s.sources.Exoplanets(r.Context())}
	s.render(w, r, view.PageExoplanets, data)
}

func (s *Server) handleMarsWeather(w http.ResponseWriter, r *http.Request) {
	if !allowRead(w, r) {
		return
	}
	data := view.MarsWeatherData{Mars: s.sources.MarsWeather(r.Context())}
	s.render(w, r, view.PageMarsWeather, data)
}

func (s *Server) handleGlobalImagery(w http.ResponseWriter, r *http.Request) {
	if !allowRead(w, r) {
		return
	}
	images, err := fetcher.BuildImageRecords(s.sources.GlobalImagery(r.Context()))
	if err != nil {
		slog.Error("global imagery failed", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	s.render(w, r, view.PageGlobalImagery, view.GlobalImageryData{Images: images})
}

func (s *Server) handleCosmicWeather(w http.ResponseWriter, r *http.Request) {
	if !allowRead(w, r) {
		return
	}
	data := view.CosmicWeatherData{Weather: s.sources.CosmicWeather(r.Context())}
	s.render(w, r, view.PageCosmicWeather, data)
}

// handleAPI serves each adapter's normalized output as JSON under /api/{source}.
func (s *Server) handleAPI(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if !allowRead(w, r) {
		return
	}

	source := strings.TrimPrefix(r.URL.Path, "/api/")
	data, err := s.SourceData(r.Context(), source)
	if errors.Is(err, ErrUnknownSource) {
		writeJSON(w, http.StatusNotFound, map[string]any{"error": err.Error()})
		return
	}
	if err != nil {
		slog.Error("api source failed", "source", source, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "internal server error"})
		return
	}

	w.Header().Set("Cache-Control", "no-cache")
	writeJSON(w, http.StatusOK, data)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":     "ok",
		"started_at": s.started.Format(time.RFC3339),
	})
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, page string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.renderer.Render(w, page, data); err != nil {
		if !errors.Is(err, view.ErrTemplate) {
			// Part of the page may already be on the wire.
			slog.Warn("failed to write page", "page", page, "error", err)
			return
		}
		slog.Error("failed to render page", "page", page, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	slog.Info("page viewed", "page", page, "request_id", requestID(r.Context()))
}

func allowRead(w http.ResponseWriter, r *http.Request) bool {
	if r.Method == http.MethodGet || r.Method == http.MethodHead {
		return true
	}
	w.Header().Set("Allow", "GET, HEAD")
	http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	return false
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("failed to write json response", "error", err)
	}
}
