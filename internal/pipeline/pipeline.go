package pipeline

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Mfaj-cod/AstroKnowMe/internal/model"
)

// Sources is the subset of the fetcher the overview page needs.
type Sources interface {
	PictureOfDay(ctx context.Context) model.Object
	NearEarthObjects(ctx context.Context) model.Object
	Exoplanets(ctx context.Context) model.List
	MarsWeather(ctx context.Context) model.Object
	GlobalImagery(ctx context.Context) model.List
}

// Pipeline gathers the overview data.
type Pipeline struct {
	sources Sources
}

func New(sources Sources) *Pipeline {
	return &Pipeline{sources: sources}
}

// Overview runs the five overview adapters concurrently and joins before
// returning. Adapters never fail, so neither does Overview; each field holds
// its empty shape when the source was unavailable.
func (p *Pipeline) Overview(ctx context.Context) model.Overview {
	start := time.Now()

	var out model.Overview
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		out.APOD = p.sources.PictureOfDay(gctx)
		return nil
	})
	g.Go(func() error {
		out.NEO = p.sources.NearEarthObjects(gctx)
		return nil
	})
	g.Go(func() error {
		out.Exoplanets = p.sources.Exoplanets(gctx)
		return nil
	})
	g.Go(func() error {
		out.Mars = p.sources.MarsWeather(gctx)
		return nil
	})
	g.Go(func() error {
		out.EPIC = p.sources.GlobalImagery(gctx)
		return nil
	})

	_ = g.Wait()

	slog.Info("overview assembled",
		"apod", len(out.APOD) > 0,
		"neo", len(out.NEO) > 0,
		"exoplanets", len(out.Exoplanets),
		"mars", len(out.Mars) > 0,
		"epic", len(out.EPIC),
		"duration", time.Since(start),
	)
	return out
}
