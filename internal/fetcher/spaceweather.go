package fetcher

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/Mfaj-cod/AstroKnowMe/internal/model"
)

// CosmicWeather reads the latest solar wind and planetary K-index readings and
// up to five alerts from NOAA SWPC. The three calls run in order; if a payload
// has an unexpected layout the remaining steps are skipped and whatever was
// already collected is returned.
func (f *Fetcher) CosmicWeather(ctx context.Context) model.CosmicWeather {
	slog.Debug("fetching cosmic weather")

	data := model.NewCosmicWeather()
	if err := f.collectCosmicWeather(ctx, &data); err != nil {
		slog.Warn("cosmic weather fetch error", "error", err)
	}
	return data
}

func (f *Fetcher) collectCosmicWeather(ctx context.Context, data *model.CosmicWeather) error {
	swRows := f.table(ctx, sourceSolarWind, f.cfg.Endpoints.SolarWind)
	if len(swRows) > 1 {
		v, err := latestReading(swRows)
		if err != nil {
			return fmt.Errorf("solar wind: %w", err)
		}
		data.SolarWind = v
	}

	kpRows := f.table(ctx, sourceKIndex, f.cfg.Endpoints.KIndex)
	if len(kpRows) > 1 {
		v, err := latestReading(kpRows)
		if err != nil {
			return fmt.Errorf("k-index: %w", err)
		}
		data.KIndex = v
	}

	alertRows := f.table(ctx, sourceSpaceAlerts, f.cfg.Endpoints.SpaceAlerts)
	if len(alertRows) > 1 {
		if err := appendAlerts(data, alertRows); err != nil {
			return fmt.Errorf("alerts: %w", err)
		}
	}
	return nil
}

func (f *Fetcher) table(ctx context.Context, source, endpoint string) model.List {
	return f.Fetch(ctx, Request{Source: source, Method: http.MethodGet, URL: endpoint}).List()
}

// latestReading returns field 1 of the last row. Row 0 is the header.
func latestReading(rows model.List) (any, error) {
	return rowField(rows[len(rows)-1], readingField)
}

// appendAlerts adds rows 1 through 5. Alerts appended before a malformed row
// are kept.
func appendAlerts(data *model.CosmicWeather, rows model.List) error {
	end := min(len(rows), maxSpaceAlerts+1)
	for _, row := range rows[1:end] {
		msg, err := rowField(row, alertMsgField)
		if err != nil {
			return err
		}
		issued, err := rowField(row, alertTimeField)
		if err != nil {
			return err
		}
		data.Alerts = append(data.Alerts, model.Alert{
			Message:   scalarString(msg),
			IssueTime: scalarString(issued),
		})
	}
	return nil
}

func rowField(row any, idx int) (any, error) {
	cells, ok := row.([]any)
	if !ok {
		return nil, shapeError("row is %T, not an array", row)
	}
	if idx >= len(cells) {
		return nil, shapeError("row has %d fields, need index %d", len(cells), idx)
	}
	return cells[idx], nil
}
