package fetcher

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/tidwall/gjson"

	"github.com/Mfaj-cod/AstroKnowMe/internal/model"
)

func (f *Fetcher) neoFeed(ctx context.Context) Result {
	slog.Debug("fetching near earth objects")

	today := f.now().Format("2006-01-02")
	return f.Fetch(ctx, Request{
		Source: sourceNEO,
		Method: http.MethodGet,
		URL:    f.cfg.Endpoints.NEO,
		Query: url.Values{
			"api_key":    {f.cfg.NASAAPIKey},
			"start_date": {today},
			"end_date":   {today},
		},
	})
}

// NearEarthObjects returns today's NeoWs feed as-is, or {} on failure.
func (f *Fetcher) NearEarthObjects(ctx context.Context) model.Object {
	return f.neoFeed(ctx).Object()
}

// TodayAsteroids fetches today's feed and flattens it to a single date.
func (f *Fetcher) TodayAsteroids(ctx context.Context) model.Asteroids {
	res := f.neoFeed(ctx)
	if !res.OK() {
		return model.Asteroids{Items: model.List{}}
	}
	return FlattenNEO(res.Body)
}

// FlattenNEO picks the first date key under near_earth_objects, in the order
// the keys appear in the document, and returns that date's asteroid list.
//
// When the feed spans several dates the first one is not necessarily today.
// The request always asks for a single day so this has not mattered yet.
func FlattenNEO(body []byte) model.Asteroids {
	out := model.Asteroids{Items: model.List{}}

	objects := gjson.GetBytes(body, "near_earth_objects")
	if !objects.IsObject() {
		return out
	}

	objects.ForEach(func(key, value gjson.Result) bool {
		date := key.String()
		out.Date = &date
		if value.IsArray() {
			var items model.List
			if err := json.Unmarshal([]byte(value.Raw), &items); err == nil && items != nil {
				out.Items = items
			}
		}
		return false
	})
	return out
}
