package fetcher

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/Mfaj-cod/AstroKnowMe/internal/model"
)

// GlobalImagery returns the latest EPIC natural-colour image metadata, or []
// when the call failed or came back empty.
func (f *Fetcher) GlobalImagery(ctx context.Context) model.List {
	slog.Debug("fetching global imagery")

	return f.Fetch(ctx, Request{
		Source: sourceEPIC,
		Method: http.MethodGet,
		URL:    f.cfg.Endpoints.EPIC,
		Query:  url.Values{"api_key": {f.cfg.NASAAPIKey}},
	}).List()
}

// BuildImageRecords resolves archive URLs for at most the first nine EPIC
// records. It expects every record to carry "date" as "YYYY-MM-DD HH:MM:SS"
// and an "image" id; anything else is an error, not a skipped record.
func BuildImageRecords(items model.List) ([]model.ImageRecord, error) {
	if len(items) > maxEarthImages {
		items = items[:maxEarthImages]
	}

	images := make([]model.ImageRecord, 0, len(items))
	for i, item := range items {
		rec, ok := item.(map[string]any)
		if !ok {
			return nil, shapeError("epic record %d is %T, not an object", i, item)
		}

		date, ok := rec["date"].(string)
		if !ok {
			return nil, shapeError("epic record %d has no date", i)
		}
		fields := strings.Fields(date)
		if len(fields) == 0 {
			return nil, shapeError("epic record %d has empty date", i)
		}
		parts := strings.Split(fields[0], "-")
		if len(parts) != 3 {
			return nil, shapeError("epic record %d date %q is not YYYY-MM-DD", i, date)
		}

		image, ok := rec["image"]
		if !ok {
			return nil, shapeError("epic record %d has no image", i)
		}

		caption := "Earth Image"
		if c, ok := rec["caption"]; ok {
			caption = scalarString(c)
		}

		images = append(images, model.ImageRecord{
			URL:     fmt.Sprintf(epicArchiveURL, parts[0], parts[1], parts[2], scalarString(image)),
			Caption: caption,
			Date:    date,
		})
	}
	return images, nil
}

func scalarString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	}
	return fmt.Sprint(v)
}
