package model

// Object is a decoded JSON object whose shape belongs to the upstream source.
// An empty Object is the "no data" value for object-shaped sources.
type Object map[string]any

// List is a decoded JSON array. An empty List is the "no data" value for
// list-shaped sources.
type List []any

// Has reports whether key is present, regardless of its value.
func (o Object) Has(key string) bool {
	_, ok := o[key]
	return ok
}

// GetString returns the value at key if it is a JSON string.
func (o Object) GetString(key string) string {
	if s, ok := o[key].(string); ok {
		return s
	}
	return ""
}

// Alert is a single space-weather alert.
type Alert struct {
	Message   string `json:"message"`
	IssueTime string `json:"issue_time"`
}

// ImageRecord is an EPIC Earth image with its archive URL resolved.
type ImageRecord struct {
	URL     string `json:"url"`
	Caption string `json:"caption"`
	Date    string `json:"date"`
}

// CosmicWeather is the space-weather summary. SolarWind and KIndex hold
// whatever scalar the upstream row carried and stay nil when no reading was
// available.
type CosmicWeather struct {
	SolarWind any     `json:"solar_wind"`
	KIndex    any     `json:"k_index"`
	Alerts    []Alert `json:"alerts"`
}

// NewCosmicWeather returns the empty-shaped record.
func NewCosmicWeather() CosmicWeather {
	return CosmicWeather{Alerts: []Alert{}}
}

// Asteroids is the near-earth-object list for a single feed date.
// Date is nil when the feed carried no dates.
type Asteroids struct {
	Date  *string `json:"date"`
	Items List    `json:"asteroids"`
}

// Overview bundles everything shown on the landing page.
type Overview struct {
	APOD       Object `json:"apod"`
	NEO        Object `json:"neo"`
	Exoplanets List   `json:"exoplanets"`
	Mars       Object `json:"mars"`
	EPIC       List   `json:"epic"`
}
