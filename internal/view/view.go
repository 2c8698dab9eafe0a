// Package view turns adapter output into template-ready pages and renders
// them with the embedded HTML templates.
package view

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"

	"github.com/Mfaj-cod/AstroKnowMe/internal/model"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page names, one per route.
const (
	PageOverview      = "overview"
	PagePictureOfDay  = "picture_of_day"
	PageNearEarth     = "near_earth_objects"
	PageExoplanets    = "exoplanets"
	PageMarsWeather   = "mars_weather"
	PageGlobalImagery = "global_imagery"
	PageCosmicWeather = "cosmic_weather"
)

var titles = map[string]string{
	PageOverview:      "Overview",
	PagePictureOfDay:  "Picture of the Day",
	PageNearEarth:     "Near Earth Objects",
	PageExoplanets:    "Exoplanets",
	PageMarsWeather:   "Mars Weather",
	PageGlobalImagery: "Global Imagery",
	PageCosmicWeather: "Cosmic Weather",
}

// NavLink is one entry of the shared navigation bar.
type NavLink struct {
	Page string
	Path string
	Name string
}

// Nav lists every page in display order.
var Nav = []NavLink{
	{Page: PageOverview, Path: "/", Name: titles[PageOverview]},
	{Page: PagePictureOfDay, Path: "/PictureOfTheDay", Name: titles[PagePictureOfDay]},
	{Page: PageNearEarth, Path: "/NearEarthObjects", Name: titles[PageNearEarth]},
	{Page: PageExoplanets, Path: "/Exoplanets", Name: titles[PageExoplanets]},
	{Page: PageMarsWeather, Path: "/MarsWeather", Name: titles[PageMarsWeather]},
	{Page: PageGlobalImagery, Path: "/GlobalImagery", Name: titles[PageGlobalImagery]},
	{Page: PageCosmicWeather, Path: "/CosmicWeather", Name: titles[PageCosmicWeather]},
}

// Page is what every template receives.
type Page struct {
	Name  string
	Title string
	Nav   []NavLink
	Data  any
}

// Renderer holds one parsed template set per page.
type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template, len(titles))}
	for name := range titles {
		tmpl, err := template.New(name).Funcs(funcs).ParseFS(templateFS,
			"templates/layout.html",
			"templates/"+name+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", name, err)
		}
		r.pages[name] = tmpl
	}
	return r, nil
}

// ErrTemplate marks a render failure that happened before anything was
// written to the destination.
var ErrTemplate = errors.New("template failed")

// Render executes the named page into w. Output is buffered so a template
// error never leaves a half-written page behind. Errors wrapping ErrTemplate
// mean w is untouched; any other error came from writing to w.
func (r *Renderer) Render(w io.Writer, name string, data any) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("%w: unknown page %q", ErrTemplate, name)
	}

	var buf bytes.Buffer
	page := Page{Name: name, Title: titles[name], Nav: Nav, Data: data}
	if err := tmpl.ExecuteTemplate(&buf, "layout", page); err != nil {
		return fmt.Errorf("%w: render %s: %v", ErrTemplate, name, err)
	}
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

// Upstream payloads are untyped JSON, so the helpers below accept anything
// and degrade to empty values instead of failing the template.
var funcs = template.FuncMap{
	"first": func(v any) any {
		if l, ok := v.([]any); ok && len(l) > 0 {
			return l[0]
		}
		return nil
	},
	"has": func(v any, key string) bool {
		_, ok := asObject(v)[key]
		return ok
	},
	"obj": asObject,
	"str": func(v any) string {
		if v == nil {
			return ""
		}
		if s, ok := v.(string); ok {
			return s
		}
		return fmt.Sprint(v)
	},
	"num": func(v any) string {
		if f, ok := v.(float64); ok {
			return fmt.Sprintf("%.0f", f)
		}
		return "N/A"
	},
	"orDash": func(v any) any {
		if v == nil || v == "" {
			return "N/A"
		}
		return v
	},
}

// asObject returns v as a JSON object, or nil when it is any other kind.
func asObject(v any) map[string]any {
	switch m := v.(type) {
	case map[string]any:
		return m
	case model.Object:
		return m
	}
	return nil
}

// Overview page data.
type OverviewData struct {
	model.Overview
}

type PictureOfDayData struct {
	APOD model.Object
}

type NearEarthData struct {
	Asteroids model.List
	Date      *string
}

type ExoplanetsData struct {
	Planets model.List
}

type MarsWeatherData struct {
	Mars model.Object
}

type GlobalImageryData struct {
	Images []model.ImageRecord
}

type CosmicWeatherData struct {
	Weather model.CosmicWeather
}
