package view

import "github.com/Mfaj-cod/AstroKnowMe/internal/model"

// NoPictureExplanation is shown when APOD returned nothing usable.
const NoPictureExplanation = "The APOD API did not return data. Please try again later."

// PictureOfDay substitutes the placeholder record when the APOD result has
// no "url" key. A present but empty url is passed through unchanged.
func PictureOfDay(apod model.Object) PictureOfDayData {
	if len(apod) == 0 || !apod.Has("url") {
		apod = model.Object{
			"title":       "No Data",
			"date":        "",
			"media_type":  "",
			"url":         "",
			"explanation": NoPictureExplanation,
		}
	}
	return PictureOfDayData{APOD: apod}
}

func NearEarth(a model.Asteroids) NearEarthData {
	items := a.Items
	if items == nil {
		items = model.List{}
	}
	return NearEarthData{Asteroids: items, Date: a.Date}
}
