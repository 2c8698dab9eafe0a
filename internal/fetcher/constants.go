package fetcher

const (
	sourceAPOD        = "apod"
	sourceNEO         = "neo"
	sourceExoplanets  = "exoplanets"
	sourceMarsWeather = "mars_weather"
	sourceEPIC        = "epic"
	sourceSolarWind   = "solar_wind"
	sourceKIndex      = "k_index"
	sourceSpaceAlerts = "space_alerts"
)

const exoplanetQuery = `
	SELECT TOP 5 pl_name, hostname, disc_year, disc_facility
	FROM ps
	ORDER BY disc_year DESC
`

const epicArchiveURL = "https://epic.gsfc.nasa.gov/archive/natural/%s/%s/%s/jpg/%s.jpg"

const (
	maxEarthImages = 9
	maxSpaceAlerts = 5
)

// Row positions in the NOAA SWPC product tables.
const (
	readingField   = 1
	alertTimeField = 0
	alertMsgField  = 3
)
