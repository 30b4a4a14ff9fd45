package domain

// Unknown is the SWAPI sentinel for an unreported value.
const Unknown = "unknown"

// Placeholder is shown in place of a value that cannot be derived.
const Placeholder = "?"

// TableHeaders are the column headers every renderer emits, in order.
var TableHeaders = []string{"Name", "Climate", "Residents", "Terrain", "Population", "H20 Surface Area"}

// RawRecord is a planet as delivered by the record source.
type RawRecord struct {
	Name           string
	Climate        string
	Terrain        string
	Population     string // decimal integer or "unknown"
	Diameter       string // kilometers
	SurfaceWater   string // percentage 0-100 or "unknown"
	ResidentsCount int
	DetailURL      string
}

// DisplayRow is a RawRecord shaped for rendering.
type DisplayRow struct {
	Name                string `json:"name"`
	Climate             string `json:"climate"`
	Terrain             string `json:"terrain"`
	ResidentsCount      int    `json:"residents"`
	FormattedPopulation string `json:"population"`
	SurfaceAreaLabel    string `json:"surface_water_area"`
	DetailURL           string `json:"url"`
}
