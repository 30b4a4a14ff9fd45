package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

const (
	testTatooineURL = "https://swapi.dev/api/planets/1/"
	testAlderaanURL = "https://swapi.dev/api/planets/2/"
)

func tatooine() RawRecord {
	return RawRecord{
		Name:           "Tatooine",
		Climate:        "arid",
		Terrain:        "desert",
		Population:     "200000",
		Diameter:       "10465",
		SurfaceWater:   "1",
		ResidentsCount: 10,
		DetailURL:      testTatooineURL,
	}
}

func alderaan() RawRecord {
	return RawRecord{
		Name:           "Alderaan",
		Climate:        "temperate",
		Terrain:        "grasslands, mountains",
		Population:     "2000000000",
		Diameter:       "12500",
		SurfaceWater:   "40",
		ResidentsCount: 3,
		DetailURL:      testAlderaanURL,
	}
}

func TestShapeRecord(t *testing.T) {
	row, err := ShapeRecord(tatooine())
	require.NoError(t, err)

	want := DisplayRow{
		Name:                "Tatooine",
		Climate:             "arid",
		Terrain:             "desert",
		ResidentsCount:      10,
		FormattedPopulation: "200 000",
		SurfaceAreaLabel:    "3 440 554km²",
		DetailURL:           testTatooineURL,
	}
	if diff := cmp.Diff(want, row); diff != "" {
		t.Errorf("ShapeRecord mismatch (-want +got):\n%s", diff)
	}
}

func TestShapeRecord_Unknowns(t *testing.T) {
	raw := RawRecord{
		Name:         "Coruscant",
		Climate:      "unknown",
		Terrain:      "cityscape, mountains",
		Population:   "unknown",
		Diameter:     "12240",
		SurfaceWater: "unknown",
	}
	row, err := ShapeRecord(raw)
	require.NoError(t, err)

	assert.Equal(t, "?", row.FormattedPopulation)
	assert.Equal(t, "?", row.SurfaceAreaLabel)
	assert.Equal(t, "unknown", row.Climate, "climate passes through unchanged")
	assert.Zero(t, row.ResidentsCount)
}

func TestShapeRecord_FormatErrorNamesRecord(t *testing.T) {
	raw := tatooine()
	raw.Population = "many"

	_, err := ShapeRecord(raw)
	var fe *FormatError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "Tatooine", fe.Record)
	assert.Equal(t, "population", fe.Field)
	assert.Contains(t, err.Error(), `planet "Tatooine": malformed population "many"`)

	raw = alderaan()
	raw.Diameter = "unknown"
	_, err = ShapeRecord(raw)
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "Alderaan", fe.Record)
	assert.Equal(t, "diameter", fe.Field)
}

func TestShape_Empty(t *testing.T) {
	rows, err := Shape(nil, language.English)
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestShape_SortsByName(t *testing.T) {
	rows, err := Shape([]RawRecord{tatooine(), alderaan()}, language.English)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Alderaan", rows[0].Name)
	assert.Equal(t, "Tatooine", rows[1].Name)
	assert.Equal(t, "196 349 541km²", rows[0].SurfaceAreaLabel)
	assert.Equal(t, "2 000 000 000", rows[0].FormattedPopulation)
}

func TestShape_FailsOnMalformedRecord(t *testing.T) {
	bad := alderaan()
	bad.SurfaceWater = "wet"

	rows, err := Shape([]RawRecord{tatooine(), bad}, language.English)
	require.Error(t, err)
	assert.Nil(t, rows)

	var fe *FormatError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "surface_water", fe.Field)
}

func TestShape_OneRowPerRecord(t *testing.T) {
	records := []RawRecord{tatooine(), alderaan(), tatooine()}
	rows, err := Shape(records, language.English)
	require.NoError(t, err)
	assert.Len(t, rows, len(records))
}

func TestSortRows_LocaleAware(t *testing.T) {
	rows := []DisplayRow{
		{Name: "Zolan"},
		{Name: "Ébène"},
		{Name: "bespin"},
		{Name: "Endor"},
		{Name: "Alderaan"},
	}
	SortRows(rows, language.English)

	got := make([]string, len(rows))
	for i, r := range rows {
		got[i] = r.Name
	}
	assert.Equal(t, []string{"Alderaan", "bespin", "Ébène", "Endor", "Zolan"}, got)

	c := collate.New(language.English)
	for i := 1; i < len(rows); i++ {
		assert.LessOrEqual(t, c.CompareString(rows[i-1].Name, rows[i].Name), 0)
	}
}

func TestSortRows_StableForEqualNames(t *testing.T) {
	rows := []DisplayRow{
		{Name: "Naboo", DetailURL: "first"},
		{Name: "Hoth"},
		{Name: "Naboo", DetailURL: "second"},
		{Name: "Naboo", DetailURL: "third"},
	}
	SortRows(rows, language.English)

	assert.Equal(t, "Hoth", rows[0].Name)
	assert.Equal(t, "first", rows[1].DetailURL)
	assert.Equal(t, "second", rows[2].DetailURL)
	assert.Equal(t, "third", rows[3].DetailURL)
}
