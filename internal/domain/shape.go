package domain

import (
	"errors"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// ShapeRecord converts one raw record into a display row. Name, climate,
// terrain and detail URL pass through unchanged. A malformed population,
// diameter or surface water value yields a *FormatError carrying the record's
// name.
func ShapeRecord(r RawRecord) (DisplayRow, error) {
	population, err := FormatPopulation(r.Population)
	if err != nil {
		return DisplayRow{}, withRecord(err, r.Name)
	}
	area, err := SurfaceAreaLabel(r.Diameter, r.SurfaceWater)
	if err != nil {
		return DisplayRow{}, withRecord(err, r.Name)
	}

	residents := r.ResidentsCount
	if residents < 0 {
		residents = 0
	}

	return DisplayRow{
		Name:                r.Name,
		Climate:             r.Climate,
		Terrain:             r.Terrain,
		ResidentsCount:      residents,
		FormattedPopulation: population,
		SurfaceAreaLabel:    area,
		DetailURL:           r.DetailURL,
	}, nil
}

// Shape converts every record and sorts the result by name. It fails on the
// first malformed record. An empty input yields an empty, non-nil slice.
func Shape(records []RawRecord, locale language.Tag) ([]DisplayRow, error) {
	rows := make([]DisplayRow, 0, len(records))
	for _, r := range records {
		row, err := ShapeRecord(r)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	SortRows(rows, locale)
	return rows, nil
}

// SortRows orders rows ascending by name using the collation rules of locale.
// Rows with equal names keep their relative order.
func SortRows(rows []DisplayRow, locale language.Tag) {
	// Collators carry scratch buffers and are not safe for concurrent use.
	c := collate.New(locale)
	slices.SortStableFunc(rows, func(a, b DisplayRow) int {
		return c.CompareString(a.Name, b.Name)
	})
}

func withRecord(err error, name string) error {
	var fe *FormatError
	if errors.As(err, &fe) {
		fe.Record = name
	}
	return err
}
