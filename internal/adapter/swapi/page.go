package swapi

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/couchcryptid/planet-catalog/internal/domain"
)

// Page is one decoded page of the planets listing.
type Page struct {
	Count   int    // total planets across all pages
	Next    string // URL of the next page, empty on the last page
	Records []domain.RawRecord
}

// DecodePage reads a planets listing body.
func DecodePage(r io.Reader) (Page, error) {
	var resp response
	if err := json.NewDecoder(r).Decode(&resp); err != nil {
		return Page{}, fmt.Errorf("decode response: %w", err)
	}

	page := Page{
		Count:   resp.Count,
		Records: make([]domain.RawRecord, len(resp.Results)),
	}
	if resp.Next != nil {
		page.Next = *resp.Next
	}
	for i, p := range resp.Results {
		page.Records[i] = p.toRecord()
	}
	return page, nil
}

// SWAPI response types.

type response struct {
	Count   int      `json:"count"`
	Next    *string  `json:"next"`
	Results []planet `json:"results"`
}

type planet struct {
	Name         string   `json:"name"`
	Climate      string   `json:"climate"`
	Terrain      string   `json:"terrain"`
	Population   string   `json:"population"`
	Diameter     string   `json:"diameter"`
	SurfaceWater string   `json:"surface_water"`
	Residents    []string `json:"residents"`
	URL          string   `json:"url"`
}

func (p planet) toRecord() domain.RawRecord {
	return domain.RawRecord{
		Name:           p.Name,
		Climate:        p.Climate,
		Terrain:        p.Terrain,
		Population:     p.Population,
		Diameter:       p.Diameter,
		SurfaceWater:   p.SurfaceWater,
		ResidentsCount: len(p.Residents),
		DetailURL:      p.URL,
	}
}
