// Package domain models planet records from the Star Wars API (SWAPI) catalog
// and shapes them into display rows.
//
// # Data Source
//
// Records come from the public SWAPI planets endpoint, by default
// https://swapi.dev/api/planets/. A single GET returns one page of results:
//
//	{"count": 60, "next": "...?page=2", "previous": null, "results": [ ... ]}
//
// Only the first page is read. Each result carries string-typed fields even
// when the value is numeric, which is why every derivation here starts with
// a parse step.
//
// # SWAPI Data Conventions
//
// Unknown values:
//
//	"unknown" is the SWAPI sentinel for an unreported value. It appears in
//	population, diameter, surface_water, climate and terrain.
//
// Population:
//
//	Decimal integer string, e.g. "200000" or "1000000000000" (Coruscant).
//	Rendered with digits grouped in threes separated by a space:
//	"1000000000000" → "1 000 000 000 000". "unknown" → "?".
//
// Diameter:
//
//	Kilometers as a decimal string, e.g. "10465". "0" appears for bodies with
//	no recorded size.
//
// Surface water:
//
//	Percentage of the surface covered by water, 0–100, e.g. "1" or "40".
//	"unknown" means the water area cannot be derived.
//
// Residents:
//
//	Array of resident detail URLs. Only its length is displayed.
//
// # Water Surface Area
//
// The planet is treated as a sphere:
//
//	radius = diameter / 2
//	area   = round(4 · π · radius² · surface_water / 100)
//
// The result is grouped like population and suffixed with "km²". For
// diameter 12000 and surface water 50 the label is "226 194 671km²".
//
// # Ordering
//
// Rows are sorted ascending by name with a locale-aware collator
// (golang.org/x/text/collate). The sort is stable: rows with equal names keep
// their upstream order.
package domain
