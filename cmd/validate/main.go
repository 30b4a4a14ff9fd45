// Command validate checks a captured SWAPI planets page for data integrity
// before it is used as a test fixture: field presence, name uniqueness,
// shaping of every numeric field, and ordering of the shaped rows.
//
// Usage:
//
//	go run ./cmd/validate \
//	  -fixture internal/integration/testdata/planets_page1.json \
//	  -locale en
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/couchcryptid/planet-catalog/internal/adapter/swapi"
	"github.com/couchcryptid/planet-catalog/internal/domain"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	fixture := flag.String("fixture", "", "path to a SWAPI planets page JSON file")
	locale := flag.String("locale", "en", "BCP 47 locale used to order planet names")
	flag.Parse()

	if *fixture == "" {
		flag.Usage()
		os.Exit(1)
	}

	tag, err := language.Parse(*locale)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: invalid -locale: %v\n", err)
		os.Exit(1)
	}

	if code := run(os.Stdout, *fixture, tag); code != 0 {
		os.Exit(code)
	}
}

func run(out io.Writer, fixturePath string, locale language.Tag) int {
	fmt.Fprintln(out, "=== Planet Fixture Validation ===")
	fmt.Fprintln(out)

	page, err := loadPage(fixturePath)
	if err != nil {
		fmt.Fprintf(out, "FATAL: load fixture: %v\n", err)
		return 1
	}

	phases := []*phase{
		validateFieldPresence(page.Records),
		validateUniqueNames(page.Records),
		validateShaping(page.Records),
		validateOrdering(page.Records, locale),
	}

	fmt.Fprintln(out)
	allPassed := true
	for _, p := range phases {
		status := "\033[32mPASS\033[0m"
		if !p.passed() {
			status = fmt.Sprintf("\033[31mFAIL (%d errors)\033[0m", len(p.errors))
			allPassed = false
		}
		fmt.Fprintf(out, "  %-42s %s\n", p.name, status)
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Records: %d on page, %d in catalog\n", len(page.Records), page.Count)

	// Print detailed errors.
	for _, p := range phases {
		if p.passed() {
			continue
		}
		fmt.Fprintf(out, "\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Fprintf(out, "  [%d] %s\n", i+1, e)
		}
	}

	if allPassed {
		fmt.Fprintln(out, "\nAll validations passed.")
		return 0
	}
	fmt.Fprintln(out, "\nValidation FAILED.")
	return 1
}

func loadPage(path string) (swapi.Page, error) {
	f, err := os.Open(path)
	if err != nil {
		return swapi.Page{}, err
	}
	defer f.Close()
	return swapi.DecodePage(f)
}

// ── Phase 1: every record carries the fields the table needs ──

func validateFieldPresence(records []domain.RawRecord) *phase {
	p := &phase{name: "Field presence"}
	for i, r := range records {
		if r.Name == "" {
			p.errorf("record %d: missing name", i)
		}
		if r.DetailURL == "" {
			p.errorf("record %d (%s): missing url", i, r.Name)
		}
		if r.Population == "" {
			p.errorf("record %d (%s): missing population", i, r.Name)
		}
		if r.SurfaceWater == "" {
			p.errorf("record %d (%s): missing surface_water", i, r.Name)
		}
		if r.Diameter == "" && r.SurfaceWater != domain.Unknown {
			p.errorf("record %d (%s): missing diameter", i, r.Name)
		}
	}
	return p
}

// ── Phase 2: names identify rows ──

func validateUniqueNames(records []domain.RawRecord) *phase {
	p := &phase{name: "Unique names"}
	seen := make(map[string]int, len(records))
	for i, r := range records {
		if j, ok := seen[r.Name]; ok {
			p.errorf("records %d and %d share name %q", j, i, r.Name)
			continue
		}
		seen[r.Name] = i
	}
	return p
}

// ── Phase 3: every record shapes without a format error ──

func validateShaping(records []domain.RawRecord) *phase {
	p := &phase{name: "Numeric field shaping"}
	for _, r := range records {
		if _, err := domain.ShapeRecord(r); err != nil {
			var fe *domain.FormatError
			if errors.As(err, &fe) {
				p.errorf("%s: %s %q is malformed", fe.Record, fe.Field, fe.Value)
				continue
			}
			p.errorf("%s: %v", r.Name, err)
		}
	}
	return p
}

// ── Phase 4: shaped rows come out one per record, ordered by name ──

func validateOrdering(records []domain.RawRecord, locale language.Tag) *phase {
	p := &phase{name: "Row count and ordering"}

	var shapeable []domain.RawRecord
	for _, r := range records {
		if _, err := domain.ShapeRecord(r); err == nil {
			shapeable = append(shapeable, r)
		}
	}

	rows, err := domain.Shape(shapeable, locale)
	if err != nil {
		p.errorf("shape: %v", err)
		return p
	}
	if len(rows) != len(shapeable) {
		p.errorf("row count: got %d rows for %d records", len(rows), len(shapeable))
	}

	c := collate.New(locale)
	for i := 1; i < len(rows); i++ {
		if c.CompareString(rows[i-1].Name, rows[i].Name) > 0 {
			p.errorf("rows %d and %d out of order: %q before %q", i-1, i, rows[i-1].Name, rows[i].Name)
		}
	}
	return p
}
