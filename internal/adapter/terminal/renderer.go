// Package terminal renders shaped planet rows as text tables for the CLI.
package terminal

import (
	"fmt"
	"html"
	"io"
	"net/url"
	"strings"

	"github.com/couchcryptid/planet-catalog/internal/domain"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Output formats.
const (
	FormatTable    = "table"
	FormatMarkdown = "markdown"
	FormatCSV      = "csv"
	FormatHTML     = "html"
)

// Formats lists the supported output formats.
var Formats = []string{FormatTable, FormatMarkdown, FormatCSV, FormatHTML}

// TableRenderer writes planet rows as a table in one of the supported formats.
type TableRenderer struct {
	out    io.Writer
	format string
}

// NewTableRenderer creates a renderer writing to out.
func NewTableRenderer(out io.Writer, format string) (*TableRenderer, error) {
	for _, f := range Formats {
		if f == format {
			return &TableRenderer{out: out, format: format}, nil
		}
	}
	return nil, fmt.Errorf("unknown format %q (want one of %s)", format, strings.Join(Formats, ", "))
}

// RenderTable writes rows with the fixed catalog headers.
func (r *TableRenderer) RenderTable(rows []domain.DisplayRow) {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.Style().Format.Header = text.FormatDefault
	if r.format == FormatHTML {
		// Cells are escaped in row; span conversion would escape the markup again.
		t.Style().HTML.ConvertColorsToSpans = false
		t.Style().HTML.EscapeText = false
	}

	header := make(table.Row, len(domain.TableHeaders))
	for i, h := range domain.TableHeaders {
		header[i] = h
	}
	t.AppendHeader(header)

	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Residents", Align: text.AlignRight},
		{Name: "Population", Align: text.AlignRight},
		{Name: "H20 Surface Area", Align: text.AlignRight},
	})

	for _, row := range rows {
		t.AppendRow(r.row(row))
	}

	switch r.format {
	case FormatMarkdown:
		t.RenderMarkdown()
	case FormatCSV:
		t.RenderCSV()
	case FormatHTML:
		t.RenderHTML()
	default:
		t.Render()
	}
}

func (r *TableRenderer) row(row domain.DisplayRow) table.Row {
	name, area := row.Name, row.SurfaceAreaLabel
	climate, terrain := row.Climate, row.Terrain
	population := row.FormattedPopulation

	switch r.format {
	case FormatMarkdown:
		name = fmt.Sprintf("[%s](%s)", row.Name, row.DetailURL)
	case FormatHTML:
		name = html.EscapeString(row.Name)
		if safeLink(row.DetailURL) {
			name = fmt.Sprintf(`<a href="%s" target="_blank" rel="noreferrer">%s</a>`,
				html.EscapeString(row.DetailURL), name)
		}
		if n, ok := strings.CutSuffix(row.SurfaceAreaLabel, domain.AreaUnit); ok {
			area = html.EscapeString(n) + "km<sup>2</sup>"
		} else {
			area = html.EscapeString(area)
		}
		climate, terrain = html.EscapeString(climate), html.EscapeString(terrain)
		population = html.EscapeString(population)
	}

	return table.Row{name, climate, row.ResidentsCount, terrain, population, area}
}

// safeLink reports whether raw is an absolute http(s) URL.
func safeLink(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
