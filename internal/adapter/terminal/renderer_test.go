package terminal

import (
	"bytes"
	"strings"
	"testing"

	"github.com/couchcryptid/planet-catalog/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRows() []domain.DisplayRow {
	return []domain.DisplayRow{
		{
			Name:                "Alderaan",
			Climate:             "temperate",
			Terrain:             "grasslands, mountains",
			ResidentsCount:      3,
			FormattedPopulation: "2 000 000 000",
			SurfaceAreaLabel:    "196 349 541km²",
			DetailURL:           "https://swapi.dev/api/planets/2/",
		},
		{
			Name:                "Tatooine",
			Climate:             "arid",
			Terrain:             "desert",
			ResidentsCount:      10,
			FormattedPopulation: "200 000",
			SurfaceAreaLabel:    "3 440 554km²",
			DetailURL:           "https://swapi.dev/api/planets/1/",
		},
	}
}

func render(t *testing.T, format string) string {
	t.Helper()
	var buf bytes.Buffer
	r, err := NewTableRenderer(&buf, format)
	require.NoError(t, err)
	r.RenderTable(testRows())
	return buf.String()
}

func TestNewTableRenderer_UnknownFormat(t *testing.T) {
	_, err := NewTableRenderer(&bytes.Buffer{}, "yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "yaml")
}

func TestRenderTable_Table(t *testing.T) {
	out := render(t, FormatTable)

	for _, h := range domain.TableHeaders {
		assert.Contains(t, out, h)
	}
	assert.Contains(t, out, "196 349 541km²")
	assert.Contains(t, out, "2 000 000 000")
	assert.Less(t, strings.Index(out, "Alderaan"), strings.Index(out, "Tatooine"))
	assert.Less(t, strings.Index(out, "Name"), strings.Index(out, "Climate"))
	assert.Less(t, strings.Index(out, "Residents"), strings.Index(out, "Terrain"))
}

func TestRenderTable_Markdown(t *testing.T) {
	out := render(t, FormatMarkdown)

	assert.Contains(t, out, "[Alderaan](https://swapi.dev/api/planets/2/)")
	assert.Contains(t, out, "| Name |")
}

func TestRenderTable_CSV(t *testing.T) {
	out := render(t, FormatCSV)

	assert.Contains(t, out, "Name,Climate,Residents,Terrain,Population,H20 Surface Area")
	assert.Contains(t, out, "Tatooine,arid,10,desert,200 000,3 440 554km²")
}

func TestRenderTable_HTML(t *testing.T) {
	out := render(t, FormatHTML)

	assert.Contains(t, out, `<a href="https://swapi.dev/api/planets/2/" target="_blank" rel="noreferrer">Alderaan</a>`)
	assert.Contains(t, out, "196 349 541km<sup>2</sup>")
	assert.NotContains(t, out, "&lt;a href")
	assert.NotContains(t, out, "&lt;sup&gt;")
}

func TestRenderTable_HTMLEscapesCellText(t *testing.T) {
	var buf bytes.Buffer
	r, err := NewTableRenderer(&buf, FormatHTML)
	require.NoError(t, err)
	r.RenderTable([]domain.DisplayRow{{
		Name:                "<b>Evil</b>",
		Climate:             "a & b",
		FormattedPopulation: "?",
		SurfaceAreaLabel:    "?",
		DetailURL:           "https://swapi.dev/api/planets/1/",
	}})

	out := buf.String()
	assert.Contains(t, out, `rel="noreferrer">&lt;b&gt;Evil&lt;/b&gt;</a>`)
	assert.Contains(t, out, "a &amp; b")
	assert.NotContains(t, out, "<b>")
}

func TestRenderTable_HTMLDropsUnsafeLinks(t *testing.T) {
	var buf bytes.Buffer
	r, err := NewTableRenderer(&buf, FormatHTML)
	require.NoError(t, err)
	r.RenderTable([]domain.DisplayRow{
		{Name: "Evil", DetailURL: "javascript:alert(1)", FormattedPopulation: "?", SurfaceAreaLabel: "?"},
		{Name: "Relative", DetailURL: "/api/planets/3/", FormattedPopulation: "?", SurfaceAreaLabel: "?"},
	})

	out := buf.String()
	assert.NotContains(t, out, "javascript:")
	assert.NotContains(t, out, "<a href")
	assert.Contains(t, out, "Evil")
	assert.Contains(t, out, "Relative")
}

func TestSafeLink(t *testing.T) {
	assert.True(t, safeLink("https://swapi.dev/api/planets/1/"))
	assert.True(t, safeLink("http://localhost:9000/api/planets/1/"))
	assert.False(t, safeLink("javascript:alert(1)"))
	assert.False(t, safeLink("JavaScript:alert(1)"))
	assert.False(t, safeLink("/api/planets/1/"))
	assert.False(t, safeLink(""))
}
