package http

import (
	"bytes"
	"embed"
	"html/template"
	"strings"
	"time"

	"github.com/couchcryptid/planet-catalog/internal/domain"
	"github.com/couchcryptid/planet-catalog/internal/pipeline"
)

const pageTitle = "Star Wars Planets"

// loadingRefreshSeconds is how often the loading page reloads itself.
const loadingRefreshSeconds = 2

//go:embed templates/catalog.html
var templateFS embed.FS

var catalogTemplate = template.Must(
	template.New("catalog.html").
		Funcs(template.FuncMap{"areaHTML": areaHTML}).
		ParseFS(templateFS, "templates/catalog.html"),
)

type pageData struct {
	Title          string
	Status         string
	Message        string
	Headers        []string
	Rows           []domain.DisplayRow
	RefreshSeconds int
}

// catalogView is the JSON form of the request state.
type catalogView struct {
	Status    string              `json:"status"`
	Error     string              `json:"error,omitempty"`
	Rows      []domain.DisplayRow `json:"rows"`
	Skipped   int                 `json:"skipped,omitempty"`
	FetchedAt *time.Time          `json:"fetched_at,omitempty"`
}

// renderPage executes the catalog template for state.
func renderPage(state pipeline.State) ([]byte, error) {
	data := pageData{
		Title:          pageTitle,
		Status:         state.Status(),
		Headers:        domain.TableHeaders,
		RefreshSeconds: loadingRefreshSeconds,
	}
	switch s := state.(type) {
	case pipeline.Failed:
		data.Message = s.Message
	case pipeline.Loaded:
		data.Rows = s.Rows
	}

	var buf bytes.Buffer
	if err := catalogTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func newCatalogView(state pipeline.State) catalogView {
	v := catalogView{Status: state.Status()}
	switch s := state.(type) {
	case pipeline.Failed:
		v.Error = s.Message
	case pipeline.Loaded:
		v.Rows = s.Rows
		if v.Rows == nil {
			v.Rows = []domain.DisplayRow{}
		}
		v.Skipped = s.Skipped
		fetchedAt := s.FetchedAt
		v.FetchedAt = &fetchedAt
	}
	return v
}

// areaHTML renders the km² unit with a <sup> element.
func areaHTML(label string) template.HTML {
	number, ok := strings.CutSuffix(label, domain.AreaUnit)
	if !ok {
		return template.HTML(template.HTMLEscapeString(label)) //nolint:gosec // escaped above
	}
	return template.HTML(template.HTMLEscapeString(number) + "km<sup>2</sup>") //nolint:gosec // escaped above
}
