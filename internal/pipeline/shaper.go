package pipeline

import (
	"errors"
	"log/slog"

	"github.com/couchcryptid/planet-catalog/internal/domain"
	"github.com/couchcryptid/planet-catalog/internal/observability"
	"golang.org/x/text/language"
)

// Shaper turns fetched records into sorted display rows, applying the
// malformed-row policy.
type Shaper struct {
	locale  language.Tag
	strict  bool
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewShaper creates a Shaper. When strict is true the first malformed record
// fails the whole batch; otherwise malformed records are logged and dropped.
func NewShaper(locale language.Tag, strict bool, logger *slog.Logger, metrics *observability.Metrics) *Shaper {
	return &Shaper{
		locale:  locale,
		strict:  strict,
		logger:  logger,
		metrics: metrics,
	}
}

// Shape returns the display rows for records sorted by name, plus the number
// of records skipped as malformed.
func (s *Shaper) Shape(records []domain.RawRecord) ([]domain.DisplayRow, int, error) {
	rows := make([]domain.DisplayRow, 0, len(records))
	skipped := 0

	for _, r := range records {
		row, err := domain.ShapeRecord(r)
		if err != nil {
			s.metrics.ShapeErrors.Inc()
			if s.strict {
				return nil, skipped, err
			}

			attrs := []any{"error", err, "planet", r.Name}
			var fe *domain.FormatError
			if errors.As(err, &fe) {
				attrs = append(attrs, "field", fe.Field, "value", fe.Value)
			}
			s.logger.Warn("shape failed, skipping record", attrs...)
			skipped++
			continue
		}
		rows = append(rows, row)
	}

	domain.SortRows(rows, s.locale)
	s.metrics.RowsShaped.Add(float64(len(rows)))
	return rows, skipped, nil
}
