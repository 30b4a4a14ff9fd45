package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/couchcryptid/planet-catalog/internal/domain"
	"github.com/couchcryptid/planet-catalog/internal/observability"
)

// ErrAlreadyStarted is returned when Run is called more than once.
var ErrAlreadyStarted = errors.New("catalog fetch already started")

// Controller performs the one-shot catalog fetch and holds the resulting
// request state.
type Controller struct {
	source  domain.RecordSource
	shaper  *Shaper
	logger  *slog.Logger
	metrics *observability.Metrics
	started atomic.Bool

	mu    sync.RWMutex
	state State
}

// New creates a Controller in the Loading state.
func New(source domain.RecordSource, shaper *Shaper, logger *slog.Logger, metrics *observability.Metrics) *Controller {
	c := &Controller{
		source:  source,
		shaper:  shaper,
		logger:  logger,
		metrics: metrics,
	}
	c.setState(Loading{StartedAt: clock.Now()})
	return c
}

// State returns the current request state.
func (c *Controller) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// CheckReadiness returns nil once the catalog has been loaded, or an error
// describing why it has not.
func (c *Controller) CheckReadiness(_ context.Context) error {
	switch s := c.State().(type) {
	case Loaded:
		return nil
	case Failed:
		return fmt.Errorf("catalog fetch failed: %s", s.Message)
	default:
		return errors.New("catalog has not been loaded yet")
	}
}

// Run fetches the catalog once, shapes it and transitions to Loaded or
// Failed. The failure, if any, is also returned. If ctx is cancelled before
// the fetch resolves the result is discarded and the state stays Loading.
func (c *Controller) Run(ctx context.Context) error {
	if !c.started.CompareAndSwap(false, true) {
		return ErrAlreadyStarted
	}

	c.logger.Info("fetching catalog")
	records, err := c.source.FetchRecords(ctx)
	if ctx.Err() != nil {
		c.logger.Info("catalog fetch abandoned", "reason", ctx.Err())
		return nil
	}
	if err != nil {
		c.fail(err)
		return err
	}

	rows, skipped, err := c.shaper.Shape(records)
	if err != nil {
		c.fail(err)
		return err
	}

	c.setState(Loaded{Rows: rows, Skipped: skipped, FetchedAt: clock.Now()})
	c.logger.Info("catalog loaded", "rows", len(rows), "skipped", skipped)
	return nil
}

func (c *Controller) fail(err error) {
	c.logger.Error("catalog unavailable", "error", err)
	c.setState(Failed{Message: err.Error(), Err: err, At: clock.Now()})
}

func (c *Controller) setState(s State) {
	c.mu.Lock()
	c.state = s
	c.mu.Unlock()

	for _, status := range []string{StatusLoading, StatusError, StatusLoaded} {
		v := 0.0
		if status == s.Status() {
			v = 1
		}
		c.metrics.ControllerState.WithLabelValues(status).Set(v)
	}
}
