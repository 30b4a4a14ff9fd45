package pipeline

import (
	"time"

	"github.com/couchcryptid/planet-catalog/internal/domain"
)

// Status labels, used for metrics and the JSON view.
const (
	StatusLoading = "loading"
	StatusError   = "error"
	StatusLoaded  = "loaded"
)

// State is the request state exposed to renderers. It is one of Loading,
// Failed or Loaded.
type State interface {
	Status() string
	isState()
}

// Loading is the initial state, held until the catalog fetch resolves.
type Loading struct {
	StartedAt time.Time
}

// Failed carries the human-readable message of a failed fetch or shape.
type Failed struct {
	Message string
	Err     error
	At      time.Time
}

// Loaded carries the shaped, sorted rows of a successful fetch.
type Loaded struct {
	Rows      []domain.DisplayRow
	Skipped   int // malformed records dropped under the skip policy
	FetchedAt time.Time
}

func (Loading) Status() string { return StatusLoading }
func (Failed) Status() string  { return StatusError }
func (Loaded) Status() string  { return StatusLoaded }

func (Loading) isState() {}
func (Failed) isState()  {}
func (Loaded) isState()  {}
