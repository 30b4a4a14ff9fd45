package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCLILogger_WritesText(t *testing.T) {
	var buf bytes.Buffer
	logger := NewCLILogger(&buf, "info")

	logger.Info("catalog fetched", "records", 10)

	assert.Contains(t, buf.String(), `msg="catalog fetched"`)
	assert.Contains(t, buf.String(), "records=10")
}

func TestNewCLILogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewCLILogger(&buf, "WARN")

	logger.Info("dropped")
	assert.Empty(t, buf.String())

	logger.Warn("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestNewCLILogger_UnknownLevelIsInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := NewCLILogger(&buf, "verbose")

	logger.Debug("dropped")
	logger.Info("kept")

	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "kept")
}
