package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProdIsJSONAtInfo(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "prod", "")

	log.Debug("hidden")
	log.Info("shown", "user_id", 7)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "shown", rec["msg"])
	assert.Equal(t, float64(7), rec["user_id"])
}

func TestDevIsTextAtDebug(t *testing.T) {
	var buf bytes.Buffer
	NewWithWriter(&buf, "dev", "").Debug("visible")
	assert.Contains(t, buf.String(), "msg=visible")
}

func TestLevelOverride(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "dev", "warn")
	log.Info("dropped")
	log.Warn("kept")
	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "kept")
}
