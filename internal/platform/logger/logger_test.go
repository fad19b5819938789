package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONOutsideLocal(t *testing.T) {
	var buf bytes.Buffer
	NewWithWriter(&buf, false).Info("started", "addr", ":8080")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "started", entry["msg"])
	assert.Equal(t, "msalsa", entry["service"])
	assert.Equal(t, ":8080", entry["addr"])
}

func TestTextLocally(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, true)
	log.Debug("tree drawn")

	assert.Contains(t, buf.String(), "msg=\"tree drawn\"")
}
