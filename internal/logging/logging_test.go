// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("json format", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := New(&buf, Options{Level: "debug", Format: "json"})
		require.NoError(t, err)

		logger.Debug("segmented", "sections", 3)

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "segmented", entry["msg"])
		assert.Equal(t, float64(3), entry["sections"])
	})

	t.Run("level filters", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := New(&buf, Options{Level: "warn"})
		require.NoError(t, err)

		logger.Info("hidden")
		logger.Warn("shown")
		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "shown")
	})

	t.Run("rejects unknown values", func(t *testing.T) {
		_, err := New(&bytes.Buffer{}, Options{Level: "loud"})
		assert.Error(t, err)
		_, err = New(&bytes.Buffer{}, Options{Format: "xml"})
		assert.Error(t, err)
	})
}
