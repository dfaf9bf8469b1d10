package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maroofsyyed/dominion1/internal/config"
)

func TestNewWithWriter(t *testing.T) {
	t.Run("json output respects level", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewWithWriter(config.LogConfig{Level: "warn"}, &buf)

		logger.Info().Msg("hidden")
		logger.Warn().Str("k", "v").Msg("shown")

		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
		assert.Equal(t, "shown", entry["message"])
		assert.Equal(t, "v", entry["k"])
		assert.Equal(t, "dominion", entry["service"])
	})

	t.Run("bad level falls back to info", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewWithWriter(config.LogConfig{Level: "loud"}, &buf)
		logger.Debug().Msg("debug")
		assert.Empty(t, buf.String())
		logger.Info().Msg("info")
		assert.Contains(t, buf.String(), `"info"`)
	})

	t.Run("pretty writer", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewWithWriter(config.LogConfig{Level: "info", Pretty: true}, &buf)
		logger.Info().Msg("hello")
		assert.Contains(t, buf.String(), "hello")
		assert.NotContains(t, buf.String(), `"message"`)
	})
}
