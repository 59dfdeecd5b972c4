package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"", slog.LevelInfo, false},
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"loud", slog.LevelInfo, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew(t *testing.T) {
	t.Run("text to fallback writer filters by level", func(t *testing.T) {
		var buf bytes.Buffer
		log, closeFn, err := New(Config{Level: "warn", Fallback: &buf})
		require.NoError(t, err)
		defer closeFn()

		log.Info("hidden")
		log.Warn("shown", "custid", 8)
		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "msg=shown")
		assert.Contains(t, buf.String(), "custid=8")
	})

	t.Run("json format", func(t *testing.T) {
		var buf bytes.Buffer
		log, _, err := New(Config{Format: FormatJSON, Fallback: &buf})
		require.NoError(t, err)

		log.Info("order placed", "orderid", 1)
		var rec map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
		assert.Equal(t, "order placed", rec["msg"])
		assert.Equal(t, float64(1), rec["orderid"])
	})

	t.Run("file output is appended and closable", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "logs", "madang.log")
		log, closeFn, err := New(Config{OutputPath: path})
		require.NoError(t, err)
		log.Info("first")
		require.NoError(t, closeFn())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "msg=first")
	})

	t.Run("no writer discards", func(t *testing.T) {
		log, closeFn, err := New(Config{})
		require.NoError(t, err)
		assert.NoError(t, closeFn())
		log.Info("nowhere")
	})

	t.Run("bad level and format are rejected", func(t *testing.T) {
		_, _, err := New(Config{Level: "loud"})
		assert.Error(t, err)
		_, _, err = New(Config{Format: "xml", Fallback: &bytes.Buffer{}})
		assert.Error(t, err)
	})
}
