package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/natefinch/lumberjack.v2"
)

func TestLoggerContextAttrs(t *testing.T) {
	var buf bytes.Buffer
	log := Logger(&buf, true, slog.LevelInfo)

	ctx := AppendCtx(context.Background(), slog.String("name", "tilectl"))
	ctx = AppendCtx(ctx, slog.Int("run", 2))
	log.InfoContext(ctx, "hello", "k", "v")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "hello", rec["msg"])
	assert.Equal(t, "v", rec["k"])
	assert.Equal(t, "tilectl", rec["name"])
	assert.Equal(t, float64(2), rec["run"])
}

func TestLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	log := Logger(&buf, false, slog.LevelWarn)
	log.Info("dropped")
	assert.Empty(t, buf.String())
	log.With("a", 1).WithGroup("g").Warn("kept", "b", 2)
	assert.Contains(t, buf.String(), "kept")
	assert.Contains(t, buf.String(), "g.b=2")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
		ok   bool
	}{
		{"debug", slog.LevelDebug, true},
		{"INFO", slog.LevelInfo, true},
		{"Warn", slog.LevelWarn, true},
		{"ERROR", slog.LevelError, true},
		{"loud", slog.LevelInfo, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseLevel(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestWriter(t *testing.T) {
	assert.Equal(t, os.Stderr, Writer(""))
	assert.Equal(t, os.Stderr, Writer("-"))

	path := filepath.Join(t.TempDir(), "tilectl.log")
	w := Writer(path)
	lj, ok := w.(*lumberjack.Logger)
	require.True(t, ok)
	defer lj.Close()

	_, err := w.Write([]byte("line\n"))
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "line\n", string(data))
}
