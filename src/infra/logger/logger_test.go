package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"staffrecords/src/infra/config"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, slog.LevelInfo, parseLevel("info"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warning"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelWarn, parseLevel("loud"))
}

func TestPlainFormat(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(config.LogConfig{Level: "info", Format: "plain"}, &buf)

	WithRunID(log, "abc").Info("schema created", "tables", 3)
	Debug(log, "hidden")

	assert.Equal(t, "schema created\n", buf.String())
}

func TestJSONFormatCarriesRunID(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(config.LogConfig{Level: "info", Format: "json"}, &buf)

	WithComponent(WithRunID(log, "abc"), "employees").Info("inserted")

	assert.Contains(t, buf.String(), `"run_id":"abc"`)
	assert.Contains(t, buf.String(), `"component":"employees"`)
}

func TestNilGuards(t *testing.T) {
	assert.NotPanics(t, func() {
		Info(nil, "x")
		Warn(nil, "x")
		Error(nil, "x")
		Debug(nil, "x")
		assert.Nil(t, WithComponent(nil, "x"))
	})
}
