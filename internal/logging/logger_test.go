package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observe(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	prev := globalLogger
	SetLogger(zap.New(core).Sugar())
	t.Cleanup(func() { globalLogger = prev })
	return logs
}

func TestWithRequestCarriesSessionFields(t *testing.T) {
	logs := observe(t)

	WithRequest("req-1", "6f1c1d1e-0000-4a57-9a53-111111111111", "/api/v1/summary").Infow("HTTP request completed", "status_code", 200)

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "req-1", fields["request_id"])
	assert.Equal(t, "6f1c1d1e-0000-4a57-9a53-111111111111", fields["session_id"])
	assert.Equal(t, "/api/v1/summary", fields["endpoint"])
	assert.EqualValues(t, 200, fields["status_code"])
}

func TestForSessionWithoutID(t *testing.T) {
	logs := observe(t)

	ForSession("").Warnw("Discarding unreadable session upload")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "anonymous", logs.All()[0].ContextMap()["session_id"])
	assert.Equal(t, zapcore.WarnLevel, logs.All()[0].Level)
}

func TestPackageHelpers(t *testing.T) {
	logs := observe(t)

	Info("started", "port", "8080")
	Warn("slow")
	Error("failed", "error", "boom")

	require.Equal(t, 3, logs.Len())
	assert.Equal(t, "8080", logs.FilterMessage("started").All()[0].ContextMap()["port"])
	assert.Equal(t, 1, logs.FilterLevelExact(zapcore.ErrorLevel).Len())
}

func TestNewConfig(t *testing.T) {
	prod := newConfig("production")
	assert.Equal(t, "json", prod.Encoding)
	assert.Equal(t, zapcore.InfoLevel, prod.Level.Level())
	assert.Equal(t, ServiceName, prod.InitialFields["service"])

	dev := newConfig("development")
	assert.Equal(t, zapcore.DebugLevel, dev.Level.Level())
	assert.Equal(t, "development", dev.InitialFields["env"])
}
