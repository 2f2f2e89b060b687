package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapReporterFields(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	r := NewZapReporter(zap.New(core))

	r.LogError(DomainNetwork, "NOT_FOUND", "request failed with status 404", map[string]any{
		"endpoint":   "/api/tasks/t1",
		"statusCode": 404,
	})

	entries := logs.All()
	require.Len(t, entries, 1)
	e := entries[0]
	assert.Equal(t, "request failed with status 404", e.Message)

	fields := e.ContextMap()
	assert.Equal(t, "network", fields["domain"])
	assert.Equal(t, "NOT_FOUND", fields["code"])
	assert.Equal(t, map[string]any{"endpoint": "/api/tasks/t1", "statusCode": 404}, fields["meta"])
}

func TestRecorder(t *testing.T) {
	var r Recorder
	r.LogError(DomainAdapter, "INVALID_RESPONSE", "bad", map[string]any{"screen": "home"})

	got := r.Entries()
	require.Len(t, got, 1)
	assert.Equal(t, Entry{
		Domain:  DomainAdapter,
		Code:    "INVALID_RESPONSE",
		Message: "bad",
		Meta:    map[string]any{"screen": "home"},
	}, got[0])
}

func TestNewVerbose(t *testing.T) {
	logger, err := New(true)
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zap.DebugLevel))

	logger, err = New(false)
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zap.DebugLevel))
}

func TestNopAndNilLogger(t *testing.T) {
	Nop().LogError(DomainNetwork, "TIMEOUT", "x", nil)
	NewZapReporter(nil).LogError(DomainNetwork, "TIMEOUT", "x", nil)
}
