package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	log, err := New(DefaultConfig())
	require.NoError(t, err)
	require.NotNil(t, log)
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Level = "chatty"

	_, err := New(cfg)
	assert.Error(t, err)
}

func TestNewConsoleFormat(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Format = "console"
	cfg.Development = true

	log, err := New(cfg)
	require.NoError(t, err)
	require.NotNil(t, log)
}

func TestWithReturnsIndependentLogger(t *testing.T) {
	log := MustNew(DefaultConfig())

	child := log.With("component", "pricing")
	require.NotNil(t, child)
	assert.NotSame(t, log, child)
}

func TestWithContextAttachesRequestID(t *testing.T) {
	log := MustNew(DefaultConfig())

	ctx := context.WithValue(context.Background(), RequestIDKey, "req-42")
	child := log.WithContext(ctx)

	require.NotNil(t, child)
	assert.NotSame(t, log, child)

	// A context without a request ID is fine too.
	assert.NotNil(t, log.WithContext(context.Background()))
}

func TestNamed(t *testing.T) {
	log := MustNew(DefaultConfig())
	assert.NotNil(t, log.Named("engine"))
}
