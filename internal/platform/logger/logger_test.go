package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevelAndFormat(t *testing.T) {
	assert.Equal(t, Debug, ParseLevel(" DEBUG "))
	assert.Equal(t, Warn, ParseLevel("warning"))
	assert.Equal(t, Info, ParseLevel("nope"))
	assert.Equal(t, "error", Error.String())

	assert.Equal(t, FormatJSON, ParseFormat("JSON"))
	assert.Equal(t, FormatText, ParseFormat(""))
}

func TestZapLogger_WithMergesFieldsAndFiltersLevel(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	log := NewWithCore(core, "shelter-test")

	log.Debug("hidden", nil)
	child := log.With(map[string]any{"dog_id": "d-1", "": "ignored"})
	child.Info("saved", map[string]any{"lines": 5, "err": errors.New("boom")})

	entries := logs.All()
	require.Len(t, entries, 1)
	e := entries[0]
	assert.Equal(t, "saved", e.Message)

	ctx := e.ContextMap()
	assert.Equal(t, "shelter-test", ctx["app"])
	assert.Equal(t, "d-1", ctx["dog_id"])
	assert.EqualValues(t, 5, ctx["lines"])
	assert.Equal(t, "boom", ctx["err"])
	_, hasEmpty := ctx[""]
	assert.False(t, hasEmpty)
}

func TestNop(t *testing.T) {
	l := Nop()
	l.Error("nothing", map[string]any{"a": 1})
	assert.Same(t, l, l.With(nil))
}
