package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type key string

func TestWrap_WritesFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := Wrap(zap.New(core)).With(String(key("component"), "test"))

	l.Debug("hello", Int(key("line"), int8(7)), Any(key("payload"), []int{1}))

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "hello", entries[0].Message)

	fields := entries[0].ContextMap()
	assert.Equal(t, "test", fields["component"])
	assert.Equal(t, int64(7), fields["line"])
}

func TestNop_Discards(t *testing.T) {
	l := Nop()
	l.Info("nothing")
	assert.NoError(t, l.Sync())
}

func TestNew_IsCached(t *testing.T) {
	assert.Same(t, New(), New())
}
