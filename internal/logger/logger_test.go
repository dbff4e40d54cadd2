package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	for _, json := range []bool{true, false} {
		l, err := New("debug", json)
		require.NoError(t, err)
		require.NotNil(t, l)
	}

	_, err := New("loud", false)
	assert.Error(t, err)
}

func TestWith_KeepsFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := &Logger{SugaredLogger: zap.New(core).Sugar()}

	l.With("component", "brace").Info("section set", "name", "CT-100x200x8x12")

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "section set", entry.Message)
	assert.Equal(t, "brace", entry.ContextMap()["component"])
	assert.Equal(t, "CT-100x200x8x12", entry.ContextMap()["name"])
}

func TestNop(t *testing.T) {
	assert.NotPanics(t, func() {
		Nop().Warn("ignored", "k", 1)
	})
}
