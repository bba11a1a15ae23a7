package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"WARN", zapcore.WarnLevel},
		{"warning", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"", zapcore.InfoLevel},
		{"bogus", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestZapAdapter_FieldsAndErrors(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := NewZapAdapter(zap.New(core)).WithFields(map[string]interface{}{"component": "engine"})

	log.Info("recommendation computed", map[string]interface{}{"package": "Fresh Start", "seats": 4})
	log.WithError(errors.New("boom")).Error("failed", nil)

	entries := logs.All()
	assert.Len(t, entries, 2)

	first := entries[0].ContextMap()
	assert.Equal(t, "engine", first["component"])
	assert.Equal(t, "Fresh Start", first["package"])
	assert.EqualValues(t, 4, first["seats"])

	second := entries[1].ContextMap()
	assert.Equal(t, "boom", second["error"])
}

func TestMapToZapFields_SortedKeys(t *testing.T) {
	fields := mapToZapFields(map[string]interface{}{"b": 2, "a": 1, "c": 3})
	if assert.Len(t, fields, 3) {
		assert.Equal(t, "a", fields[0].Key)
		assert.Equal(t, "b", fields[1].Key)
		assert.Equal(t, "c", fields[2].Key)
	}
	assert.Nil(t, mapToZapFields(nil))
}
