// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewLogger_RoleField verifies that every log entry produced by a logger
// created with NewLogger contains the expected "role" field.
func TestNewLogger_RoleField(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("test-role", &buf)

	l.Info().Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "test-role", entry["role"])
	assert.Equal(t, "hello", entry["message"])
}

// TestNewLogger_ContainsTimestamp verifies that log entries contain a timestamp field.
func TestNewLogger_ContainsTimestamp(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("ts-role", &buf)

	l.Info().Msg("ts check")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	_, hasTime := entry["time"]
	assert.True(t, hasTime, "expected 'time' field in log entry")
}

// TestNewLogger_CallerFieldName verifies that the caller field is named "func".
func TestNewLogger_CallerFieldName(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("caller-role", &buf)
	assert.Equal(t, "func", zerolog.CallerFieldName)

	l.Info().Msg("caller")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Contains(t, entry["func"], "TestNewLogger_CallerFieldName")
}

func TestNewConsoleLogger_HumanReadable(t *testing.T) {
	var buf bytes.Buffer
	l := NewConsoleLogger("console", &buf)

	l.Warn().Str("space", "Prod").Msg("space not found")

	out := buf.String()
	assert.Contains(t, out, "space not found")
	assert.Contains(t, out, "Prod")
	assert.False(t, json.Valid(buf.Bytes()), "console output should not be JSON")
}

func TestNew(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		l, err := New("r", "json", "", &buf)
		require.NoError(t, err)
		l.Info().Msg("x")
		assert.True(t, json.Valid(buf.Bytes()))
	})

	t.Run("level filters", func(t *testing.T) {
		var buf bytes.Buffer
		l, err := New("r", "json", "warn", &buf)
		require.NoError(t, err)
		l.Info().Msg("dropped")
		assert.Empty(t, buf.String())
		l.Warn().Msg("kept")
		assert.Contains(t, buf.String(), "kept")
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := New("r", "xml", "", &bytes.Buffer{})
		assert.Error(t, err)
	})

	t.Run("unknown level", func(t *testing.T) {
		_, err := New("r", "json", "loud", &bytes.Buffer{})
		assert.Error(t, err)
	})
}

// TestNop_DiscardsOutput verifies that a Nop logger produces no output.
func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String(), "Nop logger should produce no output")
}

// TestWithRunID verifies that the child logger carries run_id and the parent does not.
func TestWithRunID(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLogger("parent", &buf)
	child := parent.WithRunID("run-1")

	child.Info().Msg("child")
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "run-1", entry["run_id"])

	buf.Reset()
	parent.Info().Msg("parent")
	entry = map[string]any{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	_, has := entry["run_id"]
	assert.False(t, has)
}
