// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// entries decodes one JSON object per line written to buf.
func entries(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry), line)
		out = append(out, entry)
	}
	return out
}

func TestNewLogger_EntryShape(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("course-plus-server")
	l.Logger = l.Output(&buf)

	l.Info().Str("course", "c1").Msg("course created")

	got := entries(t, &buf)
	require.Len(t, got, 1)
	assert.Equal(t, "course-plus-server", got[0]["role"])
	assert.Equal(t, "c1", got[0]["course"])
	assert.Equal(t, "info", got[0]["level"])
	assert.Contains(t, got[0], "time")
	// the caller is recorded as a function name under "func"
	assert.Contains(t, got[0]["func"], "TestNewLogger_EntryShape")
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestSetLevel(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.DebugLevel) })

	tests := []struct {
		level   string
		want    zerolog.Level
		wantErr bool
	}{
		{level: "", want: zerolog.DebugLevel},
		{level: "warn", want: zerolog.WarnLevel},
		{level: "error", want: zerolog.ErrorLevel},
		{level: "loud", want: zerolog.DebugLevel, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)

			err := SetLevel(tt.level)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, zerolog.GlobalLevel())
		})
	}
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Error().Msg("payment gateway down")

	assert.Empty(t, buf.String())
}

func TestGetChildLogger_FieldsDoNotReachParent(t *testing.T) {
	var buf bytes.Buffer
	parent := &Logger{zerolog.New(&buf).With().Str("role", "server").Logger()}

	child := parent.GetChildLogger()
	require.NotSame(t, parent, child)
	child.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", "t-1")
	})

	child.Info().Msg("from child")
	parent.Info().Msg("from parent")

	got := entries(t, &buf)
	require.Len(t, got, 2)
	assert.Equal(t, "server", got[0]["role"])
	assert.Equal(t, "t-1", got[0]["trace_id"])
	assert.Equal(t, "server", got[1]["role"])
	assert.NotContains(t, got[1], "trace_id")
}

func TestFromContextAndRequest(t *testing.T) {
	var buf bytes.Buffer
	attached := zerolog.New(&buf).With().Str("trace_id", "t-2").Logger()
	ctx := attached.WithContext(context.Background())

	FromContext(ctx).Info().Msg("store call")
	req := httptest.NewRequest(http.MethodGet, "/courses", nil).WithContext(ctx)
	FromRequest(req).Info().Msg("handler call")

	got := entries(t, &buf)
	require.Len(t, got, 2)
	for _, entry := range got {
		assert.Equal(t, "t-2", entry["trace_id"])
	}
}

func TestFromContext_WithoutLoggerIsDisabled(t *testing.T) {
	l := FromContext(context.Background())
	require.NotNil(t, l)
	assert.Equal(t, zerolog.Disabled, l.GetLevel())

	l = FromRequest(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NotNil(t, l)
	assert.Equal(t, zerolog.Disabled, l.GetLevel())
}
