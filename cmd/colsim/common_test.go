package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputOptions_ApplyToContext(t *testing.T) {
	t.Run("with timeout", func(t *testing.T) {
		opts := OutputOptions{Timeout: 100 * time.Millisecond}
		ctx, cancel := opts.ApplyToContext(context.Background())
		defer cancel()

		deadline, ok := ctx.Deadline()
		assert.True(t, ok)
		assert.WithinDuration(t, time.Now().Add(100*time.Millisecond), deadline, 10*time.Millisecond)
	})

	t.Run("no timeout", func(t *testing.T) {
		opts := OutputOptions{Timeout: 0}
		ctx, cancel := opts.ApplyToContext(context.Background())
		defer cancel()

		_, ok := ctx.Deadline()
		assert.False(t, ok)
	})
}

func TestOutputOptions_ResolveFormat(t *testing.T) {
	supported := []string{"table", "json", "yaml"}

	tests := []struct {
		name       string
		flag       string
		configured string
		expected   string
		wantErr    bool
	}{
		{name: "flag wins", flag: "json", configured: "yaml", expected: "json"},
		{name: "configured fallback", configured: "yaml", expected: "yaml"},
		{name: "unknown flag", flag: "sarif", configured: "table", wantErr: true},
		{name: "nothing set", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := OutputOptions{Format: tt.flag}
			got, err := opts.ResolveFormat(tt.configured, supported)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestOutputOptions_FormatterOptions(t *testing.T) {
	opts := OutputOptions{}
	fo := opts.FormatterOptions(false)
	assert.True(t, fo.Indent)
	assert.False(t, fo.NoColor)

	opts = OutputOptions{Compact: true, OutFile: "report.txt"}
	fo = opts.FormatterOptions(false)
	assert.False(t, fo.Indent)
	assert.True(t, fo.NoColor, "files never get ANSI colors")

	opts = OutputOptions{}
	assert.True(t, opts.FormatterOptions(true).NoColor)
}

func TestOutputOptions_OpenWriterStdout(t *testing.T) {
	var buf bytes.Buffer
	opts := OutputOptions{}
	w, closeFn, err := opts.OpenWriter(&buf)
	require.NoError(t, err)
	defer closeFn()
	assert.Same(t, &buf, w)
}
