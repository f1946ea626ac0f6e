package ui_test

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vincentqb/DotDash/pkg/errors"
	"github.com/vincentqb/DotDash/pkg/types"
	"github.com/vincentqb/DotDash/pkg/ui"
)

func sampleReport() *types.Report {
	return &types.Report{
		Command: "link",
		Profiles: []types.ProfileReport{
			{
				Name:   "default",
				Status: "alert",
				Entries: []types.EntryReport{
					{
						Path:        "vimrc",
						Destination: "/home/user/.vimrc",
						Status:      "linked",
					},
					{
						Path:        "bashrc",
						Destination: "/home/user/.bashrc",
						Status:      "conflict",
						Message:     "destination exists and is not a symlink",
						Failed:      true,
					},
				},
			},
		},
		Timestamp: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestNewRenderer(t *testing.T) {
	tests := []struct {
		name        string
		format      ui.Format
		expectError bool
	}{
		{
			name:   "create terminal renderer",
			format: ui.FormatTerminal,
		},
		{
			name:   "create text renderer",
			format: ui.FormatText,
		},
		{
			name:   "create json renderer",
			format: ui.FormatJSON,
		},
		{
			name:   "auto falls back to text for non-file writers",
			format: ui.FormatAuto,
		},
		{
			name:        "invalid format",
			format:      ui.Format(999),
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			renderer, err := ui.NewRenderer(tt.format, buf)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, renderer)
				assert.Contains(t, err.Error(), "unknown format")
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, renderer)
			}
		})
	}
}

func TestRendererInterface(t *testing.T) {
	// Every format must accept the full method set without errors.
	formats := []ui.Format{
		ui.FormatTerminal,
		ui.FormatText,
		ui.FormatJSON,
	}

	for _, format := range formats {
		t.Run(format.String()+" renderer implements interface", func(t *testing.T) {
			buf := &bytes.Buffer{}
			renderer, err := ui.NewRenderer(format, buf)
			require.NoError(t, err)

			assert.NoError(t, renderer.RenderMessage("test message"))
			assert.NoError(t, renderer.RenderError(assert.AnError))
			assert.NoError(t, renderer.RenderReport(sampleReport()))
			assert.NotEmpty(t, buf.String())
		})
	}
}

func TestJSONRenderer(t *testing.T) {
	buf := &bytes.Buffer{}
	renderer, err := ui.NewRenderer(ui.FormatJSON, buf)
	require.NoError(t, err)

	t.Run("render message", func(t *testing.T) {
		buf.Reset()
		require.NoError(t, renderer.RenderMessage("hello world"))

		var result map[string]string
		require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
		assert.Equal(t, "hello world", result["message"])
	})

	t.Run("render plain error", func(t *testing.T) {
		buf.Reset()
		require.NoError(t, renderer.RenderError(assert.AnError))

		var result map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
		assert.Equal(t, assert.AnError.Error(), result["error"])
		assert.Equal(t, "UNKNOWN", result["code"])
	})

	t.Run("render coded error with details", func(t *testing.T) {
		buf.Reset()
		codedErr := errors.New(errors.ErrProfileNotFound, "profile(s) not found").
			WithDetail("missing", []string{"work"})
		require.NoError(t, renderer.RenderError(codedErr))

		var result map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
		assert.Equal(t, "PROFILE_NOT_FOUND", result["code"])
		details, ok := result["details"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, []interface{}{"work"}, details["missing"])
	})

	t.Run("render report", func(t *testing.T) {
		buf.Reset()
		require.NoError(t, renderer.RenderReport(sampleReport()))

		var result types.Report
		require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
		assert.Equal(t, "link", result.Command)
		require.Len(t, result.Profiles, 1)
		assert.Equal(t, "default", result.Profiles[0].Name)
		require.Len(t, result.Profiles[0].Entries, 2)
		assert.True(t, result.Profiles[0].Entries[1].Failed)
	})
}

func TestTextRenderer(t *testing.T) {
	buf := &bytes.Buffer{}
	renderer, err := ui.NewRenderer(ui.FormatText, buf)
	require.NoError(t, err)

	t.Run("render message", func(t *testing.T) {
		buf.Reset()
		require.NoError(t, renderer.RenderMessage("hello world"))
		assert.Equal(t, "hello world\n", buf.String())
	})

	t.Run("render error", func(t *testing.T) {
		buf.Reset()
		require.NoError(t, renderer.RenderError(assert.AnError))
		assert.Equal(t, "Error: assert.AnError general error for testing\n", buf.String())
	})

	t.Run("render error with available profiles", func(t *testing.T) {
		buf.Reset()
		codedErr := errors.New(errors.ErrProfileNotFound, "profile(s) not found: work").
			WithDetail("available", []string{"default", "laptop"})
		require.NoError(t, renderer.RenderError(codedErr))
		assert.Contains(t, buf.String(), "Available profiles: default, laptop")
	})

	t.Run("render report", func(t *testing.T) {
		buf.Reset()
		require.NoError(t, renderer.RenderReport(sampleReport()))
		output := buf.String()

		assert.Contains(t, output, "default\n")
		assert.Contains(t, output, "linked to /home/user/.vimrc")
		assert.Contains(t, output, "destination exists and is not a symlink")
		assert.Contains(t, output, "1 linked, 1 conflict")
		assert.NotContains(t, output, "\x1b[")
	})

	t.Run("render dry run report", func(t *testing.T) {
		buf.Reset()
		report := sampleReport()
		report.DryRun = true
		require.NoError(t, renderer.RenderReport(report))
		output := buf.String()

		assert.Contains(t, output, "DRY RUN")
		assert.Contains(t, output, "will be linked to /home/user/.vimrc")
	})
}

func TestTerminalRenderer(t *testing.T) {
	buf := &bytes.Buffer{}
	renderer, err := ui.NewRenderer(ui.FormatTerminal, buf)
	require.NoError(t, err)

	t.Run("render message", func(t *testing.T) {
		buf.Reset()
		require.NoError(t, renderer.RenderMessage("hello world"))
		assert.Contains(t, buf.String(), "hello world")
	})

	t.Run("render error", func(t *testing.T) {
		buf.Reset()
		require.NoError(t, renderer.RenderError(assert.AnError))
		assert.Contains(t, buf.String(), "assert.AnError")
	})

	t.Run("render report", func(t *testing.T) {
		buf.Reset()
		require.NoError(t, renderer.RenderReport(sampleReport()))
		output := buf.String()

		assert.Contains(t, output, "default")
		assert.Contains(t, output, "vimrc")
		assert.Contains(t, output, "destination exists and is not a symlink")
	})
}
