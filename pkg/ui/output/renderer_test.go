// pkg/ui/output/renderer_test.go
// TEST TYPE: Output Rendering Test
// DEPENDENCIES: None (pure data transformation)
// PURPOSE: Test rendering of reports to terminal output

package output_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vincentqb/DotDash/pkg/errors"
	"github.com/vincentqb/DotDash/pkg/types"
	"github.com/vincentqb/DotDash/pkg/ui/output"
)

func TestRendererRender(t *testing.T) {
	tests := []struct {
		name        string
		report      *types.Report
		noColor     bool
		wantStrings []string
		skipStrings []string
	}{
		{
			name: "successful link",
			report: &types.Report{
				Command: "link",
				Profiles: []types.ProfileReport{
					{
						Name:   "default",
						Status: "success",
						Entries: []types.EntryReport{
							{
								Path:        "vimrc",
								Destination: "/home/user/.vimrc",
								Status:      "linked",
							},
						},
					},
				},
			},
			noColor: true,
			wantStrings: []string{
				"default",
				"vimrc",
				"linked to /home/user/.vimrc",
				"1 linked",
			},
			skipStrings: []string{
				"DRY RUN",
				"\x1b[", // no color codes
			},
		},
		{
			name: "dry run shows banner and future tense",
			report: &types.Report{
				Command: "link",
				DryRun:  true,
				Profiles: []types.ProfileReport{
					{
						Name:   "work",
						Status: "queue",
						Entries: []types.EntryReport{
							{
								Path:        "gitconfig",
								Destination: "/home/user/.gitconfig",
								Status:      "linked",
							},
						},
					},
				},
			},
			noColor: true,
			wantStrings: []string{
				"DRY RUN",
				"work",
				"will be linked to /home/user/.gitconfig",
			},
		},
		{
			name: "failures keep their message",
			report: &types.Report{
				Command: "link",
				Profiles: []types.ProfileReport{
					{
						Name:   "default",
						Status: "alert",
						Entries: []types.EntryReport{
							{
								Path:        "env.template",
								Destination: "/home/user/.env",
								Rendered:    true,
								Status:      "error",
								Message:     "undefined variable(s): ENV_SECRET_KEY",
								Failed:      true,
							},
							{
								Path:        "bashrc",
								Destination: "/home/user/.bashrc",
								Status:      "conflict",
								Message:     "/home/user/.bashrc exists and is not a symlink",
								Failed:      true,
							},
						},
					},
				},
			},
			noColor: true,
			wantStrings: []string{
				"env.template",
				"undefined variable(s): ENV_SECRET_KEY",
				"exists and is not a symlink",
				"1 conflict, 1 error",
			},
		},
		{
			name: "profile with config marker and no entries",
			report: &types.Report{
				Command: "status",
				Profiles: []types.ProfileReport{
					{Name: "empty", Status: "queue", HasConfig: true},
				},
			},
			noColor: true,
			wantStrings: []string{
				"empty",
				".dotdash.toml",
				"profile has no entries",
				"nothing to do",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			renderer, err := output.NewRenderer(buf, tt.noColor)
			require.NoError(t, err)
			require.NoError(t, renderer.Render(tt.report))

			got := buf.String()
			for _, want := range tt.wantStrings {
				assert.Contains(t, got, want)
			}
			for _, skip := range tt.skipStrings {
				assert.NotContains(t, got, skip)
			}
		})
	}
}

func TestRendererEscapesAwkwardPaths(t *testing.T) {
	buf := &bytes.Buffer{}
	renderer, err := output.NewRenderer(buf, true)
	require.NoError(t, err)

	report := &types.Report{
		Command: "link",
		Profiles: []types.ProfileReport{
			{
				Name: "default",
				Entries: []types.EntryReport{
					{
						Path:        "a&b<c>",
						Destination: "/home/user/.a&b<c>",
						Status:      "linked",
					},
				},
			},
		},
	}
	require.NoError(t, renderer.Render(report))

	got := buf.String()
	// Raw characters come back out and no tag markup leaks through
	assert.Contains(t, got, "a&b<c>")
	assert.NotContains(t, got, "<FilePath>")
	assert.NotContains(t, got, "&amp;")
}

func TestRendererRenderError(t *testing.T) {
	buf := &bytes.Buffer{}
	renderer, err := output.NewRenderer(buf, true)
	require.NoError(t, err)

	notFound := errors.Newf(errors.ErrProfileNotFound, "profile(s) not found: nope").
		WithDetail("available", []string{"default", "work"})
	require.NoError(t, renderer.RenderError(notFound))

	got := buf.String()
	assert.Contains(t, got, "Error: ")
	assert.Contains(t, got, "profile(s) not found: nope")
	assert.Contains(t, got, "Available profiles: default, work")
}

func TestRendererRenderMessage(t *testing.T) {
	buf := &bytes.Buffer{}
	renderer, err := output.NewRenderer(buf, true)
	require.NoError(t, err)

	require.NoError(t, renderer.RenderMessage("Info", "hello"))
	assert.True(t, strings.HasSuffix(buf.String(), "hello\n"))
}
