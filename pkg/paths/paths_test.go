// pkg/paths/paths_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Environment variables
// PURPOSE: Test dotfiles root resolution, home resolution, and XDG paths

package paths

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name         string
		dotfilesRoot string
		envSetup     map[string]string
		validate     func(t *testing.T, p Paths)
		wantErr      bool
	}{
		{
			name:         "explicit dotfiles root",
			dotfilesRoot: "/tmp/dotfiles",
			validate: func(t *testing.T, p Paths) {
				assert.Equal(t, "/tmp/dotfiles", p.DotfilesRoot())
			},
		},
		{
			name: "from DOTDASH_ROOT env",
			envSetup: map[string]string{
				EnvDotfilesRoot: "/env/dotfiles",
			},
			validate: func(t *testing.T, p Paths) {
				assert.Equal(t, "/env/dotfiles", p.DotfilesRoot())
			},
		},
		{
			name: "git repository or fallback",
			validate: func(t *testing.T, p Paths) {
				// This test will either find the git root if we're in a git repo,
				// or fall back to the current directory
				assert.NotEmpty(t, p.DotfilesRoot())
				// The path should be absolute
				assert.True(t, filepath.IsAbs(p.DotfilesRoot()), "Path should be absolute")
			},
		},
		{
			name:         "expand tilde in explicit path",
			dotfilesRoot: "~/my-dotfiles",
			validate: func(t *testing.T, p Paths) {
				homeDir, _ := os.UserHomeDir()
				expected := filepath.Join(homeDir, "my-dotfiles")
				assert.Equal(t, expected, p.DotfilesRoot())
			},
		},
		{
			name: "custom XDG directories",
			envSetup: map[string]string{
				EnvConfigDir: "/custom/config",
				EnvCacheDir:  "/custom/cache",
			},
			validate: func(t *testing.T, p Paths) {
				assert.Equal(t, "/custom/config", p.ConfigDir())
				assert.Equal(t, "/custom/cache", p.CacheDir())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Clear relevant environment variables first
			t.Setenv(EnvDotfilesRoot, "")
			t.Setenv(EnvHomeDir, "")
			t.Setenv(EnvConfigDir, "")
			t.Setenv(EnvCacheDir, "")

			// Set up environment
			for k, v := range tt.envSetup {
				t.Setenv(k, v)
			}

			p, err := New(tt.dotfilesRoot)

			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, p)

			if tt.validate != nil {
				tt.validate(t, p)
			}
		})
	}
}

func TestNewWithHome(t *testing.T) {
	t.Run("explicit home directory", func(t *testing.T) {
		t.Setenv(EnvHomeDir, "")

		p, err := NewWithHome("/test/dotfiles", "/custom/home")
		require.NoError(t, err)
		assert.Equal(t, "/custom/home", p.HomeDir())
	})

	t.Run("home from DOTDASH_HOME_DIR env", func(t *testing.T) {
		t.Setenv(EnvHomeDir, "/env/home")

		p, err := New("/test/dotfiles")
		require.NoError(t, err)
		assert.Equal(t, "/env/home", p.HomeDir())
	})

	t.Run("defaults to user home", func(t *testing.T) {
		t.Setenv(EnvHomeDir, "")

		p, err := New("/test/dotfiles")
		require.NoError(t, err)

		homeDir, herr := os.UserHomeDir()
		require.NoError(t, herr)
		assert.Equal(t, homeDir, p.HomeDir())
	})

	t.Run("explicit home wins over env", func(t *testing.T) {
		t.Setenv(EnvHomeDir, "/env/home")

		p, err := NewWithHome("/test/dotfiles", "/custom/home")
		require.NoError(t, err)
		assert.Equal(t, "/custom/home", p.HomeDir())
	})
}

func TestProfilePaths(t *testing.T) {
	p, err := New("/test/dotfiles")
	require.NoError(t, err)

	tests := []struct {
		name        string
		profileName string
		method      func(string) string
		expected    string
	}{
		{
			name:        "profile path",
			profileName: "default",
			method:      p.ProfilePath,
			expected:    "/test/dotfiles/default",
		},
		{
			name:        "profile config path",
			profileName: "default",
			method:      p.ProfileConfigPath,
			expected:    "/test/dotfiles/default/.dotdash.toml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.method(tt.profileName))
		})
	}

	t.Run("root config path", func(t *testing.T) {
		assert.Equal(t, "/test/dotfiles/dotdash.toml", p.RootConfigPath())
	})
}

func TestStatePaths(t *testing.T) {
	p, err := New("/test/dotfiles")
	require.NoError(t, err)

	// Test log file path under the state directory
	logPath := p.LogFilePath()
	assert.True(t, strings.HasPrefix(logPath, p.StateDir()), "LogFilePath should be under StateDir")
	assert.True(t, strings.HasSuffix(logPath, LogFileName), "LogFilePath should end with the log file name")
}

func TestExpandHome(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "just tilde",
			input:    "~",
			expected: homeDir,
		},
		{
			name:     "tilde with path",
			input:    "~/dotfiles",
			expected: filepath.Join(homeDir, "dotfiles"),
		},
		{
			name:     "tilde other user",
			input:    "~other/path",
			expected: "~other/path", // Not expanded
		},
		{
			name:     "no tilde",
			input:    "/absolute/path",
			expected: "/absolute/path",
		},
		{
			name:     "relative path",
			input:    "relative/path",
			expected: "relative/path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExpandHome(tt.input))
		})
	}
}

func TestNormalizePath(t *testing.T) {
	p, err := New("/test/dotfiles")
	require.NoError(t, err)

	homeDir, _ := os.UserHomeDir()

	tests := []struct {
		name     string
		input    string
		wantErr  bool
		validate func(t *testing.T, result string)
	}{
		{
			name:    "empty path",
			input:   "",
			wantErr: true,
		},
		{
			name:  "absolute path",
			input: "/absolute/path",
			validate: func(t *testing.T, result string) {
				assert.Equal(t, "/absolute/path", result)
			},
		},
		{
			name:  "relative path",
			input: "relative/path",
			validate: func(t *testing.T, result string) {
				// Should be made absolute
				assert.True(t, filepath.IsAbs(result), "Path should be absolute")
				assert.True(t, strings.HasSuffix(result, filepath.Join("relative", "path")), "Should end with original path")
			},
		},
		{
			name:  "path with tilde",
			input: "~/my/path",
			validate: func(t *testing.T, result string) {
				assert.Equal(t, filepath.Join(homeDir, "my/path"), result)
			},
		},
		{
			name:  "path with dots",
			input: "/path/../other",
			validate: func(t *testing.T, result string) {
				assert.Equal(t, "/other", result)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := p.NormalizePath(tt.input)

			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			if tt.validate != nil {
				tt.validate(t, result)
			}
		})
	}
}

func TestIsInDotfiles(t *testing.T) {
	p, err := New("/test/dotfiles")
	require.NoError(t, err)

	tests := []struct {
		name     string
		path     string
		expected bool
		wantErr  bool
	}{
		{
			name:     "inside dotfiles",
			path:     "/test/dotfiles/profile/file",
			expected: true,
		},
		{
			name:     "dotfiles root itself",
			path:     "/test/dotfiles",
			expected: true,
		},
		{
			name:     "outside dotfiles",
			path:     "/other/path",
			expected: false,
		},
		{
			name:     "parent of dotfiles",
			path:     "/test",
			expected: false,
		},
		{
			name:     "relative path inside",
			path:     "/test/dotfiles/../dotfiles/profile",
			expected: true,
		},
		{
			name:    "empty path",
			path:    "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := p.IsInDotfiles(tt.path)

			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}
