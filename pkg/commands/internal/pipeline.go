// Package internal holds the pipeline shared by the dotdash commands:
// resolving the dotfiles root, layering configuration, selecting
// profiles, and turning linker results into a display report. Link,
// unlink, and status differ only in the pass they run.
package internal

import (
	"os"
	"strings"
	"time"

	"github.com/vincentqb/DotDash/pkg/config"
	"github.com/vincentqb/DotDash/pkg/errors"
	"github.com/vincentqb/DotDash/pkg/filesystem"
	"github.com/vincentqb/DotDash/pkg/linker"
	"github.com/vincentqb/DotDash/pkg/logging"
	"github.com/vincentqb/DotDash/pkg/paths"
	"github.com/vincentqb/DotDash/pkg/profiles"
	"github.com/vincentqb/DotDash/pkg/template"
	"github.com/vincentqb/DotDash/pkg/types"
)

// PipelineOptions contains the options every command shares.
type PipelineOptions struct {
	// DotfilesRoot is an explicit root directory. Empty means discover
	// it from DOTDASH_ROOT, the enclosing git repository, or the
	// current directory.
	DotfilesRoot string

	// HomeDir is an explicit link target base. Empty means resolve it
	// from DOTDASH_HOME_DIR or the user's home directory.
	HomeDir string

	// ProfileNames lists the profiles to operate on. Resolution is
	// strict; an unknown name aborts before anything runs.
	ProfileNames []string

	// DryRun reports the plan without touching the filesystem.
	DryRun bool

	// Vars overrides the template substitution mapping. Nil means
	// snapshot the process environment.
	Vars map[string]string

	// FileSystem overrides the filesystem. Nil means the real one.
	FileSystem types.FS
}

// Pipeline is the resolved environment a command pass runs in.
type Pipeline struct {
	FS       types.FS
	Paths    paths.Paths
	Config   *config.Config
	Profiles []types.Profile
	Vars     map[string]string
	DryRun   bool
}

// NewPipeline resolves the dotfiles root, the effective configuration,
// and the requested profiles. Profile misses are fatal and carry the
// root plus how it was determined, so the user can tell a typo from a
// wrong root.
func NewPipeline(opts PipelineOptions) (*Pipeline, error) {
	logger := logging.GetLogger("commands.internal.pipeline")
	logger.Debug().
		Str("dotfilesRoot", opts.DotfilesRoot).
		Strs("profileNames", opts.ProfileNames).
		Bool("dryRun", opts.DryRun).
		Msg("Resolving pipeline")

	fs := opts.FileSystem
	if fs == nil {
		fs = filesystem.NewOS()
	}

	pathsInstance, err := paths.NewWithHome(opts.DotfilesRoot, opts.HomeDir)
	if err != nil {
		return nil, err
	}
	if pathsInstance.UsedFallback() {
		logger.Warn().
			Str("root", pathsInstance.DotfilesRoot()).
			Msg("No DOTDASH_ROOT set and no enclosing git repository; using the current directory as dotfiles root")
	}

	cfg, err := config.Load(pathsInstance.DotfilesRoot())
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load configuration")
	}

	selected, err := profiles.Get(fs, pathsInstance.DotfilesRoot(), opts.ProfileNames)
	if err != nil {
		// Add context about how the root was determined
		if dderr, ok := err.(*errors.DotdashError); ok && dderr.Code == errors.ErrProfileNotFound {
			dderr = dderr.WithDetail("usedFallback", pathsInstance.UsedFallback())
			switch {
			case opts.DotfilesRoot != "":
				dderr = dderr.WithDetail("source", "--root flag")
			case os.Getenv(paths.EnvDotfilesRoot) != "":
				dderr = dderr.WithDetail("source", "DOTDASH_ROOT environment variable")
			case !pathsInstance.UsedFallback():
				dderr = dderr.WithDetail("source", "git repository root")
			default:
				dderr = dderr.WithDetail("source", "current working directory (fallback)")
			}
			err = dderr
		}
		return nil, err
	}

	logger.Debug().
		Int("selectedProfiles", len(selected)).
		Msg("Profiles selected")

	vars := opts.Vars
	if vars == nil {
		vars = EnvironVars()
	}

	return &Pipeline{
		FS:       fs,
		Paths:    pathsInstance,
		Config:   cfg,
		Profiles: selected,
		Vars:     vars,
		DryRun:   opts.DryRun,
	}, nil
}

// OptionsFor merges the root configuration with the profile's own
// overrides and returns the linker options for one pass over that
// profile.
func (p *Pipeline) OptionsFor(profile types.Profile) (linker.Options, error) {
	merged := config.Merge(*p.Config, profile.Config)

	mode, err := template.ParseMode(merged.Render.Missing)
	if err != nil {
		return linker.Options{}, errors.Wrapf(err, errors.ErrConfigLoad,
			"invalid render.missing setting for profile %q", profile.Name)
	}

	return linker.Options{
		HomeDir:        p.Paths.HomeDir(),
		Vars:           p.Vars,
		Mode:           mode,
		IgnorePatterns: merged.Ignore.Patterns,
		DryRun:         p.DryRun,
	}, nil
}

// EnvironVars snapshots the process environment as a substitution map.
// Rendering works on the snapshot so a run is internally consistent.
func EnvironVars() map[string]string {
	environ := os.Environ()
	vars := make(map[string]string, len(environ))
	for _, kv := range environ {
		if i := strings.IndexByte(kv, '='); i > 0 {
			vars[kv[:i]] = kv[i+1:]
		}
	}
	return vars
}

// BuildReport converts per-profile linker results into the display
// report consumed by the ui renderers. Entry failure flags come from
// the linker, so what counts as a failure stays a per-command decision.
func BuildReport(command string, dryRun bool, selected []types.Profile, results []*linker.Result) *types.Report {
	report := &types.Report{
		Command:   command,
		DryRun:    dryRun,
		Timestamp: time.Now(),
	}

	for i, result := range results {
		pr := types.ProfileReport{Name: result.Profile}
		if i < len(selected) {
			pr.HasConfig = !selected[i].Config.IsZero()
		}
		for _, entry := range result.Entries {
			pr.Entries = append(pr.Entries, types.EntryReport{
				Path:        entry.Path,
				Destination: entry.Destination,
				Rendered:    entry.Rendered,
				Status:      string(entry.Status),
				Message:     entry.Message,
				Failed:      entry.Err != nil,
			})
		}
		pr.Status = pr.GetProfileStatus()
		report.Profiles = append(report.Profiles, pr)
	}

	return report
}
