// Package link implements the link command: render templates and
// create or update symlinks for the requested profiles.
package link

import (
	"github.com/vincentqb/DotDash/pkg/commands/internal"
	"github.com/vincentqb/DotDash/pkg/linker"
	"github.com/vincentqb/DotDash/pkg/logging"
	"github.com/vincentqb/DotDash/pkg/types"
)

// LinkProfilesOptions defines the options for the LinkProfiles command.
type LinkProfilesOptions struct {
	// DotfilesRoot is the path to the root of the dotfiles directory.
	// Empty means discover it.
	DotfilesRoot string
	// HomeDir overrides the directory links are created under.
	HomeDir string
	// ProfileNames lists the profiles to link. Every name must exist.
	ProfileNames []string
	// DryRun reports what would change without making changes.
	DryRun bool
	// Vars overrides the template environment. Nil means the process
	// environment.
	Vars map[string]string
	// FileSystem overrides the filesystem. Nil means the real one.
	FileSystem types.FS
}

// LinkProfiles renders templates and places one symlink per profile
// entry. Per-entry failures (missing variables, destination conflicts)
// are collected in the report and never abort the pass; the returned
// error is non-nil only when the run cannot start or a profile cannot
// be walked.
func LinkProfiles(opts LinkProfilesOptions) (*types.Report, error) {
	log := logging.GetLogger("commands.link")
	log.Debug().Str("command", "LinkProfiles").Msg("Executing command")

	pipeline, err := internal.NewPipeline(internal.PipelineOptions{
		DotfilesRoot: opts.DotfilesRoot,
		HomeDir:      opts.HomeDir,
		ProfileNames: opts.ProfileNames,
		DryRun:       opts.DryRun,
		Vars:         opts.Vars,
		FileSystem:   opts.FileSystem,
	})
	if err != nil {
		log.Error().Err(err).Msg("Link failed")
		return nil, err
	}

	l := linker.New(pipeline.FS)
	results := make([]*linker.Result, 0, len(pipeline.Profiles))
	for _, profile := range pipeline.Profiles {
		passOpts, err := pipeline.OptionsFor(profile)
		if err != nil {
			return nil, err
		}
		result, err := l.Link(profile, passOpts)
		if err != nil {
			log.Error().Err(err).Str("profile", profile.Name).Msg("Link failed")
			return nil, err
		}
		results = append(results, result)
	}

	log.Info().Str("command", "LinkProfiles").Msg("Command finished")
	return internal.BuildReport("link", opts.DryRun, pipeline.Profiles, results), nil
}
