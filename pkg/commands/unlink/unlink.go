// Package unlink implements the unlink command: remove the symlinks a
// profile created, and nothing else.
package unlink

import (
	"github.com/vincentqb/DotDash/pkg/commands/internal"
	"github.com/vincentqb/DotDash/pkg/linker"
	"github.com/vincentqb/DotDash/pkg/logging"
	"github.com/vincentqb/DotDash/pkg/types"
)

// UnlinkProfilesOptions defines the options for the UnlinkProfiles
// command.
type UnlinkProfilesOptions struct {
	// DotfilesRoot is the path to the root of the dotfiles directory.
	// Empty means discover it.
	DotfilesRoot string
	// HomeDir overrides the directory links were created under.
	HomeDir string
	// ProfileNames lists the profiles to unlink. Every name must exist.
	ProfileNames []string
	// DryRun reports what would be removed without removing anything.
	DryRun bool
	// FileSystem overrides the filesystem. Nil means the real one.
	FileSystem types.FS
}

// UnlinkProfiles removes each destination that is a symlink into the
// profile. Foreign symlinks and regular files are reported and kept;
// rendered files inside the profile are never touched.
func UnlinkProfiles(opts UnlinkProfilesOptions) (*types.Report, error) {
	log := logging.GetLogger("commands.unlink")
	log.Debug().Str("command", "UnlinkProfiles").Msg("Executing command")

	pipeline, err := internal.NewPipeline(internal.PipelineOptions{
		DotfilesRoot: opts.DotfilesRoot,
		HomeDir:      opts.HomeDir,
		ProfileNames: opts.ProfileNames,
		DryRun:       opts.DryRun,
		FileSystem:   opts.FileSystem,
	})
	if err != nil {
		log.Error().Err(err).Msg("Unlink failed")
		return nil, err
	}

	l := linker.New(pipeline.FS)
	results := make([]*linker.Result, 0, len(pipeline.Profiles))
	for _, profile := range pipeline.Profiles {
		passOpts, err := pipeline.OptionsFor(profile)
		if err != nil {
			return nil, err
		}
		result, err := l.Unlink(profile, passOpts)
		if err != nil {
			log.Error().Err(err).Str("profile", profile.Name).Msg("Unlink failed")
			return nil, err
		}
		results = append(results, result)
	}

	log.Info().Str("command", "UnlinkProfiles").Msg("Command finished")
	return internal.BuildReport("unlink", opts.DryRun, pipeline.Profiles, results), nil
}
