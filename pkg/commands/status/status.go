// Package status implements the status command: a read-only
// classification of every profile entry against the home directory.
package status

import (
	"github.com/vincentqb/DotDash/pkg/commands/internal"
	"github.com/vincentqb/DotDash/pkg/linker"
	"github.com/vincentqb/DotDash/pkg/logging"
	"github.com/vincentqb/DotDash/pkg/types"
)

// StatusProfilesOptions defines the options for the StatusProfiles
// command.
type StatusProfilesOptions struct {
	// DotfilesRoot is the path to the root of the dotfiles directory.
	// Empty means discover it.
	DotfilesRoot string
	// HomeDir overrides the directory links are checked under.
	HomeDir string
	// ProfileNames lists the profiles to inspect. Every name must
	// exist.
	ProfileNames []string
	// FileSystem overrides the filesystem. Nil means the real one.
	FileSystem types.FS
}

// StatusProfiles classifies each entry as linked, unlinked, foreign,
// conflict, or stale without changing anything. Conflicts and foreign
// links are informational here; only access errors count as failures.
func StatusProfiles(opts StatusProfilesOptions) (*types.Report, error) {
	log := logging.GetLogger("commands.status")
	log.Debug().Str("command", "StatusProfiles").Msg("Executing command")

	pipeline, err := internal.NewPipeline(internal.PipelineOptions{
		DotfilesRoot: opts.DotfilesRoot,
		HomeDir:      opts.HomeDir,
		ProfileNames: opts.ProfileNames,
		FileSystem:   opts.FileSystem,
	})
	if err != nil {
		log.Error().Err(err).Msg("Status failed")
		return nil, err
	}

	l := linker.New(pipeline.FS)
	results := make([]*linker.Result, 0, len(pipeline.Profiles))
	for _, profile := range pipeline.Profiles {
		passOpts, err := pipeline.OptionsFor(profile)
		if err != nil {
			return nil, err
		}
		result, err := l.Status(profile, passOpts)
		if err != nil {
			log.Error().Err(err).Str("profile", profile.Name).Msg("Status failed")
			return nil, err
		}
		results = append(results, result)
	}

	log.Info().Str("command", "StatusProfiles").Msg("Command finished")
	return internal.BuildReport("status", false, pipeline.Profiles, results), nil
}
