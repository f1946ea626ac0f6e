package dotdash

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/vincentqb/DotDash/internal/version"
	"github.com/vincentqb/DotDash/pkg/cobrax/topics"
	"github.com/vincentqb/DotDash/pkg/commands/link"
	"github.com/vincentqb/DotDash/pkg/commands/status"
	"github.com/vincentqb/DotDash/pkg/commands/unlink"
	"github.com/vincentqb/DotDash/pkg/filesystem"
	"github.com/vincentqb/DotDash/pkg/logging"
	"github.com/vincentqb/DotDash/pkg/paths"
	"github.com/vincentqb/DotDash/pkg/profiles"
	"github.com/vincentqb/DotDash/pkg/style"
	"github.com/vincentqb/DotDash/pkg/types"
	"github.com/vincentqb/DotDash/pkg/ui"
)

// ErrSilent marks failures that have already been reported through a
// renderer. main exits non-zero without printing anything further.
var ErrSilent = errors.New("failures already reported")

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	var verbosity int

	rootCmd := &cobra.Command{
		Use:     "dotdash",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand given. Show help but fail so scripts notice.
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().String("root", "", MsgFlagRoot)
	rootCmd.PersistentFlags().String("home", "", MsgFlagHome)
	rootCmd.PersistentFlags().String("format", "auto", MsgFlagFormat)

	// Disable automatic help command (we'll use our custom one from topics)
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	// Set custom help template
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	// Add all commands
	rootCmd.AddCommand(newLinkCmd())
	rootCmd.AddCommand(newUnlinkCmd())
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newTopicsCmd())
	rootCmd.AddCommand(newCompletionCmd())

	// Initialize topic-based help system.
	// Try to find help topics relative to the executable location.
	exe, err := os.Executable()
	if err == nil {
		possiblePaths := []string{
			filepath.Join(filepath.Dir(exe), "topics"),                               // Same directory as binary (production)
			filepath.Join(filepath.Dir(exe), "..", "..", "cmd", "dotdash", "topics"), // Development
			"cmd/dotdash/topics", // Current directory fallback
		}

		for _, helpPath := range possiblePaths {
			if _, err := os.Stat(helpPath); err == nil {
				opts := topics.Options{
					Extensions: []string{".txt", ".md"},
					// Always use Glamour renderer for markdown files
					Renderer: topics.NewGlamourRenderer(),
				}

				if err := topics.InitializeWithOptions(rootCmd, helpPath, opts); err == nil {
					break
				}
			}
		}
	}

	return rootCmd
}

// globalFlags holds the persistent flag values a subcommand needs.
type globalFlags struct {
	Root   string
	Home   string
	Format ui.Format
}

func globalOptions(cmd *cobra.Command) (globalFlags, error) {
	flags := cmd.Root().PersistentFlags()
	root, _ := flags.GetString("root")
	home, _ := flags.GetString("home")
	formatStr, _ := flags.GetString("format")

	format, err := ui.ParseFormat(formatStr)
	if err != nil {
		return globalFlags{}, err
	}

	return globalFlags{Root: root, Home: home, Format: format}, nil
}

// initPaths resolves the dotfiles root and warns when the current-directory
// fallback is in use.
func initPaths(rootFlag string) (paths.Paths, error) {
	p, err := paths.New(rootFlag)
	if err != nil {
		return nil, fmt.Errorf(MsgErrInitPaths, err)
	}

	if p.UsedFallback() {
		fmt.Fprintln(os.Stderr, style.WarnLine(fmt.Sprintf(MsgFallbackWarning, p.DotfilesRoot())))
	} else if os.Getenv("DOTDASH_DEBUG") != "" {
		fmt.Fprintln(os.Stderr, style.InfoLine(fmt.Sprintf(MsgDebugDotfilesRoot, p.DotfilesRoot(), p.UsedFallback())))
	}

	return p, nil
}

// renderOutcome reports a command's result in the requested format. A fatal
// error or failed entries yield ErrSilent so main exits non-zero without
// repeating what the renderer already printed.
func renderOutcome(cmd *cobra.Command, format ui.Format, report *types.Report, runErr error) error {
	renderer, err := ui.NewRenderer(format, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	if runErr != nil {
		_ = renderer.RenderError(runErr)
		return ErrSilent
	}

	if err := renderer.RenderReport(report); err != nil {
		return err
	}

	if report.DryRun {
		fmt.Fprintln(cmd.ErrOrStderr(), style.DryRunNotice())
	}

	if report.HasFailures() {
		fmt.Fprintln(cmd.ErrOrStderr(), style.Badge("error")+" "+MsgEntriesFailed)
		return ErrSilent
	}

	return nil
}

// profileNamesCompletion provides shell completion for profile names
func profileNamesCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	rootFlag, _ := cmd.Root().PersistentFlags().GetString("root")
	p, err := initPaths(rootFlag)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	names, err := profiles.Available(filesystem.NewOS(), p.DotfilesRoot())
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	// Filter out profiles already present on the command line.
	var available []string
	for _, name := range names {
		taken := false
		for _, arg := range args {
			if arg == name {
				taken = true
				break
			}
		}
		if !taken {
			available = append(available, name)
		}
	}

	return available, cobra.ShellCompDirectiveNoFileComp
}

func newLinkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "link <profile>...",
		Short:             MsgLinkShort,
		Long:              MsgLinkLong,
		Example:           MsgLinkExample,
		Args:              cobra.MinimumNArgs(1),
		GroupID:           "core",
		ValidArgsFunction: profileNamesCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := globalOptions(cmd)
			if err != nil {
				return err
			}
			dryRun, _ := cmd.Flags().GetBool("dry-run")

			// Initialize paths (will show warning if using fallback)
			p, err := initPaths(opts.Root)
			if err != nil {
				return err
			}

			log.Info().
				Str("dotfiles_root", p.DotfilesRoot()).
				Strs("profiles", args).
				Bool("dry_run", dryRun).
				Msg("Linking profiles")

			report, err := link.LinkProfiles(link.LinkProfilesOptions{
				DotfilesRoot: opts.Root,
				HomeDir:      opts.Home,
				ProfileNames: args,
				DryRun:       dryRun,
			})
			return renderOutcome(cmd, opts.Format, report, err)
		},
	}

	cmd.Flags().Bool("dry-run", false, MsgFlagDryRun)

	return cmd
}

func newUnlinkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "unlink <profile>...",
		Short:             MsgUnlinkShort,
		Long:              MsgUnlinkLong,
		Example:           MsgUnlinkExample,
		Args:              cobra.MinimumNArgs(1),
		GroupID:           "core",
		ValidArgsFunction: profileNamesCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := globalOptions(cmd)
			if err != nil {
				return err
			}
			dryRun, _ := cmd.Flags().GetBool("dry-run")

			// Initialize paths (will show warning if using fallback)
			p, err := initPaths(opts.Root)
			if err != nil {
				return err
			}

			log.Info().
				Str("dotfiles_root", p.DotfilesRoot()).
				Strs("profiles", args).
				Bool("dry_run", dryRun).
				Msg("Unlinking profiles")

			report, err := unlink.UnlinkProfiles(unlink.UnlinkProfilesOptions{
				DotfilesRoot: opts.Root,
				HomeDir:      opts.Home,
				ProfileNames: args,
				DryRun:       dryRun,
			})
			return renderOutcome(cmd, opts.Format, report, err)
		},
	}

	cmd.Flags().Bool("dry-run", false, MsgFlagDryRun)

	return cmd
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "status <profile>...",
		Short:             MsgStatusShort,
		Long:              MsgStatusLong,
		Example:           MsgStatusExample,
		Args:              cobra.MinimumNArgs(1),
		GroupID:           "core",
		ValidArgsFunction: profileNamesCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := globalOptions(cmd)
			if err != nil {
				return err
			}

			// Initialize paths (will show warning if using fallback)
			p, err := initPaths(opts.Root)
			if err != nil {
				return err
			}

			log.Info().
				Str("dotfiles_root", p.DotfilesRoot()).
				Strs("profiles", args).
				Msg("Checking profile status")

			report, err := status.StatusProfiles(status.StatusProfilesOptions{
				DotfilesRoot: opts.Root,
				HomeDir:      opts.Home,
				ProfileNames: args,
			})
			return renderOutcome(cmd, opts.Format, report, err)
		},
	}
}

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "topics",
		Short:   MsgTopicsShort,
		Long:    MsgTopicsLong,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Find the help command and execute it with "topics" argument
			if helpCmd, _, err := cmd.Root().Find([]string{"help"}); err == nil {
				if helpCmd.RunE != nil {
					return helpCmd.RunE(helpCmd, []string{"topics"})
				} else if helpCmd.Run != nil {
					helpCmd.Run(helpCmd, []string{"topics"})
					return nil
				}
			}
			return fmt.Errorf("help command not found")
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
			return nil
		},
	}
}
