// Package cli implements the cobra-based command surface of sprout.
//
// The root command itself performs the scaffold — there are no
// subcommands beyond cobra's built-ins. This file defines the root
// command, the global flags, and the error-to-exit-code translation;
// the pipeline orchestration lives in scaffold.go.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/sprout/internal/advice"
	"github.com/mmr-tortoise/sprout/internal/model"
	"github.com/mmr-tortoise/sprout/internal/prompt"
)

// Version, Commit, and Date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// logger is the stderr diagnostic channel. It stays at warn level unless
// --verbose raises it to debug; all user-facing output goes to stdout
// through the command's writer instead.
var logger = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})

// rootFlags holds the flag values for the root command.
type rootFlags struct {
	overwrite   bool   // --overwrite: clear conflicting target contents without prompting
	template    string // --template: template name, skips the selection prompt
	templateDir string // --template-dir: external template root instead of the bundled set
	verbose     bool   // --verbose: debug logging on stderr
}

// NewRootCommand creates and configures the root cobra command.
// This is the entry point for the entire CLI application.
func NewRootCommand() *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "sprout [directory]",
		Short: "Scaffold a new project from a bundled template",
		Long: `sprout materializes a starter project into a target directory and prints
the commands to run next. It never installs dependencies itself.

With no directory argument, sprout asks for a project name interactively.
If the target directory already contains files, sprout asks how to
reconcile them (or clears them with --overwrite).

Examples:
  sprout my-app
  sprout my-app --template vanilla-ts
  sprout --overwrite existing-dir
  sprout .`,

		// At most one positional argument: the target directory.
		Args: cobra.MaximumNArgs(1),

		// SilenceUsage prevents cobra from printing usage on every error.
		SilenceUsage: true,

		// SilenceErrors prevents cobra from printing errors automatically;
		// Execute formats them itself and maps them to exit codes.
		SilenceErrors: true,

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flags.verbose {
				logger.SetLevel(log.DebugLevel)
			} else {
				logger.SetLevel(log.WarnLevel)
			}
		},

		RunE: func(cmd *cobra.Command, args []string) error {
			targetArg := ""
			if len(args) == 1 {
				targetArg = args[0]
			}

			// The working directory is read once here and threaded through
			// the pipeline as an immutable value, never re-queried mid-run.
			cwd, err := os.Getwd()
			if err != nil {
				return model.WrapCLIError(model.ExitGeneralError, "failed to get current directory", err)
			}

			return run(params{
				TargetArg:   targetArg,
				Overwrite:   flags.overwrite,
				Template:    flags.template,
				TemplateDir: flags.templateDir,
				Interactive: prompt.IsInteractive(),
				WorkingDir:  cwd,
				UserAgent:   os.Getenv(advice.UserAgentEnv),
				Out:         cmd.OutOrStdout(),
			})
		},
	}

	rootCmd.Flags().BoolVar(&flags.overwrite, "overwrite", false, "Clear conflicting target directory contents without prompting")
	rootCmd.Flags().StringVarP(&flags.template, "template", "t", "", "Template name (skips the selection prompt)")
	rootCmd.Flags().StringVar(&flags.templateDir, "template-dir", "", "Load templates from an external directory instead of the bundled set")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose output")

	return rootCmd
}

// Execute runs the root command and handles exit codes.
// This is the main entry point called from main.go.
//
// Cancellation gets a dedicated notice and exit code; CLIError values
// carry their own codes; anything else exits with the general code.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, model.ErrCancelled) {
			fmt.Fprintln(os.Stderr, "Operation cancelled.")
			os.Exit(int(model.ExitUserCancelled))
		}

		var cliErr *model.CLIError
		if errors.As(err, &cliErr) {
			fmt.Fprintf(os.Stderr, "Error: %s\n", cliErr.Error())
			os.Exit(int(cliErr.Code))
		}

		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(int(model.ExitGeneralError))
	}
}
