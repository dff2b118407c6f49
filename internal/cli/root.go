package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/sasswave-labs/sasswave-create/internal/branding"
	"github.com/sasswave-labs/sasswave-create/internal/config"
	"github.com/sasswave-labs/sasswave-create/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	verbose bool
	noColor bool
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	addCreateFlags(rootCmd)
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName() + " [name]",
	Short: branding.Description(),
	Long: branding.DisplayName() + ` scaffolds a React (Vite) or Next.js project, replaces the default
styling with SCSS, downloads shared brand assets and can add an interactive three.js scene.

Run without arguments to answer a few questions, or pass the project name and flags:
  ` + branding.CLIName() + ` my-app --framework next.js --language typescript --pm pnpm --3d`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
		if !colorEnabled() {
			lipgloss.SetColorProfile(termenv.Ascii)
		}
	},
	RunE: runCreate,
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
		return err
	}
	return nil
}

// newLogger returns the run logger writing to cmd's stdout.
func newLogger(cmd *cobra.Command) *zap.Logger {
	return logging.New(cmd.OutOrStdout(), logging.WithColor(colorEnabled()), logging.WithVerbose(verbose))
}

func colorEnabled() bool {
	return !noColor && os.Getenv("NO_COLOR") == ""
}
