package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/sasswave-labs/sasswave-create/internal/answers"
	"github.com/sasswave-labs/sasswave-create/internal/assets"
	"github.com/sasswave-labs/sasswave-create/internal/branding"
	"github.com/sasswave-labs/sasswave-create/internal/config"
	"github.com/sasswave-labs/sasswave-create/internal/pkgmgr"
	"github.com/sasswave-labs/sasswave-create/internal/postinstall"
	"github.com/sasswave-labs/sasswave-create/internal/runner"
	"github.com/sasswave-labs/sasswave-create/internal/scaffold"
	"github.com/sasswave-labs/sasswave-create/internal/toolchain"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Shared by the root command and its create alias.
var (
	createFramework   string
	createLanguage    string
	createPM          string
	createGit         bool
	create3D          bool
	createAnswersFile string
	createYes         bool
	createNoDevServer bool
)

// newRunner builds the process runner for env. Tests replace it.
var newRunner = func(env runner.Env) runner.Runner {
	return runner.New(env)
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	commandStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
)

func init() {
	addCreateFlags(createCmd)
	rootCmd.AddCommand(createCmd)
}

var createCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Scaffold a new project",
	Long: `Scaffold a new React (Vite) or Next.js project with SCSS defaults.

Examples:
  ` + branding.CLIName() + ` create
  ` + branding.CLIName() + ` create my-app --framework react --language javascript --pm bun
  ` + branding.CLIName() + ` create --answers answers.yaml --no-dev-server`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCreate,
}

func addCreateFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&createFramework, "framework", "", "Framework: react or next.js")
	f.StringVar(&createLanguage, "language", "", "Language: typescript or javascript")
	f.StringVar(&createPM, "pm", "", "Package manager: npm, bun, yarn or pnpm")
	f.BoolVar(&createGit, "git", true, "Initialize a git repository")
	f.BoolVar(&create3D, "3d", false, "Add an interactive three.js scene to the home page")
	f.StringVar(&createAnswersFile, "answers", "", "Read answers from a YAML or JSON file")
	f.BoolVarP(&createYes, "yes", "y", false, "Accept defaults for anything not given by flags")
	f.BoolVar(&createNoDevServer, "no-dev-server", false, "Do not start the dev server when done")
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	log := newLogger(cmd)
	defer func() { _ = log.Sync() }()

	settings := config.Current()
	if createNoDevServer {
		settings.StartDevServer = false
	}

	a, err := resolveAnswers(cmd, args)
	if err != nil {
		return err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolving working directory: %w", err)
	}

	env := runner.Environ()
	r := newRunner(env)
	if a.PkgManager == pkgmgr.Bun {
		env, err = pkgmgr.EnsureBun(ctx, r, env, log)
		if err != nil {
			return err
		}
		r = newRunner(env)
	}

	preflight(ctx, r, env, a, log)

	gen := &scaffold.Generator{Runner: r, Log: log}
	res, err := gen.Scaffold(ctx, a, cwd)
	if err != nil {
		return err
	}

	inst := &postinstall.Installer{
		Runner:   r,
		Assets:   newFetcher(settings, log),
		Settings: settings,
		Log:      log,
	}
	if err := inst.AddSassAndThree(ctx, a, res.ProjectDir); err != nil {
		return err
	}
	inst.InitGit(ctx, a, res.ProjectDir)

	printNextSteps(out, a)

	if settings.StartDevServer {
		inst.StartDevServer(ctx, a, res.ProjectDir)
	}
	return nil
}

// resolveAnswers merges flags with an answers file, the defaults or the
// interactive prompts, in that order of precedence.
func resolveAnswers(cmd *cobra.Command, args []string) (answers.Answers, error) {
	p := answers.Preset{
		Framework:  createFramework,
		Language:   createLanguage,
		PkgManager: createPM,
	}
	if len(args) == 1 {
		p.Name = args[0]
	}
	if cmd.Flags().Changed("git") {
		v := createGit
		p.Git = &v
	}
	if cmd.Flags().Changed("3d") {
		v := create3D
		p.Want3D = &v
	}

	var (
		a   answers.Answers
		err error
	)
	switch {
	case createAnswersFile != "":
		a, err = answers.LoadFile(createAnswersFile, p)
	case createYes:
		a = answers.Defaults(p)
	default:
		printBanner(cmd.OutOrStdout())
		a, err = answers.Prompt(cmd.InOrStdin(), cmd.OutOrStdout(), p)
	}
	if err != nil {
		return answers.Answers{}, err
	}

	if err := a.Validate(); err != nil {
		return answers.Answers{}, err
	}
	return a, nil
}

// preflight logs a warning for each missing or outdated tool. It never fails
// the run; the generator reports the real error if a tool is unusable.
func preflight(ctx context.Context, r runner.Runner, env runner.Env, a answers.Answers, log *zap.Logger) {
	checker := &toolchain.Checker{Runner: r, Env: env}
	for _, s := range checker.CheckAll(ctx, toolchain.Tools(a.PkgManager)) {
		if s.OK() {
			log.Debug(s.Line())
			continue
		}
		if s.Name == "git" && !a.Git {
			continue
		}
		log.Warn(s.Line())
	}
}

func newFetcher(settings config.Settings, log *zap.Logger) *assets.Fetcher {
	manifest := settings.AssetsManifest
	if manifest == "" {
		manifest = assets.DefaultManifestPath()
	}
	return assets.New(manifest,
		assets.WithTimeout(settings.DownloadTimeout),
		assets.WithLogger(log),
		assets.WithUserAgent(branding.CLIName()+"/"+buildVersion),
	)
}

func printBanner(w io.Writer) {
	fmt.Fprintln(w, titleStyle.Render(branding.DisplayName()))
	fmt.Fprintln(w, branding.Description())
	fmt.Fprintln(w)
}

func printNextSteps(w io.Writer, a answers.Answers) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, successStyle.Render("All set! Next steps:"))
	fmt.Fprintf(w, "  %s\n", commandStyle.Render("cd "+a.Name))
	fmt.Fprintf(w, "  %s\n", commandStyle.Render(a.PkgManager.Dev("").String()))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Docs: %s\n", branding.DocsURL())
}
