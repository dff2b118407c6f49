package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sasswave-labs/sasswave-create/internal/assets"
	"github.com/sasswave-labs/sasswave-create/internal/config"
	"github.com/sasswave-labs/sasswave-create/internal/pkgmgr"
	"github.com/sasswave-labs/sasswave-create/internal/runner"
	"github.com/sasswave-labs/sasswave-create/internal/toolchain"
	"github.com/spf13/cobra"
)

var (
	doctorPM     string
	doctorStrict bool
)

func init() {
	doctorCmd.Flags().StringVar(&doctorPM, "pm", "", "Also check this package manager (npm, bun, yarn, pnpm)")
	doctorCmd.Flags().BoolVar(&doctorStrict, "strict", false, "Exit non-zero when a required tool is missing or outdated")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the local toolchain and asset manifest",
	Long: `Check that Node.js, npm, the chosen package manager and git are installed,
that Node.js satisfies ` + toolchain.NodeConstraint + `, and that the asset manifest is readable.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		pm := pkgmgr.NPM
		if doctorPM != "" {
			parsed, err := pkgmgr.Parse(doctorPM)
			if err != nil {
				return err
			}
			pm = parsed
		}

		out := cmd.OutOrStdout()
		env := runner.Environ()
		checker := &toolchain.Checker{Runner: newRunner(env), Env: env}

		fmt.Fprintln(out, "Toolchain check:")
		failed := false
		for _, s := range checker.CheckAll(cmd.Context(), toolchain.Tools(pm)) {
			fmt.Fprintf(out, "  %s\n", s.Line())
			if !s.OK() && s.Name != "git" {
				failed = true
			}
		}

		fmt.Fprintln(out, "Config check:")
		checkConfigFile(out)

		fmt.Fprintln(out, "Assets check:")
		checkManifest(out, config.Current().AssetsManifest)

		if failed && doctorStrict {
			return errors.New("toolchain check failed")
		}
		return nil
	},
}

func checkConfigFile(w io.Writer) {
	path := config.FilePath()
	if _, err := os.Stat(path); err != nil {
		fmt.Fprintf(w, "  [ OK ] no config file at %s (using defaults)\n", path)
		return
	}
	fmt.Fprintf(w, "  [ OK ] config file %s\n", path)
}

func checkManifest(w io.Writer, path string) {
	if path == "" {
		path = assets.DefaultManifestPath()
	}

	m, err := assets.LoadManifest(path)
	if err != nil {
		fmt.Fprintf(w, "  [WARN] %v\n", err)
		return
	}
	fmt.Fprintf(w, "  [ OK ] %s: %d entries\n", path, len(m.Entries))
	for _, r := range m.Rejected {
		fmt.Fprintf(w, "  [WARN] entry %d ignored: %v\n", r.Index, r.Issues)
	}
}
