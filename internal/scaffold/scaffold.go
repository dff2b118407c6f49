package scaffold

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/sasswave-labs/sasswave-create/internal/answers"
	"github.com/sasswave-labs/sasswave-create/internal/pkgmgr"
	"github.com/sasswave-labs/sasswave-create/internal/runner"
)

// ErrDirExists is returned when the target project directory already exists.
var ErrDirExists = errors.New("project directory already exists")

// nextFlags are passed to create-next-app after the language flag.
var nextFlags = []string{
	"--eslint",
	"--tailwind", "false",
	"--src-dir", "true",
	"--app", "true",
	"--import-alias", "@/*",
	"--react-compiler", "true",
}

// Generator invokes framework generators through a Runner.
type Generator struct {
	Runner runner.Runner
	Log    *zap.Logger
}

// Result holds the outcome of a scaffold.
type Result struct {
	ProjectDir string
	Command    runner.Command
}

// Scaffold creates <cwd>/<name> with the generator for a.Framework. The
// directory must not exist beforehand.
func (g *Generator) Scaffold(ctx context.Context, a answers.Answers, cwd string) (*Result, error) {
	projectDir, err := filepath.Abs(filepath.Join(cwd, a.Name))
	if err != nil {
		return nil, fmt.Errorf("resolving project directory: %w", err)
	}

	if _, err := os.Stat(projectDir); err == nil {
		return nil, fmt.Errorf("%w: %s; remove it or choose another name", ErrDirExists, projectDir)
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("checking project directory: %w", err)
	}

	cmd, err := Command(a, cwd)
	if err != nil {
		return nil, err
	}

	g.Log.Info("Scaffolding project", zap.String("name", a.Name), zap.String("framework", a.Framework))
	g.Log.Info("Running", zap.String("command", cmd.String()))
	if err := g.Runner.Run(ctx, cmd); err != nil {
		return nil, fmt.Errorf("scaffolding %s project: %w", a.Framework, err)
	}

	if _, err := os.Stat(projectDir); err != nil {
		return nil, fmt.Errorf("generator finished but %s was not created: %w", projectDir, err)
	}
	return &Result{ProjectDir: projectDir, Command: cmd}, nil
}

// Command returns the generator invocation for a, run from cwd.
func Command(a answers.Answers, cwd string) (runner.Command, error) {
	switch a.Framework {
	case answers.FrameworkNext:
		return nextCommand(a, cwd), nil
	case answers.FrameworkReact:
		return viteCommand(a, cwd), nil
	default:
		return runner.Command{}, fmt.Errorf("unsupported framework: %s", a.Framework)
	}
}

func nextCommand(a answers.Answers, cwd string) runner.Command {
	lang := "--js"
	if a.TypeScript() {
		lang = "--ts"
	}
	flags := append([]string{lang}, nextFlags...)
	flags = append(flags, "--use-"+a.PkgManager.String())

	switch a.PkgManager {
	case pkgmgr.NPM:
		return runner.Command{Name: "npx", Args: append([]string{"create-next-app@latest", a.Name}, flags...), Dir: cwd}
	default:
		return runner.Command{Name: a.PkgManager.String(), Args: append([]string{"create", "next-app", a.Name}, flags...), Dir: cwd}
	}
}

func viteCommand(a answers.Answers, cwd string) runner.Command {
	template := "react"
	if a.TypeScript() {
		template = "react-ts"
	}

	args := []string{"create-vite@latest", a.Name, "--template", template}
	if a.TypeScript() {
		args = append(args, "--no-rolldown")
	}
	args = append(args, "--no-interactive")

	switch a.PkgManager {
	case pkgmgr.Bun:
		return runner.Command{Name: "bun", Args: append([]string{"x"}, args...), Dir: cwd}
	case pkgmgr.PNPM:
		return runner.Command{Name: "pnpm", Args: append([]string{"dlx"}, args...), Dir: cwd}
	case pkgmgr.Yarn:
		return runner.Command{Name: "yarn", Args: append([]string{"dlx"}, args...), Dir: cwd}
	default:
		return runner.Command{Name: "npx", Args: args, Dir: cwd}
	}
}
