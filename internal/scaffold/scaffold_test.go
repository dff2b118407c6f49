package scaffold

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/sasswave-labs/sasswave-create/internal/answers"
	"github.com/sasswave-labs/sasswave-create/internal/pkgmgr"
	"github.com/sasswave-labs/sasswave-create/internal/runner"
	"github.com/sasswave-labs/sasswave-create/internal/runner/runnertest"
)

func TestCommand(t *testing.T) {
	const nextTail = "--eslint --tailwind false --src-dir true --app true --import-alias @/* --react-compiler true"

	tests := []struct {
		name string
		a    answers.Answers
		want string
	}{
		{
			"next npm ts",
			answers.Answers{Name: "app", Framework: answers.FrameworkNext, Language: answers.LanguageTypeScript, PkgManager: pkgmgr.NPM},
			"npx create-next-app@latest app --ts " + nextTail + " --use-npm",
		},
		{
			"next bun js",
			answers.Answers{Name: "app", Framework: answers.FrameworkNext, Language: answers.LanguageJavaScript, PkgManager: pkgmgr.Bun},
			"bun create next-app app --js " + nextTail + " --use-bun",
		},
		{
			"vite npm ts",
			answers.Answers{Name: "app", Framework: answers.FrameworkReact, Language: answers.LanguageTypeScript, PkgManager: pkgmgr.NPM},
			"npx create-vite@latest app --template react-ts --no-rolldown --no-interactive",
		},
		{
			"vite bun js",
			answers.Answers{Name: "app", Framework: answers.FrameworkReact, Language: answers.LanguageJavaScript, PkgManager: pkgmgr.Bun},
			"bun x create-vite@latest app --template react --no-interactive",
		},
		{
			"vite pnpm js",
			answers.Answers{Name: "app", Framework: answers.FrameworkReact, Language: answers.LanguageJavaScript, PkgManager: pkgmgr.PNPM},
			"pnpm dlx create-vite@latest app --template react --no-interactive",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := Command(tt.a, "/work")
			if err != nil {
				t.Fatalf("Command() error: %v", err)
			}
			if got := cmd.String(); got != tt.want {
				t.Errorf("Command() =\n  %q\nwant\n  %q", got, tt.want)
			}
			if cmd.Dir != "/work" {
				t.Errorf("Dir = %q, want /work", cmd.Dir)
			}
		})
	}
}

func TestCommand_UnsupportedFramework(t *testing.T) {
	if _, err := Command(answers.Answers{Name: "app", Framework: "svelte"}, "/work"); err == nil {
		t.Fatal("expected error")
	}
}

func TestScaffold_RunsGenerator(t *testing.T) {
	cwd := t.TempDir()
	a := answers.Answers{Name: "site", Framework: answers.FrameworkReact, Language: answers.LanguageTypeScript, PkgManager: pkgmgr.NPM}

	rec := &runnertest.Recorder{
		OnRun: func(c runner.Command) error {
			return os.MkdirAll(filepath.Join(c.Dir, "site", "src"), 0755)
		},
	}
	g := &Generator{Runner: rec, Log: zap.NewNop()}

	res, err := g.Scaffold(context.Background(), a, cwd)
	if err != nil {
		t.Fatalf("Scaffold() error: %v", err)
	}
	if res.ProjectDir != filepath.Join(cwd, "site") {
		t.Errorf("ProjectDir = %q", res.ProjectDir)
	}
	if len(rec.Commands) != 1 || !strings.HasPrefix(rec.Lines()[0], "npx create-vite@latest site") {
		t.Errorf("unexpected commands: %v", rec.Lines())
	}
}

func TestScaffold_ExistingDir(t *testing.T) {
	cwd := t.TempDir()
	if err := os.Mkdir(filepath.Join(cwd, "taken"), 0755); err != nil {
		t.Fatal(err)
	}

	rec := &runnertest.Recorder{}
	g := &Generator{Runner: rec, Log: zap.NewNop()}
	a := answers.Answers{Name: "taken", Framework: answers.FrameworkNext, Language: answers.LanguageTypeScript, PkgManager: pkgmgr.NPM}

	_, err := g.Scaffold(context.Background(), a, cwd)
	if !errors.Is(err, ErrDirExists) {
		t.Fatalf("expected ErrDirExists, got %v", err)
	}
	if len(rec.Commands) != 0 {
		t.Errorf("generator should not run, got %v", rec.Lines())
	}
}

func TestScaffold_GeneratorFails(t *testing.T) {
	cwd := t.TempDir()
	a := answers.Answers{Name: "app", Framework: answers.FrameworkNext, Language: answers.LanguageJavaScript, PkgManager: pkgmgr.Bun}
	cmd, _ := Command(a, cwd)

	boom := errors.New("exit status 1")
	g := &Generator{Runner: &runnertest.Recorder{Fail: map[string]error{cmd.String(): boom}}, Log: zap.NewNop()}

	if _, err := g.Scaffold(context.Background(), a, cwd); !errors.Is(err, boom) {
		t.Fatalf("expected generator error, got %v", err)
	}
}

func TestScaffold_GeneratorCreatedNothing(t *testing.T) {
	a := answers.Answers{Name: "ghost", Framework: answers.FrameworkReact, Language: answers.LanguageJavaScript, PkgManager: pkgmgr.NPM}
	g := &Generator{Runner: &runnertest.Recorder{}, Log: zap.NewNop()}

	if _, err := g.Scaffold(context.Background(), a, t.TempDir()); err == nil {
		t.Fatal("expected error when the project directory is missing afterwards")
	}
}
