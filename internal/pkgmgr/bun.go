package pkgmgr

import (
	"context"
	"fmt"
	"path/filepath"
	goruntime "runtime"

	"go.uber.org/zap"

	"github.com/sasswave-labs/sasswave-create/internal/runner"
)

const (
	bunInstallScript   = "curl -fsSL https://bun.sh/install | bash"
	bunInstallScriptPS = "irm bun.sh/install.ps1 | iex"
)

// EnsureBun returns env unchanged when bun already resolves. Otherwise it runs
// the official install script through r and returns env with Bun's bin
// directory prepended to PATH. The process environment is never modified.
func EnsureBun(ctx context.Context, r runner.Runner, env runner.Env, log *zap.Logger) (runner.Env, error) {
	if _, err := env.LookPath("bun"); err == nil {
		return env, nil
	}

	log.Info("Bun is not installed. Installing Bun globally...")
	if err := r.Run(ctx, bunInstallCommand()); err != nil {
		return env, fmt.Errorf("installing bun: %w", err)
	}

	next := env.PrependPath(BunBinDir(env))
	if _, err := next.LookPath("bun"); err != nil {
		return env, fmt.Errorf("bun installed but not found in %s: %w", BunBinDir(env), err)
	}
	log.Info("Bun installation complete. Continuing with project setup...")
	return next, nil
}

// BunBinDir is where the install script places the bun binary: $BUN_INSTALL/bin
// when set, else ~/.bun/bin.
func BunBinDir(env runner.Env) string {
	if root := env.Get("BUN_INSTALL"); root != "" {
		return filepath.Join(root, "bin")
	}
	home := env.Get("HOME")
	if goruntime.GOOS == "windows" {
		home = env.Get("USERPROFILE")
	}
	return filepath.Join(home, ".bun", "bin")
}

func bunInstallCommand() runner.Command {
	if goruntime.GOOS == "windows" {
		return runner.Command{Name: "powershell", Args: []string{"-c", bunInstallScriptPS}}
	}
	return runner.Command{Name: "bash", Args: []string{"-c", bunInstallScript}}
}
