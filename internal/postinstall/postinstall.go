package postinstall

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/sasswave-labs/sasswave-create/internal/answers"
	"github.com/sasswave-labs/sasswave-create/internal/assets"
	"github.com/sasswave-labs/sasswave-create/internal/config"
	"github.com/sasswave-labs/sasswave-create/internal/runner"
)

// Fetcher downloads the asset manifest into a project.
type Fetcher interface {
	Download(ctx context.Context, framework, projectDir string) *assets.Summary
}

// Installer runs the post-scaffold stages against one project directory.
type Installer struct {
	Runner   runner.Runner
	Assets   Fetcher // nil skips asset downloads
	Settings config.Settings
	Log      *zap.Logger
}

// AddSassAndThree installs sass, applies the framework defaults and runs the
// 3D injector. Framework post-processing errors are logged; install failures
// are returned.
func (i *Installer) AddSassAndThree(ctx context.Context, a answers.Answers, projectDir string) error {
	log := i.logger()

	log.Info("Installing SCSS support (sass) ...")
	if err := i.Runner.Run(ctx, a.PkgManager.AddDev(projectDir, "sass")); err != nil {
		log.Warn("Failed to install sass", zap.Error(err))
		return fmt.Errorf("installing sass: %w", err)
	}

	switch {
	case a.IsNext():
		if err := i.SetupNext(ctx, a, projectDir); err != nil {
			log.Warn("Failed to finalize Next.js project automatically", zap.Error(err))
		}
	case a.IsReact():
		if err := i.SetupReact(ctx, a, projectDir); err != nil {
			log.Warn("Failed to finalize React project automatically", zap.Error(err))
		}
	}

	return i.SetupThree(ctx, a, projectDir)
}

// InitGit runs git init in projectDir when requested. Failure is a warning.
func (i *Installer) InitGit(ctx context.Context, a answers.Answers, projectDir string) {
	if !a.Git {
		return
	}
	log := i.logger()

	if err := i.Runner.Run(ctx, runner.Command{Name: "git", Args: []string{"init"}, Dir: projectDir}); err != nil {
		log.Warn("git init failed (git may not be installed)", zap.Error(err))
		return
	}
	log.Info("Initialized empty git repository")
}

// StartDevServer runs the project's dev script in the foreground. Failure is
// logged.
func (i *Installer) StartDevServer(ctx context.Context, a answers.Answers, projectDir string) {
	log := i.logger()

	label := "Vite dev server"
	if a.IsNext() {
		label = "Next.js"
	}
	log.Info(fmt.Sprintf("Starting %s (Ctrl+C to stop)...", label))

	if err := i.Runner.Run(ctx, a.PkgManager.Dev(projectDir)); err != nil && ctx.Err() == nil {
		log.Warn("Failed to start dev server automatically", zap.Error(err))
	}
}

func (i *Installer) fetchAssets(ctx context.Context, a answers.Answers, projectDir string) {
	if i.Assets == nil {
		i.logger().Debug("Asset downloads disabled")
		return
	}
	sum := i.Assets.Download(ctx, a.Framework, projectDir)
	i.logger().Debug("Asset downloads finished",
		zap.Int("downloaded", len(sum.Downloaded)),
		zap.Int("skipped", len(sum.Skipped)),
		zap.Int("failed", len(sum.Failed)))
}

func (i *Installer) logger() *zap.Logger {
	if i.Log == nil {
		return zap.NewNop()
	}
	return i.Log
}

// removeFiles deletes each relative path under projectDir that exists.
func (i *Installer) removeFiles(projectDir string, rels []string, msg string) error {
	for _, rel := range rels {
		full := filepath.Join(projectDir, filepath.FromSlash(rel))
		if _, err := os.Lstat(full); err != nil {
			continue
		}
		if err := os.RemoveAll(full); err != nil {
			return fmt.Errorf("removing %s: %w", rel, err)
		}
		i.logger().Info(msg, zap.String("path", rel))
	}
	return nil
}

// writeFile writes content to path, creating parent directories.
func writeFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	return nil
}

// relPath renders path relative to projectDir with forward slashes for logs.
func relPath(projectDir, path string) string {
	rel, err := filepath.Rel(projectDir, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}
