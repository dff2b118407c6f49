package postinstall

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/sasswave-labs/sasswave-create/internal/answers"
	"github.com/sasswave-labs/sasswave-create/internal/layout"
	"github.com/sasswave-labs/sasswave-create/internal/templates"
)

// ThreePackages are installed when the 3D demo is requested.
var ThreePackages = []string{"three", "@react-three/fiber", "@react-three/drei"}

const sceneImport = "import ThreeScene from './ThreeScene';"

// SetupThree installs the three.js packages and wires a demo scene into the
// home component. A failed install is returned; everything after it is best
// effort and only logged.
func (i *Installer) SetupThree(ctx context.Context, a answers.Answers, projectDir string) error {
	if !a.Want3D {
		return nil
	}
	log := i.logger()

	if i.Settings.SkipThreeInstall {
		log.Info("Skipping 3D package install (skip_three_install is set)")
	} else {
		log.Info("Installing 3D packages: " + strings.Join(ThreePackages, ", "))
		if err := i.Runner.Run(ctx, a.PkgManager.Add(projectDir, ThreePackages...)); err != nil {
			log.Warn("Failed to install 3D packages", zap.Error(err))
			return fmt.Errorf("installing 3D packages: %w", err)
		}
	}

	if err := i.injectScene(a, projectDir); err != nil {
		log.Warn("Failed to configure 3D scene", zap.Error(err))
	}
	return nil
}

// injectScene writes ThreeScene beside the home component and mounts it there.
// Running it again leaves the component and stylesheet unchanged.
func (i *Installer) injectScene(a answers.Answers, projectDir string) error {
	log := i.logger()
	ts := a.TypeScript()

	var (
		host      string
		ok        bool
		styles    string
		useClient bool
	)
	switch {
	case a.IsNext():
		appDir := filepath.Join(projectDir, "src", "app")
		host, ok = layout.FirstExisting(appDir, layout.NextPage.For(ts))
		styles = filepath.Join(appDir, "page.module.scss")
		useClient = true
	case a.IsReact():
		host, ok = layout.FirstExisting(projectDir, layout.AppComponent.For(ts))
		styles = filepath.Join(projectDir, "src", "App.module.scss")
	default:
		return nil
	}
	if !ok {
		log.Info("No home component found; skipping 3D scene")
		return nil
	}

	ext := ".jsx"
	if ts {
		ext = ".tsx"
	}
	scenePath := filepath.Join(filepath.Dir(host), "ThreeScene"+ext)
	if err := writeFile(scenePath, templates.ThreeScene(useClient)); err != nil {
		return err
	}
	log.Info("Wrote ThreeScene example", zap.String("path", relPath(projectDir, scenePath)))

	data, err := os.ReadFile(host)
	if err != nil {
		return fmt.Errorf("reading %s: %w", relPath(projectDir, host), err)
	}
	content := insertSceneSection(insertImport(string(data), sceneImport))
	if content != string(data) {
		if err := os.WriteFile(host, []byte(content), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", relPath(projectDir, host), err)
		}
	}

	return ensureSceneStyles(styles)
}

// insertImport adds line at the top of content, after a leading client
// directive when there is one. Content already holding line is returned as is.
func insertImport(content, line string) string {
	if strings.Contains(content, line) {
		return content
	}

	first, rest, found := strings.Cut(content, "\n")
	if isClientDirective(first) {
		if !found {
			return first + "\n" + line + "\n"
		}
		return first + "\n" + line + "\n" + rest
	}
	return line + "\n" + content
}

func isClientDirective(line string) bool {
	switch strings.TrimSpace(line) {
	case `"use client";`, `'use client';`, `"use client"`, `'use client'`:
		return true
	}
	return false
}

// insertSceneSection mounts the scene before the footer, or at the end of
// content when there is no footer.
func insertSceneSection(content string) string {
	if strings.Contains(content, "<ThreeScene") {
		return content
	}
	section := templates.SceneSection()

	idx := strings.Index(content, "<footer")
	if idx == -1 {
		if content != "" && !strings.HasSuffix(content, "\n") {
			content += "\n"
		}
		return content + section
	}

	lineStart := strings.LastIndex(content[:idx], "\n") + 1
	if strings.TrimSpace(content[lineStart:idx]) == "" {
		return content[:lineStart] + section + content[lineStart:]
	}
	return content[:idx] + "\n" + section + content[idx:]
}

// ensureSceneStyles appends the .scene rules to path once. A missing
// stylesheet is left alone.
func ensureSceneStyles(path string) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", filepath.Base(path), err)
	}
	if strings.Contains(string(data), ".scene") {
		return nil
	}

	content := strings.TrimRight(string(data), "\n") + "\n" + templates.SceneStyles()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	return nil
}
