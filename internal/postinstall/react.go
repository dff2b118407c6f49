package postinstall

import (
	"context"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"regexp"

	"go.uber.org/zap"

	"github.com/sasswave-labs/sasswave-create/internal/answers"
	"github.com/sasswave-labs/sasswave-create/internal/branding"
	"github.com/sasswave-labs/sasswave-create/internal/layout"
	"github.com/sasswave-labs/sasswave-create/internal/templates"
)

// reactDefaults are the Vite starter files SassWave replaces.
var reactDefaults = []string{
	"src/index.css",
	"src/App.css",
	"public/vite.svg",
	"src/assets/react.svg",
}

var (
	faviconPattern = regexp.MustCompile(`(?i)<link[^>]+rel=["']icon["'][^>]*>`)
	titlePattern   = regexp.MustCompile(`(?i)<title>.*?</title>`)
)

// SetupReact applies SassWave defaults to a Vite React project. It is a no-op
// for other frameworks. Steps run in order and the first error stops the rest.
func (i *Installer) SetupReact(ctx context.Context, a answers.Answers, projectDir string) error {
	if !a.IsReact() {
		return nil
	}
	log := i.logger()

	if err := i.removeFiles(projectDir, reactDefaults, "Removed default React CSS file"); err != nil {
		return err
	}

	appPath := layout.Resolve(projectDir, layout.AppComponent.For(a.TypeScript()))
	if err := os.MkdirAll(filepath.Dir(appPath), 0755); err != nil {
		return fmt.Errorf("creating %s: %w", relPath(projectDir, filepath.Dir(appPath)), err)
	}
	if err := writeFile(filepath.Join(projectDir, "src", "App.module.scss"), templates.PageStyles()); err != nil {
		return err
	}
	if err := writeFile(appPath, templates.AppComponent()); err != nil {
		return err
	}

	if err := i.ensureScssEntry(projectDir, filepath.Base(appPath)); err != nil {
		return err
	}

	i.fetchAssets(ctx, a, projectDir)

	if err := tweakIndexHTML(projectDir, log); err != nil {
		return err
	}

	log.Info("Applied SassWave defaults to Vite React project")
	return nil
}

// ensureScssEntry writes src/styles.scss and points the Vite entry at it.
func (i *Installer) ensureScssEntry(projectDir, appFile string) error {
	log := i.logger()

	if err := writeFile(filepath.Join(projectDir, "src", "styles.scss"), templates.GlobalStyles()); err != nil {
		return err
	}

	entry, ok := layout.FirstExisting(projectDir, layout.ReactEntry)
	if !ok {
		log.Info("No React entry file found; wrote src/styles.scss without rewriting the entry")
		return nil
	}
	if err := writeFile(entry, templates.ReactEntry(appFile)); err != nil {
		return err
	}
	log.Info("Linked global SCSS into entry", zap.String("path", relPath(projectDir, entry)))
	return nil
}

// tweakIndexHTML sets the document title and, when the favicon was actually
// downloaded, points the icon link at it.
func tweakIndexHTML(projectDir string, log *zap.Logger) error {
	htmlPath := filepath.Join(projectDir, "index.html")
	data, err := os.ReadFile(htmlPath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading index.html: %w", err)
	}
	content := string(data)

	if layout.Exists(filepath.Join(projectDir, "public", branding.Favicon())) {
		link := fmt.Sprintf(`<link rel="shortcut icon" href="%s" type="image/x-icon">`, branding.Favicon())
		content = replaceFirst(faviconPattern, content, link)
	} else {
		log.Info("Keeping existing favicon link; no downloaded favicon", zap.String("path", "public/"+branding.Favicon()))
	}

	title := "<title>" + html.EscapeString(branding.ProductTitle()) + "</title>"
	content = replaceFirst(titlePattern, content, title)

	if content == string(data) {
		return nil
	}
	if err := os.WriteFile(htmlPath, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing index.html: %w", err)
	}
	log.Info("Updated index.html with SassWave favicon and title")
	return nil
}

// replaceFirst replaces the first match of re in s with the literal repl.
func replaceFirst(re *regexp.Regexp, s, repl string) string {
	loc := re.FindStringIndex(s)
	if loc == nil {
		return s
	}
	return s[:loc[0]] + repl + s[loc[1]:]
}
