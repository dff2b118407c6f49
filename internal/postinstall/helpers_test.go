package postinstall

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sasswave-labs/sasswave-create/internal/answers"
	"github.com/sasswave-labs/sasswave-create/internal/assets"
	"github.com/sasswave-labs/sasswave-create/internal/logging"
	"github.com/sasswave-labs/sasswave-create/internal/pkgmgr"
	"github.com/sasswave-labs/sasswave-create/internal/runner/runnertest"
)

// ─── Test Helpers ───────────────────────────────────────────────────────────

// fakeFetcher records downloads and writes placeholder files for each rel path.
type fakeFetcher struct {
	frameworks []string
	files      []string
}

func (f *fakeFetcher) Download(_ context.Context, framework, projectDir string) *assets.Summary {
	f.frameworks = append(f.frameworks, framework)
	for _, rel := range f.files {
		p := filepath.Join(projectDir, filepath.FromSlash(rel))
		_ = os.MkdirAll(filepath.Dir(p), 0755)
		_ = os.WriteFile(p, []byte("asset"), 0644)
	}
	return &assets.Summary{Downloaded: f.files}
}

type harness struct {
	inst    *Installer
	rec     *runnertest.Recorder
	fetcher *fakeFetcher
	logs    *bytes.Buffer
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	var logs bytes.Buffer
	h := &harness{
		rec:     &runnertest.Recorder{},
		fetcher: &fakeFetcher{},
		logs:    &logs,
	}
	h.inst = &Installer{
		Runner: h.rec,
		Assets: h.fetcher,
		Log:    logging.New(&logs, logging.WithColor(false)),
	}
	return h
}

func reactAnswers(ts bool) answers.Answers {
	lang := answers.LanguageJavaScript
	if ts {
		lang = answers.LanguageTypeScript
	}
	return answers.Answers{Name: "app", Framework: answers.FrameworkReact, Language: lang, PkgManager: pkgmgr.NPM}
}

func nextAnswers(ts bool) answers.Answers {
	a := reactAnswers(ts)
	a.Framework = answers.FrameworkNext
	return a
}

// writeTree creates each file (relative path -> content) under root.
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		p := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func readFile(t *testing.T, root, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	if err != nil {
		t.Fatalf("reading %s: %v", rel, err)
	}
	return string(data)
}

func assertExists(t *testing.T, root, rel string) {
	t.Helper()
	if _, err := os.Stat(filepath.Join(root, filepath.FromSlash(rel))); err != nil {
		t.Errorf("expected %s to exist", rel)
	}
}

func assertMissing(t *testing.T, root, rel string) {
	t.Helper()
	if _, err := os.Stat(filepath.Join(root, filepath.FromSlash(rel))); !os.IsNotExist(err) {
		t.Errorf("expected %s to be removed", rel)
	}
}

func assertContains(t *testing.T, content, substr string) {
	t.Helper()
	if !strings.Contains(content, substr) {
		t.Errorf("expected content to contain %q", substr)
	}
}

func assertNotContains(t *testing.T, content, substr string) {
	t.Helper()
	if strings.Contains(content, substr) {
		t.Errorf("expected content NOT to contain %q", substr)
	}
}

func assertCount(t *testing.T, content, substr string, want int) {
	t.Helper()
	if got := strings.Count(content, substr); got != want {
		t.Errorf("expected %d occurrence(s) of %q, got %d", want, substr, got)
	}
}
