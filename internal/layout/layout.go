package layout

import (
	"os"
	"path/filepath"
	"strings"
)

// Candidates holds the ordered relative paths probed for one role, per language.
type Candidates struct {
	TypeScript []string
	JavaScript []string
}

// For returns the candidate list for the given language variant.
func (c Candidates) For(typeScript bool) []string {
	if typeScript {
		return c.TypeScript
	}
	return c.JavaScript
}

// Role tables. React paths are relative to the project root, Next.js paths to
// src/app.
var (
	AppComponent = Candidates{
		TypeScript: []string{"src/App.tsx"},
		JavaScript: []string{"src/App.jsx", "src/App.js"},
	}

	// ReactEntry is the Vite entry module. Any language may ship any of these.
	ReactEntry = []string{"src/main.tsx", "src/main.ts", "src/main.jsx", "src/main.js"}

	NextLayout = Candidates{
		TypeScript: []string{"layout.tsx", "layout.ts"},
		JavaScript: []string{"layout.js", "layout.jsx"},
	}

	NextPage = Candidates{
		TypeScript: []string{"page.tsx", "page.ts"},
		JavaScript: []string{"page.js", "page.jsx"},
	}
)

// Resolve returns the absolute path of the first candidate that exists under
// baseDir. If none exist it returns the first candidate joined to baseDir, so
// callers can always write there.
func Resolve(baseDir string, candidates []string) string {
	if found, ok := FirstExisting(baseDir, candidates); ok {
		return found
	}
	if len(candidates) == 0 {
		return baseDir
	}
	return filepath.Join(baseDir, filepath.FromSlash(candidates[0]))
}

// FirstExisting returns the first candidate that exists under baseDir.
func FirstExisting(baseDir string, candidates []string) (string, bool) {
	for _, rel := range candidates {
		full := filepath.Join(baseDir, filepath.FromSlash(rel))
		if Exists(full) {
			return full, true
		}
	}
	return "", false
}

// Exists reports whether path exists. Permission and other stat errors count
// as absent.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Within reports whether target lies strictly inside root after lexical
// cleaning. A directory named "root-evil" beside "root" is not within it.
func Within(root, target string) bool {
	rel, err := filepath.Rel(filepath.Clean(root), filepath.Clean(target))
	if err != nil {
		return false
	}
	if rel == "." || filepath.IsAbs(rel) {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
