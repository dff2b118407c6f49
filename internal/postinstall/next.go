package postinstall

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"go.uber.org/zap"

	"github.com/sasswave-labs/sasswave-create/internal/answers"
	"github.com/sasswave-labs/sasswave-create/internal/layout"
	"github.com/sasswave-labs/sasswave-create/internal/templates"
)

// tailwindArtifacts are create-next-app files SassWave removes.
var tailwindArtifacts = []string{
	"tailwind.config.js",
	"tailwind.config.cjs",
	"tailwind.config.mjs",
	"tailwind.config.ts",
	"postcss.config.js",
	"postcss.config.cjs",
	"postcss.config.mjs",
	"src/app/globals.css",
	"src/app/globals.scss",
	"src/app/page.module.css",
	"public/file.svg",
	"public/globe.svg",
	"public/next.svg",
	"public/vercel.svg",
	"public/window.svg",
}

var (
	tailwindDeps = []string{"tailwindcss", "@tailwindcss/postcss"}
	depSections  = []string{"dependencies", "devDependencies"}
)

// SetupNext applies SassWave defaults to a create-next-app project using the
// App Router under src/app.
func (i *Installer) SetupNext(ctx context.Context, a answers.Answers, projectDir string) error {
	log := i.logger()

	if err := i.removeFiles(projectDir, tailwindArtifacts, "Removed Tailwind file"); err != nil {
		return err
	}
	if err := i.removeTailwindDeps(projectDir); err != nil {
		return err
	}

	appDir := filepath.Join(projectDir, "src", "app")
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return fmt.Errorf("creating src/app: %w", err)
	}

	ts := a.TypeScript()
	layoutPath := layout.Resolve(appDir, layout.NextLayout.For(ts))
	pagePath := layout.Resolve(appDir, layout.NextPage.For(ts))

	files := []struct {
		path    string
		content string
	}{
		{filepath.Join(appDir, "globals.scss"), templates.GlobalStyles()},
		{filepath.Join(appDir, "page.module.scss"), templates.PageStyles()},
		{layoutPath, templates.NextLayout(ts)},
		{pagePath, templates.NextPage()},
	}
	for _, f := range files {
		if err := writeFile(f.path, f.content); err != nil {
			return err
		}
	}
	log.Info("Rebuilt Next.js entry files (layout & page) with SassWave defaults",
		zap.String("layout", relPath(projectDir, layoutPath)),
		zap.String("page", relPath(projectDir, pagePath)))

	i.fetchAssets(ctx, a, projectDir)
	return nil
}

// removeTailwindDeps drops the Tailwind packages from package.json. The file
// is rewritten only when something was removed, keeping the order of every
// other key.
func (i *Installer) removeTailwindDeps(projectDir string) error {
	pkgPath := filepath.Join(projectDir, "package.json")
	data, err := os.ReadFile(pkgPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading package.json: %w", err)
	}

	pkg, err := decodeObject(data)
	if err != nil {
		return fmt.Errorf("parsing package.json: %w", err)
	}

	changed := false
	for idx, f := range pkg {
		if !slices.Contains(depSections, f.key) {
			continue
		}
		deps, err := decodeObject(f.value)
		if err != nil {
			// Not an object; leave it as the generator wrote it.
			continue
		}

		kept := deps[:0]
		for _, d := range deps {
			if slices.Contains(tailwindDeps, d.key) {
				i.logger().Info("Removed Tailwind dependency", zap.String("package", d.key), zap.String("section", f.key))
				changed = true
				continue
			}
			kept = append(kept, d)
		}
		pkg[idx].value = encodeObject(kept)
	}
	if !changed {
		return nil
	}

	var out bytes.Buffer
	if err := json.Indent(&out, encodeObject(pkg), "", "  "); err != nil {
		return fmt.Errorf("formatting package.json: %w", err)
	}
	out.WriteByte('\n')
	if err := os.WriteFile(pkgPath, out.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing package.json: %w", err)
	}
	return nil
}

// field is one member of a JSON object, kept in document order.
type field struct {
	key   string
	value json.RawMessage
}

// decodeObject splits a JSON object into its members without reordering them.
func decodeObject(data []byte) ([]field, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("expected a JSON object")
	}

	var fields []field
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v", tok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("decoding %q: %w", key, err)
		}
		fields = append(fields, field{key: key, value: raw})
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return fields, nil
}

// encodeObject joins members back into a compact JSON object.
func encodeObject(fields []field) json.RawMessage {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for n, f := range fields {
		if n > 0 {
			buf.WriteByte(',')
		}
		key, _ := json.Marshal(f.key)
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(f.value)
	}
	buf.WriteByte('}')
	return buf.Bytes()
}
