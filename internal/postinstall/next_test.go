package postinstall

import (
	"context"
	"strings"
	"testing"
)

const nextPackageJSON = `{
  "name": "app",
  "version": "0.1.0",
  "private": true,
  "scripts": {
    "dev": "next dev",
    "build": "next build"
  },
  "dependencies": {
    "react": "19.0.0",
    "next": "15.1.0",
    "tailwindcss": "^4"
  },
  "devDependencies": {
    "@tailwindcss/postcss": "^4",
    "eslint": "^9"
  }
}
`

func nextFixture(ts bool) map[string]string {
	layout, page := "src/app/layout.js", "src/app/page.js"
	if ts {
		layout, page = "src/app/layout.tsx", "src/app/page.tsx"
	}
	return map[string]string{
		layout:                    "export default function RootLayout() {}",
		page:                      "export default function Home() {}",
		"tailwind.config.js":      "module.exports = {}",
		"postcss.config.js":       "module.exports = {}",
		"postcss.config.mjs":      "export default {}",
		"src/app/globals.css":     "@import 'tailwindcss';",
		"src/app/page.module.css": ".page {}",
		"public/next.svg":         "<svg/>",
		"public/vercel.svg":       "<svg/>",
		"package.json":            nextPackageJSON,
	}
}

func TestSetupNext_LanguageVariants(t *testing.T) {
	for _, ts := range []bool{true, false} {
		name := "javascript"
		layout, page := "src/app/layout.js", "src/app/page.js"
		if ts {
			name = "typescript"
			layout, page = "src/app/layout.tsx", "src/app/page.tsx"
		}

		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			writeTree(t, dir, nextFixture(ts))
			h := newHarness(t)

			if err := h.inst.SetupNext(context.Background(), nextAnswers(ts), dir); err != nil {
				t.Fatalf("SetupNext() error: %v", err)
			}

			for _, rel := range []string{
				"tailwind.config.js", "postcss.config.js", "postcss.config.mjs",
				"src/app/globals.css", "src/app/page.module.css", "public/next.svg", "public/vercel.svg",
			} {
				assertMissing(t, dir, rel)
			}

			pkg := readFile(t, dir, "package.json")
			assertNotContains(t, pkg, "tailwindcss")
			assertNotContains(t, pkg, "@tailwindcss/postcss")
			assertContains(t, pkg, `"eslint": "^9"`)

			assertContains(t, readFile(t, dir, "src/app/globals.scss"), `@use "sass:color";`)
			assertContains(t, readFile(t, dir, "src/app/page.module.scss"), ".page")

			lay := readFile(t, dir, layout)
			assertContains(t, lay, "export const metadata")
			assertNotContains(t, lay, "use client")

			pg := readFile(t, dir, page)
			assertContains(t, pg, `"use client";`)
			assertContains(t, pg, "import styles from './page.module.scss';")

			if len(h.fetcher.frameworks) != 1 || h.fetcher.frameworks[0] != "next.js" {
				t.Errorf("fetcher called with %v", h.fetcher.frameworks)
			}
		})
	}
}

func TestSetupNext_PreservesPackageOrder(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"package.json": nextPackageJSON})
	h := newHarness(t)

	if err := h.inst.SetupNext(context.Background(), nextAnswers(true), dir); err != nil {
		t.Fatalf("SetupNext() error: %v", err)
	}

	pkg := readFile(t, dir, "package.json")
	order := []string{`"name"`, `"version"`, `"private"`, `"scripts"`, `"dev"`, `"build"`, `"dependencies"`, `"react"`, `"next"`, `"devDependencies"`, `"eslint"`}
	last := -1
	for _, key := range order {
		idx := strings.Index(pkg, key)
		if idx <= last {
			t.Fatalf("key %s out of order in:\n%s", key, pkg)
		}
		last = idx
	}
	if !strings.HasSuffix(pkg, "}\n") {
		t.Error("package.json should end with a newline")
	}
	assertContains(t, pkg, "\n  \"name\": \"app\",")
	assertContains(t, h.logs.String(), "Removed Tailwind dependency")
}

func TestSetupNext_PackageUntouchedWithoutTailwind(t *testing.T) {
	dir := t.TempDir()
	original := "{\"name\":\"app\",\"dependencies\":{\"next\":\"15.1.0\"}}"
	writeTree(t, dir, map[string]string{"package.json": original})
	h := newHarness(t)

	if err := h.inst.SetupNext(context.Background(), nextAnswers(true), dir); err != nil {
		t.Fatalf("SetupNext() error: %v", err)
	}
	if got := readFile(t, dir, "package.json"); got != original {
		t.Errorf("package.json rewritten:\n%s", got)
	}
}

func TestSetupNext_InvalidPackageJSON(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"package.json": "{not json"})
	h := newHarness(t)

	if err := h.inst.SetupNext(context.Background(), nextAnswers(true), dir); err == nil {
		t.Fatal("expected error for malformed package.json")
	}
}

func TestSetupNext_EmptyProject(t *testing.T) {
	dir := t.TempDir()
	h := newHarness(t)

	if err := h.inst.SetupNext(context.Background(), nextAnswers(false), dir); err != nil {
		t.Fatalf("SetupNext() error: %v", err)
	}
	assertExists(t, dir, "src/app/layout.js")
	assertExists(t, dir, "src/app/page.js")
	assertExists(t, dir, "src/app/globals.scss")
	assertMissing(t, dir, "package.json")
}

func TestSetupNext_KeepsExistingVariant(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"src/app/page.jsx": "old", "src/app/layout.jsx": "old"})
	h := newHarness(t)

	if err := h.inst.SetupNext(context.Background(), nextAnswers(false), dir); err != nil {
		t.Fatalf("SetupNext() error: %v", err)
	}
	assertContains(t, readFile(t, dir, "src/app/page.jsx"), "export default function Home()")
	assertContains(t, readFile(t, dir, "src/app/layout.jsx"), "export const metadata")
	assertMissing(t, dir, "src/app/page.js")
}
