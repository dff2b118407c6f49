package templates

import (
	"strings"
	"testing"

	"github.com/sasswave-labs/sasswave-create/internal/branding"
)

func TestGlobalStyles(t *testing.T) {
	css := GlobalStyles()

	assertContains(t, css, `@use "sass:color";`)
	assertContains(t, css, "@font-face")
	assertContains(t, css, "@mixin smooth-font")
	assertContains(t, css, "@mixin focus-ring($color)")
	assertContains(t, css, "color.adjust(")
	assertContains(t, css, "$breakpoint-lg: 880px;")
	assertContains(t, css, "$breakpoint-md: 640px;")
	assertContains(t, css, "$breakpoint-sm: 480px;")
	assertContains(t, css, "prefers-color-scheme: dark")
}

func TestPageStyles_Classes(t *testing.T) {
	css := PageStyles()

	for _, sel := range []string{
		".page {", ".main {", ".header {", ".logo {", ".nav {", ".hero {",
		".h1 {", ".lead {", ".ctas {", "a.primary {", "a.secondary {", ".footer {",
	} {
		assertContains(t, css, sel)
	}
	for _, bp := range []string{"max-width: 880px", "max-width: 640px", "max-width: 480px"} {
		assertContains(t, css, bp)
	}
	assertContains(t, css, "linear-gradient(90deg")
	assertContains(t, css, "prefers-color-scheme: dark")
}

func TestAppComponent(t *testing.T) {
	src := AppComponent()

	assertContains(t, src, "import styles from './App.module.scss';")
	assertContains(t, src, "export default function App()")
	assertContains(t, src, `<img src="`+branding.Wordmark()+`"`)
	assertContains(t, src, `href="`+branding.ComponentsURL()+`"`)
	assertContains(t, src, `href="`+branding.DocsURL()+`"`)
	assertContains(t, src, "new Date().getFullYear()")
	assertContains(t, src, "<footer")
	assertNotContains(t, src, "use client")
	assertNotContains(t, src, "next/")
	assertNotContains(t, src, "[[")
}

func TestReactEntry(t *testing.T) {
	src := ReactEntry("App.tsx")

	assertContains(t, src, "import App from './App.tsx';")
	assertContains(t, src, "import './styles.scss';")
	assertContains(t, src, "<React.StrictMode>")
	assertContains(t, src, "throw new Error('Root element not found');")

	js := ReactEntry("App.js")
	assertContains(t, js, "import App from './App.js';")
}

func TestNextLayout(t *testing.T) {
	t.Run("typescript", func(t *testing.T) {
		src := NextLayout(true)
		assertContains(t, src, "import type { Metadata } from 'next';")
		assertContains(t, src, "export const metadata: Metadata = {")
		assertContains(t, src, "{ children }: { children: ReactNode }")
		assertContains(t, src, "title: '"+branding.ProductTitle()+"'")
		assertContains(t, src, "description: '"+branding.ProductDescription()+"'")
		assertContains(t, src, "import './globals.scss';")
		assertNotContains(t, src, "use client")
	})

	t.Run("javascript", func(t *testing.T) {
		src := NextLayout(false)
		assertContains(t, src, "export const metadata = {")
		assertContains(t, src, "RootLayout({ children })")
		assertNotContains(t, src, "Metadata")
		assertNotContains(t, src, "ReactNode")
		assertNotContains(t, src, "use client")
	})
}

func TestNextPage(t *testing.T) {
	src := NextPage()

	if !strings.HasPrefix(src, `"use client";`) {
		t.Errorf("page should start with the client directive, got %q", firstLine(src))
	}
	assertContains(t, src, "import Image from 'next/image';")
	assertContains(t, src, "import Link from 'next/link';")
	assertContains(t, src, "import styles from './page.module.scss';")
	assertContains(t, src, "export default function Home()")
	assertContains(t, src, "<Image src=")
	assertContains(t, src, `<Link href="`+branding.DocsURL()+`"`)
	assertContains(t, src, "</Link>")
	assertContains(t, src, "new Date().getFullYear()")
	assertNotContains(t, src, "<a ")
	assertNotContains(t, src, "metadata")
}

func TestThreeScene(t *testing.T) {
	client := ThreeScene(true)
	if !strings.HasPrefix(client, "'use client';") {
		t.Errorf("client scene should start with the directive, got %q", firstLine(client))
	}

	plain := ThreeScene(false)
	assertNotContains(t, plain, "use client")

	for _, src := range []string{client, plain} {
		assertContains(t, src, "import { Canvas } from '@react-three/fiber';")
		assertContains(t, src, "import { OrbitControls } from '@react-three/drei';")
		assertContains(t, src, "<ambientLight />")
		assertContains(t, src, "<pointLight")
		assertContains(t, src, "<boxGeometry args={[1, 1, 1]} />")
		assertContains(t, src, "style={{ height: '100vh' }}")
	}
}

func TestSceneFragments(t *testing.T) {
	assertContains(t, SceneStyles(), ".scene {")
	section := SceneSection()
	assertContains(t, section, "<ThreeScene />")
	assertContains(t, section, "className={styles.scene}")
	if !strings.HasSuffix(section, "\n") {
		t.Error("scene section should end with a newline")
	}
}

// Only the layout's metadata export may sit beside a client directive; no
// template emits both.
func TestNoDirectiveBesideMetadata(t *testing.T) {
	for name, src := range map[string]string{
		"layout-ts":    NextLayout(true),
		"layout-js":    NextLayout(false),
		"page":         NextPage(),
		"scene-client": ThreeScene(true),
		"app":          AppComponent(),
	} {
		if strings.Contains(src, "use client") && strings.Contains(src, "export const metadata") {
			t.Errorf("%s carries both a client directive and a metadata export", name)
		}
	}
}

// ─── Test Helpers ───────────────────────────────────────────────────────────

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

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}
