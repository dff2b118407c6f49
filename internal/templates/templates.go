package templates

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"

	"github.com/sasswave-labs/sasswave-create/internal/branding"
)

//go:embed files/*.tmpl
var filesFS embed.FS

var set = template.Must(template.New("files").Delims("[[", "]]").ParseFS(filesFS, "files/*.tmpl"))

// data holds every variable available to the embedded templates.
type data struct {
	TypeScript bool
	UseClient  bool
	Next       bool

	Component   string // exported component name
	StyleModule string // CSS module imported by the component
	Anchor      string // "a" or "Link"
	AppImport   string // root component file imported by the Vite entry

	DisplayName   string
	Title         string
	Description   string
	Wordmark      string
	ComponentsURL string
	DocsURL       string
	GetStartedURL string
}

func newData() data {
	return data{
		DisplayName:   branding.DisplayName(),
		Title:         branding.ProductTitle(),
		Description:   branding.ProductDescription(),
		Wordmark:      branding.Wordmark(),
		ComponentsURL: branding.ComponentsURL(),
		DocsURL:       branding.DocsURL(),
		GetStartedURL: branding.GetStartedURL(),
	}
}

// render executes one embedded template. The sources are compiled into the
// binary, so a failure here is a programming error.
func render(name string, d data) string {
	var buf bytes.Buffer
	if err := set.ExecuteTemplate(&buf, name, d); err != nil {
		panic(fmt.Sprintf("templates: executing %s: %v", name, err))
	}
	return buf.String()
}

// GlobalStyles returns the project-wide SCSS stylesheet.
func GlobalStyles() string { return render("global.scss.tmpl", newData()) }

// PageStyles returns the CSS module shared by the React root component and the
// Next.js home page.
func PageStyles() string { return render("page.module.scss.tmpl", newData()) }

// AppComponent returns the React root component. It imports ./App.module.scss.
func AppComponent() string {
	d := newData()
	d.Component = "App"
	d.StyleModule = "App.module.scss"
	d.Anchor = "a"
	return render("home.jsx.tmpl", d)
}

// ReactEntry returns the Vite entry module. appImport is the root component's
// file name relative to src/, e.g. "App.tsx".
func ReactEntry(appImport string) string {
	d := newData()
	d.AppImport = appImport
	return render("main.jsx.tmpl", d)
}

// NextLayout returns the App Router root layout carrying the metadata export.
func NextLayout(typeScript bool) string {
	d := newData()
	d.TypeScript = typeScript
	return render("layout.jsx.tmpl", d)
}

// NextPage returns the client-rendered App Router home page.
func NextPage() string {
	d := newData()
	d.Next = true
	d.UseClient = true
	d.Component = "Home"
	d.StyleModule = "page.module.scss"
	d.Anchor = "Link"
	return render("home.jsx.tmpl", d)
}

// ThreeScene returns the 3D demo component. Next.js pages need useClient.
func ThreeScene(useClient bool) string {
	d := newData()
	d.UseClient = useClient
	return render("three-scene.jsx.tmpl", d)
}

// SceneStyles returns the .scene rules appended to a page CSS module.
func SceneStyles() string { return render("scene.scss.tmpl", newData()) }

// SceneSection returns the markup that mounts ThreeScene inside a page. Each
// line is indented for the body of the generated <main> element.
func SceneSection() string { return render("scene-section.jsx.tmpl", newData()) }
