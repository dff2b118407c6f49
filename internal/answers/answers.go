package answers

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/sasswave-labs/sasswave-create/internal/pkgmgr"
)

const (
	FrameworkReact = "react"
	FrameworkNext  = "next.js"

	LanguageJavaScript = "JavaScript"
	LanguageTypeScript = "TypeScript"

	DefaultName = "sasswave-app"
)

// Frameworks and Languages list the accepted values in prompt order.
var (
	Frameworks = []string{FrameworkReact, FrameworkNext}
	Languages  = []string{LanguageJavaScript, LanguageTypeScript}
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid answers")

var namePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9._-]*$`)

const maxNameLen = 214

// Answers is the validated input to a scaffold run.
type Answers struct {
	Name       string         `yaml:"name" json:"name"`
	Framework  string         `yaml:"framework" json:"framework"`
	Language   string         `yaml:"language" json:"language"`
	PkgManager pkgmgr.Manager `yaml:"pkgManager" json:"pkgManager"`
	Git        bool           `yaml:"git" json:"git"`
	Want3D     bool           `yaml:"want3d" json:"want3d"`
}

// TypeScript reports whether the TypeScript variant was chosen.
func (a Answers) TypeScript() bool { return a.Language == LanguageTypeScript }

// IsNext reports whether the Next.js framework was chosen.
func (a Answers) IsNext() bool { return a.Framework == FrameworkNext }

// IsReact reports whether the React (Vite) framework was chosen.
func (a Answers) IsReact() bool { return a.Framework == FrameworkReact }

// Normalize maps accepted aliases onto canonical values: "next" and "nextjs"
// become "next.js", "ts"/"js" become the language names. Matching ignores case.
func (a Answers) Normalize() Answers {
	a.Name = strings.TrimSpace(a.Name)

	switch strings.ToLower(strings.TrimSpace(a.Framework)) {
	case "react", "vite":
		a.Framework = FrameworkReact
	case "next", "nextjs", "next.js":
		a.Framework = FrameworkNext
	}

	switch strings.ToLower(strings.TrimSpace(a.Language)) {
	case "ts", "typescript":
		a.Language = LanguageTypeScript
	case "js", "javascript":
		a.Language = LanguageJavaScript
	}

	a.PkgManager = pkgmgr.Manager(strings.ToLower(strings.TrimSpace(string(a.PkgManager))))
	return a
}

// Validate checks every field. Errors wrap ErrInvalid.
func (a Answers) Validate() error {
	if err := ValidateName(a.Name); err != nil {
		return err
	}
	if !slices.Contains(Frameworks, a.Framework) {
		return fmt.Errorf("%w: unsupported framework %q (choose %s)", ErrInvalid, a.Framework, strings.Join(Frameworks, ", "))
	}
	if !slices.Contains(Languages, a.Language) {
		return fmt.Errorf("%w: unsupported language %q (choose %s)", ErrInvalid, a.Language, strings.Join(Languages, ", "))
	}
	if _, err := pkgmgr.Parse(string(a.PkgManager)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// ValidateName checks that name can be used as both a directory name and an
// npm package name.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: project name is required", ErrInvalid)
	}
	if len(name) > maxNameLen {
		return fmt.Errorf("%w: project name is longer than %d characters", ErrInvalid, maxNameLen)
	}
	if !namePattern.MatchString(name) {
		return fmt.Errorf("%w: invalid name %q: must match pattern [a-z0-9][a-z0-9._-]*", ErrInvalid, name)
	}
	return nil
}
