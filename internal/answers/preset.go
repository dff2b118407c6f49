package answers

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/sasswave-labs/sasswave-create/internal/pkgmgr"
)

// Preset carries answers already known before prompting, typically from
// flags. Empty strings and nil pointers mean "not given".
type Preset struct {
	Name       string
	Framework  string
	Language   string
	PkgManager string
	Git        *bool
	Want3D     *bool
}

// Defaults completes p with the default answers and normalizes the result.
// It does not validate.
func Defaults(p Preset) Answers {
	a := Answers{
		Name:       p.Name,
		Framework:  p.Framework,
		Language:   p.Language,
		PkgManager: pkgmgr.Manager(p.PkgManager),
		Git:        true,
	}
	if a.Name == "" {
		a.Name = DefaultName
	}
	if a.Framework == "" {
		a.Framework = FrameworkReact
	}
	if a.Language == "" {
		a.Language = LanguageTypeScript
	}
	if a.PkgManager == "" {
		a.PkgManager = pkgmgr.NPM
	}
	if p.Git != nil {
		a.Git = *p.Git
	}
	if p.Want3D != nil {
		a.Want3D = *p.Want3D
	}
	return a.Normalize()
}

// LoadFile reads answers from a YAML or JSON file. Fields missing from the
// file take their defaults; fields set in p override the file.
func LoadFile(path string, p Preset) (Answers, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Answers{}, fmt.Errorf("reading answers file: %w", err)
	}

	a := Defaults(Preset{})
	if err := yaml.Unmarshal(data, &a); err != nil {
		return Answers{}, fmt.Errorf("parsing answers file %s: %w", path, err)
	}

	if p.Name != "" {
		a.Name = p.Name
	}
	if p.Framework != "" {
		a.Framework = p.Framework
	}
	if p.Language != "" {
		a.Language = p.Language
	}
	if p.PkgManager != "" {
		a.PkgManager = pkgmgr.Manager(p.PkgManager)
	}
	if p.Git != nil {
		a.Git = *p.Git
	}
	if p.Want3D != nil {
		a.Want3D = *p.Want3D
	}
	return a.Normalize(), nil
}
