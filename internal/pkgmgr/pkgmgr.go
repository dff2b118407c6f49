package pkgmgr

import (
	"fmt"
	"slices"

	"github.com/sasswave-labs/sasswave-create/internal/runner"
)

// Manager names a JavaScript package manager binary.
type Manager string

const (
	NPM  Manager = "npm"
	Bun  Manager = "bun"
	Yarn Manager = "yarn"
	PNPM Manager = "pnpm"
)

// All lists the supported managers in prompt order.
var All = []Manager{NPM, Bun, Yarn, PNPM}

// Parse validates name as a supported manager.
func Parse(name string) (Manager, error) {
	m := Manager(name)
	if !slices.Contains(All, m) {
		return "", fmt.Errorf("unsupported package manager %q", name)
	}
	return m, nil
}

func (m Manager) String() string { return string(m) }

// AddDev installs pkgs as development dependencies in dir.
func (m Manager) AddDev(dir string, pkgs ...string) runner.Command {
	var args []string
	switch m {
	case NPM:
		args = []string{"install", "--save-dev"}
	case Yarn:
		args = []string{"add", "--dev"}
	default:
		args = []string{"add", "-D"}
	}
	return runner.Command{Name: string(m), Args: append(args, pkgs...), Dir: dir}
}

// Add installs pkgs as runtime dependencies in dir.
func (m Manager) Add(dir string, pkgs ...string) runner.Command {
	verb := "add"
	if m == NPM {
		verb = "install"
	}
	return runner.Command{Name: string(m), Args: append([]string{verb}, pkgs...), Dir: dir}
}

// Dev starts the project's dev script in dir.
func (m Manager) Dev(dir string) runner.Command {
	if m == NPM {
		return runner.Command{Name: "npm", Args: []string{"run", "dev"}, Dir: dir}
	}
	return runner.Command{Name: string(m), Args: []string{"dev"}, Dir: dir}
}

// Version probes the installed manager's version.
func (m Manager) Version() runner.Command {
	return runner.Command{Name: string(m), Args: []string{"--version"}}
}
