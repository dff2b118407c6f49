package toolchain

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/sasswave-labs/sasswave-create/internal/pkgmgr"
	"github.com/sasswave-labs/sasswave-create/internal/runner"
)

// NodeConstraint is the oldest Node.js release both generators support.
const NodeConstraint = ">= 18.18.0"

var versionPattern = regexp.MustCompile(`\d+\.\d+(?:\.\d+)?`)

// Tool describes one external binary to probe.
type Tool struct {
	Name       string
	Constraint string // empty means any version
}

// Status is the probe result for a Tool.
type Status struct {
	Tool
	Path      string
	Version   string
	Found     bool
	Satisfied bool
	Err       error
}

// OK reports whether the tool was found and meets its constraint.
func (s Status) OK() bool { return s.Found && s.Satisfied }

// Line renders the status in the doctor report format.
func (s Status) Line() string {
	switch {
	case !s.Found:
		return fmt.Sprintf("[MISS] %s not found", s.Name)
	case s.Err != nil:
		return fmt.Sprintf("[WARN] %s at %s: %v", s.Name, s.Path, s.Err)
	case !s.Satisfied:
		return fmt.Sprintf("[FAIL] %s %s does not satisfy %s", s.Name, s.Version, s.Constraint)
	case s.Version != "":
		return fmt.Sprintf("[ OK ] %s %s found at %s", s.Name, s.Version, s.Path)
	default:
		return fmt.Sprintf("[ OK ] %s found at %s", s.Name, s.Path)
	}
}

// Tools returns the tools a run with package manager pm depends on.
func Tools(pm pkgmgr.Manager) []Tool {
	tools := []Tool{{Name: "node", Constraint: NodeConstraint}, {Name: "npm"}}
	if pm != "" && pm != pkgmgr.NPM {
		tools = append(tools, Tool{Name: pm.String()})
	}
	return append(tools, Tool{Name: "git"})
}

// Checker probes tools through a Runner using Env for resolution.
type Checker struct {
	Runner runner.Runner
	Env    runner.Env
}

// Check resolves t and, when found, reads its --version output.
func (c *Checker) Check(ctx context.Context, t Tool) Status {
	s := Status{Tool: t, Satisfied: true}

	path, err := c.Env.LookPath(t.Name)
	if err != nil {
		s.Satisfied = false
		return s
	}
	s.Found = true
	s.Path = path

	out, err := c.Runner.Output(ctx, runner.Command{Name: t.Name, Args: []string{"--version"}})
	if err != nil {
		s.Err = fmt.Errorf("reading version: %w", err)
		return s
	}

	v, err := ParseVersion(out)
	if err != nil {
		s.Err = err
		return s
	}
	s.Version = v.String()

	if t.Constraint != "" {
		ok, err := Satisfies(v, t.Constraint)
		if err != nil {
			s.Err = err
			return s
		}
		s.Satisfied = ok
	}
	return s
}

// CheckAll probes every tool in order.
func (c *Checker) CheckAll(ctx context.Context, tools []Tool) []Status {
	out := make([]Status, len(tools))
	for i, t := range tools {
		out[i] = c.Check(ctx, t)
	}
	return out
}

// ParseVersion extracts the first dotted version number from a tool's
// --version output, e.g. "v20.11.1" or "git version 2.43.0".
func ParseVersion(out string) (*semver.Version, error) {
	raw := versionPattern.FindString(strings.TrimSpace(out))
	if raw == "" {
		return nil, fmt.Errorf("no version number in %q", out)
	}
	v, err := semver.NewVersion(raw)
	if err != nil {
		return nil, fmt.Errorf("parsing version %q: %w", raw, err)
	}
	return v, nil
}

// Satisfies reports whether v meets constraint.
func Satisfies(v *semver.Version, constraint string) (bool, error) {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, fmt.Errorf("parsing constraint %q: %w", constraint, err)
	}
	return c.Check(v), nil
}
