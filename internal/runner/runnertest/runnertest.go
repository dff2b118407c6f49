// Package runnertest provides a recording runner.Runner for tests.
package runnertest

import (
	"context"
	"fmt"
	"sync"

	"github.com/sasswave-labs/sasswave-create/internal/runner"
)

// Recorder records every command instead of executing it. Commands whose
// rendered line appears in Fail return that error; Outputs supplies canned
// stdout for Output calls keyed the same way.
type Recorder struct {
	mu       sync.Mutex
	Commands []runner.Command

	Fail    map[string]error
	Outputs map[string]string

	// OnRun, when set, is called for each Run after recording. Tests use it
	// to simulate side effects such as a generator creating files.
	OnRun func(runner.Command) error
}

// Run records c.
func (r *Recorder) Run(_ context.Context, c runner.Command) error {
	r.mu.Lock()
	r.Commands = append(r.Commands, c)
	err := r.Fail[c.String()]
	r.mu.Unlock()

	if err != nil {
		return err
	}
	if r.OnRun != nil {
		return r.OnRun(c)
	}
	return nil
}

// Output records c and returns the canned output.
func (r *Recorder) Output(_ context.Context, c runner.Command) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Commands = append(r.Commands, c)
	if err := r.Fail[c.String()]; err != nil {
		return "", err
	}
	out, ok := r.Outputs[c.String()]
	if !ok {
		return "", fmt.Errorf("%s: no canned output", c)
	}
	return out, nil
}

// Lines returns the rendered command lines in order.
func (r *Recorder) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	lines := make([]string, len(r.Commands))
	for i, c := range r.Commands {
		lines[i] = c.String()
	}
	return lines
}

// Ran reports whether a command rendering to line was recorded.
func (r *Recorder) Ran(line string) bool {
	for _, l := range r.Lines() {
		if l == line {
			return true
		}
	}
	return false
}
