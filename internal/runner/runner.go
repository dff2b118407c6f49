package runner

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Command is one external process invocation.
type Command struct {
	Name string
	Args []string
	Dir  string
}

// String renders the command line for logs and errors.
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// Runner executes commands. Run streams through the terminal; Output captures
// stdout for probing tool versions.
type Runner interface {
	Run(ctx context.Context, c Command) error
	Output(ctx context.Context, c Command) (string, error)
}

// Exec runs commands as real processes resolved against Env.
type Exec struct {
	Env Env

	// Stdin, Stdout and Stderr default to the process's own streams.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// New returns an Exec bound to env with inherited stdio.
func New(env Env) *Exec {
	return &Exec{Env: env}
}

// WithEnv returns a copy of x that resolves and runs tools with env.
func (x *Exec) WithEnv(env Env) *Exec {
	c := *x
	c.Env = env
	return &c
}

// Run executes c with inherited stdio and waits for it to finish.
func (x *Exec) Run(ctx context.Context, c Command) error {
	cmd, err := x.command(ctx, c)
	if err != nil {
		return err
	}
	cmd.Stdin = orReader(x.Stdin, os.Stdin)
	cmd.Stdout = orWriter(x.Stdout, os.Stdout)
	cmd.Stderr = orWriter(x.Stderr, os.Stderr)

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", c, err)
	}
	return nil
}

// Output executes c and returns its trimmed stdout. Stderr is discarded
// unless the command fails, in which case it is included in the error.
func (x *Exec) Output(ctx context.Context, c Command) (string, error) {
	cmd, err := x.command(ctx, c)
	if err != nil {
		return "", err
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("%s: %w: %s", c, err, msg)
		}
		return "", fmt.Errorf("%s: %w", c, err)
	}
	return strings.TrimSpace(stdout.String()), nil
}

func (x *Exec) command(ctx context.Context, c Command) (*exec.Cmd, error) {
	bin, err := x.Env.LookPath(c.Name)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", c.Name, err)
	}

	cmd := exec.CommandContext(ctx, bin, c.Args...)
	cmd.Dir = c.Dir
	cmd.Env = x.Env.Vars()
	return cmd, nil
}

func orReader(r, fallback io.Reader) io.Reader {
	if r == nil {
		return fallback
	}
	return r
}

func orWriter(w, fallback io.Writer) io.Writer {
	if w == nil {
		return fallback
	}
	return w
}
