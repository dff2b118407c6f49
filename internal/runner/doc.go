// Package runner executes the external tools a scaffold run depends on:
// framework generators, package managers and git.
//
// Tools are resolved against an explicit Env rather than the process
// environment, so a tool installed mid-run (Bun) becomes visible by threading
// a new Env value instead of mutating global state.
package runner
