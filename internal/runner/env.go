package runner

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	goruntime "runtime"
	"strings"
)

// ErrNotFound is returned by LookPath when no executable matches.
var ErrNotFound = errors.New("executable not found in PATH")

// Env is an immutable set of KEY=value environment variables.
type Env struct {
	vars []string
}

// Environ captures the current process environment.
func Environ() Env {
	return Env{vars: os.Environ()}
}

// NewEnv builds an Env from KEY=value pairs.
func NewEnv(vars ...string) Env {
	return Env{vars: append([]string(nil), vars...)}
}

// Vars returns a copy of the variables, suitable for exec.Cmd.Env.
func (e Env) Vars() []string {
	return append([]string(nil), e.vars...)
}

// Get returns the value of key, or "" when unset.
func (e Env) Get(key string) string {
	prefix := key + "="
	for i := len(e.vars) - 1; i >= 0; i-- {
		if envKeyEqual(e.vars[i], prefix) {
			return e.vars[i][len(prefix):]
		}
	}
	return ""
}

// With returns a copy of e with key set to value.
func (e Env) With(key, value string) Env {
	return Env{vars: setEnv(e.Vars(), key, value)}
}

// PrependPath returns a copy of e with dir placed first on PATH. A dir already
// on PATH is left where it is.
func (e Env) PrependPath(dir string) Env {
	current := e.Get(pathKey())
	for _, d := range filepath.SplitList(current) {
		if d == dir {
			return e
		}
	}
	if current == "" {
		return e.With(pathKey(), dir)
	}
	return e.With(pathKey(), dir+string(os.PathListSeparator)+current)
}

// LookPath searches PATH from e for an executable named name. Names that
// contain a path separator are checked as given.
func (e Env) LookPath(name string) (string, error) {
	if strings.ContainsRune(name, os.PathSeparator) || strings.Contains(name, "/") {
		if p, ok := executable(name, e.exts()); ok {
			return p, nil
		}
		return "", fmt.Errorf("%s: %w", name, ErrNotFound)
	}

	for _, dir := range filepath.SplitList(e.Get(pathKey())) {
		if dir == "" {
			continue
		}
		if p, ok := executable(filepath.Join(dir, name), e.exts()); ok {
			return p, nil
		}
	}
	return "", fmt.Errorf("%s: %w", name, ErrNotFound)
}

// exts lists the suffixes tried on Windows.
func (e Env) exts() []string {
	if goruntime.GOOS != "windows" {
		return []string{""}
	}
	pathext := e.Get("PATHEXT")
	if pathext == "" {
		pathext = ".COM;.EXE;.BAT;.CMD"
	}
	exts := []string{""}
	for _, ext := range strings.Split(pathext, ";") {
		if ext != "" {
			exts = append(exts, strings.ToLower(ext))
		}
	}
	return exts
}

func executable(path string, exts []string) (string, bool) {
	for _, ext := range exts {
		candidate := path + ext
		info, err := os.Stat(candidate)
		if err != nil || info.IsDir() {
			continue
		}
		if goruntime.GOOS == "windows" || info.Mode()&0111 != 0 {
			return candidate, true
		}
	}
	return "", false
}

func pathKey() string {
	if goruntime.GOOS == "windows" {
		return "Path"
	}
	return "PATH"
}

// envKeyEqual matches "KEY=" prefixes, case-insensitively on Windows.
func envKeyEqual(entry, prefix string) bool {
	if len(entry) < len(prefix) {
		return false
	}
	if goruntime.GOOS == "windows" {
		return strings.EqualFold(entry[:len(prefix)], prefix)
	}
	return entry[:len(prefix)] == prefix
}

// setEnv sets or replaces an environment variable in the env slice.
func setEnv(env []string, key, value string) []string {
	prefix := key + "="
	for i, e := range env {
		if envKeyEqual(e, prefix) {
			env[i] = prefix + value
			return env
		}
	}
	return append(env, prefix+value)
}
