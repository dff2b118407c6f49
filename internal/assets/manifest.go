package assets

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ManifestFile is the manifest name looked up beside the executable.
const ManifestFile = "assets-manifest.json"

//go:embed schema/entry.schema.json
var schemaBytes []byte

var (
	compiledSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
	printer        = message.NewPrinter(language.English)
)

// ErrNotArray is returned when the manifest root is not a JSON array.
var ErrNotArray = errors.New("asset manifest root is not an array")

// Entry is one remote file in the manifest.
type Entry struct {
	URL        string   `json:"url"`
	Dest       string   `json:"dest,omitempty"`
	Framework  string   `json:"framework,omitempty"`
	Frameworks []string `json:"frameworks,omitempty"`
}

// Rejected records a manifest element that failed schema validation.
type Rejected struct {
	Index  int
	Issues []string
}

// Manifest is a loaded asset manifest.
type Manifest struct {
	Path     string
	Entries  []Entry
	Rejected []Rejected
}

// DefaultManifestPath returns assets-manifest.json beside the running
// executable.
func DefaultManifestPath() string {
	exe, err := os.Executable()
	if err != nil {
		return ManifestFile
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), ManifestFile)
}

// AppliesTo reports whether the entry should be fetched for framework. A
// frameworks list takes precedence over the single framework field.
func (e Entry) AppliesTo(framework string) bool {
	if e.URL == "" {
		return false
	}
	if e.Frameworks != nil {
		return slices.Contains(e.Frameworks, framework)
	}
	if e.Framework != "" {
		return e.Framework == framework
	}
	return true
}

// Destination returns the absolute path the entry is written to. Without an
// explicit dest the file lands in public/ under the URL's base name.
func (e Entry) Destination(projectDir string) (string, error) {
	rel := e.Dest
	if rel == "" {
		u, err := url.Parse(e.URL)
		if err != nil {
			return "", fmt.Errorf("parsing url %q: %w", e.URL, err)
		}
		name := path.Base(u.Path)
		if name == "/" || name == "." || name == "" {
			name = "asset"
		}
		rel = filepath.Join("public", name)
	}
	rel = filepath.FromSlash(rel)
	if filepath.IsAbs(rel) {
		return filepath.Clean(rel), nil
	}
	return filepath.Join(projectDir, rel), nil
}

// getSchema compiles the embedded entry schema once.
func getSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			compileErr = fmt.Errorf("unmarshaling schema JSON: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("entry.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("entry.schema.json")
		if compileErr != nil {
			compileErr = fmt.Errorf("compiling schema: %w", compileErr)
		}
	})
	return compiledSchema, compileErr
}

// LoadManifest reads and validates the manifest at path. Elements that fail
// the schema are reported in Rejected and left out of Entries.
func LoadManifest(file string) (*Manifest, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("reading asset manifest: %w", err)
	}
	return ParseManifest(file, data)
}

// ParseManifest is LoadManifest over bytes already in memory.
func ParseManifest(file string, data []byte) (*Manifest, error) {
	schema, err := getSchema()
	if err != nil {
		return nil, fmt.Errorf("loading schema: %w", err)
	}

	var root any
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parsing asset manifest %s: %w", file, err)
	}
	if _, ok := root.([]any); !ok {
		return nil, fmt.Errorf("%s: %w", file, ErrNotArray)
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(data, &elements); err != nil {
		return nil, fmt.Errorf("parsing asset manifest %s: %w", file, err)
	}

	m := &Manifest{Path: file}
	for i, raw := range elements {
		inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
		if err != nil {
			m.Rejected = append(m.Rejected, Rejected{Index: i, Issues: []string{err.Error()}})
			continue
		}
		if err := schema.Validate(inst); err != nil {
			m.Rejected = append(m.Rejected, Rejected{Index: i, Issues: issues(err)})
			continue
		}

		var e Entry
		if err := json.Unmarshal(raw, &e); err != nil {
			m.Rejected = append(m.Rejected, Rejected{Index: i, Issues: []string{err.Error()}})
			continue
		}
		m.Entries = append(m.Entries, e)
	}
	return m, nil
}

// Applicable returns the entries that apply to framework, in manifest order.
func (m *Manifest) Applicable(framework string) []Entry {
	var out []Entry
	for _, e := range m.Entries {
		if e.AppliesTo(framework) {
			out = append(out, e)
		}
	}
	return out
}

// issues flattens a validation error into "path: message" strings.
func issues(err error) []string {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return []string{err.Error()}
	}

	var out []string
	collectIssues(ve, &out)
	if len(out) == 0 {
		out = append(out, ve.Error())
	}
	return out
}

func collectIssues(ve *jsonschema.ValidationError, out *[]string) {
	if len(ve.Causes) > 0 {
		for _, cause := range ve.Causes {
			collectIssues(cause, out)
		}
		return
	}
	if ve.ErrorKind == nil {
		return
	}

	msg := ve.ErrorKind.LocalizedString(printer)
	if len(ve.InstanceLocation) > 0 {
		msg = "/" + strings.Join(ve.InstanceLocation, "/") + ": " + msg
	}
	*out = append(*out, msg)
}
