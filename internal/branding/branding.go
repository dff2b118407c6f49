// Package branding provides compile-time identity values for the CLI and the
// projects it generates.
//
// branding.yaml is baked into the binary with //go:embed. Values missing from
// the file fall back to the hard defaults in load.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName            string `yaml:"cli_name"`
	DisplayName        string `yaml:"display_name"`
	Description        string `yaml:"description"`
	ProductTitle       string `yaml:"product_title"`
	ProductDescription string `yaml:"product_description"`
	HomeDir            string `yaml:"home_dir"`
	EnvPrefix          string `yaml:"env_prefix"`
	GoModule           string `yaml:"go_module"`
	SiteURL            string `yaml:"site_url"`
	ComponentsURL      string `yaml:"components_url"`
	DocsURL            string `yaml:"docs_url"`
	GetStartedURL      string `yaml:"get_started_url"`
	Wordmark           string `yaml:"wordmark"`
	Favicon            string `yaml:"favicon"`
}

func load() {
	once.Do(func() {
		defaults = brand{
			CLIName:            "sasswave-create",
			DisplayName:        "SassWave",
			Description:        "Scaffold a SassWave-ready frontend project",
			ProductTitle:       "SassWave UI",
			ProductDescription: "Generated by SassWave",
			HomeDir:            ".sasswave",
			EnvPrefix:          "SASSWAVE",
			GoModule:           "github.com/sasswave-labs/sasswave-create",
			SiteURL:            "https://sasswave.in",
			ComponentsURL:      "https://sasswave.in/components/",
			DocsURL:            "https://sasswave.in/docs/",
			GetStartedURL:      "https://sasswave.in/docs/get-started/installation/",
			Wordmark:           "/wordmark.png",
			Favicon:            "favicon.png",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "sasswave-create").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name (e.g., "SassWave").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short CLI description.
func Description() string { load(); return defaults.Description }

// ProductTitle is the document title written into generated projects.
func ProductTitle() string { load(); return defaults.ProductTitle }

// ProductDescription is the metadata description written into Next.js layouts.
func ProductDescription() string { load(); return defaults.ProductDescription }

// HomeDir returns the dot-directory name under $HOME (e.g., ".sasswave").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "SASSWAVE").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path. Not consumed at runtime.
func GoModule() string { load(); return defaults.GoModule }

// SiteURL returns the product homepage.
func SiteURL() string { load(); return defaults.SiteURL }

// ComponentsURL returns the component gallery linked from generated pages.
func ComponentsURL() string { load(); return defaults.ComponentsURL }

// DocsURL returns the documentation root linked from generated pages.
func DocsURL() string { load(); return defaults.DocsURL }

// GetStartedURL returns the installation guide linked from the primary CTA.
func GetStartedURL() string { load(); return defaults.GetStartedURL }

// Wordmark returns the public path of the logo image used by generated pages.
func Wordmark() string { load(); return defaults.Wordmark }

// Favicon returns the favicon file name expected under public/.
func Favicon() string { load(); return defaults.Favicon }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("HOME") → "SASSWAVE_HOME".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
