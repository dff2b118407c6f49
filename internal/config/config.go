package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/sasswave-labs/sasswave-create/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Recognized configuration keys.
const (
	KeySkipThreeInstall = "skip_three_install"
	KeyAssetsManifest   = "assets_manifest"
	KeyDownloadTimeout  = "download_timeout"
	KeyStartDevServer   = "start_dev_server"
)

// DefaultDownloadTimeout bounds a single asset download.
const DefaultDownloadTimeout = 60 * time.Second

// Settings is the effective configuration for one run.
type Settings struct {
	// SkipThreeInstall suppresses the 3D dependency install (automated tests, CI).
	SkipThreeInstall bool
	// AssetsManifest is the path to the asset manifest JSON. Empty means
	// assets-manifest.json next to the executable.
	AssetsManifest string
	// DownloadTimeout bounds each asset request. Zero disables the bound.
	DownloadTimeout time.Duration
	// StartDevServer launches the dev server after a successful scaffold.
	StartDevServer bool
}

// Keys lists every key accepted by Set.
func Keys() []string {
	return []string{KeySkipThreeInstall, KeyAssetsManifest, KeyDownloadTimeout, KeyStartDevServer}
}

// Dir returns the path to the config directory (~/.sasswave/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.sasswave/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	viper.SetDefault(KeySkipThreeInstall, false)
	viper.SetDefault(KeyDownloadTimeout, DefaultDownloadTimeout)
	viper.SetDefault(KeyStartDevServer, true)

	// CI_SKIP_THREE_INSTALL predates the prefixed variable and is still honored.
	_ = viper.BindEnv(KeySkipThreeInstall, branding.EnvVar(KeySkipThreeInstall), "CI_SKIP_THREE_INSTALL")

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Current returns the effective settings. Load must have been called.
func Current() Settings {
	return Settings{
		SkipThreeInstall: viper.GetBool(KeySkipThreeInstall),
		AssetsManifest:   viper.GetString(KeyAssetsManifest),
		DownloadTimeout:  viper.GetDuration(KeyDownloadTimeout),
		StartDevServer:   viper.GetBool(KeyStartDevServer),
	}
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if !slices.Contains(Keys(), key) {
		return fmt.Errorf("unknown config key %q", key)
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
