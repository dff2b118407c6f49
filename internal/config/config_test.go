package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
)

// isolate points HOME at a temp dir and resets viper's global state.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	viper.Reset()
	t.Cleanup(viper.Reset)
	return home
}

func TestCurrent_Defaults(t *testing.T) {
	isolate(t)
	t.Setenv("CI_SKIP_THREE_INSTALL", "")
	t.Setenv("SASSWAVE_SKIP_THREE_INSTALL", "")
	Load()

	s := Current()
	if s.SkipThreeInstall {
		t.Error("SkipThreeInstall should default to false")
	}
	if s.DownloadTimeout != DefaultDownloadTimeout {
		t.Errorf("DownloadTimeout = %v, want %v", s.DownloadTimeout, DefaultDownloadTimeout)
	}
	if !s.StartDevServer {
		t.Error("StartDevServer should default to true")
	}
	if s.AssetsManifest != "" {
		t.Errorf("AssetsManifest = %q, want empty", s.AssetsManifest)
	}
}

func TestCurrent_EnvOverrides(t *testing.T) {
	tests := []struct {
		name string
		env  string
	}{
		{"prefixed variable", "SASSWAVE_SKIP_THREE_INSTALL"},
		{"legacy CI variable", "CI_SKIP_THREE_INSTALL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			t.Setenv("CI_SKIP_THREE_INSTALL", "")
			t.Setenv("SASSWAVE_SKIP_THREE_INSTALL", "")
			t.Setenv(tt.env, "true")
			Load()

			if !Current().SkipThreeInstall {
				t.Errorf("%s=true should enable SkipThreeInstall", tt.env)
			}
		})
	}
}

func TestCurrent_DownloadTimeoutFromEnv(t *testing.T) {
	isolate(t)
	t.Setenv("SASSWAVE_DOWNLOAD_TIMEOUT", "5s")
	Load()

	if got := Current().DownloadTimeout; got != 5*time.Second {
		t.Errorf("DownloadTimeout = %v, want 5s", got)
	}
}

func TestSet_WritesFile(t *testing.T) {
	home := isolate(t)
	Load()

	if err := Set(KeyAssetsManifest, "/tmp/manifest.json"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(home, ".sasswave", "config.yaml"))
	if err != nil {
		t.Fatalf("reading config file: %v", err)
	}
	if len(data) == 0 {
		t.Error("config file is empty")
	}
	if got := Get(KeyAssetsManifest); got != "/tmp/manifest.json" {
		t.Errorf("Get = %q, want %q", got, "/tmp/manifest.json")
	}
}

func TestSet_UnknownKey(t *testing.T) {
	isolate(t)
	Load()

	if err := Set("no_such_key", "x"); err == nil {
		t.Fatal("expected error for unknown key")
	}
}

func TestSet_AcceptsEveryKey(t *testing.T) {
	isolate(t)
	Load()

	values := map[string]string{
		KeySkipThreeInstall: "true",
		KeyAssetsManifest:   "/tmp/manifest.json",
		KeyDownloadTimeout:  "5s",
		KeyStartDevServer:   "false",
	}
	for _, key := range Keys() {
		if err := Set(key, values[key]); err != nil {
			t.Errorf("Set(%q) failed: %v", key, err)
		}
	}
	if _, err := os.Stat(FilePath()); err != nil {
		t.Errorf("config file not written: %v", err)
	}
}
