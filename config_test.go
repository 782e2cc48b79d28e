package tvision

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tvision.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Errorf("defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
backend: " Term "
idle_interval: 40ms
double_click: 0s
dump_dir: /tmp/dumps
mouse: false
log_level: debug
app_palette:
  1: 31
  8: 112
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	want := DefaultConfig()
	want.Backend = BackendTerm
	want.IdleInterval = 40 * time.Millisecond
	want.DumpDir = "/tmp/dumps"
	want.Mouse = false
	want.LogLevel = "debug"
	want.AppPalette = map[int]uint8{1: 31, 8: 112}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}

	pal := cfg.Palette()
	if pal.Attr(1) != AttrFromByte(31) || pal.Attr(8) != AttrFromByte(112) || pal.Attr(2) != AppColor.Attr(2) {
		t.Errorf("palette overrides not applied")
	}
	if AppColor[0] != 0x71 {
		t.Errorf("overrides must not modify the default palette")
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := map[string]string{
		"bad yaml":      "backend: [",
		"bad backend":   "backend: curses",
		"bad level":     "log_level: loud",
		"bad palette":   "app_palette: {0: 1}",
		"palette range": "app_palette: {500: 1}",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, body))
			if !IsKind(err, KindConfig) {
				t.Errorf("LoadConfig = %v, want a configuration error", err)
			}
		})
	}
}

func TestConfigValidateDefaults(t *testing.T) {
	cfg := Config{FlashDuration: -1}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	def := DefaultConfig()
	if cfg.Backend != def.Backend || cfg.IdleInterval != def.IdleInterval ||
		cfg.DoubleClick != def.DoubleClick || cfg.FlashDuration != def.FlashDuration || cfg.DumpDir != def.DumpDir {
		t.Errorf("zero values should take defaults, got %+v", cfg)
	}
	if cfg.Palette()[0] != AppColor[0] {
		t.Errorf("no overrides should give the default palette")
	}
}
