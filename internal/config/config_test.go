package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/theirongolddev/salescast/internal/forecast"
)

func useTempConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	for _, k := range []string{"SALESCAST_THEME", "SALESCAST_DEFAULT_MONTH", "SALESCAST_ADDR"} {
		t.Setenv(k, "") // restores the original value on cleanup
		_ = os.Unsetenv(k)
	}
	return dir
}

func TestLoadDefaultsWhenMissing(t *testing.T) {
	useTempConfigDir(t)

	if Exists() {
		t.Fatal("Exists() = true for empty config dir")
	}
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Fatalf("Load() = %+v, want defaults %+v", cfg, DefaultConfig())
	}
}

func TestSaveThenLoad(t *testing.T) {
	dir := useTempConfigDir(t)

	cfg := DefaultConfig()
	cfg.General.DefaultMonth = 3
	cfg.Appearance.Theme = "tokyo-night"
	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if Path() != filepath.Join(dir, "salescast", "config.toml") {
		t.Fatalf("Path() = %q", Path())
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.General.DefaultMonth != 3 || got.Appearance.Theme != "tokyo-night" {
		t.Fatalf("Load() = %+v", got)
	}
}

func TestEnvOverrides(t *testing.T) {
	useTempConfigDir(t)
	t.Setenv("SALESCAST_THEME", "terminal")
	t.Setenv("SALESCAST_DEFAULT_MONTH", "6")
	t.Setenv("SALESCAST_ADDR", ":9000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Appearance.Theme != "terminal" || cfg.General.DefaultMonth != 6 || cfg.Server.Addr != ":9000" {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
}

func TestLoadRejectsBadMonth(t *testing.T) {
	dir := useTempConfigDir(t)
	if err := os.MkdirAll(filepath.Join(dir, "salescast"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(Path(), []byte("[general]\ndefault_month = 14\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := Load()
	if !errors.Is(err, forecast.ErrPeriodOutOfRange) {
		t.Fatalf("Load err = %v, want ErrPeriodOutOfRange", err)
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	dir := useTempConfigDir(t)
	if err := os.MkdirAll(filepath.Join(dir, "salescast"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(Path(), []byte("[general\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadFileIgnoresEnv(t *testing.T) {
	useTempConfigDir(t)

	cfg := DefaultConfig()
	cfg.Server.Addr = "127.0.0.1:9100"
	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	t.Setenv("SALESCAST_ADDR", "0.0.0.0:9999")
	t.Setenv("SALESCAST_DEFAULT_MONTH", "4")

	got, err := LoadFile()
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if got.Server.Addr != "127.0.0.1:9100" || got.General.DefaultMonth != 12 {
		t.Fatalf("LoadFile() = %+v, want file values", got)
	}

	ov := Overrides()
	if ov[KeyAddr] != "SALESCAST_ADDR" || ov[KeyDefaultMonth] != "SALESCAST_DEFAULT_MONTH" {
		t.Fatalf("Overrides() = %v", ov)
	}
	if _, ok := ov[KeyTheme]; ok {
		t.Fatalf("theme reported as overridden: %v", ov)
	}
}

func TestLoadFileRejectsMalformedFile(t *testing.T) {
	dir := useTempConfigDir(t)
	if err := os.MkdirAll(filepath.Join(dir, "salescast"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(Path(), []byte("[general\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(); err == nil {
		t.Fatal("expected parse error")
	}
}
