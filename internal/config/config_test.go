package config

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Style != "blocky" {
		t.Errorf("expected style blocky, got %s", cfg.Style)
	}
	if cfg.Width != 38 {
		t.Errorf("expected width 38, got %d", cfg.Width)
	}
	if cfg.Theme != "dark" {
		t.Errorf("expected theme dark, got %s", cfg.Theme)
	}
	if cfg.Wave || cfg.BW || cfg.Char != "" {
		t.Error("expected wave, bw and char to be off by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{Width: -4}
	cfg.ApplyDefaults()

	if cfg.Width != DefaultWidth {
		t.Errorf("expected width %d, got %d", DefaultWidth, cfg.Width)
	}
	if cfg.Style != DefaultStyle || cfg.Theme != DefaultTheme {
		t.Errorf("expected defaults, got style=%s theme=%s", cfg.Style, cfg.Theme)
	}
	if cfg.Image == "" {
		t.Error("expected default image path")
	}

	cfg = &Config{Style: "retro", Width: 80, Theme: "light", Image: "/tmp/x.png"}
	cfg.ApplyDefaults()
	if cfg.Style != "retro" || cfg.Width != 80 || cfg.Theme != "light" || cfg.Image != "/tmp/x.png" {
		t.Errorf("explicit fields were overwritten: %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want error
	}{
		{"zero width", Config{Width: 0, Theme: "dark"}, ErrInvalidWidth},
		{"negative width", Config{Width: -1, Theme: "dark"}, ErrInvalidWidth},
		{"bad theme", Config{Width: 10, Theme: "solarized"}, ErrInvalidTheme},
		{"long char", Config{Width: 10, Theme: "dark", Char: "ab"}, ErrInvalidChar},
		{"unicode char", Config{Width: 10, Theme: "light", Char: "█"}, nil},
	}

	for _, tt := range tests {
		err := tt.cfg.Validate()
		if !errors.Is(err, tt.want) {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, err)
		}
	}
}

func TestOverride(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Override() != 0 {
		t.Error("expected no override")
	}
	cfg.Char = "▓"
	if cfg.Override() != '▓' {
		t.Errorf("expected ▓, got %q", cfg.Override())
	}
}

func TestDir(t *testing.T) {
	tmp := t.TempDir()

	t.Setenv(EnvConfigDir, tmp)
	if got := Dir(); got != tmp {
		t.Errorf("expected %s, got %s", tmp, got)
	}

	t.Setenv(EnvConfigDir, "")
	t.Setenv("XDG_CONFIG_HOME", tmp)
	if got := Dir(); got != filepath.Join(tmp, AppDirName) {
		t.Errorf("expected xdg dir, got %s", got)
	}
}

func TestExpandPath(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	if got := ExpandPath("~/img.png"); got != "/home/tester/img.png" {
		t.Errorf("unexpected expansion: %s", got)
	}
	if got := ExpandPath("/abs/img.png"); got != "/abs/img.png" {
		t.Errorf("absolute path changed: %s", got)
	}
	if got := ExpandPath("~user/img.png"); got != "~user/img.png" {
		t.Errorf("~user form should be left alone: %s", got)
	}
}
