package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

const (
	DefaultStyle = "blocky"
	DefaultWidth = 38
	DefaultTheme = "dark"
	DefaultImage = "~/.local/share/fastfetch/images/edg.png"

	// CharAspectRatio compensates for terminal cells being taller than wide.
	CharAspectRatio = 0.45

	AppDirName   = "ascii-fx"
	EnvConfigDir = "ASCIIFX_CONFIG_DIR"
)

var (
	ErrInvalidWidth = errors.New("config: width must be a positive integer")
	ErrInvalidTheme = errors.New("config: theme must be dark or light")
	ErrInvalidChar  = errors.New("config: override must be a single character")
)

// Themes lists the accepted terminal themes.
var Themes = []string{"dark", "light"}

// Config is the effective render configuration and the on-disk profile schema.
type Config struct {
	Style string `json:"style" yaml:"style"`
	Image string `json:"image" yaml:"image"`
	Width int    `json:"width" yaml:"width"`
	Theme string `json:"theme" yaml:"theme"`
	Wave  bool   `json:"wave" yaml:"wave"`
	Char  string `json:"char" yaml:"char"`
	BW    bool   `json:"bw,omitempty" yaml:"bw,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Style: DefaultStyle,
		Image: ExpandPath(DefaultImage),
		Width: DefaultWidth,
		Theme: DefaultTheme,
	}
}

// ApplyDefaults fills zero-valued fields that have no meaningful zero.
func (c *Config) ApplyDefaults() {
	if c.Style == "" {
		c.Style = DefaultStyle
	}
	if c.Image == "" {
		c.Image = ExpandPath(DefaultImage)
	}
	if c.Width <= 0 {
		c.Width = DefaultWidth
	}
	if c.Theme == "" {
		c.Theme = DefaultTheme
	}
}

func (c *Config) Validate() error {
	if c.Width <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWidth, c.Width)
	}
	if !IsTheme(c.Theme) {
		return fmt.Errorf("%w: %q", ErrInvalidTheme, c.Theme)
	}
	if utf8.RuneCountInString(c.Char) > 1 {
		return fmt.Errorf("%w: %q", ErrInvalidChar, c.Char)
	}
	return nil
}

// Override returns the glyph override, or 0 when none is set.
func (c *Config) Override() rune {
	if c.Char == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(c.Char)
	return r
}

func IsTheme(name string) bool {
	for _, t := range Themes {
		if t == name {
			return true
		}
	}
	return false
}

// Dir returns the per-user profile directory.
func Dir() string {
	if d := os.Getenv(EnvConfigDir); d != "" {
		return ExpandPath(d)
	}
	if x := os.Getenv("XDG_CONFIG_HOME"); x != "" {
		return filepath.Join(x, AppDirName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", AppDirName)
	}
	return filepath.Join(home, ".config", AppDirName)
}

// ExpandPath replaces a leading ~ with the user's home directory.
func ExpandPath(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}
