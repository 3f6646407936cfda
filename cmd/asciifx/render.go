package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/san-kum/asciifx/internal/config"
	"github.com/san-kum/asciifx/internal/glyph"
	"github.com/san-kum/asciifx/internal/imageload"
	"github.com/san-kum/asciifx/internal/live"
	"github.com/san-kum/asciifx/internal/palette"
	"github.com/san-kum/asciifx/internal/profile"
	"github.com/san-kum/asciifx/internal/render"
	"github.com/san-kum/asciifx/internal/sysinfo"
	"github.com/spf13/cobra"
)

func renderRoot(cmd *cobra.Command, args []string) error {
	st := profile.New(configDir)

	if !anyChanged(cmd, renderFlags) {
		profileName = st.LoadLast()
	}

	cfg, err := effectiveConfig(cmd, st)
	if err != nil {
		return err
	}
	log.Debug("effective config", "style", cfg.Style, "image", cfg.Image, "width", cfg.Width, "wave", cfg.Wave, "bw", cfg.BW)

	if _, ok := palette.Lookup(cfg.Style); !ok {
		log.Debug("unknown style, using default palette", "style", cfg.Style, "default", palette.Default)
	}

	img, err := imageload.Load(cfg.Image, cfg.Width)
	if err != nil {
		return err
	}

	info := ""
	if !noInfo {
		info = sysinfo.Fetch(cmd.Context(), infoCmd)
	}

	r := render.New(os.Stdout, render.WithTheme(cfg.Theme))
	opts := glyph.Options{Style: cfg.Style, Override: cfg.Override(), BW: cfg.BW}

	if cfg.Wave {
		if isTTY(os.Stdout) && isTTY(os.Stdin) {
			frame := func(t float64) string {
				o := opts
				o.Animated = true
				o.T = t
				return r.Columns(r.Text(glyph.Map(img, o)), info)
			}
			return live.Run(cmd.Context(), frame, os.Stdin, os.Stdout)
		}
		log.Warn("not a terminal, rendering a single frame")
	}

	fmt.Println(r.Columns(r.Text(glyph.Map(img, opts)), info))
	return nil
}

// effectiveConfig loads the selected profile, if any, and lets explicitly
// set flags override its fields.
func effectiveConfig(cmd *cobra.Command, st *profile.Store) (*config.Config, error) {
	cfg := &config.Config{}
	if profileName != "" {
		p, err := st.Load(profileName)
		if err != nil {
			return nil, err
		}
		cfg = p
		if err := st.SaveLast(profileName); err != nil {
			log.Warn("could not record last profile", "err", err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("image") {
		cfg.Image = imagePath
	}
	if flags.Changed("style") {
		cfg.Style = style
	}
	if flags.Changed("width") {
		cfg.Width = width
	}
	if flags.Changed("wave") {
		cfg.Wave = wave
	}
	if flags.Changed("bw") {
		cfg.BW = bw
	}
	if flags.Changed("char") {
		cfg.Char = char
	}

	if cfg.Image == "" {
		return nil, fmt.Errorf("%w: %q", imageload.ErrImageNotFound, cfg.Image)
	}
	cfg.ApplyDefaults()
	if !config.IsTheme(cfg.Theme) {
		log.Debug("unknown theme, using default", "theme", cfg.Theme)
		cfg.Theme = config.DefaultTheme
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func anyChanged(cmd *cobra.Command, names []string) bool {
	for _, n := range names {
		if cmd.Flags().Changed(n) {
			return true
		}
	}
	return false
}

func isTTY(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
