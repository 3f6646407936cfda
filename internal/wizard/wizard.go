// Package wizard is the interactive settings menu for creating, editing and
// managing render profiles.
package wizard

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/san-kum/asciifx/internal/config"
	"github.com/san-kum/asciifx/internal/palette"
	"github.com/san-kum/asciifx/internal/profile"
	"github.com/san-kum/asciifx/internal/render"
)

// ClearWords clear the override character when typed at its prompt.
var ClearWords = []string{"-", "none"}

type Wizard struct {
	store    *profile.Store
	in       *bufio.Reader
	out      io.Writer
	ui       *render.Renderer
	launcher Launcher
	eof      bool
}

func New(store *profile.Store, in io.Reader, out io.Writer, launcher Launcher, opts ...render.Option) *Wizard {
	return &Wizard{
		store:    store,
		in:       bufio.NewReader(in),
		out:      out,
		ui:       render.New(out, opts...),
		launcher: launcher,
	}
}

// Run walks through profile selection and every setting, saves the profile
// and optionally launches the renderer with it. It returns the profile name.
func (w *Wizard) Run() (string, error) {
	fmt.Fprintln(w.out, w.ui.Panel(w.ui.Title("ASCII-FX Settings")))

	created, err := w.store.CreateDefault()
	if err != nil {
		return "", err
	}
	if created {
		fmt.Fprintln(w.out, w.ui.Success("✔ Created default profile"))
	}

	name := w.SelectProfile()
	cfg, err := w.store.Load(name)
	switch {
	case err == nil:
		fmt.Fprintln(w.out, w.ui.Success(fmt.Sprintf("✔ Loaded profile '%s'. Press Enter to keep existing values.", name)))
		fmt.Fprintln(w.out)
	case errors.Is(err, profile.ErrNotFound):
		cfg = config.DefaultConfig()
	default:
		return "", err
	}

	w.Edit(cfg)

	if w.confirm("Show preview?", false) {
		if err := w.launcher.Preview(cfg); err != nil {
			fmt.Fprintln(w.out, w.ui.Error(fmt.Sprintf("Preview failed: %v", err)))
		}
	}

	if err := w.store.Save(name, cfg); err != nil {
		return "", err
	}
	fmt.Fprintln(w.out)
	fmt.Fprintln(w.out, w.ui.Success(fmt.Sprintf("✅ Profile '%s' saved to %s", name, w.store.Path(name))))

	if w.confirm("Launch ascii-fx now?", true) {
		if err := w.launcher.Launch(name); err != nil {
			return name, err
		}
	}
	return name, nil
}

// Edit prompts for every field of cfg, keeping current values on Enter.
func (w *Wizard) Edit(cfg *config.Config) {
	cfg.Style = w.selectStyle(cfg.Style)
	cfg.Image = w.selectImage(cfg.Image)

	width := w.askInt("Width (in characters)", cfg.Width)
	if width > 0 {
		cfg.Width = width
	} else {
		fmt.Fprintln(w.out, w.ui.Warning(fmt.Sprintf("⚠ Width must be positive, keeping %d", cfg.Width)))
	}

	theme := cfg.Theme
	if !config.IsTheme(theme) {
		theme = config.DefaultTheme
	}
	cfg.Theme = w.askChoice("Terminal theme", config.Themes, theme)
	cfg.Wave = w.confirm("Enable wave animation?", cfg.Wave)
	cfg.Char = w.askOverride(cfg.Char)
}

// SelectProfile lists saved profiles and resolves the answer to a profile
// name. The commands delete <name>, export <name> and import are handled
// in place before the list is shown again.
func (w *Wizard) SelectProfile() string {
	for {
		names, err := w.store.List()
		if err != nil {
			fmt.Fprintln(w.out, w.ui.Error(fmt.Sprintf("Failed to list profiles: %v", err)))
			return profile.DefaultName
		}
		if len(names) == 0 {
			return profile.DefaultName
		}

		w.table("Saved Profiles", []string{"#", "Profile Name"}, names)
		choice := w.ask("Select profile #, new name, or command (delete <name>, export <name>, import)", "1")

		switch {
		case strings.HasPrefix(choice, "delete "):
			w.deleteProfile(strings.TrimSpace(strings.TrimPrefix(choice, "delete ")))
			continue
		case strings.HasPrefix(choice, "export "):
			w.exportProfile(strings.TrimSpace(strings.TrimPrefix(choice, "export ")))
			continue
		case choice == "import":
			if name, ok := w.importProfile(); ok {
				return name
			}
			continue
		}

		if n, err := strconv.Atoi(choice); err == nil {
			if n >= 1 && n <= len(names) {
				return names[n-1]
			}
			fmt.Fprintln(w.out, w.ui.Warning(fmt.Sprintf("⚠ No profile #%d", n)))
			continue
		}
		if profile.ValidName(choice) != nil {
			fmt.Fprintln(w.out, w.ui.Warning(fmt.Sprintf("⚠ '%s' is not a valid profile name", choice)))
			continue
		}
		return choice
	}
}

func (w *Wizard) deleteProfile(name string) {
	if err := w.store.Delete(name); err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			fmt.Fprintln(w.out, w.ui.Warning(fmt.Sprintf("⚠ Profile '%s' not found", name)))
		} else {
			fmt.Fprintln(w.out, w.ui.Error(fmt.Sprintf("Failed to delete profile: %v", err)))
		}
		fmt.Fprintln(w.out)
		return
	}
	fmt.Fprintln(w.out, w.ui.Error(fmt.Sprintf("🗑 Deleted profile '%s'", name)))
	fmt.Fprintln(w.out)
}

func (w *Wizard) exportProfile(name string) {
	if !w.store.Exists(name) {
		fmt.Fprintln(w.out, w.ui.Warning(fmt.Sprintf("⚠ Profile '%s' not found", name)))
		fmt.Fprintln(w.out)
		return
	}
	dest := w.ask("Path to save exported file", fmt.Sprintf("~/Downloads/%s.json", name))
	if err := w.store.Export(name, dest); err != nil {
		fmt.Fprintln(w.out, w.ui.Error(fmt.Sprintf("Failed to export profile: %v", err)))
		fmt.Fprintln(w.out)
		return
	}
	fmt.Fprintln(w.out, w.ui.Success(fmt.Sprintf("✔ Exported profile to %s", dest)))
	fmt.Fprintln(w.out)
}

func (w *Wizard) importProfile() (string, bool) {
	path := w.ask("Path to JSON profile file to import", "")
	name, err := w.store.Import(path)
	if err != nil {
		fmt.Fprintln(w.out, w.ui.Error(fmt.Sprintf("Failed to import profile: %v", err)))
		return "", false
	}
	fmt.Fprintln(w.out, w.ui.Success(fmt.Sprintf("✔ Imported as profile '%s'", name)))
	fmt.Fprintln(w.out)
	return name, true
}

func (w *Wizard) selectStyle(current string) string {
	names := palette.Names()
	w.table("Available Styles", []string{"Option", "Style Name"}, names)

	def := 1
	for i, n := range names {
		if n == current {
			def = i + 1
		}
	}
	choice := w.ask("Choose a style number", strconv.Itoa(def))
	if n, err := strconv.Atoi(choice); err == nil && n >= 1 && n <= len(names) {
		return names[n-1]
	}
	if _, ok := palette.Lookup(choice); ok {
		return choice
	}
	fmt.Fprintln(w.out, w.ui.Warning(fmt.Sprintf("⚠ Unknown style %q, keeping %s", choice, names[def-1])))
	return names[def-1]
}

func (w *Wizard) selectImage(current string) string {
	folder := filepath.Dir(config.ExpandPath(current))
	matches, _ := filepath.Glob(filepath.Join(folder, "*.png"))
	if len(matches) == 0 {
		return config.ExpandPath(w.ask("Path to image", current))
	}

	images := make([]string, len(matches))
	for i, m := range matches {
		images[i] = filepath.Base(m)
	}
	sort.Strings(images)
	w.table("Available Images in "+folder, []string{"#", "File name"}, images)

	def := "1"
	for i, name := range images {
		if filepath.Join(folder, name) == config.ExpandPath(current) {
			def = strconv.Itoa(i + 1)
		}
	}
	choice := w.ask("Select image number or type full path", def)
	if n, err := strconv.Atoi(choice); err == nil && n >= 1 && n <= len(images) {
		return filepath.Join(folder, images[n-1])
	}
	path := config.ExpandPath(choice)
	if _, err := os.Stat(path); err != nil {
		fmt.Fprintln(w.out, w.ui.Warning(fmt.Sprintf("⚠ %s does not exist yet", path)))
	}
	return path
}

func (w *Wizard) askOverride(current string) string {
	for {
		input := w.ask("Override character (optional, - to clear)", current)
		for _, c := range ClearWords {
			if input == c {
				return ""
			}
		}
		probe := config.Config{Width: 1, Theme: config.DefaultTheme, Char: input}
		if err := probe.Validate(); err == nil || w.eof {
			if err != nil {
				return current
			}
			return input
		}
		fmt.Fprintln(w.out, w.ui.Warning("⚠ Enter a single character"))
	}
}

func (w *Wizard) table(title string, headers []string, rows []string) {
	border := w.ui.Lipgloss().NewStyle().Foreground(w.ui.Theme().Muted)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(border).
		Headers(headers...)
	for i, r := range rows {
		t.Row(strconv.Itoa(i+1), r)
	}
	fmt.Fprintln(w.out, w.ui.Title(title))
	fmt.Fprintln(w.out, t.Render())
}
