package render

import "github.com/charmbracelet/lipgloss"

// Theme holds the chrome colors for a terminal background.
type Theme struct {
	Name    string
	Accent  lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
}

var (
	ThemeDark = Theme{
		Name:    "dark",
		Accent:  lipgloss.Color("86"),
		Text:    lipgloss.Color("252"),
		Muted:   lipgloss.Color("242"),
		Success: lipgloss.Color("82"),
		Warning: lipgloss.Color("220"),
		Error:   lipgloss.Color("203"),
	}

	ThemeLight = Theme{
		Name:    "light",
		Accent:  lipgloss.Color("25"),
		Text:    lipgloss.Color("236"),
		Muted:   lipgloss.Color("245"),
		Success: lipgloss.Color("28"),
		Warning: lipgloss.Color("130"),
		Error:   lipgloss.Color("160"),
	}

	Themes = []Theme{ThemeDark, ThemeLight}
)

// GetTheme returns a theme by name, defaulting to dark.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeDark
}

func (r *Renderer) Title(s string) string {
	return r.lg.NewStyle().Bold(true).Foreground(r.theme.Accent).Render(s)
}

func (r *Renderer) Success(s string) string {
	return r.lg.NewStyle().Bold(true).Foreground(r.theme.Success).Render(s)
}

func (r *Renderer) Warning(s string) string {
	return r.lg.NewStyle().Foreground(r.theme.Warning).Render(s)
}

func (r *Renderer) Error(s string) string {
	return r.lg.NewStyle().Foreground(r.theme.Error).Render(s)
}

func (r *Renderer) Muted(s string) string {
	return r.lg.NewStyle().Foreground(r.theme.Muted).Render(s)
}

// Panel draws s inside a rounded border.
func (r *Renderer) Panel(s string) string {
	return r.lg.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(r.theme.Accent).
		Padding(0, 1).
		Render(s)
}

// Lipgloss exposes the underlying renderer for table styling.
func (r *Renderer) Lipgloss() *lipgloss.Renderer { return r.lg }
