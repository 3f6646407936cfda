package wizard

import (
	"os"
	"os/exec"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/san-kum/asciifx/internal/config"
)

// Launcher starts the renderer for previews and for the saved profile.
type Launcher interface {
	Preview(cfg *config.Config) error
	Launch(profile string) error
}

// ExecLauncher runs the renderer binary as a subprocess on the current
// terminal.
type ExecLauncher struct {
	Path      string
	ExtraArgs []string
}

// NewExecLauncher launches the running executable.
func NewExecLauncher(extra ...string) (*ExecLauncher, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, err
	}
	return &ExecLauncher{Path: exe, ExtraArgs: extra}, nil
}

func (l *ExecLauncher) Preview(cfg *config.Config) error {
	return l.run(PreviewArgs(cfg))
}

func (l *ExecLauncher) Launch(profile string) error {
	return l.run([]string{"--profile", profile})
}

func (l *ExecLauncher) run(args []string) error {
	args = append(append([]string{}, l.ExtraArgs...), args...)
	log.Debug("launching renderer", "path", l.Path, "args", args)
	cmd := exec.Command(l.Path, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// PreviewArgs builds renderer flags for an unsaved configuration.
func PreviewArgs(cfg *config.Config) []string {
	args := []string{
		"--style", cfg.Style,
		"--image", cfg.Image,
		"--width", strconv.Itoa(cfg.Width),
	}
	if cfg.Char != "" {
		args = append(args, "--char", cfg.Char)
	}
	if cfg.Wave {
		args = append(args, "--wave")
	}
	if cfg.BW {
		args = append(args, "--bw")
	}
	return args
}
