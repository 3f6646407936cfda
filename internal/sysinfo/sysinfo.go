// Package sysinfo runs an external system-info command such as fastfetch
// and captures its text output for display next to the rendered image.
package sysinfo

import (
	"context"
	"fmt"
	"os/exec"
	"time"

	"github.com/charmbracelet/log"
)

const (
	DefaultCommand = "fastfetch"
	DefaultTimeout = 5 * time.Second
)

// Fetch runs name with no arguments and returns its stdout. Any failure is
// replaced by a short inline marker, including a command still running after
// DefaultTimeout.
func Fetch(ctx context.Context, name string) string {
	if name == "" {
		return ""
	}
	ctx, cancel := context.WithTimeout(ctx, DefaultTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, name).Output()
	if err != nil {
		log.Debug("system info command failed", "cmd", name, "err", err)
		return Marker(name)
	}
	return string(out)
}

// Marker is the placeholder shown when the info command fails.
func Marker(name string) string {
	return fmt.Sprintf("[%s error]", name)
}
