package main

import (
	"os"

	"github.com/san-kum/asciifx/internal/profile"
	"github.com/san-kum/asciifx/internal/wizard"
	"github.com/spf13/cobra"
)

func newSettingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "settings",
		Short: "interactively create or edit a profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			launcher, err := wizard.NewExecLauncher("--config-dir", configDir)
			if err != nil {
				return err
			}
			w := wizard.New(profile.New(configDir), os.Stdin, os.Stdout, launcher)
			_, err = w.Run()
			return err
		},
	}
}
