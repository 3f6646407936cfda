package main

import (
	"errors"
	"os"

	"github.com/san-kum/asciifx/internal/config"
	"github.com/san-kum/asciifx/internal/glyph"
	"github.com/san-kum/asciifx/internal/imageload"
	"github.com/san-kum/asciifx/internal/live"
	"github.com/san-kum/asciifx/internal/render"
	"github.com/spf13/cobra"
)

var errNotTerminal = errors.New("lite mode needs an interactive terminal")

func newLiteCmd() *cobra.Command {
	var (
		image string
		style string
		width int
	)

	cmd := &cobra.Command{
		Use:   "lite",
		Short: "minimal animated renderer, quit with q",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			term := live.NewFDTerminal(int(os.Stdin.Fd()))
			if !term.IsTerminal() {
				return errNotTerminal
			}

			img, err := imageload.Load(image, width)
			if err != nil {
				return err
			}

			r := render.New(os.Stdout)
			frame := func(t float64) string {
				f := glyph.Map(img, glyph.Options{Style: style, Animated: true, T: t})
				return r.Padded(r.Text(f))
			}
			return live.RunLite(cmd.Context(), term, os.Stdin, os.Stdout, frame)
		},
	}

	cmd.Flags().StringVar(&image, "image", "", "image path")
	cmd.Flags().StringVar(&style, "style", config.DefaultStyle, "glyph style")
	cmd.Flags().IntVar(&width, "width", config.DefaultWidth, "width in characters")
	cmd.MarkFlagRequired("image")

	return cmd
}
