package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/san-kum/asciifx/internal/palette"
	"github.com/spf13/cobra"
)

func newStylesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "styles",
		Short: "list glyph styles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "STYLE\tGLYPHS\tLEVELS")
			for _, p := range palette.Palettes {
				name := p.Name
				if name == palette.Default {
					name += " (default)"
				}
				fmt.Fprintf(w, "%s\t%s\t%d\n", name, p, p.Len())
			}
			return w.Flush()
		},
	}
}
