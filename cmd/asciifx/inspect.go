package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/asciifx/internal/analysis"
	"github.com/san-kum/asciifx/internal/config"
	"github.com/san-kum/asciifx/internal/glyph"
	"github.com/san-kum/asciifx/internal/imageload"
	"github.com/san-kum/asciifx/internal/render"
	"github.com/spf13/cobra"
)

func newInspectCmd() *cobra.Command {
	var (
		image   string
		style   string
		width   int
		buckets int
		preview bool
	)

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "show the brightness histogram and glyph usage of an image",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := imageload.Load(image, width)
			if err != nil {
				return err
			}
			rep := analysis.Histogram(img, style, buckets)

			if preview {
				fmt.Println(render.Plain(glyph.Map(img, glyph.Options{Style: style})))
				fmt.Println()
			}

			fmt.Printf("%s: %dx%d cells, %d transparent, %.1f%% coverage\n\n",
				image, img.Width, img.Height, rep.Transparent, rep.Coverage()*100)

			fmt.Println(asciigraph.Plot(rep.Buckets,
				asciigraph.Height(10),
				asciigraph.Width(60),
				asciigraph.Caption(fmt.Sprintf("brightness (%s)", rep.Palette.Name)),
			))
			fmt.Println()

			return printUsage(rep)
		},
	}

	cmd.Flags().StringVar(&image, "image", "", "image path")
	cmd.Flags().StringVar(&style, "style", config.DefaultStyle, "glyph style")
	cmd.Flags().IntVar(&width, "width", config.DefaultWidth, "width in characters")
	cmd.Flags().IntVar(&buckets, "buckets", analysis.DefaultBuckets, "histogram buckets")
	cmd.Flags().BoolVar(&preview, "preview", false, "print an uncolored render first")
	cmd.MarkFlagRequired("image")

	return cmd
}

func printUsage(rep analysis.Report) error {
	glyphs := make([]rune, 0, len(rep.Usage))
	for g := range rep.Usage {
		glyphs = append(glyphs, g)
	}
	sort.Slice(glyphs, func(i, j int) bool {
		if rep.Usage[glyphs[i]] != rep.Usage[glyphs[j]] {
			return rep.Usage[glyphs[i]] > rep.Usage[glyphs[j]]
		}
		return glyphs[i] < glyphs[j]
	})

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "GLYPH\tCOUNT\tSHARE")
	for _, g := range glyphs {
		label := fmt.Sprintf("%q", g)
		fmt.Fprintf(w, "%s\t%d\t%.1f%%\n", label, rep.Usage[g], float64(rep.Usage[g])/float64(rep.Pixels)*100)
	}
	return w.Flush()
}
