package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/san-kum/asciifx/internal/config"
	"github.com/san-kum/asciifx/internal/sysinfo"
	"github.com/spf13/cobra"
)

var (
	configDir string
	debug     bool
	infoCmd   string
	noInfo    bool

	imagePath   string
	style       string
	width       int
	wave        bool
	bw          bool
	char        string
	profileName string
)

// renderFlags are the flags whose absence means "use the last profile".
var renderFlags = []string{"image", "style", "width", "wave", "bw", "char", "profile"}

func main() {
	log.SetDefault(log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Prefix:          "asciifx",
	}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		log.Error(err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "asciifx",
		Short:         "render an image as colored terminal glyphs",
		Long:          "asciifx renders a logo as colored text glyphs, optionally animated with a brightness wave.\nWith no flags it renders the last used profile.",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debug {
				log.SetLevel(log.DebugLevel)
			}
		},
		RunE: renderRoot,
	}

	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", config.Dir(), "profile directory")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&infoCmd, "info-cmd", sysinfo.DefaultCommand, "system info command shown beside the image")
	rootCmd.PersistentFlags().BoolVar(&noInfo, "no-info", false, "do not run the system info command")

	rootCmd.Flags().StringVar(&imagePath, "image", "", "image path")
	rootCmd.Flags().StringVar(&style, "style", "", "glyph style (see 'asciifx styles')")
	rootCmd.Flags().IntVar(&width, "width", 0, "width in characters")
	rootCmd.Flags().BoolVar(&wave, "wave", false, "animate with a brightness wave")
	rootCmd.Flags().BoolVar(&bw, "bw", false, "black and white")
	rootCmd.Flags().StringVar(&char, "char", "", "override every glyph with this character")
	rootCmd.Flags().StringVar(&profileName, "profile", "", "load from saved profile")

	rootCmd.AddCommand(
		newSettingsCmd(),
		newLiteCmd(),
		newStylesCmd(),
		newProfilesCmd(),
		newInspectCmd(),
	)

	return rootCmd
}
