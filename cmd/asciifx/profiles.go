package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/log"
	"github.com/san-kum/asciifx/internal/profile"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newProfilesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "manage saved profiles",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "list saved profiles",
			Args:  cobra.NoArgs,
			RunE:  listProfiles,
		},
		&cobra.Command{
			Use:   "show [name]",
			Short: "print a profile as YAML",
			Args:  cobra.ExactArgs(1),
			RunE:  showProfile,
		},
		&cobra.Command{
			Use:   "delete [name]",
			Short: "delete a profile",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := profile.New(configDir).Delete(args[0]); err != nil {
					return err
				}
				log.Info("deleted profile", "name", args[0])
				return nil
			},
		},
		&cobra.Command{
			Use:   "export [name] [file]",
			Short: "export a profile as JSON or YAML",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := profile.New(configDir).Export(args[0], args[1]); err != nil {
					return err
				}
				log.Info("exported profile", "name", args[0], "to", args[1])
				return nil
			},
		},
		&cobra.Command{
			Use:   "import [file]",
			Short: "import a JSON or YAML profile",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				name, err := profile.New(configDir).Import(args[0])
				if err != nil {
					return err
				}
				log.Info("imported profile", "name", name)
				return nil
			},
		},
	)

	return cmd
}

func listProfiles(cmd *cobra.Command, args []string) error {
	st := profile.New(configDir)
	names, err := st.List()
	if err != nil {
		return err
	}

	if len(names) == 0 {
		fmt.Println("no saved profiles")
		return nil
	}

	last := st.LoadLast()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, " \tNAME\tSTYLE\tWIDTH\tWAVE\tIMAGE")
	for _, name := range names {
		mark := " "
		if name == last {
			mark = "*"
		}
		cfg, err := st.Load(name)
		if err != nil {
			fmt.Fprintf(w, "%s\t%s\t-\t-\t-\t(%v)\n", mark, name, err)
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%t\t%s\n", mark, name, cfg.Style, cfg.Width, cfg.Wave, cfg.Image)
	}
	return w.Flush()
}

func showProfile(cmd *cobra.Command, args []string) error {
	cfg, err := profile.New(configDir).Load(args[0])
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}
