package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"tudu/internal/theme"
	"tudu/internal/ui"
)

const themesWidth = 80

// withSession opens a session on the command's output, runs fn, and closes
// the store afterwards.
func withSession(cmd *cobra.Command, fn func(*session) error) error {
	s, err := openSession(cmd.Context(), cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer s.Close()
	return fn(s)
}

type themesOptions struct {
	plain bool
}

func newThemesCmd() *cobra.Command {
	opts := &themesOptions{}

	cmd := &cobra.Command{
		Use:   "themes",
		Short: "List available themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(s *session) error {
				current := s.mgr.Current()
				if opts.plain {
					return renderThemesPlain(cmd.OutOrStdout(), s.mgr.Themes(), current.ID)
				}
				out, err := ui.RenderThemeTable(s.mgr.Themes(), current.ID, current.IsDark, themesWidth)
				if err != nil {
					return err
				}
				_, err = io.WriteString(cmd.OutOrStdout(), out)
				return err
			})
		},
	}

	cmd.Flags().BoolVar(&opts.plain, "plain", false, "Print a plain table without markdown styling")

	return cmd
}

func renderThemesPlain(w io.Writer, themes []theme.Theme, currentID string) error {
	writer := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "\tID\tNAME\tMODE")
	for _, t := range themes {
		marker := ""
		if t.ID == currentID {
			marker = "*"
		}
		mode := theme.ModeLight
		if t.IsDark {
			mode = theme.ModeDark
		}
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n", marker, t.ID, t.Name, mode)
	}
	return writer.Flush()
}

func newCurrentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "current",
		Short: "Print the active theme id",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(s *session) error {
				fmt.Fprintln(cmd.OutOrStdout(), s.mgr.Current().ID)
				return nil
			})
		},
	}
}

func newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <theme-id>",
		Short: "Switch to a theme and remember it",
		Long: "Switch to a theme and remember it. Unknown ids leave the active theme " +
			"unchanged; the printed id is always the one in effect.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(s *session) error {
				s.mgr.SetTheme(strings.TrimSpace(args[0]))
				fmt.Fprintln(cmd.OutOrStdout(), s.mgr.Current().ID)
				return nil
			})
		},
	}
}

func newToggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle",
		Short: "Switch between the light and dark variant of the active palette",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(s *session) error {
				s.mgr.ToggleMode()
				fmt.Fprintln(cmd.OutOrStdout(), s.mgr.Current().ID)
				return nil
			})
		},
	}
}

type cssOptions struct {
	output string
}

func newCSSCmd() *cobra.Command {
	opts := &cssOptions{}

	cmd := &cobra.Command{
		Use:   "css",
		Short: "Print the stylesheet for the active theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(s *session) error {
				if opts.output == "" {
					_, err := s.css.WriteTo(cmd.OutOrStdout())
					return err
				}
				if err := s.css.WriteFile(opts.output); err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s stylesheet to %s\n", s.mgr.Current().ID, opts.output)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write the stylesheet to a file instead of stdout")

	return cmd
}
