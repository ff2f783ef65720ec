package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/youruser/yeardots/internal/layout"
	"github.com/youruser/yeardots/internal/wallpaper"
)

const (
	glyphPast   = "●"
	glyphToday  = "◉"
	glyphFuture = "·"
)

type previewStyles struct {
	past   lipgloss.Style
	today  lipgloss.Style
	future lipgloss.Style
	footer lipgloss.Style
	muted  lipgloss.Style
	frame  lipgloss.Style
}

func newPreviewStyles(p layout.Palette) previewStyles {
	base := lipgloss.NewStyle().Padding(0).Margin(0)
	return previewStyles{
		past:   base.Copy().Foreground(lipgloss.Color(p.Dot)),
		today:  base.Copy().Foreground(lipgloss.Color(p.Accent)).Bold(true),
		future: base.Copy().Foreground(lipgloss.Color("240")),
		footer: base.Copy().Foreground(lipgloss.Color("252")).Bold(true),
		muted:  base.Copy().Foreground(lipgloss.Color("244")),
		frame: base.Copy().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Background(lipgloss.Color(p.BackgroundTop)).
			Padding(0, 1),
	}
}

func newPreviewCmd(now func() time.Time) *cobra.Command {
	var flags sceneFlags
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Print the dot grid to the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := flags.params(now(), wallpaper.FormatSVG)
			s := wallpaper.NewService(nil, nil, "").WithConfig(flags.config()).Scene(p)
			fmt.Fprintln(cmd.OutOrStdout(), renderPreview(s))
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

// renderPreview lays the dots out cell by cell, one glyph per day.
func renderPreview(s layout.Scene) string {
	st := newPreviewStyles(s.Palette)
	cols := max(s.Cols, 1)

	var rows []string
	var line []string
	for _, d := range s.Dots {
		switch {
		case d.Today:
			line = append(line, st.today.Render(glyphToday))
		case d.PastOrToday:
			line = append(line, st.past.Render(glyphPast))
		default:
			line = append(line, st.future.Render(glyphFuture))
		}
		if len(line) == cols {
			rows = append(rows, strings.Join(line, " "))
			line = nil
		}
	}
	if len(line) > 0 {
		rows = append(rows, strings.Join(line, " "))
	}

	if len(s.Footer) > 0 {
		rows = append(rows, "")
		for _, t := range s.Footer {
			style := st.footer
			if t.Class == layout.ClassFooterMuted {
				style = st.muted
			}
			rows = append(rows, style.Render(t.Content))
		}
	}
	return st.frame.Render(lipgloss.JoinVertical(lipgloss.Center, rows...))
}
