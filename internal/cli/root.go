// Package cli implements the wallpaper command line tool.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

// NewRootCmd builds the command tree. now supplies the default date.
func NewRootCmd(now func() time.Time) *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:   "wallpaper",
		Short: "Year-progress dot calendar wallpapers",
		Long: `wallpaper draws one dot per day of the year, highlights today and
prints how much of the year is left underneath.

Render it to SVG or PNG, preview it in the terminal, or list the
phone presets it knows the screen size of.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	root.SetVersionTemplate(fmt.Sprintf(
		"wallpaper %s (%s/%s, %s)\n",
		version, runtime.GOOS, runtime.GOARCH, runtime.Version(),
	))

	root.AddCommand(newRenderCmd(now), newPreviewCmd(now), newDevicesCmd())
	return root
}

// Execute runs the command line and returns the process exit code.
func Execute() int {
	if err := NewRootCmd(time.Now).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}
	return 0
}
