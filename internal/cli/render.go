package cli

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/youruser/yeardots/internal/util"
	"github.com/youruser/yeardots/internal/wallpaper"
)

func newRenderCmd(now func() time.Time) *cobra.Command {
	var (
		flags   sceneFlags
		output  string
		fontURL string
	)
	cmd := &cobra.Command{
		Use:   "render -o <file.svg|file.png>",
		Short: "Render a wallpaper to an SVG or PNG file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := formatFor(output)
			if err != nil {
				return err
			}
			p := flags.params(now(), format)
			p.FontURL = fontURL

			svc := wallpaper.New(fontURL).WithConfig(flags.config())
			res, err := svc.Render(cmd.Context(), p)
			if err != nil {
				return err
			}
			if err := util.WriteFile(output, res.Body); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%dx%d, %d bytes)\n", output, p.Width, p.Height, len(res.Body))
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file; the extension picks the format")
	cmd.Flags().StringVar(&fontURL, "font-url", wallpaper.DefaultFontURL, "footer font for PNG output (TTF/OTF; others fall back to the built-in font)")
	cmd.MarkFlagRequired("output")
	return cmd
}

func formatFor(path string) (wallpaper.Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".svg":
		return wallpaper.FormatSVG, nil
	case ".png":
		return wallpaper.FormatPNG, nil
	}
	return "", fmt.Errorf("unsupported output %q: use a .svg or .png file name", path)
}
