package cli

import (
	"net/url"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/youruser/yeardots/internal/layout"
	"github.com/youruser/yeardots/internal/wallpaper"
)

// sceneFlags are the layout options shared by render and preview.
type sceneFlags struct {
	year     int
	today    string
	width    int
	height   int
	device   string
	cols     int
	rows     int
	noRamp   bool
	noFooter bool
}

func (f *sceneFlags) register(cmd *cobra.Command) {
	def := layout.DefaultConfig()
	fs := cmd.Flags()
	fs.IntVar(&f.year, "year", 0, "calendar year (default: current UTC year)")
	fs.StringVar(&f.today, "today", "", "reference date YYYY-MM-DD (default: today, UTC)")
	fs.IntVar(&f.width, "width", 0, "canvas width in pixels (default: 1179 or the device preset)")
	fs.IntVar(&f.height, "height", 0, "canvas height in pixels (default: 2556 or the device preset)")
	fs.StringVar(&f.device, "device", "", "device preset slug, see `wallpaper devices`")
	fs.IntVar(&f.cols, "cols", def.Cols, "dots per row")
	fs.IntVar(&f.rows, "rows", def.Rows, "rows of dots, grown to fit 366 days")
	fs.BoolVar(&f.noRamp, "no-ramp", false, "draw past days at a flat opacity")
	fs.BoolVar(&f.noFooter, "no-footer", false, "omit the days-left footer")
}

// params resolves the flags the same way the server resolves a query.
func (f *sceneFlags) params(now time.Time, format wallpaper.Format) wallpaper.Params {
	q := url.Values{}
	if f.year != 0 {
		q.Set("year", strconv.Itoa(f.year))
	}
	if f.today != "" {
		q.Set("today", f.today)
	}
	if f.width != 0 {
		q.Set("width", strconv.Itoa(f.width))
	}
	if f.height != 0 {
		q.Set("height", strconv.Itoa(f.height))
	}
	if f.device != "" {
		q.Set("device", f.device)
	}
	q.Set("format", string(format))
	return wallpaper.ParseParams(q, now)
}

func (f *sceneFlags) config() layout.Config {
	cfg := layout.DefaultConfig()
	cfg.Cols, cfg.Rows = f.cols, f.rows
	cfg.EnableProgressRamp = !f.noRamp
	cfg.ShowFooter = !f.noFooter
	return cfg
}
