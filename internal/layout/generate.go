package layout

import (
	"fmt"
	"math"
	"strconv"
)

// Opacity levels of ordinary dots.
const (
	flatPastOpacity   = 0.18
	flatFutureOpacity = 0.10
	rampStartOpacity  = 0.14
	rampEndOpacity    = 0.26
	rampFutureOpacity = 0.09
)

// footerLineHeight is the baseline distance between footer lines,
// in multiples of the primary footer size.
const footerLineHeight = 1.1

// Generate lays out the wallpaper for cal using cfg.
// It never fails: out-of-year reference dates are clamped and cfg is
// normalized before use.
func Generate(cal Calendar, cfg Config) Scene {
	cfg = cfg.Normalize()

	daysInYear := cal.DaysInYear()
	dayIndex := cal.DayIndex()
	cfg = growRows(cfg, daysInYear)
	refStr := cal.ReferenceString()

	usableW := cfg.Width - 2*cfg.MarginX
	usableH := cfg.Height - cfg.MarginTop - cfg.MarginBottom

	d := fitDiameter(usableW, usableH, cfg)
	gap := int(math.Floor(float64(d) * cfg.GapRatio))

	fieldW := cfg.Cols*d + (cfg.Cols-1)*gap
	fieldH := cfg.Rows*d + (cfg.Rows-1)*gap

	x0 := cfg.MarginX + floorDiv(usableW-fieldW, 2)
	y0 := cfg.MarginTop + floorDiv(usableH-fieldH, 2)

	half := float64(d) / 2
	rBase := half * cfg.DotFillRatio

	s := Scene{
		Width:      cfg.Width,
		Height:     cfg.Height,
		Palette:    DefaultPalette,
		Diameter:   d,
		Gap:        gap,
		Field:      Rect{X: x0, Y: y0, W: fieldW, H: fieldH},
		Cols:       cfg.Cols,
		Rows:       cfg.Rows,
		BaseRadius: rBase,
		RingWidth:  cfg.RingWidth,
		FooterSize: cfg.FooterSize,
		MutedSize:  cfg.FooterMutedSize,
		Dots:       make([]Dot, 0, daysInYear),
		Metrics: Metrics{
			Year:            cal.Year,
			Reference:       refStr,
			DaysInYear:      daysInYear,
			DayIndex:        dayIndex,
			DaysCompleted:   cal.DaysCompleted(),
			DaysRemaining:   cal.DaysRemaining(),
			PercentComplete: cal.PercentComplete(),
		},
	}

	for i := 0; i < cfg.Cols*cfg.Rows; i++ {
		if i >= daysInYear {
			// unused slots stay empty
			break
		}
		row, col := i/cfg.Cols, i%cfg.Cols

		date := cal.Date(i).Format(DateLayout)
		dot := Dot{
			Index:       i,
			Date:        date,
			CX:          float64(x0+col*(d+gap)) + half,
			CY:          float64(y0+row*(d+gap)) + half,
			R:           rBase,
			PastOrToday: i <= dayIndex,
			Today:       date == refStr,
		}
		dot.Opacity = dotOpacity(i, daysInYear, dot.PastOrToday, cfg.EnableProgressRamp)
		if dot.Today {
			dot.R = rBase * cfg.EmphasisScale
		}
		s.Dots = append(s.Dots, dot)
	}

	for i := range s.Dots {
		if s.Dots[i].Today {
			marker := s.Dots[i]
			s.TodayMarker = &marker
			break
		}
	}

	if cfg.ShowFooter {
		centerX := float64(x0) + float64(fieldW)/2
		y1 := int(math.Floor(float64(y0+fieldH) + float64(d)*cfg.FooterGapRatio))
		y2 := y1 + int(math.Floor(cfg.FooterSize*footerLineHeight))
		s.Footer = []Text{
			{
				X:       centerX,
				Y:       y1,
				Content: fmt.Sprintf("%d days left", s.Metrics.DaysRemaining),
				Class:   ClassFooter,
				Size:    cfg.FooterSize,
			},
			{
				X:       centerX,
				Y:       y2,
				Content: FormatPercent(s.Metrics.PercentComplete) + "% completed",
				Class:   ClassFooterMuted,
				Size:    cfg.FooterMutedSize,
			},
		}
	}

	return s
}

// fitDiameter returns the largest integer dot diameter for which the grid
// fits the usable area in both directions.
// growRows adds rows until the grid has a cell for every day of the year.
func growRows(cfg Config, days int) Config {
	if cfg.Cols*cfg.Rows < days {
		cfg.Rows = (days + cfg.Cols - 1) / cfg.Cols
	}
	return cfg
}

func fitDiameter(usableW, usableH int, cfg Config) int {
	denomW := float64(cfg.Cols) + float64(cfg.Cols-1)*cfg.GapRatio
	denomH := float64(cfg.Rows) + float64(cfg.Rows-1)*cfg.GapRatio
	d := math.Floor(math.Min(float64(usableW)/denomW, float64(usableH)/denomH))
	if d < 0 || math.IsNaN(d) {
		return 0
	}
	return int(d)
}

func dotOpacity(i, daysInYear int, pastOrToday, ramp bool) float64 {
	if !ramp {
		if pastOrToday {
			return flatPastOpacity
		}
		return flatFutureOpacity
	}
	if !pastOrToday {
		return rampFutureOpacity
	}
	progress := clamp01(float64(i) / float64(max(1, daysInYear-1)))
	return lerp(rampStartOpacity, rampEndOpacity, progress)
}

// FormatPercent prints p with the shortest exact representation,
// so 0.3 stays "0.3" and 100 stays "100".
func FormatPercent(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func clamp01(x float64) float64 { return math.Max(0, math.Min(1, x)) }

func lerp(a, b, t float64) float64 { return a + (b-a)*t }
