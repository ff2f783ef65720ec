package layout

// Config holds the layout parameters of a wallpaper.
// The zero value is not useful; start from DefaultConfig.
type Config struct {
	Width  int // canvas pixels (default: 1179, iPhone 15 Pro)
	Height int // canvas pixels (default: 2556)

	// Safe areas.
	MarginX      int // left and right (default: 80)
	MarginTop    int // default: 320
	MarginBottom int // default: 160

	// Grid shape; Cols*Rows must cover a leap year.
	Cols int // default: 19
	Rows int // default: 20

	GapRatio     float64 // gap = diameter * GapRatio (default: 0.55)
	DotFillRatio float64 // radius = diameter/2 * DotFillRatio (default: 0.78)

	EmphasisScale float64 // today marker radius multiplier (default: 1.35)
	RingWidth     float64 // today ring stroke (default: 3)

	EnableProgressRamp bool // gradient opacity for past days (default: true)

	ShowFooter      bool    // default: true
	FooterGapRatio  float64 // distance under grid = diameter * FooterGapRatio (default: 1.6)
	FooterSize      float64 // px (default: 34)
	FooterMutedSize float64 // px (default: 28)
}

// DefaultConfig returns the stock iPhone 15 Pro layout.
func DefaultConfig() Config {
	return Config{
		Width:              1179,
		Height:             2556,
		MarginX:            80,
		MarginTop:          320,
		MarginBottom:       160,
		Cols:               19,
		Rows:               20,
		GapRatio:           0.55,
		DotFillRatio:       0.78,
		EmphasisScale:      1.35,
		RingWidth:          3,
		EnableProgressRamp: true,
		ShowFooter:         true,
		FooterGapRatio:     1.6,
		FooterSize:         34,
		FooterMutedSize:    28,
	}
}

// Normalize clamps c into the domain Generate is total over.
func (c Config) Normalize() Config {
	c.Width = max(c.Width, 1)
	c.Height = max(c.Height, 1)
	c.MarginX = max(c.MarginX, 0)
	c.MarginTop = max(c.MarginTop, 0)
	c.MarginBottom = max(c.MarginBottom, 0)

	c.Cols = max(c.Cols, 1)
	c.Rows = max(c.Rows, 1)

	c.GapRatio = max(c.GapRatio, 0)
	c.DotFillRatio = max(c.DotFillRatio, 0)
	if c.EmphasisScale <= 0 {
		c.EmphasisScale = 1
	}
	c.RingWidth = max(c.RingWidth, 0)
	c.FooterGapRatio = max(c.FooterGapRatio, 0)
	c.FooterSize = max(c.FooterSize, 0)
	c.FooterMutedSize = max(c.FooterMutedSize, 0)
	return c
}
