// Package layout turns a year and a reference date into the geometry of a
// dot-calendar wallpaper. Everything here is pure: no I/O, no clock reads.
package layout

// Palette is the fixed color scheme of the wallpaper.
type Palette struct {
	BackgroundTop    string
	BackgroundBottom string
	Dot              string
	Accent           string
	TodayFill        string  // hex part of the today fill
	TodayFillOpacity float64 // alpha part of the today fill
	GlowOpacity      float64
	GlowBlur         float64 // CSS drop-shadow blur radius in px
	Footer           string
	FooterOpacity    float64
	FooterMuted      string
	FooterMutedAlpha float64
}

// DefaultPalette is the dark blue scheme with a sky accent.
var DefaultPalette = Palette{
	BackgroundTop:    "#070A0F",
	BackgroundBottom: "#0B1220",
	Dot:              "#FFFFFF",
	Accent:           "#7DD3FC",
	TodayFill:        "#FFFFFF",
	TodayFillOpacity: 0.22,
	GlowOpacity:      0.35,
	GlowBlur:         18,
	Footer:           "#FFFFFF",
	FooterOpacity:    0.80,
	FooterMuted:      "#FFFFFF",
	FooterMutedAlpha: 0.52,
}

// Text classes used by footer lines.
const (
	ClassFooter      = "footer"
	ClassFooterMuted = "footerMuted"
)

// Rect is an integer pixel rectangle.
type Rect struct {
	X, Y, W, H int
}

// Dot is the rendered state of one day.
type Dot struct {
	Index       int
	Date        string // YYYY-MM-DD
	CX, CY      float64
	R           float64
	Opacity     float64 // ignored when Today is set
	PastOrToday bool
	Today       bool // drawn as the emphasis marker
}

// Text is one footer line. X is the horizontal center, Y the baseline.
type Text struct {
	X       float64
	Y       int
	Content string
	Class   string
	Size    float64
}

// Metrics summarizes the calendar the scene was built from.
type Metrics struct {
	Year            int
	Reference       string
	DaysInYear      int
	DayIndex        int
	DaysCompleted   int
	DaysRemaining   int
	PercentComplete float64
}

// Scene is the resolution-independent description of a wallpaper.
type Scene struct {
	Width, Height int
	Palette       Palette

	Diameter int
	Gap      int
	Field    Rect
	Cols     int
	Rows     int

	BaseRadius  float64
	RingWidth   float64
	FooterSize  float64
	MutedSize   float64
	Dots        []Dot
	Footer      []Text
	Metrics     Metrics
	TodayMarker *Dot // nil when the reference date is outside the year
}

// Ordinary returns the number of non-emphasized dots.
func (s Scene) Ordinary() int {
	n := 0
	for _, d := range s.Dots {
		if !d.Today {
			n++
		}
	}
	return n
}
