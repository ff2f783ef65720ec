package layout

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	svg "github.com/ajstarks/svgo/float"
)

const (
	fontStack       = "ui-sans-serif, -apple-system, system-ui, Segoe UI, Roboto, Helvetica, Arial"
	backgroundGrad  = "bgGrad"
	textAnchorMid   = `text-anchor="middle"`
	glowGroupClass  = `class="todayGlow"`
	dotsGroupID     = `id="dots"`
	dotClass        = `class="dot"`
	todayFillClass  = `class="todayFill"`
	todayRingClass  = `class="todayRing"`
	backgroundClass = `class="bg"`
)

// EncodeSVG writes s as a standalone SVG document with a CSS style block.
func EncodeSVG(w io.Writer, s Scene) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	width, height := float64(s.Width), float64(s.Height)

	canvas.Startview(width, height, 0, 0, width, height)
	canvas.Def()
	canvas.Style("text/css", stylesheet(s))
	canvas.LinearGradient(backgroundGrad, 0, 0, 0, 100, []svg.Offcolor{
		{Offset: 0, Color: s.Palette.BackgroundTop, Opacity: 1},
		{Offset: 100, Color: s.Palette.BackgroundBottom, Opacity: 1},
	})
	canvas.DefEnd()

	canvas.Rect(0, 0, width, height, backgroundClass)

	canvas.Group(dotsGroupID)
	for _, d := range s.Dots {
		if d.Today {
			canvas.Group(glowGroupClass)
			canvas.Circle(d.CX, d.CY, d.R, todayFillClass)
			canvas.Circle(d.CX, d.CY, d.R, todayRingClass)
			canvas.Gend()
			continue
		}
		canvas.Circle(d.CX, d.CY, d.R, dotClass, attr("fill-opacity", FormatNumber(d.Opacity)))
	}
	canvas.Gend()

	for _, t := range s.Footer {
		canvas.Text(t.X, float64(t.Y), t.Content, attr("class", t.Class), textAnchorMid)
	}
	canvas.End()
	return ew.err
}

// SVG returns the encoded document.
func (s Scene) SVG() []byte {
	var buf bytes.Buffer
	// bytes.Buffer never fails
	_ = EncodeSVG(&buf, s)
	return buf.Bytes()
}

func stylesheet(s Scene) string {
	p := s.Palette
	return fmt.Sprintf(`
.bg { fill: url(#%s); }
.dot { fill: %s; }
.todayFill { fill: %s; fill-opacity: %s; }
.todayRing { fill: none; stroke: %s; stroke-width: %spx; }
.todayGlow { filter: drop-shadow(0 0 %spx %s); }
.footer {
  fill: %s; fill-opacity: %s;
  font-family: %s;
  font-weight: 700;
  font-size: %spx;
  letter-spacing: 0.5px;
}
.footerMuted {
  fill: %s; fill-opacity: %s;
  font-family: %s;
  font-weight: 600;
  font-size: %spx;
  letter-spacing: 0.3px;
}
`,
		backgroundGrad,
		p.Dot,
		p.TodayFill, FormatNumber(p.TodayFillOpacity),
		p.Accent, FormatNumber(s.RingWidth),
		FormatNumber(p.GlowBlur), rgba(p.Accent, p.GlowOpacity),
		p.Footer, FormatNumber(p.FooterOpacity), fontStack, FormatNumber(s.FooterSize),
		p.FooterMuted, FormatNumber(p.FooterMutedAlpha), fontStack, FormatNumber(s.MutedSize),
	)
}

// FormatNumber prints f without trailing zeros.
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func attr(name, value string) string {
	return name + `="` + value + `"`
}

// rgba turns "#RRGGBB" and an alpha into a CSS rgba() color.
func rgba(hex string, alpha float64) string {
	r, g, b := ParseHex(hex)
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, FormatNumber(alpha))
}

// ParseHex decodes "#RRGGBB". Malformed input yields white.
func ParseHex(hex string) (r, g, b uint8) {
	if len(hex) != 7 || hex[0] != '#' {
		return 255, 255, 255
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return 255, 255, 255
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v)
}

// errWriter keeps the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return len(p), nil
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}
