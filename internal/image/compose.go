// Package imagepkg rasterizes wallpaper scenes and produces the other
// bitmaps the service hands out.
package imagepkg

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/disintegration/imaging"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	"github.com/youruser/yeardots/internal/layout"
)

// backgroundStrip is the width the vertical gradient is rasterized at
// before being stretched across the canvas.
const backgroundStrip = 8

// Renderer turns a layout.Scene into a PNG. It holds no per-call state
// and is safe for concurrent use.
type Renderer struct{}

// NewRenderer returns a ready Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render draws s and encodes it as PNG. fontData may be nil, in which
// case the embedded Go fonts are used for the footer.
func (r *Renderer) Render(s layout.Scene, fontData []byte) ([]byte, error) {
	img, err := r.RenderImage(s, fontData)
	if err != nil {
		return nil, err
	}
	buf := new(bytes.Buffer)
	if err := imaging.Encode(buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderImage draws s in layers: background, glow, dots, footer text.
func (r *Renderer) RenderImage(s layout.Scene, fontData []byte) (*image.NRGBA, error) {
	canvas, err := drawBackground(s)
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}

	canvas = drawGlow(canvas, s)
	drawDots(canvas, s)

	if len(s.Footer) > 0 {
		if err := drawFooter(canvas, s, fontData); err != nil {
			return nil, fmt.Errorf("footer: %w", err)
		}
	}
	return canvas, nil
}

// drawBackground renders the gradient on a narrow strip and stretches it.
// The gradient only varies vertically, so every column is the same.
func drawBackground(s layout.Scene) (*image.NRGBA, error) {
	strip := imaging.New(min(backgroundStrip, s.Width), s.Height, color.NRGBA{})
	if err := rasterize(strip, BackgroundSVG(s)); err != nil {
		return nil, err
	}
	return imaging.Resize(strip, s.Width, s.Height, imaging.NearestNeighbor), nil
}

// rasterize draws an SVG document onto dst, fitted to its bounds.
func rasterize(dst *image.NRGBA, doc []byte) error {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(doc))
	if err != nil {
		return fmt.Errorf("parse SVG: %w", err)
	}
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	icon.SetTarget(0, 0, float64(w), float64(h))

	scanner := rasterx.NewScannerGV(w, h, dst, dst.Bounds())
	raster := rasterx.NewDasher(w, h, scanner)
	icon.Draw(raster, 1.0)
	return nil
}

// drawDots paints every ordinary dot, then the today marker fill and ring.
func drawDots(dst *image.NRGBA, s layout.Scene) {
	p := s.Palette
	for _, d := range s.Dots {
		if d.R <= 0 || d.Today {
			continue
		}
		paintCircle(dst, d.CX, d.CY, d.R, 0, nrgba(p.Dot, d.Opacity))
	}
	if m := s.TodayMarker; m != nil && m.R > 0 {
		paintCircle(dst, m.CX, m.CY, m.R, 0, nrgba(p.TodayFill, p.TodayFillOpacity))
		if s.RingWidth > 0 {
			paintCircle(dst, m.CX, m.CY, m.R, s.RingWidth, nrgba(p.Accent, 1))
		}
	}
}

// paintCircle rasterizes one circle on a patch covering only its bounding
// box and composites the patch over dst. With stroke > 0 the circle is
// outlined with a centered stroke of that width, otherwise it is filled.
func paintCircle(dst draw.Image, cx, cy, r, stroke float64, c color.NRGBA) {
	ext := r + stroke/2 + 1
	bounds := image.Rect(
		int(math.Floor(cx-ext)), int(math.Floor(cy-ext)),
		int(math.Ceil(cx+ext)), int(math.Ceil(cy+ext)),
	)
	w, h := bounds.Dx(), bounds.Dy()
	lx, ly := cx-float64(bounds.Min.X), cy-float64(bounds.Min.Y)

	patch := image.NewNRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, patch, patch.Bounds())
	scanner.SetColor(c)
	if stroke > 0 {
		stroker := rasterx.NewStroker(w, h, scanner)
		stroker.SetStroke(fixed.Int26_6(math.Round(stroke*64)), fixed.I(4),
			rasterx.ButtCap, rasterx.ButtCap, rasterx.RoundGap, rasterx.Round)
		rasterx.AddCircle(lx, ly, r, stroker)
		stroker.Draw()
	} else {
		filler := rasterx.NewFiller(w, h, scanner)
		rasterx.AddCircle(lx, ly, r, filler)
		filler.Draw()
	}
	draw.Draw(dst, bounds, patch, image.Point{}, draw.Over)
}

// drawGlow paints the soft accent halo behind the today marker. The CSS
// drop-shadow blur radius maps to a gaussian sigma of half its value.
func drawGlow(dst *image.NRGBA, s layout.Scene) *image.NRGBA {
	m := s.TodayMarker
	if m == nil || m.R <= 0 {
		return dst
	}
	p := s.Palette
	sigma := p.GlowBlur / 2
	outer := m.R + s.RingWidth/2
	pad := int(math.Ceil(3 * sigma))
	size := 2 * (int(math.Ceil(outer)) + pad)

	patch := imaging.New(size, size, color.NRGBA{})
	c := float64(size) / 2
	paintCircle(patch, c, c, outer, 0, nrgba(p.Accent, p.GlowOpacity))
	if sigma > 0 {
		patch = imaging.Blur(patch, sigma)
	}

	pos := image.Pt(int(math.Round(m.CX-c)), int(math.Round(m.CY-c)))
	return imaging.Overlay(dst, patch, pos, 1.0)
}

func nrgba(hex string, opacity float64) color.NRGBA {
	r, g, b := layout.ParseHex(hex)
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(clampUnit(opacity) * 255))}
}

func clampUnit(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}
