package imagepkg

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log/slog"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/youruser/yeardots/internal/layout"
)

// Font container formats recognized by FontFormat.
const (
	FormatTrueType = "ttf"
	FormatOpenType = "otf"
	FormatTTC      = "ttc"
	FormatWOFF     = "woff"
	FormatWOFF2    = "woff2"
)

// FontFormat sniffs the container format of a font payload. It returns
// "" when data does not look like a font at all.
func FontFormat(data []byte) string {
	if len(data) < 4 {
		return ""
	}
	switch {
	case bytes.Equal(data[:4], []byte{0x00, 0x01, 0x00, 0x00}), bytes.Equal(data[:4], []byte("true")):
		return FormatTrueType
	case bytes.Equal(data[:4], []byte("OTTO")):
		return FormatOpenType
	case bytes.Equal(data[:4], []byte("ttcf")):
		return FormatTTC
	case bytes.Equal(data[:4], []byte("wOFF")):
		return FormatWOFF
	case bytes.Equal(data[:4], []byte("wOF2")):
		return FormatWOFF2
	}
	return ""
}

// renderable reports whether footer text can be drawn with a font of format f.
func renderable(f string) bool {
	return f == FormatTrueType || f == FormatOpenType
}

// footerFonts picks the parsed fonts for the two footer styles. A usable
// fetched font serves both lines; otherwise the embedded Go fonts are used.
func footerFonts(fontData []byte) (primary, muted *opentype.Font, err error) {
	if fontData != nil {
		if f := FontFormat(fontData); renderable(f) {
			parsed, perr := opentype.Parse(fontData)
			if perr == nil {
				return parsed, parsed, nil
			}
			slog.Warn("fetched font unreadable, using embedded font", "error", perr)
		} else {
			slog.Debug("fetched font format unsupported, using embedded font", "format", f)
		}
	}

	primary, err = opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, nil, fmt.Errorf("parse embedded font: %w", err)
	}
	muted, err = opentype.Parse(gomedium.TTF)
	if err != nil {
		return nil, nil, fmt.Errorf("parse embedded font: %w", err)
	}
	return primary, muted, nil
}

func drawFooter(dst draw.Image, s layout.Scene, fontData []byte) error {
	primary, muted, err := footerFonts(fontData)
	if err != nil {
		return err
	}
	p := s.Palette
	for _, t := range s.Footer {
		if t.Size <= 0 {
			continue
		}
		f, hex, alpha := primary, p.Footer, p.FooterOpacity
		if t.Class == layout.ClassFooterMuted {
			f, hex, alpha = muted, p.FooterMuted, p.FooterMutedAlpha
		}

		face, err := opentype.NewFace(f, &opentype.FaceOptions{
			Size:    t.Size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return fmt.Errorf("font face: %w", err)
		}
		r, g, b := layout.ParseHex(hex)
		drawCentered(dst, t, face, color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(alpha * 255))})
		face.Close()
	}
	return nil
}

// drawCentered draws t with its horizontal center at t.X and baseline at t.Y.
func drawCentered(dst draw.Image, t layout.Text, face font.Face, col color.Color) {
	advance := font.MeasureString(face, t.Content)
	x := fixed.Int26_6(math.Round(t.X*64)) - advance/2
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.Point26_6{X: x, Y: fixed.I(t.Y)},
	}
	d.DrawString(t.Content)
}
