package imagepkg

import (
	"fmt"
	"image/color"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/youruser/yeardots/internal/layout"
)

// GenerateQRPNG returns PNG bytes of a size x size QR code for link, drawn
// in the wallpaper's background color on white.
func GenerateQRPNG(link string, size int) ([]byte, error) {
	q, err := qrcode.New(link, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("qr encode: %w", err)
	}
	r, g, b := layout.ParseHex(layout.DefaultPalette.BackgroundTop)
	q.ForegroundColor = color.RGBA{R: r, G: g, B: b, A: 0xff}
	q.BackgroundColor = color.White

	out, err := q.PNG(size)
	if err != nil {
		return nil, fmt.Errorf("qr png: %w", err)
	}
	return out, nil
}
