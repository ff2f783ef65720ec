package imagepkg

import (
	"bytes"

	svg "github.com/ajstarks/svgo/float"

	"github.com/youruser/yeardots/internal/layout"
)

// BackgroundSVG is the gradient-filled canvas of s. The rasterizer reads
// presentation attributes only, so the gradient is referenced inline.
func BackgroundSVG(s layout.Scene) []byte {
	buf := new(bytes.Buffer)
	canvas := svg.New(buf)
	w, h := float64(s.Width), float64(s.Height)

	canvas.Startview(w, h, 0, 0, w, h)
	canvas.Def()
	canvas.LinearGradient("bg", 0, 0, 0, 100, []svg.Offcolor{
		{Offset: 0, Color: s.Palette.BackgroundTop, Opacity: 1},
		{Offset: 100, Color: s.Palette.BackgroundBottom, Opacity: 1},
	})
	canvas.DefEnd()
	canvas.Rect(0, 0, w, h, `fill="url(#bg)"`)
	canvas.End()
	return buf.Bytes()
}
