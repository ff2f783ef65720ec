package wallpaper

import (
	"github.com/youruser/yeardots/internal/fontcache"
	imagepkg "github.com/youruser/yeardots/internal/image"
)

// New returns a service that downloads fonts through a shared cache and
// rasterizes with the built-in renderer.
func New(defaultFontURL string) *Service {
	fonts := fontcache.New(imagepkg.DownloadFont)
	return NewService(fonts, imagepkg.NewRenderer(), defaultFontURL)
}
