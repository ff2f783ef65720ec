package wallpaper

import (
	"context"
	"fmt"

	"github.com/youruser/yeardots/internal/hasher"
	"github.com/youruser/yeardots/internal/layout"
)

// FontSource returns font bytes for a URL, or nil when none are available.
type FontSource interface {
	Get(ctx context.Context, url string) []byte
}

// Rasterizer turns a scene into PNG bytes.
type Rasterizer interface {
	Render(s layout.Scene, fontData []byte) ([]byte, error)
}

// Result is a rendered wallpaper ready to be written to a response.
type Result struct {
	Body        []byte
	ContentType string
	ETag        string
}

// Service renders wallpapers with the stock layout.
type Service struct {
	fonts          FontSource
	raster         Rasterizer
	defaultFontURL string
	config         layout.Config
}

// NewService wires a service. An empty defaultFontURL means DefaultFontURL.
func NewService(fonts FontSource, raster Rasterizer, defaultFontURL string) *Service {
	if defaultFontURL == "" {
		defaultFontURL = DefaultFontURL
	}
	return &Service{
		fonts:          fonts,
		raster:         raster,
		defaultFontURL: defaultFontURL,
		config:         layout.DefaultConfig(),
	}
}

// WithConfig replaces the base layout; the request still decides the size.
func (s *Service) WithConfig(cfg layout.Config) *Service {
	s.config = cfg
	return s
}

// DefaultFontURL is the font source used when a request names none.
func (s *Service) DefaultFontURL() string {
	return s.defaultFontURL
}

// Scene builds the layout for p without rendering it.
func (s *Service) Scene(p Params) layout.Scene {
	cfg := s.config
	cfg.Width, cfg.Height = p.Width, p.Height
	return layout.Generate(layout.NewCalendar(p.Year, p.Today), cfg)
}

// Render generates the wallpaper for p in the requested format.
func (s *Service) Render(ctx context.Context, p Params) (Result, error) {
	scene := s.Scene(p)

	if p.Format == FormatSVG {
		body := scene.SVG()
		return Result{Body: body, ContentType: ContentTypeSVG, ETag: hasher.ETag(body)}, nil
	}

	fontURL := p.FontURL
	if fontURL == "" {
		fontURL = s.defaultFontURL
	}
	var fontData []byte
	if s.fonts != nil {
		fontData = s.fonts.Get(ctx, fontURL)
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	body, err := s.raster.Render(scene, fontData)
	if err != nil {
		return Result{}, fmt.Errorf("rasterize wallpaper: %w", err)
	}
	return Result{Body: body, ContentType: ContentTypePNG, ETag: hasher.ETag(body)}, nil
}
