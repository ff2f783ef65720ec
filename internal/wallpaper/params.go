// Package wallpaper turns request parameters into a rendered wallpaper.
package wallpaper

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/youruser/yeardots/internal/devices"
	"github.com/youruser/yeardots/internal/layout"
)

type Format string

const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
)

const (
	MinWidth  = 320
	MaxWidth  = 4096
	MinHeight = 320
	MaxHeight = 8192

	DefaultFontURL = "https://rsms.me/inter/font-files/Inter-Regular.woff2"

	ContentTypeSVG = "image/svg+xml; charset=utf-8"
	ContentTypePNG = "image/png"
	CacheControl   = "public, max-age=3600"
)

// Params is a parsed wallpaper request.
type Params struct {
	Year   int
	Today  time.Time // UTC date
	Width  int
	Height int
	Format Format
	// FontURL is the footer font source for PNG output. Empty means the
	// service default.
	FontURL string
	Device  string // preset slug that supplied the size, if any
}

// ParseParams reads the wallpaper query. Missing or malformed values take
// their defaults; width and height are clamped into the servable range.
func ParseParams(q url.Values, now time.Time) Params {
	now = now.UTC()
	def := layout.DefaultConfig()
	p := Params{
		Year:    parseInt(q.Get("year"), now.Year()),
		Today:   time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
		Width:   def.Width,
		Height:  def.Height,
		Format:  FormatPNG,
		FontURL: q.Get("fontUrl"),
	}
	if t, err := time.Parse(layout.DateLayout, strings.TrimSpace(q.Get("today"))); err == nil {
		p.Today = t
	}

	if slug := q.Get("device"); slug != "" {
		if d, ok := devices.Lookup(slug); ok {
			p.Device = d.Slug
			p.Width, p.Height = d.Width, d.Height
		}
	}
	p.Width = clamp(parseInt(q.Get("width"), p.Width), MinWidth, MaxWidth)
	p.Height = clamp(parseInt(q.Get("height"), p.Height), MinHeight, MaxHeight)

	if strings.EqualFold(strings.TrimSpace(q.Get("format")), string(FormatSVG)) {
		p.Format = FormatSVG
	}
	return p
}

// Query encodes p back into wallpaper query parameters.
func (p Params) Query() url.Values {
	q := url.Values{}
	q.Set("year", strconv.Itoa(p.Year))
	q.Set("today", p.Today.Format(layout.DateLayout))
	if p.Device != "" {
		q.Set("device", p.Device)
	}
	q.Set("width", strconv.Itoa(p.Width))
	q.Set("height", strconv.Itoa(p.Height))
	q.Set("format", string(p.Format))
	if p.FontURL != "" {
		q.Set("fontUrl", p.FontURL)
	}
	return q
}

// parseInt reads a leading base-10 integer, so "1179px" is 1179.
// Anything without one yields fallback.
func parseInt(s string, fallback int) int {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return fallback
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return fallback
	}
	return n
}

func clamp(n, lo, hi int) int {
	return max(lo, min(hi, n))
}
