package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/youruser/yeardots/internal/devices"
	imagepkg "github.com/youruser/yeardots/internal/image"
	"github.com/youruser/yeardots/internal/wallpaper"
)

const (
	qrMinSize     = 128
	qrMaxSize     = 1024
	qrDefaultSize = 400
)

// Handlers serves the wallpaper endpoints.
type Handlers struct {
	svc wallpaper.Renderer
	now func() time.Time
}

func NewHandlers(svc wallpaper.Renderer) *Handlers {
	return &Handlers{svc: svc, now: time.Now}
}

// health
func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// wallpaperHandler renders the image described by the query string.
func (h *Handlers) wallpaperHandler(c *gin.Context) {
	wallpaper.Serve(c.Writer, c.Request, h.svc, h.now())
}

// qr endpoint returns a PNG QR code linking to the wallpaper with the same query
func (h *Handlers) qrHandler(c *gin.Context) {
	size := qrDefaultSize
	if v, err := strconv.Atoi(c.Query("size")); err == nil {
		size = max(qrMinSize, min(qrMaxSize, v))
	}

	q := c.Request.URL.Query()
	q.Del("size")
	link := fmt.Sprintf("%s://%s/", scheme(c.Request), c.Request.Host)
	if enc := q.Encode(); enc != "" {
		link += "?" + enc
	}

	b, err := imagepkg.GenerateQRPNG(link, size)
	if err != nil {
		slog.Error("qr generation failed", "link", link, "error", err)
		c.Data(http.StatusInternalServerError, "text/plain; charset=utf-8", []byte(err.Error()))
		return
	}
	c.Header("Cache-Control", wallpaper.CacheControl)
	c.Data(http.StatusOK, "image/png", b)
}

// devicesHandler lists size presets, optionally filtered by platform and words.
func devicesHandler(c *gin.Context) {
	all, err := devices.All()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out := devices.Filter(all, devices.FilterOptions{
		Platform:  c.Query("platform"),
		FreeWords: c.Query("q"),
	})
	c.JSON(http.StatusOK, gin.H{"count": len(out), "devices": out})
}

func scheme(r *http.Request) string {
	if p := r.Header.Get("X-Forwarded-Proto"); p == "http" || p == "https" {
		return p
	}
	if r.TLS != nil {
		return "https"
	}
	return "http"
}
