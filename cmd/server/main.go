package main

import (
	"errors"
	"log/slog"
	"net/http"
	"os"

	"github.com/youruser/yeardots/internal/api"
	"github.com/youruser/yeardots/internal/fontcache"
	imagepkg "github.com/youruser/yeardots/internal/image"
	"github.com/youruser/yeardots/internal/wallpaper"
)

func main() {
	fontURL := os.Getenv("DEFAULT_FONT_URL")
	if fontURL == "" {
		fontURL = wallpaper.DefaultFontURL
	}

	// Fetch the default font at startup (best-effort)
	fonts := fontcache.New(imagepkg.DownloadFont)
	fonts.Warm(fontURL)

	svc := wallpaper.NewService(fonts, imagepkg.NewRenderer(), fontURL)
	r := api.NewRouter(svc)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	slog.Info("starting server", "addr", "http://localhost:"+port, "font", fontURL)
	if err := r.Run(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
