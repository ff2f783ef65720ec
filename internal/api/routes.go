package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/youruser/yeardots/internal/wallpaper"
)

func RegisterRoutes(r *gin.Engine, h *Handlers) {
	r.GET("/", h.wallpaperHandler)
	r.HEAD("/", h.wallpaperHandler)

	api := r.Group("/api")
	{
		api.GET("/health", health)
		api.GET("/qr", h.qrHandler)
		api.GET("/devices", devicesHandler)
	}
}

// NewRouter builds an engine with request logging, recovery and all routes.
func NewRouter(svc wallpaper.Renderer) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), Recovery())
	RegisterRoutes(r, NewHandlers(svc))
	return r
}

// Recovery turns a panic into the same plain-text 500 a render error gets.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		slog.Error("panic while serving request", "path", c.Request.URL.Path, "panic", recovered)
		c.Data(http.StatusInternalServerError, "text/plain; charset=utf-8", []byte(fmt.Sprint(recovered)))
		c.Abort()
	})
}
