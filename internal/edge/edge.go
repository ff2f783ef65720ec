// Package edge exposes the wallpaper endpoint as a plain net/http handler
// for serverless runtimes that call a single exported function.
package edge

import (
	"fmt"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/youruser/yeardots/internal/wallpaper"
)

var (
	once    sync.Once
	handler http.Handler
)

// Handler serves one wallpaper request. The service, and with it the font
// cache, is built on first use and shared by later invocations of a warm
// instance.
func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(func() {
		handler = New(wallpaper.New(os.Getenv("DEFAULT_FONT_URL")))
	})
	handler.ServeHTTP(w, r)
}

// New wraps svc in a handler with the same contract as the server's root route.
func New(svc wallpaper.Renderer) http.Handler {
	return &edgeHandler{svc: svc, now: time.Now}
}

type edgeHandler struct {
	svc wallpaper.Renderer
	now func() time.Time
}

func (h *edgeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	defer func() {
		if rec := recover(); rec != nil {
			wallpaper.WriteError(w, fmt.Errorf("%v", rec))
		}
	}()
	wallpaper.Serve(w, r, h.svc, h.now())
}
