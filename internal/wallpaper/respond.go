package wallpaper

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"
)

// Renderer is the part of Service an HTTP front end needs.
type Renderer interface {
	Render(ctx context.Context, p Params) (Result, error)
}

// Serve answers a wallpaper request on w. It is shared by the gin server
// and the edge handler so both speak the same contract.
func Serve(w http.ResponseWriter, r *http.Request, svc Renderer, now time.Time) {
	p := ParseParams(r.URL.Query(), now)
	res, err := svc.Render(r.Context(), p)
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteResult(w, r, res)
}

// WriteResult writes res with caching headers, or 304 when the client
// already holds the same body.
func WriteResult(w http.ResponseWriter, r *http.Request, res Result) {
	h := w.Header()
	h.Set("Cache-Control", CacheControl)
	if res.ETag != "" {
		h.Set("ETag", res.ETag)
		if etagMatches(r.Header.Get("If-None-Match"), res.ETag) {
			w.WriteHeader(http.StatusNotModified)
			return
		}
	}
	h.Set("Content-Type", res.ContentType)
	w.WriteHeader(http.StatusOK)
	if r.Method != http.MethodHead {
		w.Write(res.Body)
	}
}

// WriteError reports err as a plain-text 500.
func WriteError(w http.ResponseWriter, err error) {
	msg := "Internal error"
	if err != nil && err.Error() != "" {
		msg = err.Error()
	}
	if errors.Is(err, context.Canceled) {
		msg = "request canceled"
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	w.Write([]byte(msg))
}

func etagMatches(header, etag string) bool {
	if header == "" {
		return false
	}
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || strings.TrimPrefix(candidate, "W/") == etag {
			return true
		}
	}
	return false
}
