package edge

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/youruser/yeardots/internal/layout"
	"github.com/youruser/yeardots/internal/wallpaper"
)

type noRaster struct{}

func (noRaster) Render(s layout.Scene, fontData []byte) ([]byte, error) {
	return []byte("png"), nil
}

type panicky struct{}

func (panicky) Render(ctx context.Context, p wallpaper.Params) (wallpaper.Result, error) {
	panic("bad scene")
}

func TestEdgeSVG(t *testing.T) {
	h := New(wallpaper.NewService(nil, noRaster{}, ""))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/wallpaper?format=svg&year=2024&today=2024-01-01", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status: %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != wallpaper.ContentTypeSVG {
		t.Errorf("content type: %q", got)
	}
	if !strings.Contains(rec.Body.String(), "365 days left") {
		t.Error("footer missing")
	}
}

func TestEdgeUsesClock(t *testing.T) {
	h := &edgeHandler{
		svc: wallpaper.NewService(nil, noRaster{}, ""),
		now: func() time.Time { return time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC) },
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/?format=svg", nil))
	if !strings.Contains(rec.Body.String(), "100% completed") {
		t.Errorf("expected end of 2023, got %q", rec.Body.String()[:80])
	}
}

func TestEdgeMethodNotAllowed(t *testing.T) {
	h := New(wallpaper.NewService(nil, noRaster{}, ""))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status: %d", rec.Code)
	}
}

func TestEdgeRecoversPanic(t *testing.T) {
	rec := httptest.NewRecorder()
	New(panicky{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusInternalServerError || rec.Body.String() != "bad scene" {
		t.Errorf("got %d %q", rec.Code, rec.Body.String())
	}
}

func TestHandlerSharedService(t *testing.T) {
	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		Handler(rec, httptest.NewRequest(http.MethodGet, "/?format=svg", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("call %d: status %d", i, rec.Code)
		}
	}
	if handler == nil {
		t.Error("service was not initialized")
	}
}
