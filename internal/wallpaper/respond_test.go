package wallpaper

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type stubRenderer struct {
	res Result
	err error
	got Params
}

func (s *stubRenderer) Render(ctx context.Context, p Params) (Result, error) {
	s.got = p
	return s.res, s.err
}

func TestServeWritesHeaders(t *testing.T) {
	stub := &stubRenderer{res: Result{Body: []byte("<svg/>"), ContentType: ContentTypeSVG, ETag: `"abc"`}}
	req := httptest.NewRequest(http.MethodGet, "/?format=svg&width=500", nil)
	rec := httptest.NewRecorder()

	Serve(rec, req, stub, now)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != ContentTypeSVG {
		t.Errorf("content type: %q", got)
	}
	if got := rec.Header().Get("Cache-Control"); got != "public, max-age=3600" {
		t.Errorf("cache control: %q", got)
	}
	if got := rec.Header().Get("ETag"); got != `"abc"` {
		t.Errorf("etag: %q", got)
	}
	if rec.Body.String() != "<svg/>" {
		t.Errorf("body: %q", rec.Body.String())
	}
	if stub.got.Width != 500 || stub.got.Format != FormatSVG {
		t.Errorf("params not parsed from query: %+v", stub.got)
	}
}

func TestServeNotModified(t *testing.T) {
	stub := &stubRenderer{res: Result{Body: []byte("png"), ContentType: ContentTypePNG, ETag: `"abc"`}}
	for _, inm := range []string{`"abc"`, `W/"abc"`, `"x", "abc"`, `*`} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("If-None-Match", inm)
		rec := httptest.NewRecorder()
		Serve(rec, req, stub, now)
		if rec.Code != http.StatusNotModified {
			t.Errorf("If-None-Match %s: status %d", inm, rec.Code)
		}
		if rec.Body.Len() != 0 {
			t.Errorf("If-None-Match %s: body written", inm)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("If-None-Match", `"other"`)
	rec := httptest.NewRecorder()
	Serve(rec, req, stub, now)
	if rec.Code != http.StatusOK {
		t.Errorf("stale etag: status %d", rec.Code)
	}
}

func TestServeError(t *testing.T) {
	stub := &stubRenderer{err: errors.New("rasterize wallpaper: out of memory")}
	rec := httptest.NewRecorder()
	Serve(rec, httptest.NewRequest(http.MethodGet, "/", nil), stub, now)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status: %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "text/plain; charset=utf-8" {
		t.Errorf("content type: %q", got)
	}
	if rec.Body.String() != "rasterize wallpaper: out of memory" {
		t.Errorf("body: %q", rec.Body.String())
	}
}

func TestWriteErrorEmptyMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, errors.New(""))
	if rec.Body.String() != "Internal error" {
		t.Errorf("body: %q", rec.Body.String())
	}
}
