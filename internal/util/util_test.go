package util

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGetBytes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte("font-bytes"))
	}))
	defer srv.Close()

	b, err := GetBytes(context.Background(), srv.URL+"/ok")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(b) != "font-bytes" {
		t.Errorf("body: got %q", b)
	}

	_, err = GetBytes(context.Background(), srv.URL+"/missing")
	if err == nil || !strings.Contains(err.Error(), "404") {
		t.Errorf("expected 404 error, got %v", err)
	}
}

func TestGetBytesCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("x"))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := GetBytes(ctx, srv.URL); err == nil {
		t.Error("expected error for canceled context")
	}
}

func TestWriteFileCreatesDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "out.svg")
	if err := WriteFile(path, []byte("<svg/>")); err != nil {
		t.Fatalf("write: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "<svg/>" {
		t.Errorf("content: got %q", data)
	}
}
