package hasher

import "testing"

func TestContentHash(t *testing.T) {
	a := ContentHash([]byte("2024-01-01"), 0)
	if len(a) != 16 {
		t.Errorf("full hash length: got %d", len(a))
	}
	if ContentHash([]byte("2024-01-01"), 0) != a {
		t.Error("hash not stable")
	}
	if ContentHash([]byte("2024-01-02"), 0) == a {
		t.Error("different inputs hash equal")
	}
	if got := ContentHash([]byte("2024-01-01"), 8); got != a[:8] {
		t.Errorf("truncated: got %q, want %q", got, a[:8])
	}
}

func TestETag(t *testing.T) {
	tag := ETag([]byte("<svg/>"))
	if len(tag) != 18 || tag[0] != '"' || tag[17] != '"' {
		t.Errorf("etag: got %s", tag)
	}
}
