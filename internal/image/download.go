package imagepkg

import (
	"context"
	"errors"
	"fmt"

	"github.com/youruser/yeardots/internal/util"
)

var (
	// ErrNotFont is returned when a download does not look like a font file.
	ErrNotFont = errors.New("payload is not a font")
	// ErrUnsupportedFont is returned for fonts the footer renderer cannot
	// parse, such as WOFF and WOFF2.
	ErrUnsupportedFont = errors.New("font format not supported for rendering")
)

// DownloadFont downloads a font payload from url. Only payloads the
// renderer can draw with are returned.
func DownloadFont(ctx context.Context, url string) ([]byte, error) {
	body, err := util.GetBytes(ctx, url)
	if err != nil {
		return nil, err
	}
	switch f := FontFormat(body); {
	case f == "":
		return nil, fmt.Errorf("download %s: %w", url, ErrNotFont)
	case !renderable(f):
		return nil, fmt.Errorf("download %s: %s: %w", url, f, ErrUnsupportedFont)
	}
	return body, nil
}
