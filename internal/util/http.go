package util

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// MaxBodyBytes caps downloads so a bad URL cannot exhaust memory.
const MaxBodyBytes = 16 << 20

// HTTPClient is shared by all downloads.
var HTTPClient = &http.Client{Timeout: 12 * time.Second}

// GetBytes fetches url and returns the body. Non-200 responses are errors.
func GetBytes(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("get %s: status %d", url, resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodyBytes+1))
	if err != nil {
		return nil, err
	}
	if len(body) > MaxBodyBytes {
		return nil, fmt.Errorf("get %s: body exceeds %d bytes", url, MaxBodyBytes)
	}
	return body, nil
}
