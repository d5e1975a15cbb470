// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides the HTTP helper used by the search stage.
package httputil

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"unicode/utf8"
)

// ErrInvalidUTF8 is returned when a response body is not valid UTF-8 text.
var ErrInvalidUTF8 = errors.New("response body is not valid UTF-8")

// StatusError reports a response whose status code is outside 2xx.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("HTTP %s", e.Status)
	}
	return fmt.Sprintf("HTTP %d", e.StatusCode)
}

// GetText performs a single GET request against url with the given
// User-Agent and returns the body decoded as UTF-8 text.
//
// The request is bound to ctx; the client's own Timeout still applies. The
// body is always drained and closed. There is no retry: a failed request is
// returned to the caller as-is.
func GetText(ctx context.Context, client *http.Client, url, userAgent string) (string, error) {
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return "", &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response body: %w", err)
	}
	if !utf8.Valid(body) {
		return "", ErrInvalidUTF8
	}
	return string(body), nil
}
