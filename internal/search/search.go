// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search finds the first video listed on a results page for a text
// query and returns its watch URL.
//
// The pipeline is strictly linear: build the search URL, fetch the page,
// scan it for the first identifier, build the watch URL. Every failure is
// returned as an *Error.
package search

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pdiddy/yt-url/internal/httputil"
	"github.com/pdiddy/yt-url/pkg/types"
)

// Result is the outcome of a successful search.
type Result struct {
	Query   string `json:"query" yaml:"query"`
	VideoID string `json:"video_id" yaml:"video_id"`
	URL     string `json:"url" yaml:"url"`

	// Pattern is the index of the identifier pattern that matched.
	Pattern int `json:"pattern" yaml:"pattern"`
}

// Searcher runs searches with a fixed configuration. It holds no state that
// changes between calls.
type Searcher struct {
	Client *http.Client
	Config types.SearchConfig

	// Log receives one diagnostic line per pipeline step. Nil discards.
	Log io.Writer
}

// NewSearcher returns a Searcher whose client uses cfg.Timeout. Zero fields
// in cfg are filled from types.DefaultSearchConfig.
func NewSearcher(cfg types.SearchConfig, log io.Writer) *Searcher {
	cfg = cfg.WithDefaults()
	return &Searcher{
		Client: &http.Client{Timeout: cfg.Timeout},
		Config: cfg,
		Log:    log,
	}
}

// Search looks up query and returns the first result.
//
// A blank query fails with ErrEmptyQuery before any network access. A page
// with no identifier fails with ErrNoResults. Cancellation of ctx fails with
// ErrCancelled. Anything else fails with ErrSearchFailed wrapping the cause.
func (s *Searcher) Search(ctx context.Context, query string) (Result, error) {
	if strings.TrimSpace(query) == "" {
		return Result{}, ErrEmptyQuery
	}

	cfg := s.Config.WithDefaults()
	w := s.Log
	if w == nil {
		w = io.Discard
	}

	searchURL, err := BuildSearchURL(cfg.SearchURL, query)
	if err != nil {
		return Result{}, &Error{Kind: KindSearchFailed, Err: err}
	}

	fmt.Fprintf(w, "fetching %s\n", searchURL)
	page, err := httputil.GetText(ctx, s.client(cfg), searchURL, cfg.UserAgent)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return Result{}, &Error{Kind: KindCancelled, Err: err}
		}
		return Result{}, &Error{Kind: KindSearchFailed, Err: err}
	}
	fmt.Fprintf(w, "fetched %d bytes\n", len(page))

	id, pattern, err := ExtractVideoID(page)
	if err != nil {
		return Result{}, err
	}
	fmt.Fprintf(w, "matched %s with pattern %d\n", id, pattern)

	return Result{
		Query:   query,
		VideoID: id,
		URL:     BuildVideoURL(cfg.VideoURL, id),
		Pattern: pattern,
	}, nil
}

// SearchURL is Search returning only the watch URL.
func (s *Searcher) SearchURL(ctx context.Context, query string) (string, error) {
	r, err := s.Search(ctx, query)
	if err != nil {
		return "", err
	}
	return r.URL, nil
}

func (s *Searcher) client(cfg types.SearchConfig) *http.Client {
	if s.Client != nil {
		return s.Client
	}
	return &http.Client{Timeout: cfg.Timeout}
}

// BuildSearchURL sets query as the form-encoded search_query parameter of
// base, keeping any parameters base already carries.
func BuildSearchURL(base, query string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parsing search endpoint: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("search endpoint %q is not an absolute URL", base)
	}
	params := u.Query()
	params.Set("search_query", query)
	u.RawQuery = params.Encode()
	return u.String(), nil
}

// BuildVideoURL returns the watch URL for id.
func BuildVideoURL(base, id string) string {
	return base + "?v=" + id
}
