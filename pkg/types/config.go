// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the configuration shared by the yt-url CLI and the
// search stage.
package types

import "time"

// Fixed endpoints and request settings used when no override is configured.
const (
	DefaultSearchURL = "https://www.youtube.com/results"
	DefaultVideoURL  = "https://www.youtube.com/watch"
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) " +
		"Chrome/91.0.4472.124 Safari/537.36"
	DefaultTimeout = 10 * time.Second
)

// HTTPConfig holds HTTP settings for the single outbound request.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with the request. The results
	// page is served differently to non-browser agents, so the default is a
	// desktop browser string.
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// SearchConfig holds settings for the search stage.
type SearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// SearchURL is the results endpoint; the query is sent as search_query.
	SearchURL string `json:"search_url" yaml:"search_url"`

	// VideoURL is the watch-page endpoint; the identifier is sent as v.
	VideoURL string `json:"video_url" yaml:"video_url"`
}

// DefaultSearchConfig returns the configuration the CLI uses when nothing
// is overridden by flags, environment or config file.
func DefaultSearchConfig() SearchConfig {
	return SearchConfig{
		HTTPConfig: HTTPConfig{
			Timeout:   DefaultTimeout,
			UserAgent: DefaultUserAgent,
		},
		SearchURL: DefaultSearchURL,
		VideoURL:  DefaultVideoURL,
	}
}

// WithDefaults fills zero-valued fields from DefaultSearchConfig.
func (c SearchConfig) WithDefaults() SearchConfig {
	d := DefaultSearchConfig()
	if c.Timeout <= 0 {
		c.Timeout = d.Timeout
	}
	if c.UserAgent == "" {
		c.UserAgent = d.UserAgent
	}
	if c.SearchURL == "" {
		c.SearchURL = d.SearchURL
	}
	if c.VideoURL == "" {
		c.VideoURL = d.VideoURL
	}
	return c
}
