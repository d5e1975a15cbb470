// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import "regexp"

// idPatterns are tried in order. The first pattern with any match wins and
// its first match in document order is used, so an identifier from an ad or
// related-video block can beat the top organic result.
var idPatterns = []*regexp.Regexp{
	regexp.MustCompile(`"videoId":"([a-zA-Z0-9_-]{11})"`),
	regexp.MustCompile(`watch\?v=([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`/watch\?v=([a-zA-Z0-9_-]{11})`),
}

// ExtractVideoID returns the first video identifier in page and the index of
// the pattern that found it. It returns ErrNoResults when nothing matches.
func ExtractVideoID(page string) (string, int, error) {
	for i, re := range idPatterns {
		if m := re.FindStringSubmatch(page); m != nil {
			return m[1], i, nil
		}
	}
	return "", -1, ErrNoResults
}
