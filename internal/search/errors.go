// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"errors"
	"fmt"
)

// Kind classifies a search failure.
type Kind int

const (
	// KindUnexpected covers failures not otherwise classified.
	KindUnexpected Kind = iota
	// KindEmptyQuery means the query was blank after trimming. No request was made.
	KindEmptyQuery
	// KindNoResults means the page was fetched but no identifier matched.
	KindNoResults
	// KindSearchFailed wraps a failure while building, fetching or decoding.
	KindSearchFailed
	// KindCancelled means the caller cancelled the request context.
	KindCancelled
)

func (k Kind) String() string {
	switch k {
	case KindEmptyQuery:
		return "EmptyQuery"
	case KindNoResults:
		return "NoResults"
	case KindSearchFailed:
		return "SearchFailed"
	case KindCancelled:
		return "Cancelled"
	default:
		return "Unexpected"
	}
}

// Error is the single error type returned by Searcher.
type Error struct {
	Kind Kind
	Err  error
}

// Sentinels for errors.Is. Only the Kind is compared.
var (
	ErrEmptyQuery   = &Error{Kind: KindEmptyQuery}
	ErrNoResults    = &Error{Kind: KindNoResults}
	ErrSearchFailed = &Error{Kind: KindSearchFailed}
	ErrCancelled    = &Error{Kind: KindCancelled}
	ErrUnexpected   = &Error{Kind: KindUnexpected}
)

func (e *Error) Error() string {
	switch e.Kind {
	case KindEmptyQuery:
		return "search query cannot be empty"
	case KindNoResults:
		return "no video results found for the given search query"
	case KindCancelled:
		return "search cancelled by user"
	case KindSearchFailed:
		if e.Err == nil {
			return "search failed"
		}
		return fmt.Sprintf("search failed: %v", e.Err)
	default:
		if e.Err == nil {
			return "unexpected error"
		}
		return e.Err.Error()
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error of the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// KindOf returns the Kind of err, or KindUnexpected when err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnexpected
}
