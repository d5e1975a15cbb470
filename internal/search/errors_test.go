// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		err  *Error
		want string
	}{
		{ErrEmptyQuery, "search query cannot be empty"},
		{ErrNoResults, "no video results found for the given search query"},
		{ErrCancelled, "search cancelled by user"},
		{&Error{Kind: KindSearchFailed, Err: errors.New("dial tcp: connection refused")}, "search failed: dial tcp: connection refused"},
		{&Error{Kind: KindUnexpected, Err: errors.New("boom")}, "boom"},
	}
	for _, tt := range tests {
		t.Run(tt.err.Kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestErrorIsComparesKind(t *testing.T) {
	cause := errors.New("timeout")
	err := fmt.Errorf("outer: %w", &Error{Kind: KindSearchFailed, Err: cause})

	assert.ErrorIs(t, err, ErrSearchFailed)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrNoResults)
	assert.Equal(t, KindSearchFailed, KindOf(err))
	assert.Equal(t, KindUnexpected, KindOf(errors.New("plain")))
}
