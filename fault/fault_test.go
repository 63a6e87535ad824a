// Copyright 2026 The httpcall Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fault

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hublet/httpcall/request"
)

func TestTransportError(t *testing.T) {
	r, err := request.New("POST", "http://example.com/upload")
	require.NoError(t, err)
	cause := errors.New("connection refused")
	te := &TransportError{Request: r, Cause: cause}

	assert.Equal(t, "httpcall: POST http://example.com/upload: connection refused", te.Error())
	assert.Same(t, cause, te.Unwrap())
	assert.True(t, errors.Is(te, cause))
}

func TestTimeoutError(t *testing.T) {
	r, err := request.New("GET", "http://example.com")
	require.NoError(t, err)
	r.Timeout = 250 * time.Millisecond
	te := &TimeoutError{Request: r, Cause: context.DeadlineExceeded}

	assert.Equal(t, "httpcall: GET http://example.com: timed out after 250ms: context deadline exceeded", te.Error())
	assert.Equal(t, context.DeadlineExceeded, te.Unwrap())
	assert.True(t, errors.Is(te, context.DeadlineExceeded))
	assert.True(t, te.Timeout())
}

func TestCanceled(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name     string
		err      error
		canceled bool
	}{
		{"nil", nil, false},
		{"plain error", errors.New("boom"), false},
		{"context canceled", context.Canceled, true},
		{"context deadline", context.DeadlineExceeded, true},
		{"wrapped cancel", fmt.Errorf("dispatch: %w", context.Canceled), true},
		{"url error timeout", &url.Error{Op: "Get", URL: "http://example.com", Err: context.DeadlineExceeded}, true},
		{"timeout interface", timeoutErr{timeout: true}, true},
		{"non-timeout interface", timeoutErr{timeout: false}, false},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.canceled, Canceled(testCase.err))
		})
	}
}

type timeoutErr struct {
	timeout bool
}

func (e timeoutErr) Error() string { return "timeoutErr" }

func (e timeoutErr) Timeout() bool { return e.timeout }
