// Copyright 2026 The httpcall Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fault

import (
	"context"
	"errors"
	"fmt"

	"github.com/hublet/httpcall/request"
)

// A TransportError is the generic failure produced by request
// execution. It covers everything that is not an internal timeout:
// network and I/O errors, caller-requested cancellation, serialization
// failures, and file-write errors on the download path.
//
// The error wraps the originating request description and the
// underlying cause, so callers can log or retry with full context.
type TransportError struct {
	// Request is the request description whose execution failed. It is
	// never nil.
	Request *request.Request

	// Cause is the underlying low-level failure. It is never nil.
	Cause error
}

// Error returns a description of the transport failure.
func (e *TransportError) Error() string {
	return fmt.Sprintf("httpcall: %s %s: %v", e.Request.Method, e.Request.URL, e.Cause)
}

// Unwrap returns the underlying cause of the transport failure.
func (e *TransportError) Unwrap() error {
	return e.Cause
}

// A TimeoutError is the failure produced when a request execution is
// cancelled by its own timeout rather than by the caller: the request
// set a non-zero timeout, the timer fired, and the caller-supplied
// context had not itself been cancelled.
//
// Like TransportError, it wraps the originating request description and
// the underlying cause.
type TimeoutError struct {
	// Request is the request description whose execution timed out. It
	// is never nil.
	Request *request.Request

	// Cause is the underlying cancellation error. It is never nil.
	Cause error
}

// Error returns a description of the timeout failure.
func (e *TimeoutError) Error() string {
	return fmt.Sprintf("httpcall: %s %s: timed out after %s: %v",
		e.Request.Method, e.Request.URL, e.Request.Timeout, e.Cause)
}

// Unwrap returns the underlying cause of the timeout failure.
func (e *TimeoutError) Unwrap() error {
	return e.Cause
}

// Timeout reports true. It lets TimeoutError satisfy the timeout
// convention shared by net.Error and url.Error, so generic callers can
// detect the timeout without referencing this package.
func (e *TimeoutError) Timeout() bool {
	return true
}

// Canceled reports whether err is a cancellation-class failure, meaning
// it was produced by a cancelled or expired context reaching the
// in-flight transport call.
//
// Canceled looks at wrapped cause errors contained within err, not just
// err itself: an error is cancellation-class if it or any of its causes
// is context.Canceled or context.DeadlineExceeded, or has a Timeout()
// function that reports true. The last case matches the url.Error values
// the standard HTTP client returns when a request context expires
// mid-flight.
func Canceled(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var ht hasTimeout
	return errors.As(err, &ht) && ht.Timeout()
}

type hasTimeout interface {
	Timeout() bool
}
