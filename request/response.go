// Copyright 2026 The httpcall Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"net/http"
)

// A Response is the uniform result of executing a Request.
//
// A Response always pairs 1:1 with the Request that produced it, so
// callers logging or retrying a failed call have the full originating
// description at hand. It carries the raw transport response metadata
// (status line, status code, headers) and, on the buffered-text
// materialization path, the fully decoded body text. On the download
// path the body was streamed directly to disk and Body is empty.
type Response struct {
	// Request is the request description this response was produced
	// for. It is never nil.
	Request *Request

	// Status is the HTTP status line of the transport response, for
	// example "200 OK".
	Status string

	// StatusCode is the HTTP status code of the transport response.
	StatusCode int

	// Header contains the response header fields as delivered by the
	// transport.
	Header http.Header

	// Body is the buffered response body text. It is empty when the
	// request set a DownloadPath, since the body was streamed to disk
	// rather than held in memory.
	Body string
}

// Succeeded reports whether the response status code is in the
// conventional HTTP success range, 200 through 299.
func (r *Response) Succeeded() bool {
	return r.StatusCode >= 200 && r.StatusCode <= 299
}

// HeaderValue returns the first value associated with the given response
// header name, or the empty string if the header is absent. It is safe
// to call on a response with a nil Header.
func (r *Response) HeaderValue(name string) string {
	if r.Header == nil {
		return ""
	}
	return r.Header.Get(name)
}
