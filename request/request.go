// Copyright 2026 The httpcall Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"encoding/base64"
	"fmt"
	"net/http"
	urlpkg "net/url"
	"strings"
	"time"

	"golang.org/x/net/http/httpguts"

	"github.com/hublet/httpcall/content"
)

// A Request is a declarative description of a single HTTP request to be
// executed by a client.
//
// A Request describes everything the execution pipeline needs: the verb
// and target, the headers to attach, the payload and the strategy used
// to serialize it, how long to wait, whether to route through a proxy,
// and how to materialize the response (buffered text or streamed to a
// file).
//
// The field structure loosely mirrors the lower-level http.Request from
// net/http, with server-only and stream-oriented fields removed: the
// execution logic converts the Request into an http.Request at dispatch
// time.
type Request struct {
	// Method specifies the HTTP method (GET, POST, PUT, etc.). An empty
	// string means GET.
	Method string

	// URL specifies the URL to access.
	URL *urlpkg.URL

	// Proxy optionally specifies a proxy to route the request through.
	// When Proxy is non-nil the executing client is selected by proxy
	// address rather than by destination.
	Proxy *urlpkg.URL

	// Header contains the request header fields to be sent by the
	// client. Headers are attached to the transport request exactly as
	// stored here, without validation, so non-standard names and values
	// pass through untouched.
	//
	// Keys set via the Set method are canonicalized per HTTP semantics
	// and later writes to the same key replace earlier ones. Assign map
	// entries directly to preserve exact key spelling.
	Header http.Header

	// Payload is the optional request payload. It may be pre-serialized
	// text (string or []byte), which every content type attaches
	// verbatim, or a structured value serialized per ContentType.
	// A nil Payload means no request body is sent.
	Payload interface{}

	// ContentType selects the serialization strategy applied to Payload.
	// The zero value is content.Raw.
	ContentType content.Type

	// Timeout optionally bounds the execution of the request. A zero
	// Timeout means no explicit timeout: the request runs until it
	// completes or the caller's context is cancelled. A non-zero Timeout
	// adds a second cancellation source alongside the caller's context.
	Timeout time.Duration

	// DownloadPath optionally names a file the response body is streamed
	// into. When set, the body is written directly to disk (replacing
	// any existing file at the path) and the returned Response carries
	// no in-memory body.
	DownloadPath string

	// Charset optionally names the character encoding used to decode the
	// response body on the buffered-text materialization path, for
	// example "iso-8859-1". When empty the body bytes are taken as the
	// transport delivered them.
	Charset string
}

// New returns a new Request given a method and URL.
//
// The method must be a valid HTTP token; an empty method means GET. The
// remaining Request fields start at their zero values and may be set
// directly.
func New(method, url string) (*Request, error) {
	if method == "" {
		method = "GET"
	}
	if !validMethod(method) {
		return nil, fmt.Errorf("httpcall/request: invalid method %q", method)
	}
	u, err := urlpkg.Parse(url)
	if err != nil {
		return nil, err
	}
	u.Host = removeEmptyPort(u.Host)
	return &Request{
		Method: method,
		URL:    u,
		Header: make(http.Header),
	}, nil
}

// SetPayload sets the request payload and the content type used to
// serialize it.
func (r *Request) SetPayload(payload interface{}, t content.Type) {
	r.Payload = payload
	r.ContentType = t
}

// SetProxy parses rawurl and sets it as the request's proxy address.
func (r *Request) SetProxy(rawurl string) error {
	u, err := urlpkg.Parse(rawurl)
	if err != nil {
		return err
	}
	r.Proxy = u
	return nil
}

// AddCookie adds a cookie to the request. Per RFC 6265 section 5.4,
// AddCookie does not attach more than one Cookie header field. That
// means all cookies, if any, are written into the same line,
// separated by semicolons.
//
// AddCookie only sanitizes c's name and value, and does not sanitize
// a Cookie header already present in the request.
func (r *Request) AddCookie(c *http.Cookie) {
	c2 := &http.Cookie{Name: c.Name, Value: c.Value}
	s := c2.String()
	if h := r.Header.Get("Cookie"); h != "" {
		r.Header.Set("Cookie", h+"; "+s)
	} else {
		r.Header.Set("Cookie", s)
	}
}

// SetBasicAuth sets the request's Authorization header to use HTTP
// Basic Authentication with the provided username and password.
//
// With HTTP Basic Authentication the provided username and password
// are not encrypted.
func (r *Request) SetBasicAuth(username, password string) {
	r.Header.Set("Authorization", "Basic "+basicAuth(username, password))
}

// basicAuth is lifted verbatim from net/http/client.go.
//
// See 2 (end of page 4) https://www.ietf.org/rfc/rfc2617.txt
// "To receive authorization, the client sends the userid and password,
// separated by a single colon (":") character, within a base64
// encoded string in the credentials."
// It is not meant to be urlencoded.
func basicAuth(username, password string) string {
	auth := username + ":" + password
	return base64.StdEncoding.EncodeToString([]byte(auth))
}

// validMethod reports whether method is a valid token per RFC 7230
// section 3.2.6. The empty string is handled by the caller, which
// interprets it as GET.
func validMethod(method string) bool {
	return strings.IndexFunc(method, isNotToken) == -1
}

func isNotToken(r rune) bool {
	return !httpguts.IsTokenRune(r)
}

// hasPort is lifted verbatim from net/http/http.go
//
// Given a string of the form "host", "host:port", or "[ipv6::address]:port",
// return true if the string includes a port.
func hasPort(s string) bool { return strings.LastIndex(s, ":") > strings.LastIndex(s, "]") }

// removeEmptyPort is lifted verbatim from net/http/http.go
//
// removeEmptyPort strips the empty port in ":port" to ""
// as mandated by RFC 3986 Section 6.2.3.
func removeEmptyPort(host string) string {
	if hasPort(host) {
		return strings.TrimSuffix(host, ":")
	}
	return host
}
