// Copyright 2026 The httpcall Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httpcall

import (
	"context"
	"net/url"

	"github.com/hublet/httpcall/content"
	"github.com/hublet/httpcall/request"
)

// Doer is the interface that wraps the basic Execute method.
//
// Execute runs a request description and returns the materialized
// response (and error, if any). Executor implements the Doer interface,
// and any other Doer implementation must behave substantially the same
// as Executor.Execute.
//
// Any Doer can be converted into a Caller via the Inflate function.
type Doer interface {
	Execute(ctx context.Context, r *request.Request) (*request.Response, error)
}

// Getter is the interface that wraps the basic Get method.
//
// Get builds a request description for a GET to the specified URL,
// executes it, and returns the materialized response (and error, if
// any). Executor implements the Getter interface.
//
// Any Doer can be used to emulate a Getter via the Get function.
type Getter interface {
	Get(ctx context.Context, url string) (*request.Response, error)
}

// Poster is the interface that wraps the basic Post method.
//
// Post builds a request description for a POST to the specified URL
// carrying the given payload serialized per the given content type,
// executes it, and returns the materialized response (and error, if
// any). Executor implements the Poster interface.
//
// Any Doer can be used to emulate a Poster via the Post function.
type Poster interface {
	Post(ctx context.Context, url string, t content.Type, payload interface{}) (*request.Response, error)
}

// FormPoster is the interface that wraps the basic PostForm method.
//
// PostForm builds a request description for a form POST to the
// specified URL with data's keys and values URL-encoded as the body,
// executes it, and returns the materialized response (and error, if
// any). Executor implements the FormPoster interface.
//
// Any Doer can be used to emulate a FormPoster via the PostForm
// function.
type FormPoster interface {
	PostForm(ctx context.Context, url string, data url.Values) (*request.Response, error)
}

// Downloader is the interface that wraps the basic Download method.
//
// Download builds a request description for a GET to the specified URL
// whose response body is streamed directly into the file at path,
// executes it, and returns the bodyless response wrapper (and error, if
// any). Executor implements the Downloader interface.
//
// Any Doer can be used to emulate a Downloader via the Download
// function.
type Downloader interface {
	Download(ctx context.Context, url, path string) (*request.Response, error)
}

// IdleCloser is the interface that wraps the basic CloseIdleConnections
// method.
//
// If the underlying implementation supports it, CloseIdleConnections
// closes any connections which were previously established by earlier
// requests but are now sitting idle in a "keep-alive" state. It does
// not interrupt any connections currently in use.
//
// If the underlying implementation does not support this ability,
// CloseIdleConnections does nothing.
type IdleCloser interface {
	CloseIdleConnections()
}

// Caller is the interface that groups the basic Execute, Get, Post,
// PostForm, Download, and CloseIdleConnections methods.
//
// Any Doer can be converted into a Caller via the Inflate function.
type Caller interface {
	Doer
	Getter
	Poster
	FormPoster
	Downloader
	IdleCloser
}

// Get uses the specified Doer to issue a GET to the specified URL,
// using the same pipeline as d.Execute.
//
// To send custom headers or set a timeout, use request.New and
// d.Execute.
func Get(ctx context.Context, d Doer, url string) (*request.Response, error) {
	r, err := request.New("GET", url)
	if err != nil {
		return nil, err
	}
	return d.Execute(ctx, r)
}

// Post uses the specified Doer to issue a POST to the specified URL,
// with the payload serialized per the given content type, using the
// same pipeline as d.Execute.
//
// A textual payload (string or []byte) is attached verbatim; anything
// else is serialized per t.
//
// To send custom headers or set a timeout, use request.New and
// d.Execute.
func Post(ctx context.Context, d Doer, url string, t content.Type, payload interface{}) (*request.Response, error) {
	r, err := request.New("POST", url)
	if err != nil {
		return nil, err
	}
	r.SetPayload(payload, t)
	return d.Execute(ctx, r)
}

// PostForm uses the specified Doer to issue a POST to the specified
// URL, with data's keys and values URL-encoded as the request body.
//
// The Content-Type header is set to application/x-www-form-urlencoded.
// To send other headers, use request.New and d.Execute.
func PostForm(ctx context.Context, d Doer, url string, data url.Values) (*request.Response, error) {
	return Post(ctx, d, url, content.Form, data)
}

// Download uses the specified Doer to issue a GET to the specified URL
// and stream the response body directly into the file at path. The
// returned response wrapper carries no in-memory body.
//
// To send custom headers or set a timeout, use request.New with a
// DownloadPath and d.Execute.
func Download(ctx context.Context, d Doer, url, path string) (*request.Response, error) {
	r, err := request.New("GET", url)
	if err != nil {
		return nil, err
	}
	r.DownloadPath = path
	return d.Execute(ctx, r)
}

// Get issues a GET to the specified URL, using the same pipeline
// followed by Execute.
//
// To send custom headers or set a timeout, use request.New and
// Executor.Execute.
func (x *Executor) Get(ctx context.Context, url string) (*request.Response, error) {
	return Get(ctx, x, url)
}

// Post issues a POST to the specified URL with the payload serialized
// per the given content type, using the same pipeline followed by
// Execute.
//
// To send custom headers or set a timeout, use request.New and
// Executor.Execute.
func (x *Executor) Post(ctx context.Context, url string, t content.Type, payload interface{}) (*request.Response, error) {
	return Post(ctx, x, url, t, payload)
}

// PostForm issues a POST to the specified URL, with data's keys and
// values URL-encoded as the request body.
//
// The Content-Type header is set to application/x-www-form-urlencoded.
// To send other headers, use request.New and Executor.Execute.
func (x *Executor) PostForm(ctx context.Context, url string, data url.Values) (*request.Response, error) {
	return PostForm(ctx, x, url, data)
}

// Download issues a GET to the specified URL and streams the response
// body directly into the file at path.
//
// To send custom headers or set a timeout, use request.New with a
// DownloadPath and Executor.Execute.
func (x *Executor) Download(ctx context.Context, url, path string) (*request.Response, error) {
	return Download(ctx, x, url, path)
}

// Inflate converts any non-nil Doer into a Caller. This may be helpful
// for interop across library boundaries, i.e. if code that only has
// access to a Doer needs to call a function that requires a Caller.
func Inflate(d Doer) Caller {
	if d == nil {
		panic("httpcall: nil doer")
	}

	if c, ok := d.(Caller); ok {
		return c
	}

	return inflated{d}
}

type inflated struct {
	doer Doer
}

func (i inflated) Execute(ctx context.Context, r *request.Request) (*request.Response, error) {
	return i.doer.Execute(ctx, r)
}

func (i inflated) Get(ctx context.Context, url string) (*request.Response, error) {
	return Get(ctx, i.doer, url)
}

func (i inflated) Post(ctx context.Context, url string, t content.Type, payload interface{}) (*request.Response, error) {
	return Post(ctx, i.doer, url, t, payload)
}

func (i inflated) PostForm(ctx context.Context, url string, data url.Values) (*request.Response, error) {
	return PostForm(ctx, i.doer, url, data)
}

func (i inflated) Download(ctx context.Context, url, path string) (*request.Response, error) {
	return Download(ctx, i.doer, url, path)
}

func (i inflated) CloseIdleConnections() {
	if ic, ok := i.doer.(IdleCloser); ok {
		ic.CloseIdleConnections()
	}
}
