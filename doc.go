// Copyright 2026 The httpcall Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package httpcall provides a request-execution façade over a lower-level
HTTP transport: callers build a declarative request description and
invoke a single execution operation that handles client selection,
payload serialization, timeout composition, dispatch, and response
materialization, returning a uniform response wrapper or a typed
failure.

Create an Executor to begin making requests.

	x := &httpcall.Executor{}
	resp, err := x.Get(ctx, "https://www.example.com")
	...
	resp, err := x.Post(ctx, "https://www.example.com/upload",
		content.JSON, map[string]interface{}{"name": "ham"})
	...
	resp, err := x.PostForm(ctx, "http://example.com/form",
		url.Values{"key": {"Value"}, "id": {"123"}})

For full control over the request description, build it directly and
use Execute:

	r, err := request.New("PUT", "https://www.example.com/upload")
	...
	r.Header.Set("X-Request-Source", "batch")
	r.Timeout = 10 * time.Second
	r.SetPayload(payload, content.XML)
	resp, err := x.Execute(ctx, r)

For control over how transport clients are obtained and pooled, plug in
a custom ClientProvider:

	x := &httpcall.Executor{
		Provider: myProvider, // implements httpcall.ClientProvider
	}

To stream a large response body straight to disk instead of buffering
it, set a download path on the request (or use Download):

	resp, err := x.Download(ctx, "https://www.example.com/archive.tar.gz",
		"/tmp/archive.tar.gz")

For deterministic tests, install a canned response channel on the
context; the executor then consumes queued responses in FIFO order and
never touches the transport:

	ch := canned.NewChannel(resp1, resp2)
	ctx := canned.Install(context.Background(), ch)
	resp, err := x.Execute(ctx, r) // materializes resp1

Failed executions return one of two error types from package fault:
*fault.TimeoutError when the request's own timeout fired, and
*fault.TransportError for everything else, including caller-requested
cancellation. Both wrap the originating request description and the
root cause.

Package httpcall provides basic interfaces for each method of the
executor (Doer, Getter, Poster, FormPoster, Downloader, and
IdleCloser); a combined interface that composes all the basic methods
(Caller); and utility functions for working with a Doer (Inflate, Get,
Post, PostForm, and Download).
*/
package httpcall
