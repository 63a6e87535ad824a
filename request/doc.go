// Copyright 2026 The httpcall Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package request contains the core types Request (describes an HTTP
request declaratively) and Response (the uniform result of executing a
Request). These two types are fundamental to the execution pipeline.

The first core type is Request, a declarative description of a single
HTTP request. For those familiar with the Go standard HTTP library,
net/http, a Request looks like a stripped-down http.Request with all
server-side and stream-oriented fields removed, plus the execution
knobs the pipeline needs: a payload with a content-type selector, an
optional timeout, an optional proxy address, an optional download
target, and an optional response charset. Request fields are named and
typed consistently with http.Request wherever possible.

Create a request and hand it to an executor:

	r, err := request.New("GET", "https://example.com")
	...
	resp, err := executor.Execute(ctx, r)
	...

A request with a payload selects its serialization strategy via a
content.Type:

	r, err := request.New("POST", "https://example.com/upload")
	...
	r.SetPayload(map[string]interface{}{"name": "ham"}, content.JSON)

The second core type is Response, the uniform result wrapper returned
by every successful execution. A Response always references the Request
that produced it, and carries either the fully buffered body text or,
when the request named a download file, no body at all (the body bytes
went straight to disk).
*/
package request
