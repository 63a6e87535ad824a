// Copyright 2026 The httpcall Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httpcall

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/hublet/httpcall/canned"
	"github.com/hublet/httpcall/content"
	"github.com/hublet/httpcall/fault"
	"github.com/hublet/httpcall/request"
)

var (
	template, _   = http.NewRequest("GET", "", nil)
	emptyHandlers = HandlerGroup{}
	nopLogger     = zerolog.Nop()
)

// An Exchange carries the state of one request execution through the
// event handler chains: the request description, the response once
// materialized, the classified failure if the execution failed, and
// whether the execution was served from a canned channel instead of the
// real transport.
//
// Handlers should treat the exchange fields as read-only; the execution
// logic owns them.
type Exchange struct {
	// Request is the request description being executed. It is never
	// nil.
	Request *request.Request

	// Response is the materialized response. It is nil until the
	// execution produces one, and stays nil if the execution fails.
	Response *request.Response

	// Err is the classified failure. It is nil unless the execution
	// failed, in which case it is a *fault.TimeoutError or a
	// *fault.TransportError.
	Err error

	// Mocked reports whether the execution is being served from a
	// canned response channel rather than the real transport.
	Mocked bool
}

// An Executor runs the request-execution pipeline: client selection,
// payload serialization, cancellation composition, dispatch, and
// response materialization. Its zero value is a valid configuration.
//
// The zero value executor uses DefaultProvider to obtain pooled
// transport clients, does no logging, and runs no event handlers.
//
// An Executor holds no per-request state of its own and is safe for
// concurrent use by multiple goroutines. Transport clients come from
// the ClientProvider on every execution and are shared across
// concurrent requests; everything request-local (headers, body,
// timeout) lives on the http.Request built per dispatch, never on the
// shared client.
type Executor struct {
	// Provider supplies pooled transport clients, keyed by destination
	// for direct requests and by proxy address for proxied ones.
	//
	// If Provider is nil, DefaultProvider is used.
	Provider ClientProvider

	// Logger receives structured debug events as executions move
	// through the pipeline. Each execution is tagged with a fresh
	// correlation id.
	//
	// If Logger is nil, nothing is logged.
	Logger *zerolog.Logger

	// Handlers allows custom handler chains to be invoked when
	// designated events occur during a request execution.
	//
	// If Handlers is nil, no custom handlers will be run.
	Handlers *HandlerGroup
}

// Execute runs the request described by r and returns the materialized
// response.
//
// If a canned response channel is installed on ctx, the real transport
// is bypassed entirely: no client is selected, no payload is
// serialized, and no timeout is composed. The next queued response is
// dequeued (strict FIFO) and materialized exactly as a transport
// response would be.
//
// Otherwise Execute selects a client from the provider (by proxy
// address if r.Proxy is set, by destination otherwise), builds the
// transport request with r's headers attached verbatim and r's payload
// serialized per its content type, and dispatches it under a
// cancellation derived from ctx plus, if r.Timeout is non-zero, an
// internal timer. Either source alone cancels the in-flight call.
//
// On success the response is materialized per r: buffered as text
// (optionally re-decoded using r.Charset) or, when r.DownloadPath is
// set, streamed directly to that file with no in-memory body.
//
// On failure the returned error is always one of two types. It is a
// *fault.TimeoutError when the internal timer fired while ctx itself
// was still live, and a *fault.TransportError for everything else,
// including caller-requested cancellation, network and I/O errors, and
// file-write errors on the download path. Both wrap r and the
// underlying cause. There is no partial success: Execute returns either
// a fully materialized response or a classified error, never both.
func (x *Executor) Execute(ctx context.Context, r *request.Request) (*request.Response, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if r == nil {
		panic("httpcall: nil request")
	}

	handlers := x.Handlers
	if handlers == nil {
		handlers = &emptyHandlers
	}

	log := x.logger().With().
		Str("execution_id", uuid.NewString()).
		Str("method", r.Method).
		Stringer("url", r.URL).
		Logger()

	ex := &Exchange{Request: r}
	handlers.run(BeforeExecution, ex)

	if ch, ok := canned.FromContext(ctx); ok {
		ex.Mocked = true
		handlers.run(BeforeDispatch, ex)
		log.Debug().Msg("serving canned response")
		resp, err := x.materializeOrFail(r, ch.Dequeue())
		return conclude(ex, handlers, &log, resp, err)
	}

	client := x.selectClient(r)

	// The internal timeout is just a second cancellation source layered
	// on the caller's context. Classification later hinges on which of
	// the two fired.
	callCtx := ctx
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	hreq, err := transportRequest(callCtx, r)
	if err != nil {
		return conclude(ex, handlers, &log, nil, &fault.TransportError{Request: r, Cause: err})
	}

	handlers.run(BeforeDispatch, ex)
	log.Debug().Msg("dispatching request")
	raw, err := client.Do(hreq)
	if err != nil {
		if fault.Canceled(err) && ctx.Err() == nil {
			return conclude(ex, handlers, &log, nil, &fault.TimeoutError{Request: r, Cause: err})
		}
		return conclude(ex, handlers, &log, nil, &fault.TransportError{Request: r, Cause: err})
	}

	resp, err := x.materializeOrFail(r, raw)
	return conclude(ex, handlers, &log, resp, err)
}

// CloseIdleConnections invokes the same method on the executor's
// ClientProvider.
//
// If the provider has no CloseIdleConnections method, this method does
// nothing. The default PoolingProvider closes idle connections on every
// pooled client.
func (x *Executor) CloseIdleConnections() {
	if ic, ok := x.provider().(IdleCloser); ok {
		ic.CloseIdleConnections()
	}
}

func (x *Executor) provider() ClientProvider {
	if x.Provider == nil {
		return DefaultProvider
	}

	return x.Provider
}

func (x *Executor) logger() *zerolog.Logger {
	if x.Logger == nil {
		return &nopLogger
	}

	return x.Logger
}

func (x *Executor) selectClient(r *request.Request) HTTPDoer {
	if r.Proxy != nil {
		return x.provider().ProxyClient(r.Proxy)
	}

	return x.provider().Client(r.URL)
}

func (x *Executor) materializeOrFail(r *request.Request, raw *http.Response) (*request.Response, error) {
	resp, err := materialize(r, raw)
	if err != nil {
		return nil, &fault.TransportError{Request: r, Cause: err}
	}
	return resp, nil
}

func conclude(ex *Exchange, handlers *HandlerGroup, log *zerolog.Logger, resp *request.Response, err error) (*request.Response, error) {
	ex.Response = resp
	ex.Err = err
	handlers.run(AfterExecution, ex)
	if err != nil {
		log.Debug().Err(err).Msg("execution failed")
		return nil, err
	}
	log.Debug().Int("status", resp.StatusCode).Msg("execution complete")
	return resp, nil
}

// transportRequest builds the lower-level http.Request for the given
// description. Method and URL are copied verbatim. Headers are attached
// exactly as stored on the description, without re-validating names or
// values, into a fresh map so the description itself is never mutated.
// The payload, if present, is serialized per the description's content
// type; the resulting media type is attached unless the description
// already carries a Content-Type header.
func transportRequest(ctx context.Context, r *request.Request) (*http.Request, error) {
	hr := template.WithContext(ctx)
	hr.Method = r.Method
	hr.URL = r.URL
	hr.Header = make(http.Header, len(r.Header)+1)
	for name, values := range r.Header {
		hr.Header[name] = values
	}

	if r.Payload == nil {
		return hr, nil
	}

	body, mediaType, err := content.Serialize(r.Payload, r.ContentType)
	if err != nil {
		return nil, err
	}
	hr.Body = io.NopCloser(bytes.NewReader(body))
	hr.GetBody = func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(body)), nil
	}
	hr.ContentLength = int64(len(body))
	if mediaType != "" && hr.Header.Get("Content-Type") == "" {
		hr.Header.Set("Content-Type", mediaType)
	}
	return hr, nil
}
