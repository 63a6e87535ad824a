// Copyright 2026 The httpcall Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package canned

import (
	"context"
	"net/http"
	"sync"
)

const (
	nilCtxMsg     = "httpcall/canned: nil context"
	nilChannelMsg = "httpcall/canned: nil channel"
	emptyMsg      = "httpcall/canned: dequeue on empty channel"
)

// A Channel is a FIFO queue of canned HTTP responses used to bypass the
// real transport during deterministic testing.
//
// While a Channel is installed on an execution context, every execution
// under that context consumes exactly one queued response instead of
// selecting a client and dispatching over the network. Responses are
// served strictly in the order they were enqueued.
//
// A Channel is safe for concurrent use by multiple goroutines: dequeues
// against the same queue are serialized, so two concurrent executions
// never consume the same entry.
type Channel struct {
	mu    sync.Mutex
	queue []*http.Response
}

// NewChannel returns a new Channel holding the given responses, queued
// in argument order.
func NewChannel(responses ...*http.Response) *Channel {
	c := &Channel{}
	c.queue = append(c.queue, responses...)
	return c
}

// Enqueue appends a response to the back of the queue.
func (c *Channel) Enqueue(resp *http.Response) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.queue = append(c.queue, resp)
}

// Dequeue removes and returns the response at the front of the queue.
//
// Calling Dequeue on an empty channel is a caller error and panics:
// a test that executes more requests than it queued responses for is
// broken, and continuing would hand the execution pipeline a nil
// response.
func (c *Channel) Dequeue() *http.Response {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.queue) == 0 {
		panic(emptyMsg)
	}
	resp := c.queue[0]
	c.queue = c.queue[1:]
	return resp
}

// Len returns the number of responses currently queued.
func (c *Channel) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.queue)
}

type contextKey struct{}

// Install returns a copy of ctx carrying the channel. The channel is
// visible to every execution made with the returned context or any
// context derived from it, and invisible everywhere else, so concurrent
// test contexts with separate channels never observe each other's
// queued responses.
func Install(ctx context.Context, c *Channel) context.Context {
	if ctx == nil {
		panic(nilCtxMsg)
	}
	if c == nil {
		panic(nilChannelMsg)
	}
	return context.WithValue(ctx, contextKey{}, c)
}

// FromContext returns the channel installed on ctx, if any.
func FromContext(ctx context.Context) (*Channel, bool) {
	c, ok := ctx.Value(contextKey{}).(*Channel)
	return c, ok
}
