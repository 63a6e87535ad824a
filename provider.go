// Copyright 2026 The httpcall Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httpcall

import (
	"net/http"
	"net/url"
	"sync"
)

// An HTTPDoer implements a Do method in the same manner as the GoLang
// standard library http.Client from the net/http package.
type HTTPDoer interface {
	// Do sends an HTTP request and returns an HTTP response following
	// policy (such as redirects, cookies, auth) configured on the
	// HTTPDoer.
	//
	// The Do method must follow the contract documented on the GoLang
	// standard library http.Client from the net/http package.
	Do(r *http.Request) (*http.Response, error)
}

// A ClientProvider supplies the transport clients used to dispatch
// requests. The Executor asks the provider for a client on every
// execution and never caches one itself, so pooling and reuse are
// entirely the provider's concern: identical keys should return pooled,
// reusable clients.
//
// Implementations of ClientProvider must be safe for concurrent use by
// multiple goroutines, and the clients they return must not be mutated
// per-request.
type ClientProvider interface {
	// Client returns a client for direct dispatch to the given target
	// URL. The lookup must be deterministic for identical destination
	// keys.
	Client(target *url.URL) HTTPDoer

	// ProxyClient returns a client that routes requests through the
	// given proxy. The lookup must be deterministic for identical proxy
	// addresses.
	ProxyClient(proxy *url.URL) HTTPDoer
}

// DefaultProvider is the ClientProvider used by an Executor whose
// Provider field is nil.
var DefaultProvider ClientProvider = &PoolingProvider{}

// A PoolingProvider is the default ClientProvider. It keeps one
// http.Client per destination key (scheme://host) and one per proxy
// address, so repeated requests to the same destination or through the
// same proxy reuse the same client and its cached TCP connections.
//
// The zero value is a valid, empty pool. PoolingProvider is safe for
// concurrent use by multiple goroutines.
type PoolingProvider struct {
	mu      sync.Mutex
	direct  map[string]*http.Client
	proxied map[string]*http.Client
}

// Client returns the pooled client for the target's scheme://host key,
// creating it on first use.
func (p *PoolingProvider) Client(target *url.URL) HTTPDoer {
	key := target.Scheme + "://" + target.Host
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.direct == nil {
		p.direct = make(map[string]*http.Client)
	}
	cl, ok := p.direct[key]
	if !ok {
		cl = &http.Client{}
		p.direct[key] = cl
	}
	return cl
}

// ProxyClient returns the pooled client routing through the given
// proxy, creating it on first use.
func (p *PoolingProvider) ProxyClient(proxy *url.URL) HTTPDoer {
	key := proxy.String()
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.proxied == nil {
		p.proxied = make(map[string]*http.Client)
	}
	cl, ok := p.proxied[key]
	if !ok {
		cl = &http.Client{
			Transport: &http.Transport{
				Proxy: http.ProxyURL(proxy),
			},
		}
		p.proxied[key] = cl
	}
	return cl
}

// CloseIdleConnections closes idle connections on every client in the
// pool. In-flight requests are not interrupted.
func (p *PoolingProvider) CloseIdleConnections() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, cl := range p.direct {
		cl.CloseIdleConnections()
	}
	for _, cl := range p.proxied {
		cl.CloseIdleConnections()
	}
}
