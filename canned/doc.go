// Copyright 2026 The httpcall Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package canned provides a context-scoped FIFO queue of pre-built HTTP
// responses that replaces the real transport during testing.
//
// Install a channel on a context and every execution under that context
// skips client selection, serialization, and timeout composition
// entirely, consuming the next queued response instead:
//
//	ch := canned.NewChannel(
//		&http.Response{StatusCode: 200, Body: io.NopCloser(strings.NewReader("first"))},
//		&http.Response{StatusCode: 404, Body: io.NopCloser(strings.NewReader("second"))},
//	)
//	ctx := canned.Install(context.Background(), ch)
//	resp, err := executor.Execute(ctx, r) // served "first", no network
//
// The binding travels with the context, so work spawned from a test's
// context sees the test's channel while parallel tests with their own
// contexts stay isolated.
package canned
