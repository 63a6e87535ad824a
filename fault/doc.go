// Copyright 2026 The httpcall Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package fault defines the two typed failures request execution can
// produce, TransportError and TimeoutError, and classifies low-level
// causes so the executor can tell an internal timeout apart from a
// caller-requested cancellation.
//
// Every failed execution returns exactly one of the two error types.
// Both wrap the originating request description and the root cause, so
// there is never a failure without full diagnostic context.
package fault
