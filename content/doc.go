// Copyright 2026 The httpcall Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package content selects and applies the serialization strategy that
// converts a request payload into a request body and media type tag.
//
// The strategy set is closed (Raw, JSON, XML, and Form), so dispatch is
// by enumerated Type rather than by interface. Payloads which are
// already text (string or []byte) short-circuit every strategy and are
// attached verbatim.
package content
