// Copyright 2026 The httpcall Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package content

import (
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"
)

const badFormTypeMsg = "httpcall/content: invalid form payload (use string, " +
	"[]byte, url.Values, map[string]string or map[string]interface{})"

// A Type selects the serialization strategy used to convert a request
// payload into a request body. The strategy set is closed: every request
// uses exactly one of the four types below.
type Type int

const (
	// Raw attaches the payload's plain text representation as the body
	// verbatim. No media type is negotiated.
	Raw Type = iota
	// JSON attaches textual payloads verbatim and serializes structured
	// payloads to JSON. Media type application/json.
	JSON
	// XML attaches textual payloads verbatim and serializes structured
	// payloads to XML via reflection. Media type text/xml.
	XML
	// Form attaches textual payloads verbatim and flattens structured
	// payloads into percent-encoded key/value pairs joined with "&".
	// Entries whose value is nil are dropped. Media type
	// application/x-www-form-urlencoded.
	Form
)

var typeNames = []string{
	"Raw",
	"JSON",
	"XML",
	"Form",
}

// Name returns the name of the content type.
func (t Type) Name() string {
	return typeNames[int(t)]
}

// String returns the name of the content type.
func (t Type) String() string {
	return t.Name()
}

// MediaType returns the media type tag attached alongside bodies
// serialized with this content type. Raw has no media type and returns
// the empty string.
func (t Type) MediaType() string {
	switch t {
	case JSON:
		return "application/json"
	case XML:
		return "text/xml"
	case Form:
		return "application/x-www-form-urlencoded"
	default:
		return ""
	}
}

// Text converts a textual payload to its byte representation. The second
// return value reports whether the payload was textual: only string and
// []byte payloads are considered already-serialized text; every other
// payload type reports false and must go through Serialize's structural
// path.
func Text(payload interface{}) ([]byte, bool) {
	switch x := payload.(type) {
	case string:
		return []byte(x), true
	case []byte:
		return x, true
	default:
		return nil, false
	}
}

// Serialize converts a request payload into a request body and a media
// type tag per the selected content type.
//
// For JSON, XML, and Form, a textual payload (string or []byte) is used
// verbatim as the body; a structured payload is serialized per the
// content type. For Raw, the payload's plain text representation is the
// body and the media type is empty.
//
// Body bytes are UTF-8 for all content types.
func Serialize(payload interface{}, t Type) (body []byte, mediaType string, err error) {
	switch t {
	case JSON:
		if b, ok := Text(payload); ok {
			return b, t.MediaType(), nil
		}
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, "", err
		}
		return b, t.MediaType(), nil
	case XML:
		if b, ok := Text(payload); ok {
			return b, t.MediaType(), nil
		}
		b, err := xml.Marshal(payload)
		if err != nil {
			return nil, "", err
		}
		return b, t.MediaType(), nil
	case Form:
		if b, ok := Text(payload); ok {
			return b, t.MediaType(), nil
		}
		b, err := encodeForm(payload)
		if err != nil {
			return nil, "", err
		}
		return b, t.MediaType(), nil
	case Raw:
		return plainText(payload), "", nil
	default:
		return nil, "", fmt.Errorf("httpcall/content: unknown content type %d", int(t))
	}
}

// plainText returns the plain text representation of a payload: textual
// payloads verbatim, everything else via the default format.
func plainText(payload interface{}) []byte {
	if b, ok := Text(payload); ok {
		return b
	}
	if payload == nil {
		return nil
	}
	return []byte(fmt.Sprintf("%v", payload))
}

// encodeForm flattens a structured payload into an ordered sequence of
// percent-encoded key/value pairs joined with "&". Map entries whose
// value is nil are dropped. Keys are emitted in sorted order so the
// encoding is deterministic.
func encodeForm(payload interface{}) ([]byte, error) {
	switch x := payload.(type) {
	case url.Values:
		return []byte(x.Encode()), nil
	case map[string]string:
		v := make(url.Values, len(x))
		for k, s := range x {
			v.Set(k, s)
		}
		return []byte(v.Encode()), nil
	case map[string]interface{}:
		keys := make([]string, 0, len(x))
		for k, v := range x {
			if v == nil {
				continue
			}
			keys = append(keys, k)
		}
		sort.Strings(keys)
		var b strings.Builder
		for i, k := range keys {
			if i > 0 {
				b.WriteByte('&')
			}
			b.WriteString(url.QueryEscape(k))
			b.WriteByte('=')
			b.WriteString(url.QueryEscape(string(plainText(x[k]))))
		}
		return []byte(b.String()), nil
	default:
		return nil, errors.New(badFormTypeMsg)
	}
}
