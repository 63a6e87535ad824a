// Copyright 2026 The httpcall Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package content

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestType(t *testing.T) {
	t.Run("Name", func(t *testing.T) {
		assert.Equal(t, "Raw", Raw.Name())
		assert.Equal(t, "JSON", JSON.Name())
		assert.Equal(t, "XML", XML.Name())
		assert.Equal(t, "Form", Form.Name())
	})
	t.Run("MediaType", func(t *testing.T) {
		assert.Equal(t, "", Raw.MediaType())
		assert.Equal(t, "application/json", JSON.MediaType())
		assert.Equal(t, "text/xml", XML.MediaType())
		assert.Equal(t, "application/x-www-form-urlencoded", Form.MediaType())
	})
}

func TestText(t *testing.T) {
	b, ok := Text("ham")
	assert.True(t, ok)
	assert.Equal(t, []byte("ham"), b)

	b, ok = Text([]byte("eggs"))
	assert.True(t, ok)
	assert.Equal(t, []byte("eggs"), b)

	_, ok = Text(map[string]string{"ham": "eggs"})
	assert.False(t, ok)

	_, ok = Text(nil)
	assert.False(t, ok)
}

// Every strategy except Raw attaches an already-textual payload
// verbatim, keeping only the media type distinct.
func TestSerialize_TextualShortCircuit(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name      string
		typ       Type
		mediaType string
	}{
		{"JSON", JSON, "application/json"},
		{"XML", XML, "text/xml"},
		{"Form", Form, "application/x-www-form-urlencoded"},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			body, mediaType, err := Serialize(`{"pre":"serialized"}`, testCase.typ)
			require.NoError(t, err)
			assert.Equal(t, []byte(`{"pre":"serialized"}`), body)
			assert.Equal(t, testCase.mediaType, mediaType)

			body, mediaType, err = Serialize([]byte("raw=bytes"), testCase.typ)
			require.NoError(t, err)
			assert.Equal(t, []byte("raw=bytes"), body)
			assert.Equal(t, testCase.mediaType, mediaType)
		})
	}
}

func TestSerialize_JSON(t *testing.T) {
	body, mediaType, err := Serialize(map[string]interface{}{"name": "ham", "n": 2}, JSON)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"ham","n":2}`, string(body))
	assert.Equal(t, "application/json", mediaType)

	_, _, err = Serialize(func() {}, JSON)
	assert.Error(t, err)
}

type order struct {
	ID   int    `xml:"id"`
	Name string `xml:"name"`
}

// A structured XML payload is attached as the serialized XML text, not
// as the payload's plain-text representation.
func TestSerialize_XML(t *testing.T) {
	body, mediaType, err := Serialize(order{ID: 7, Name: "ham"}, XML)
	require.NoError(t, err)
	assert.Equal(t, "<order><id>7</id><name>ham</name></order>", string(body))
	assert.Equal(t, "text/xml", mediaType)

	_, _, err = Serialize(map[string]string{"no": "maps"}, XML)
	assert.Error(t, err)
}

func TestSerialize_Form(t *testing.T) {
	t.Run("values", func(t *testing.T) {
		body, mediaType, err := Serialize(url.Values{"ham": {"eggs", "spam"}}, Form)
		require.NoError(t, err)
		assert.Equal(t, "ham=eggs&ham=spam", string(body))
		assert.Equal(t, "application/x-www-form-urlencoded", mediaType)
	})
	t.Run("string map", func(t *testing.T) {
		body, _, err := Serialize(map[string]string{"b": "2", "a": "1"}, Form)
		require.NoError(t, err)
		assert.Equal(t, "a=1&b=2", string(body))
	})
	t.Run("nil values dropped", func(t *testing.T) {
		body, _, err := Serialize(map[string]interface{}{
			"name":  "ham",
			"count": 3,
			"gone":  nil,
		}, Form)
		require.NoError(t, err)
		assert.Equal(t, "count=3&name=ham", string(body))
	})
	t.Run("percent encoding", func(t *testing.T) {
		body, _, err := Serialize(map[string]interface{}{
			"q":   "ham & eggs",
			"k=v": "a+b",
		}, Form)
		require.NoError(t, err)
		assert.Equal(t, "k%3Dv=a%2Bb&q=ham+%26+eggs", string(body))
	})
	t.Run("bad type", func(t *testing.T) {
		_, _, err := Serialize(42, Form)
		assert.EqualError(t, err, badFormTypeMsg)
	})
}

func TestSerialize_Raw(t *testing.T) {
	body, mediaType, err := Serialize("plain text", Raw)
	require.NoError(t, err)
	assert.Equal(t, []byte("plain text"), body)
	assert.Equal(t, "", mediaType)

	body, mediaType, err = Serialize(1234, Raw)
	require.NoError(t, err)
	assert.Equal(t, []byte("1234"), body)
	assert.Equal(t, "", mediaType)
}

func TestSerialize_UnknownType(t *testing.T) {
	_, _, err := Serialize("x", Type(99))
	assert.Error(t, err)
}
