// Copyright 2026 The httpcall Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httpcall

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandlerGroup(t *testing.T) {
	var evts []string
	var exs []*Exchange
	h1 := &testHandler{seq: 1, evts: &evts, exs: &exs}
	h2 := &testHandler{seq: 2, evts: &evts, exs: &exs}
	g := &HandlerGroup{}
	t.Run("PushBack", func(t *testing.T) {
		assert.Panics(t, func() { g.PushBack(BeforeExecution, nil) })
		assert.Panics(t, func() { g.PushBack(Event(123), h1) })
		g.PushBack(BeforeExecution, h1)
		g.PushBack(BeforeExecution, h2)
		g.PushBack(AfterExecution, h1)
	})
	t.Run("run", func(t *testing.T) {
		ex1 := &Exchange{Mocked: true}
		ex2 := &Exchange{}
		assert.Empty(t, evts)
		assert.Empty(t, exs)
		g.run(BeforeDispatch, ex1)
		assert.Empty(t, evts)
		assert.Empty(t, exs)
		g.run(BeforeExecution, ex1)
		assert.Equal(t, []string{"1.BeforeExecution", "2.BeforeExecution"}, evts)
		assert.Equal(t, []*Exchange{ex1, ex1}, exs)
		evts = evts[:0]
		exs = exs[:0]
		g.run(AfterExecution, ex2)
		assert.Equal(t, []string{"1.AfterExecution"}, evts)
		assert.Equal(t, []*Exchange{ex2}, exs)
		evts = evts[:0]
		exs = exs[:0]
		g.run(BeforeExecution, ex2)
		assert.Equal(t, []string{"1.BeforeExecution", "2.BeforeExecution"}, evts)
		assert.Equal(t, []*Exchange{ex2, ex2}, exs)
	})
}

type testHandler struct {
	seq  int
	evts *[]string
	exs  *[]*Exchange
}

func (h *testHandler) Handle(evt Event, ex *Exchange) {
	*h.evts = append(*h.evts, fmt.Sprintf("%d.%s", h.seq, evt))
	*h.exs = append(*h.exs, ex)
}

func TestHandlerFunc(t *testing.T) {
	var _evt Event
	var _ex *Exchange
	var f = func(evt Event, ex *Exchange) {
		_evt = evt
		_ex = ex
	}
	h := HandlerFunc(f)
	ex := &Exchange{}
	h.Handle(BeforeDispatch, ex)

	assert.Equal(t, BeforeDispatch, _evt)
	assert.Same(t, ex, _ex)
}
