// Copyright 2026 The httpcall Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httpcall

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvents(t *testing.T) {
	assert.Len(t, eventNames, numEvents)
	assert.Len(t, Events(), numEvents)
	events := Events()
	assert.Equal(t, BeforeExecution, events[BeforeExecution])
	assert.Equal(t, BeforeDispatch, events[BeforeDispatch])
	assert.Equal(t, AfterExecution, events[AfterExecution])
}

func TestEvent_Name(t *testing.T) {
	assert.Equal(t, "BeforeExecution", BeforeExecution.Name())
	assert.Equal(t, "BeforeDispatch", BeforeDispatch.Name())
	assert.Equal(t, "AfterExecution", AfterExecution.Name())
}
