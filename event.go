// Copyright 2026 The httpcall Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httpcall

// An Event identifies the event type when installing or running a
// Handler. Install event handlers in an Executor to extend it with
// custom functionality.
type Event int

const (
	// BeforeExecution identifies the event that occurs before the
	// execution pipeline starts, on both the real and the mocked path.
	//
	// When Executor fires BeforeExecution, the exchange carries only the
	// request description.
	BeforeExecution Event = iota
	// BeforeDispatch identifies the event that occurs immediately before
	// the request is dispatched: on the real path, after a client has
	// been selected and the payload serialized; on the mocked path,
	// before the next canned response is dequeued.
	//
	// When Executor fires BeforeDispatch, the exchange's Mocked field
	// tells the two paths apart.
	BeforeDispatch
	// AfterExecution identifies the event that occurs after the
	// execution ends, regardless of whether it produced a response or a
	// failure.
	//
	// When Executor fires AfterExecution, exactly one of the exchange's
	// Response and Err fields is non-nil.
	AfterExecution
	// eventSentinel provides the total number of events typed as an
	// Event.
	eventSentinel

	// numEvents provides the total number of events typed as an int.
	numEvents = int(eventSentinel)
)

var eventNames = []string{
	"BeforeExecution",
	"BeforeDispatch",
	"AfterExecution",
}

// Events returns a slice containing all events which can occur in a
// request execution by Executor, in the order in which they would
// occur.
func Events() []Event {
	return []Event{
		BeforeExecution,
		BeforeDispatch,
		AfterExecution,
	}
}

// Name returns the name of the event.
func (evt Event) Name() string {
	return eventNames[int(evt)]
}

// String returns the name of the event.
func (evt Event) String() string {
	return evt.Name()
}
