// This file is part of mapinput.
//
// mapinput is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// mapinput is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with mapinput.  If not, see <https://www.gnu.org/licenses/>.

// Package control turns raw input events from the userinput package into
// semantic user events and dispatches them to an ordered chain of handlers.
//
// The Processor type is the central state machine. For every raw event it
// updates the pointer, button and touch state and produces zero or more
// semantic events: clicks and double-clicks, the drag lifecycle and, when
// exactly two touch contacts are active, one of the two-finger gestures (pan,
// zoom, rotate, tilt).
//
// Each semantic event is offered to the handlers in the order they were
// added. A handler returns one of three Propagation values:
//
//	Propagate: continue to the next handler
//	Stop: no further handlers see the event
//	Consume: no further handlers see the event and, if the event is an
//	         EventDragStarted, the handler becomes the drag target
//
// EventDrag and EventDragEnded are only ever offered to the drag target. If
// no handler consumed the EventDragStarted then those events are dropped.
//
// The Processor is not safe for concurrent use. All raw events for one input
// stream must be passed to Handle() from a single goroutine. See
// userinput.Serializer for a way of arranging that.
//
// Click detection compares the time of the button release with the time of the
// button press. The time is taken from a Clock, which can be replaced for
// testing or for replaying recorded input.
package control
