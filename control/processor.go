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

package control

import (
	"time"

	"github.com/tidemap/mapinput/geometry"
	"github.com/tidemap/mapinput/logger"
	"github.com/tidemap/mapinput/userinput"
)

// Fixed timing and distance values for pointer interactions. The drag
// threshold is a taxicab distance in screen units.
const (
	DragThreshold      = 3.0
	ClickTimeout       = 200 * time.Millisecond
	DoubleClickTimeout = 500 * time.Millisecond
)

// value of dragTarget when there is no drag in progress
const noDragTarget = -1

// Processor converts raw input events into semantic events and manages the
// list of handlers that the semantic events are sent to.
type Processor[M View] struct {
	handlers []Handler[M]
	clock    Clock

	pointerPosition        geometry.Point
	pointerPressedPosition geometry.Point

	touches touches
	gesture gestureController

	buttons userinput.ButtonsState

	lastPressed time.Time
	lastClick   time.Time

	// index into the handlers slice of the handler that consumed the most
	// recent EventDragStarted. noDragTarget if there is no drag in progress
	dragTarget int
}

// NewProcessor is the preferred method of initialisation for the Processor
// type. If clock is nil then SystemClock is used.
func NewProcessor[M View](clock Clock) *Processor[M] {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Processor[M]{
		clock:      clock,
		handlers:   make([]Handler[M], 0),
		touches:    make(touches, 0, 4),
		dragTarget: noDragTarget,
	}
}

// AddHandler adds a new handler to the end of the handler list. Handlers
// earlier in the list have first refusal of every event.
func (p *Processor[M]) AddHandler(h Handler[M]) {
	p.handlers = append(p.handlers, h)
}

// Dragging returns true if a handler currently owns a drag.
func (p *Processor[M]) Dragging() bool {
	return p.dragTarget != noDragTarget
}

// ActiveTouches returns the number of touch contacts currently active.
func (p *Processor[M]) ActiveTouches() int {
	return len(p.touches)
}

// GestureMode returns the mode of the most recent two-touch gesture.
func (p *Processor[M]) GestureMode() GestureMode {
	return p.gesture.mode
}

// Handle processes the raw event and dispatches the resulting semantic events
// to the handlers. The map is passed to each handler.
func (p *Processor[M]) Handle(raw userinput.Event, m M) {
	for _, ev := range p.process(raw) {
		p.dispatch(ev, m)
	}
}

// dispatch a single semantic event to the handler chain.
func (p *Processor[M]) dispatch(ev Event, m M) {
	switch ev := ev.(type) {
	case EventClick:
		if mp, ok := m.ScreenToMap(ev.Pointer.Position); ok {
			logger.Logf(logger.Allow, "control", "click position: %s (map %s)", ev.Pointer.Position, mp)
		} else {
			logger.Logf(logger.Allow, "control", "click position: %s (not on map)", ev.Pointer.Position)
		}
	case EventDrag:
		if p.dragTarget != noDragTarget {
			p.handlers[p.dragTarget].HandleUserEvent(ev, m)
		}
		return
	case EventDragEnded:
		if p.dragTarget != noDragTarget {
			p.handlers[p.dragTarget].HandleUserEvent(ev, m)
		}
		p.dragTarget = noDragTarget
		return
	}

	for i, h := range p.handlers {
		switch h.HandleUserEvent(ev, m) {
		case Propagate:
			continue
		case Consume:
			if _, ok := ev.(EventDragStarted); ok {
				p.dragTarget = i
			}
		}
		return
	}
}

// process the raw event and return the list of semantic events it gives rise
// to. a nil return means the raw event only changed internal state.
func (p *Processor[M]) process(raw userinput.Event) []Event {
	now := p.clock.Now()

	switch ev := raw.(type) {
	case userinput.EventButtonPressed:
		p.buttons.SetPressed(ev.Button)
		p.lastPressed = now
		p.pointerPressedPosition = p.pointerPosition

		return []Event{EventButtonPressed{Button: ev.Button, Pointer: p.pointerState()}}

	case userinput.EventButtonReleased:
		p.buttons.SetReleased(ev.Button)
		events := []Event{EventButtonReleased{Button: ev.Button, Pointer: p.pointerState()}}

		// a release outside of the click window does not end a drag
		if withinWindow(now, p.lastPressed, ClickTimeout) {
			events = append(events, EventClick{Button: ev.Button, Pointer: p.pointerState()})

			if withinWindow(now, p.lastClick, DoubleClickTimeout) {
				events = append(events, EventDoubleClick{Button: ev.Button, Pointer: p.pointerState()})
			}

			p.lastClick = now

			if p.Dragging() {
				events = append(events, EventDragEnded{Button: ev.Button, Pointer: p.pointerState()})
			}
		}

		return events

	case userinput.EventPointerMoved:
		prev := p.pointerPosition
		p.pointerPosition = ev.Position

		events := []Event{EventPointerMoved{Pointer: p.pointerState()}}
		if button, ok := p.buttons.SinglePressed(); ok {
			events = p.drag(events, button, ev.Position, p.pointerPressedPosition, prev)
		}

		return events

	case userinput.EventScroll:
		return []Event{EventScroll{Delta: ev.Delta, Pointer: p.pointerState()}}

	case userinput.EventTouchStart:
		// a stale contact with the same id should never exist but if it does
		// we don't want it stuck in the list forever
		p.touches.remove(ev.ID)

		p.touches = append(p.touches, touch{
			id:            ev.ID,
			startPosition: ev.Position,
			prevPosition:  ev.Position,
			startTime:     now,
		})

		if len(p.touches) == 2 {
			p.gesture.start(p.touches[0], p.touches[1])
		}

		return nil

	case userinput.EventTouchMove:
		idx := p.touches.find(ev.ID)
		if idx < 0 {
			return nil
		}

		events := []Event{}

		switch len(p.touches) {
		case 1:
			t := p.touches[idx]
			events = p.drag(events, userinput.MouseButtonOther, ev.Position, t.startPosition, t.prevPosition)
		case 2:
			events = append(events, p.gesture.update(p.touches[0], p.touches[1], ev)...)
		}

		p.touches[idx].prevPosition = ev.Position

		return events

	case userinput.EventTouchEnd:
		p.touches.remove(ev.ID)

		events := []Event{}
		if p.Dragging() && len(p.touches) == 0 {
			events = append(events, EventDragEnded{
				Button:  userinput.MouseButtonOther,
				Pointer: p.pointerStateAt(ev.Position),
			})
		}

		return events
	}

	logger.Logf(logger.Allow, "control", "unhandled raw event %T", raw)
	return nil
}

// drag appends EventDragStarted and EventDrag events as appropriate for a
// movement to position. origin is where the button was pressed (or the touch
// started) and prev is the previous position of the pointer (or touch).
func (p *Processor[M]) drag(events []Event, button userinput.MouseButton, position, origin, prev geometry.Point) []Event {
	dragging := p.Dragging()

	if !dragging && position.TaxicabDistance(origin) > DragThreshold {
		events = append(events, EventDragStarted{Button: button, Pointer: p.pointerStateAt(origin)})
		dragging = true
	}

	if dragging {
		events = append(events, EventDrag{
			Button:  button,
			Delta:   position.Sub(prev),
			Pointer: p.pointerStateAt(position),
		})
	}

	return events
}

func (p *Processor[M]) pointerState() PointerState {
	return p.pointerStateAt(p.pointerPosition)
}

func (p *Processor[M]) pointerStateAt(position geometry.Point) PointerState {
	return PointerState{
		Position: position,
		Buttons:  p.buttons,
	}
}
