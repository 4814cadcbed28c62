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
	"math"
	"testing"
	"time"

	"github.com/tidemap/mapinput/geometry"
	"github.com/tidemap/mapinput/test"
	"github.com/tidemap/mapinput/userinput"
)

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time {
	return c.now
}

func (c *testClock) advance(d time.Duration) {
	c.now = c.now.Add(d)
}

type testView struct{}

func (_ testView) ScreenToMap(p geometry.Point) (geometry.Point, bool) {
	return p, true
}

func newTestProcessor() (*Processor[testView], *testClock) {
	clk := &testClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	return NewProcessor[testView](clk), clk
}

func pt(x, y float64) geometry.Point {
	return geometry.Point{X: x, Y: y}
}

func eventStrings(events []Event) []string {
	s := make([]string, len(events))
	for i := range events {
		s[i] = events[i].String()
	}
	return s
}

func countType[T Event](events []Event) int {
	n := 0
	for _, ev := range events {
		if _, ok := ev.(T); ok {
			n++
		}
	}
	return n
}

var (
	pressLeft   = userinput.EventButtonPressed{Button: userinput.MouseButtonLeft}
	releaseLeft = userinput.EventButtonReleased{Button: userinput.MouseButtonLeft}
)

func TestClick(t *testing.T) {
	p, clk := newTestProcessor()

	events := p.process(pressLeft)
	test.DemandEquality(t, len(events), 1)
	test.ExpectEquality(t, events[0].(EventButtonPressed).Button, userinput.MouseButtonLeft)
	test.ExpectSuccess(t, events[0].(EventButtonPressed).Pointer.Buttons.IsPressed(userinput.MouseButtonLeft))

	clk.advance(50 * time.Millisecond)
	events = p.process(releaseLeft)
	test.DemandEquality(t, len(events), 2)
	_, ok := events[0].(EventButtonReleased)
	test.ExpectSuccess(t, ok)
	click, ok := events[1].(EventClick)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, click.Button, userinput.MouseButtonLeft)
	test.ExpectEquality(t, click.Pointer.Buttons, userinput.ButtonsState(0))
}

func TestClickTimeout(t *testing.T) {
	p, clk := newTestProcessor()

	p.process(pressLeft)
	clk.advance(ClickTimeout - time.Millisecond)
	test.ExpectEquality(t, countType[EventClick](p.process(releaseLeft)), 1)

	p.process(pressLeft)
	clk.advance(ClickTimeout)
	events := p.process(releaseLeft)
	test.ExpectEquality(t, countType[EventClick](events), 0)
	test.ExpectEquality(t, countType[EventButtonReleased](events), 1)
}

func TestDoubleClick(t *testing.T) {
	p, clk := newTestProcessor()

	// first click. no double click because there is no previous click
	p.process(pressLeft)
	clk.advance(50 * time.Millisecond)
	events := p.process(releaseLeft)
	test.ExpectEquality(t, countType[EventDoubleClick](events), 0)

	// second click 300ms after the first
	clk.advance(250 * time.Millisecond)
	p.process(pressLeft)
	clk.advance(50 * time.Millisecond)
	events = p.process(releaseLeft)
	test.DemandEquality(t, len(events), 3)
	test.ExpectEquality(t, countType[EventClick](events), 1)
	dbl, ok := events[2].(EventDoubleClick)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, dbl.Button, userinput.MouseButtonLeft)

	// third click exactly DoubleClickTimeout after the second
	clk.advance(DoubleClickTimeout - 50*time.Millisecond)
	p.process(pressLeft)
	clk.advance(50 * time.Millisecond)
	events = p.process(releaseLeft)
	test.ExpectEquality(t, countType[EventClick](events), 1)
	test.ExpectEquality(t, countType[EventDoubleClick](events), 0)
}

func TestTimeBeforeReference(t *testing.T) {
	p, clk := newTestProcessor()

	p.process(pressLeft)
	clk.advance(-10 * time.Millisecond)
	events := p.process(releaseLeft)
	test.ExpectEquality(t, len(events), 1)
	test.ExpectEquality(t, countType[EventClick](events), 0)
}

func TestDragStart(t *testing.T) {
	p, _ := newTestProcessor()

	p.process(userinput.EventPointerMoved{Position: pt(0, 0)})
	p.process(pressLeft)

	events := p.process(userinput.EventPointerMoved{Position: pt(10, 0)})
	test.DemandEquality(t, len(events), 3)

	moved, ok := events[0].(EventPointerMoved)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, moved.Pointer.Position, pt(10, 0))

	started, ok := events[1].(EventDragStarted)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, started.Button, userinput.MouseButtonLeft)
	test.ExpectEquality(t, started.Pointer.Position, pt(0, 0))

	drag, ok := events[2].(EventDrag)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, drag.Button, userinput.MouseButtonLeft)
	test.ExpectEquality(t, drag.Delta, geometry.Vector{X: 10, Y: 0})
	test.ExpectEquality(t, drag.Pointer.Position, pt(10, 0))
}

func TestDragThreshold(t *testing.T) {
	p, _ := newTestProcessor()

	p.process(userinput.EventPointerMoved{Position: pt(100, 100)})
	p.process(pressLeft)

	// taxicab distances of exactly the threshold never start a drag
	for _, pos := range []geometry.Point{pt(103, 100), pt(102, 101), pt(100, 97), pt(98.5, 101.5)} {
		events := p.process(userinput.EventPointerMoved{Position: pos})
		test.ExpectEquality(t, len(events), 1, pos)
		test.ExpectEquality(t, countType[EventDragStarted](events), 0, pos)
	}

	events := p.process(userinput.EventPointerMoved{Position: pt(102, 101.5)})
	test.ExpectEquality(t, countType[EventDragStarted](events), 1)
	test.ExpectEquality(t, countType[EventDrag](events), 1)
}

func TestNoDragWithTwoButtons(t *testing.T) {
	p, _ := newTestProcessor()

	p.process(pressLeft)
	p.process(userinput.EventButtonPressed{Button: userinput.MouseButtonRight})
	events := p.process(userinput.EventPointerMoved{Position: pt(50, 50)})
	test.ExpectEquality(t, len(events), 1)

	// without a button pressed there is no drag either
	p.process(releaseLeft)
	p.process(userinput.EventButtonReleased{Button: userinput.MouseButtonRight})
	events = p.process(userinput.EventPointerMoved{Position: pt(150, 50)})
	test.ExpectEquality(t, len(events), 1)
}

func TestDragContinues(t *testing.T) {
	p, _ := newTestProcessor()

	p.process(pressLeft)
	p.process(userinput.EventPointerMoved{Position: pt(10, 0)})

	// pretend the first handler consumed the drag start
	p.dragTarget = 0

	events := p.process(userinput.EventPointerMoved{Position: pt(11, 1)})
	test.DemandEquality(t, len(events), 2)
	drag, ok := events[1].(EventDrag)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, drag.Delta, geometry.Vector{X: 1, Y: 1})

	// small movements are still drags once the drag has started
	events = p.process(userinput.EventPointerMoved{Position: pt(11, 1.5)})
	test.ExpectEquality(t, countType[EventDrag](events), 1)
	test.ExpectEquality(t, countType[EventDragStarted](events), 0)
}

func TestDragEndedOnQuickRelease(t *testing.T) {
	p, clk := newTestProcessor()

	p.process(pressLeft)
	p.process(userinput.EventPointerMoved{Position: pt(10, 0)})
	p.dragTarget = 0

	clk.advance(100 * time.Millisecond)
	events := p.process(releaseLeft)
	test.DemandEquality(t, len(events), 3)
	ended, ok := events[2].(EventDragEnded)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, ended.Button, userinput.MouseButtonLeft)
	test.ExpectEquality(t, ended.Pointer.Position, pt(10, 0))
}

func TestNoDragEndedOnSlowRelease(t *testing.T) {
	p, clk := newTestProcessor()

	p.process(pressLeft)
	p.process(userinput.EventPointerMoved{Position: pt(10, 0)})
	p.dragTarget = 0

	clk.advance(ClickTimeout + 100*time.Millisecond)
	events := p.process(releaseLeft)
	test.DemandEquality(t, len(events), 1)
	test.ExpectEquality(t, eventStrings(events)[0], "ButtonReleased(Left, (10.00, 0.00) {})")
	test.ExpectSuccess(t, p.Dragging())
}

func TestScroll(t *testing.T) {
	p, _ := newTestProcessor()

	p.process(userinput.EventPointerMoved{Position: pt(5, 6)})
	events := p.process(userinput.EventScroll{Delta: geometry.Vector{X: 0, Y: -1}})
	test.DemandEquality(t, len(events), 1)
	scroll, ok := events[0].(EventScroll)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, scroll.Delta, geometry.Vector{X: 0, Y: -1})
	test.ExpectEquality(t, scroll.Pointer.Position, pt(5, 6))
}

func TestTouchStartProducesNothing(t *testing.T) {
	p, _ := newTestProcessor()

	events := p.process(userinput.EventTouchStart{Touch: userinput.Touch{ID: 1, Position: pt(0, 0)}})
	test.ExpectEquality(t, len(events), 0)
	test.ExpectEquality(t, p.ActiveTouches(), 1)

	// a duplicate start replaces the stale contact
	p.process(userinput.EventTouchStart{Touch: userinput.Touch{ID: 1, Position: pt(20, 20)}})
	test.DemandEquality(t, p.ActiveTouches(), 1)
	test.ExpectEquality(t, p.touches[0].startPosition, pt(20, 20))
	test.ExpectEquality(t, p.touches[0].prevPosition, pt(20, 20))
}

func TestUnknownTouch(t *testing.T) {
	p, _ := newTestProcessor()

	p.process(userinput.EventTouchStart{Touch: userinput.Touch{ID: 1, Position: pt(0, 0)}})
	p.process(userinput.EventTouchStart{Touch: userinput.Touch{ID: 2, Position: pt(100, 0)}})
	before := append(touches{}, p.touches...)
	gesture := p.gesture

	events := p.process(userinput.EventTouchMove{Touch: userinput.Touch{ID: 99, Position: pt(500, 500)}})
	test.ExpectEquality(t, len(events), 0)
	test.ExpectSuccess(t, events == nil)
	test.DemandEquality(t, len(p.touches), len(before))
	for i := range before {
		test.ExpectEquality(t, p.touches[i], before[i])
	}
	test.ExpectEquality(t, p.gesture, gesture)

	// ending an unknown touch is harmless
	events = p.process(userinput.EventTouchEnd{Touch: userinput.Touch{ID: 99, Position: pt(500, 500)}})
	test.ExpectEquality(t, len(events), 0)
	test.ExpectEquality(t, p.ActiveTouches(), 2)
}

func TestSingleTouchDrag(t *testing.T) {
	p, _ := newTestProcessor()

	p.process(userinput.EventTouchStart{Touch: userinput.Touch{ID: 7, Position: pt(10, 10)}})

	events := p.process(userinput.EventTouchMove{Touch: userinput.Touch{ID: 7, Position: pt(11, 11)}})
	test.ExpectEquality(t, len(events), 0)

	events = p.process(userinput.EventTouchMove{Touch: userinput.Touch{ID: 7, Position: pt(14, 11)}})
	test.DemandEquality(t, len(events), 2)
	started := events[0].(EventDragStarted)
	test.ExpectEquality(t, started.Button, userinput.MouseButtonOther)
	test.ExpectEquality(t, started.Pointer.Position, pt(10, 10))
	drag := events[1].(EventDrag)
	test.ExpectEquality(t, drag.Button, userinput.MouseButtonOther)
	test.ExpectEquality(t, drag.Delta, geometry.Vector{X: 3, Y: 0})
	test.ExpectEquality(t, drag.Pointer.Position, pt(14, 11))

	// touch end without a drag target produces nothing
	events = p.process(userinput.EventTouchEnd{Touch: userinput.Touch{ID: 7, Position: pt(14, 11)}})
	test.ExpectEquality(t, len(events), 0)
	test.ExpectEquality(t, p.ActiveTouches(), 0)
}

func TestTouchEndEndsDrag(t *testing.T) {
	p, _ := newTestProcessor()

	p.process(userinput.EventTouchStart{Touch: userinput.Touch{ID: 7, Position: pt(10, 10)}})
	p.process(userinput.EventTouchMove{Touch: userinput.Touch{ID: 7, Position: pt(30, 10)}})
	p.dragTarget = 0

	events := p.process(userinput.EventTouchEnd{Touch: userinput.Touch{ID: 7, Position: pt(31, 12)}})
	test.DemandEquality(t, len(events), 1)
	ended := events[0].(EventDragEnded)
	test.ExpectEquality(t, ended.Button, userinput.MouseButtonOther)
	test.ExpectEquality(t, ended.Pointer.Position, pt(31, 12))
}

func TestGestureZoom(t *testing.T) {
	p, _ := newTestProcessor()

	p.process(userinput.EventTouchStart{Touch: userinput.Touch{ID: 1, Position: pt(0, 0)}})
	p.process(userinput.EventTouchStart{Touch: userinput.Touch{ID: 2, Position: pt(100, 0)}})

	test.ExpectApproximate(t, p.gesture.distanceStart, 100, 1e-9)
	test.ExpectEquality(t, p.gesture.midpointStart, pt(50, 0))
	test.ExpectEquality(t, p.GestureMode(), GesturePan)

	events := p.process(userinput.EventTouchMove{Touch: userinput.Touch{ID: 1, Position: pt(0, 130)}})
	test.ExpectEquality(t, p.GestureMode(), GestureZoom)
	test.DemandEquality(t, len(events), 1)
	zoom, ok := events[0].(EventZoom)
	test.DemandSuccess(t, ok)
	test.ExpectApproximate(t, zoom.Factor, 100/math.Hypot(100, 130), 1e-9)
	test.ExpectEquality(t, zoom.Anchor, pt(100, 0))

	// the moving contact's previous position has been updated
	test.ExpectEquality(t, p.touches[0].prevPosition, pt(0, 130))
}

func TestGesturePan(t *testing.T) {
	p, _ := newTestProcessor()

	p.process(userinput.EventTouchStart{Touch: userinput.Touch{ID: 1, Position: pt(0, 0)}})
	p.process(userinput.EventTouchStart{Touch: userinput.Touch{ID: 2, Position: pt(100, 0)}})

	// both fingers move right by 10. each movement is half that on the
	// midpoint
	events := p.process(userinput.EventTouchMove{Touch: userinput.Touch{ID: 1, Position: pt(10, 0)}})
	test.DemandEquality(t, len(events), 1)
	pan := events[0].(EventPan)
	test.ExpectEquality(t, pan.Delta, geometry.Vector{X: 5, Y: 0})
	test.ExpectEquality(t, pan.Midpoint, pt(55, 0))

	events = p.process(userinput.EventTouchMove{Touch: userinput.Touch{ID: 2, Position: pt(110, 0)}})
	test.DemandEquality(t, len(events), 1)
	pan = events[0].(EventPan)
	test.ExpectEquality(t, pan.Delta, geometry.Vector{X: 5, Y: 0})
	test.ExpectEquality(t, pan.Midpoint, pt(60, 0))
	test.ExpectEquality(t, p.GestureMode(), GesturePan)
}

func TestGestureTilt(t *testing.T) {
	p, _ := newTestProcessor()

	p.process(userinput.EventTouchStart{Touch: userinput.Touch{ID: 1, Position: pt(100, 200)}})
	p.process(userinput.EventTouchStart{Touch: userinput.Touch{ID: 2, Position: pt(0, 200)}})

	// move both fingers up in small alternating steps so that the angle
	// between them never moves far enough to trigger a rotate. after twelve
	// steps the midpoint has moved by exactly the tilt threshold, which is not
	// enough to leave pan mode
	for i := 1; i <= 12; i++ {
		y := 200 - 5*float64(i)
		events := p.process(userinput.EventTouchMove{Touch: userinput.Touch{ID: 1, Position: pt(100, y)}})
		test.ExpectEquality(t, countType[EventPan](events), 1, i)
		events = p.process(userinput.EventTouchMove{Touch: userinput.Touch{ID: 2, Position: pt(0, y)}})
		test.ExpectEquality(t, countType[EventPan](events), 1, i)
	}
	test.ExpectEquality(t, p.GestureMode(), GesturePan)

	events := p.process(userinput.EventTouchMove{Touch: userinput.Touch{ID: 1, Position: pt(100, 135)}})
	test.ExpectEquality(t, p.GestureMode(), GestureTilt)
	test.DemandEquality(t, len(events), 1)
	rot := events[0].(EventRotate)
	test.ExpectApproximate(t, rot.Tilt, -2.5, 1e-9)
	test.ExpectEquality(t, rot.Rotation, 0.0)
}

func TestGestureRotate(t *testing.T) {
	p, _ := newTestProcessor()

	p.process(userinput.EventTouchStart{Touch: userinput.Touch{ID: 1, Position: pt(100, 0)}})
	p.process(userinput.EventTouchStart{Touch: userinput.Touch{ID: 2, Position: pt(0, 0)}})

	// moving the second contact to (0, 20) changes the angle by about 0.197
	// radians without changing the distance by more than the zoom threshold
	// or the midpoint by more than the tilt threshold
	events := p.process(userinput.EventTouchMove{Touch: userinput.Touch{ID: 2, Position: pt(0, 20)}})
	test.ExpectEquality(t, p.GestureMode(), GestureRotate)
	test.DemandEquality(t, len(events), 1)
	rot := events[0].(EventRotate)
	test.ExpectEquality(t, rot.Tilt, 0.0)
	test.ExpectApproximate(t, rot.Rotation, -math.Atan2(-20, 100), 1e-9)
	test.ExpectApproximate(t, rot.Rotation, 0.1974, 1e-4)
}

func TestGestureStickiness(t *testing.T) {
	p, _ := newTestProcessor()

	p.process(userinput.EventTouchStart{Touch: userinput.Touch{ID: 1, Position: pt(0, 0)}})
	p.process(userinput.EventTouchStart{Touch: userinput.Touch{ID: 2, Position: pt(100, 0)}})
	p.process(userinput.EventTouchMove{Touch: userinput.Touch{ID: 1, Position: pt(-100, 0)}})
	test.DemandEquality(t, p.GestureMode(), GestureZoom)

	// movements that would otherwise be a tilt, a rotate or a pan do not
	// change the mode
	moves := []geometry.Point{pt(-100, 300), pt(-50, -80), pt(0, 0), pt(-100, 0)}
	for _, m := range moves {
		events := p.process(userinput.EventTouchMove{Touch: userinput.Touch{ID: 1, Position: m}})
		test.ExpectEquality(t, p.GestureMode(), GestureZoom, m)
		test.ExpectEquality(t, countType[EventZoom](events), 1, m)
	}

	// lifting a finger and putting it down again restarts in pan mode
	p.process(userinput.EventTouchEnd{Touch: userinput.Touch{ID: 2, Position: pt(100, 0)}})
	p.process(userinput.EventTouchStart{Touch: userinput.Touch{ID: 3, Position: pt(100, 0)}})
	test.ExpectEquality(t, p.GestureMode(), GesturePan)
}

func TestGestureUnexpectedID(t *testing.T) {
	var gc gestureController

	a := touch{id: 1, startPosition: pt(0, 0), prevPosition: pt(0, 0)}
	b := touch{id: 2, startPosition: pt(100, 0), prevPosition: pt(100, 0)}
	gc.start(a, b)

	events := gc.update(a, b, userinput.EventTouchMove{Touch: userinput.Touch{ID: 3, Position: pt(0, 500)}})
	test.ExpectEquality(t, len(events), 0)
	test.ExpectEquality(t, gc.mode, GesturePan)
}

func TestThreeTouches(t *testing.T) {
	p, _ := newTestProcessor()

	p.process(userinput.EventTouchStart{Touch: userinput.Touch{ID: 1, Position: pt(0, 0)}})
	p.process(userinput.EventTouchStart{Touch: userinput.Touch{ID: 2, Position: pt(100, 0)}})
	p.process(userinput.EventTouchStart{Touch: userinput.Touch{ID: 3, Position: pt(50, 50)}})

	// with three contacts there is no gesture but the contact is still
	// updated
	events := p.process(userinput.EventTouchMove{Touch: userinput.Touch{ID: 3, Position: pt(50, 150)}})
	test.ExpectEquality(t, len(events), 0)
	test.ExpectEquality(t, p.touches[2].prevPosition, pt(50, 150))
	test.ExpectEquality(t, p.touches[2].startPosition, pt(50, 50))
}
