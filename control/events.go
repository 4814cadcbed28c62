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
	"fmt"

	"github.com/tidemap/mapinput/geometry"
	"github.com/tidemap/mapinput/userinput"
)

// PointerState is a snapshot of the pointer at the time of an event.
type PointerState struct {
	// screen position of the pointer. for some events this is not the current
	// position of the pointer. for example, EventDragStarted carries the
	// position at which the drag started
	Position geometry.Point

	// buttons pressed at the time of the event
	Buttons userinput.ButtonsState
}

func (ps PointerState) String() string {
	return fmt.Sprintf("%s %s", ps.Position, ps.Buttons)
}

// Event represents all the different types of semantic event.
type Event interface {
	fmt.Stringer
}

// EventButtonPressed is produced for every raw button press.
type EventButtonPressed struct {
	Button  userinput.MouseButton
	Pointer PointerState
}

// EventButtonReleased is produced for every raw button release.
type EventButtonReleased struct {
	Button  userinput.MouseButton
	Pointer PointerState
}

// EventClick is produced when a button is released within ClickTimeout of
// being pressed.
type EventClick struct {
	Button  userinput.MouseButton
	Pointer PointerState
}

// EventDoubleClick is produced alongside an EventClick when the click occurs
// within DoubleClickTimeout of the previous click.
type EventDoubleClick struct {
	Button  userinput.MouseButton
	Pointer PointerState
}

// EventPointerMoved is produced for every raw pointer movement.
type EventPointerMoved struct {
	Pointer PointerState
}

// EventScroll is produced for every raw scroll event.
type EventScroll struct {
	Delta   geometry.Vector
	Pointer PointerState
}

// EventDragStarted is produced when a pointer or single touch moves further
// than DragThreshold from where it was pressed. The pointer position is the
// position of the press.
type EventDragStarted struct {
	Button  userinput.MouseButton
	Pointer PointerState
}

// EventDrag is produced for every movement of a drag. Delta is the movement
// since the previous position.
type EventDrag struct {
	Button  userinput.MouseButton
	Delta   geometry.Vector
	Pointer PointerState
}

// EventDragEnded is produced when a drag ends.
type EventDragEnded struct {
	Button  userinput.MouseButton
	Pointer PointerState
}

// EventPan is a two-finger pan. Delta is the movement of the midpoint between
// the two contacts since the previous movement.
type EventPan struct {
	Delta    geometry.Vector
	Midpoint geometry.Point
}

// EventZoom is a two-finger pinch. A factor of less than one means the fingers
// are moving apart. The anchor is the position of the contact that did not
// move.
type EventZoom struct {
	Factor float64
	Anchor geometry.Point
}

// EventRotate is a two-finger rotate or tilt. Only one of the two fields is
// non-zero for events produced by the gesture recognizer.
type EventRotate struct {
	Tilt     float64
	Rotation float64
}

func (ev EventButtonPressed) String() string {
	return fmt.Sprintf("ButtonPressed(%s, %s)", ev.Button, ev.Pointer)
}

func (ev EventButtonReleased) String() string {
	return fmt.Sprintf("ButtonReleased(%s, %s)", ev.Button, ev.Pointer)
}

func (ev EventClick) String() string {
	return fmt.Sprintf("Click(%s, %s)", ev.Button, ev.Pointer)
}

func (ev EventDoubleClick) String() string {
	return fmt.Sprintf("DoubleClick(%s, %s)", ev.Button, ev.Pointer)
}

func (ev EventPointerMoved) String() string {
	return fmt.Sprintf("PointerMoved(%s)", ev.Pointer)
}

func (ev EventScroll) String() string {
	return fmt.Sprintf("Scroll(%s, %s)", ev.Delta, ev.Pointer)
}

func (ev EventDragStarted) String() string {
	return fmt.Sprintf("DragStarted(%s, %s)", ev.Button, ev.Pointer)
}

func (ev EventDrag) String() string {
	return fmt.Sprintf("Drag(%s, %s, %s)", ev.Button, ev.Delta, ev.Pointer)
}

func (ev EventDragEnded) String() string {
	return fmt.Sprintf("DragEnded(%s, %s)", ev.Button, ev.Pointer)
}

func (ev EventPan) String() string {
	return fmt.Sprintf("Pan(%s, %s)", ev.Delta, ev.Midpoint)
}

func (ev EventZoom) String() string {
	return fmt.Sprintf("Zoom(%.4f, %s)", ev.Factor, ev.Anchor)
}

func (ev EventRotate) String() string {
	return fmt.Sprintf("Rotate(%.4f, %.4f)", ev.Tilt, ev.Rotation)
}
