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

package userinput

import (
	"fmt"

	"github.com/tidemap/mapinput/geometry"
)

// Event represents all the different types of raw input event.
type Event interface {
	fmt.Stringer
}

// EventButtonPressed is sent when a pointer button goes down.
type EventButtonPressed struct {
	Button MouseButton
}

// EventButtonReleased is sent when a pointer button goes up.
type EventButtonReleased struct {
	Button MouseButton
}

// EventPointerMoved is sent when the pointer moves. Position is in screen
// coordinates.
type EventPointerMoved struct {
	Position geometry.Point
}

// EventScroll is sent by the scroll wheel. Positive Y is scrolling up/away
// from the user.
type EventScroll struct {
	Delta geometry.Vector
}

// TouchID identifies a touch contact for the duration of the contact. The
// same value may be reused by the platform once the contact has ended.
type TouchID uint64

// Touch is the data common to all touch events.
type Touch struct {
	ID       TouchID
	Position geometry.Point
}

// EventTouchStart is sent when a finger makes contact.
type EventTouchStart struct {
	Touch
}

// EventTouchMove is sent when a finger in contact moves.
type EventTouchMove struct {
	Touch
}

// EventTouchEnd is sent when a finger leaves the surface. Position is the
// last position of the contact.
type EventTouchEnd struct {
	Touch
}

func (ev EventButtonPressed) String() string {
	return fmt.Sprintf("ButtonPressed(%s)", ev.Button)
}

func (ev EventButtonReleased) String() string {
	return fmt.Sprintf("ButtonReleased(%s)", ev.Button)
}

func (ev EventPointerMoved) String() string {
	return fmt.Sprintf("PointerMoved%s", ev.Position)
}

func (ev EventScroll) String() string {
	return fmt.Sprintf("Scroll%s", ev.Delta)
}

func (ev EventTouchStart) String() string {
	return fmt.Sprintf("TouchStart(%d, %s)", ev.ID, ev.Position)
}

func (ev EventTouchMove) String() string {
	return fmt.Sprintf("TouchMove(%d, %s)", ev.ID, ev.Position)
}

func (ev EventTouchEnd) String() string {
	return fmt.Sprintf("TouchEnd(%d, %s)", ev.ID, ev.Position)
}
