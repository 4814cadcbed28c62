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

package sdlwindow

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/tidemap/mapinput/geometry"
	"github.com/tidemap/mapinput/userinput"
)

// the value of the Which field of mouse events that SDL synthesises from touch
// events (SDL_TOUCH_MOUSEID)
const touchMouseID = 0xffffffff

// translateButton converts the SDL button number to a MouseButton.
func translateButton(b uint8) userinput.MouseButton {
	switch b {
	case sdl.BUTTON_LEFT:
		return userinput.MouseButtonLeft
	case sdl.BUTTON_RIGHT:
		return userinput.MouseButtonRight
	case sdl.BUTTON_MIDDLE:
		return userinput.MouseButtonMiddle
	}
	return userinput.MouseButtonOther
}

// translate an SDL event into a userinput event. the size of the window is
// required because SDL finger positions are normalised to the range zero to
// one. returns false if the event has no userinput equivalent.
//
// mouse events synthesised by SDL from touch events are ignored because the
// touch events themselves are translated.
func translate(ev sdl.Event, size geometry.Vector) (userinput.Event, bool) {
	switch ev := ev.(type) {
	case *sdl.MouseButtonEvent:
		if ev.Which == touchMouseID {
			return nil, false
		}
		button := translateButton(ev.Button)
		if ev.Type == sdl.MOUSEBUTTONDOWN {
			return userinput.EventButtonPressed{Button: button}, true
		}
		return userinput.EventButtonReleased{Button: button}, true

	case *sdl.MouseMotionEvent:
		if ev.Which == touchMouseID {
			return nil, false
		}
		return userinput.EventPointerMoved{
			Position: geometry.Point{X: float64(ev.X), Y: float64(ev.Y)},
		}, true

	case *sdl.MouseWheelEvent:
		if ev.Which == touchMouseID {
			return nil, false
		}
		delta := geometry.Vector{X: float64(ev.X), Y: float64(ev.Y)}
		if ev.Direction == sdl.MOUSEWHEEL_FLIPPED {
			delta = delta.Scale(-1)
		}
		return userinput.EventScroll{Delta: delta}, true

	case *sdl.TouchFingerEvent:
		touch := userinput.Touch{
			ID: userinput.TouchID(ev.FingerID),
			Position: geometry.Point{
				X: float64(ev.X) * size.X,
				Y: float64(ev.Y) * size.Y,
			},
		}
		switch ev.Type {
		case sdl.FINGERDOWN:
			return userinput.EventTouchStart{Touch: touch}, true
		case sdl.FINGERMOTION:
			return userinput.EventTouchMove{Touch: touch}, true
		case sdl.FINGERUP:
			return userinput.EventTouchEnd{Touch: touch}, true
		}
	}

	return nil, false
}
