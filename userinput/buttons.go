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
	"strings"
)

// MouseButton identifies a pointer button.
type MouseButton int

// List of valid MouseButton values. MouseButtonOther is also used for
// touch driven drags.
const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonOther
)

func (b MouseButton) String() string {
	switch b {
	case MouseButtonLeft:
		return "Left"
	case MouseButtonRight:
		return "Right"
	case MouseButtonMiddle:
		return "Middle"
	case MouseButtonOther:
		return "Other"
	}
	return fmt.Sprintf("MouseButton(%d)", int(b))
}

// ParseMouseButton is the inverse of MouseButton.String(). Comparison is case
// insensitive.
func ParseMouseButton(s string) (MouseButton, bool) {
	switch strings.ToLower(s) {
	case "left":
		return MouseButtonLeft, true
	case "right":
		return MouseButtonRight, true
	case "middle":
		return MouseButtonMiddle, true
	case "other":
		return MouseButtonOther, true
	}
	return MouseButtonOther, false
}

// ButtonsState is the set of currently pressed buttons. The zero value has no
// buttons pressed.
type ButtonsState uint8

func (st ButtonsState) mask(b MouseButton) ButtonsState {
	if b < MouseButtonLeft || b > MouseButtonOther {
		b = MouseButtonOther
	}
	return 1 << uint(b)
}

// SetPressed marks the button as pressed.
func (st *ButtonsState) SetPressed(b MouseButton) {
	*st |= st.mask(b)
}

// SetReleased marks the button as released. Releasing a button that is not
// pressed has no effect.
func (st *ButtonsState) SetReleased(b MouseButton) {
	*st &^= st.mask(b)
}

// IsPressed returns true if the button is currently pressed.
func (st ButtonsState) IsPressed(b MouseButton) bool {
	return st&st.mask(b) != 0
}

// SinglePressed returns the pressed button if exactly one button is pressed.
func (st ButtonsState) SinglePressed() (MouseButton, bool) {
	var found MouseButton
	n := 0
	for b := MouseButtonLeft; b <= MouseButtonOther; b++ {
		if st.IsPressed(b) {
			found = b
			n++
		}
	}
	return found, n == 1
}

func (st ButtonsState) String() string {
	s := make([]string, 0, 4)
	for b := MouseButtonLeft; b <= MouseButtonOther; b++ {
		if st.IsPressed(b) {
			s = append(s, b.String())
		}
	}
	return fmt.Sprintf("{%s}", strings.Join(s, ","))
}
