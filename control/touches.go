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
	"github.com/tidemap/mapinput/userinput"
)

// touch is a single active touch contact.
type touch struct {
	id userinput.TouchID

	// where the contact was first seen and where it was most recently seen
	startPosition geometry.Point
	prevPosition  geometry.Point

	startTime time.Time
}

// touches is the list of active contacts in the order they started. the
// number of simultaneous contacts is small so lookup is a linear scan.
type touches []touch

// find returns the index of the contact with the id or -1 if there is no such
// contact.
func (ts touches) find(id userinput.TouchID) int {
	for i := range ts {
		if ts[i].id == id {
			return i
		}
	}
	return -1
}

// remove the contact with the id, preserving the order of the remaining
// contacts. returns false if there was no such contact.
func (ts *touches) remove(id userinput.TouchID) bool {
	i := ts.find(id)
	if i < 0 {
		return false
	}
	*ts = append((*ts)[:i], (*ts)[i+1:]...)
	return true
}
