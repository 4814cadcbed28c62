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

import "time"

// Clock is the time source used by the Processor.
type Clock interface {
	Now() time.Time
}

// SystemClock returns the current wall clock time.
type SystemClock struct{}

// Now implements the Clock interface.
func (_ SystemClock) Now() time.Time {
	return time.Now()
}

// withinWindow returns true if now is no earlier than ref and less than window
// after it. A time before the reference is never within the window.
func withinWindow(now time.Time, ref time.Time, window time.Duration) bool {
	elapsed := now.Sub(ref)
	return elapsed >= 0 && elapsed < window
}
