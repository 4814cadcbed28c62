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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created with a
// specific pattern. For example:
//
//	e := curated.Errorf("playback: line %d: unknown event", 10)
//
//	if curated.Is(e, "playback: line %d: unknown event") {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
//	f := curated.Errorf("mapinput: %v", e)
//
//	if curated.Has(f, "playback: line %d: unknown event") {
//		fmt.Println("true")
//	}
//
// The IsAny() function answers whether the error was created by
// curated.Errorf(). We can think of curated errors as being 'expected' and
// uncurated errors as being 'unexpected'.
//
// The Error() implementation removes duplicate adjacent parts of the message.
// This means that wrapping an error with a pattern that begins with the same
// prefix does not result in "evdev: evdev: ..." messages.
package curated
