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

// Package recorder writes the raw input stream to a transcript file and plays
// it back. A playback drives a control.Processor exactly as the live input did
// because the Playback type is also the Processor's clock.
//
// The transcript is line oriented. The first line is a header and every
// following line is one event:
//
//	<milliseconds since start>, <event>, <fields...>
//
// For example:
//
//	mapinput transcript v1
//	0, moved, 100, 100
//	12, pressed, Left
//	160, released, Left
//	900, touchstart, 3, 10.5, 20
package recorder
