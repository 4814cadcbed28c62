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

// Package wsinput receives userinput events from a remote device over a
// websocket. Every text message is a single JSON object describing one event:
//
//	{"type": "moved", "x": 10, "y": 20}
//	{"type": "pressed", "button": "Left"}
//	{"type": "released", "button": "Left"}
//	{"type": "scroll", "dx": 0, "dy": -1}
//	{"type": "touchstart", "id": 3, "x": 10, "y": 20}
//	{"type": "touchmove", "id": 3, "x": 12, "y": 20}
//	{"type": "touchend", "id": 3, "x": 12, "y": 20}
//
// The Server type accepts connections and the Client type is a sender that
// can be used by test tools or a remote device written in Go.
package wsinput
