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

// Package mapview is a minimal map view for the input pipeline to act upon.
// The Map type implements control.View and the Controller type is a
// control.Handler that pans, zooms, rotates and tilts the Map in response to
// semantic events.
//
// The Map has no content of its own. It is a camera over an unbounded plane
// where map units are arbitrary and the Y axis points up (screen Y points
// down).
package mapview
