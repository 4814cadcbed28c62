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

// Package statsview is optional. It is only built when the statsview build
// tag is present. Without the tag Available() returns false and Launch() does
// nothing.
//
// When available, a local HTTP server offers runtime statistics of the input
// pipeline process (heap, goroutines, GC pauses) using
// "github.com/go-echarts/statsview". The charts are at:
//
//	localhost:12600/debug/statsview
//
// and the standard Go pprof pages at:
//
//	localhost:12600/debug/pprof/
package statsview

// DefaultAddress is used when Launch() is called with an empty address.
const DefaultAddress = "localhost:12600"

const url = "/debug/statsview"
