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

//go:build !linux

package evdev

import (
	"runtime"

	"github.com/tidemap/mapinput/curated"
	"github.com/tidemap/mapinput/geometry"
)

// Open is only available on Linux.
func Open(path string, screen geometry.Vector, grab bool) (*Device, error) {
	return nil, curated.Errorf("evdev: not available on %s", runtime.GOOS)
}

// FindTouchDevice is only available on Linux.
func FindTouchDevice() (string, error) {
	return "", curated.Errorf("evdev: not available on %s", runtime.GOOS)
}
