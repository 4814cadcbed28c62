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

// Package paths contains functions to prepare paths for mapinput resources:
// the preferences file and input recordings.
//
// The ResourcePath() function returns the path to a resource, prepended with
// the appropriate config directory. Missing directories are created.
//
//	pth, err := paths.ResourcePath("recordings", "drag.txt")
//
// For development builds the config directory is ".mapinput" in the current
// working directory. For builds with the "release" build tag the directory is
// "mapinput" in the directory returned by os.UserConfigDir().
package paths
