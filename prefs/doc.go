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

// Package prefs holds user preferences. Preferences are typed values (Bool,
// Int, Float, String) that can be bound to a key in a Disk instance and
// saved to or loaded from a TOML file.
//
//	dsk, err := prefs.NewDisk(paths.ResourcePath("", "mapinput.toml"))
//	var speed prefs.Float
//	err = dsk.Add("controller.zoomspeed", &speed)
//	err = dsk.Load()
//
// Values are safe to read from more than one goroutine.
//
// Each type supports a pre and post hook, called just before and just after
// the value is changed. Returning an error from the pre hook prevents the
// value from being changed.
//
// Preferences can also be overridden for a single run of the program with a
// string of the form "key::value; key::value". See Disk.Override().
package prefs
