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

// Package modalflag wraps the flag package of the standard library so that
// the mapinput command line can be divided into modes, each with its own set
// of flags.
//
// Arguments are given once with NewArgs() and then parsed in layers. Each
// layer declares its flags and the sub-modes that may follow them:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "EVDEV", "WEBSOCKET", "PLAYBACK")
//	p, err := md.Parse()
//
// The first sub-mode is the default and is selected when the first non-flag
// argument does not name a sub-mode. Sub-mode names are case insensitive.
//
// Once a mode has been selected, NewMode() starts the next layer and further
// calls to Parse() consume the flags of that mode:
//
//	md.NewMode()
//	device := md.AddString("device", "", "evdev device file")
//	p, err = md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return nil
//	case modalflag.ParseError:
//		return err
//	}
//
// Help for the current layer is printed to Output when -help (or -h) is
// found. The ParseHelp result is returned so that the caller can stop without
// printing anything further.
package modalflag
