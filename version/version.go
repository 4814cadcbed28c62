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

// Package version reports the version of the program, as set by the linker or
// as recorded by the Go toolchain in the build information.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the program.
const ApplicationName = "mapinput"

// set with -ldflags "-X github.com/tidemap/mapinput/version.number=v1.0.0"
var number string

// Info describes the build.
type Info struct {
	// Version is the release number. "unreleased" if the program was built
	// from a vcs checkout and "local" if there is no vcs information
	Version string

	// vcs revision. suffixed with "+dirty" if the checkout had uncommitted
	// changes
	Revision string

	// Go toolchain used for the build
	GoVersion string
}

// Release returns true if the build has a release number.
func (inf Info) Release() bool {
	return number != "" && inf.Version == number
}

func (inf Info) String() string {
	if inf.Release() {
		return fmt.Sprintf("%s %s", ApplicationName, inf.Version)
	}
	return fmt.Sprintf("%s %s (%s) %s", ApplicationName, inf.Version, inf.Revision, inf.GoVersion)
}

// Version returns the Info for the running program.
func Version() Info {
	info, ok := debug.ReadBuildInfo()
	return fromBuildInfo(info, ok)
}

func fromBuildInfo(info *debug.BuildInfo, ok bool) Info {
	var inf Info
	var vcs bool
	var modified bool

	if ok {
		inf.GoVersion = info.GoVersion
		for _, v := range info.Settings {
			switch v.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				inf.Revision = v.Value
			case "vcs.modified":
				modified = v.Value == "true"
			}
		}
	}

	if inf.Revision == "" {
		inf.Revision = "no revision information"
	} else if modified {
		inf.Revision = fmt.Sprintf("%s+dirty", inf.Revision)
	}

	switch {
	case number != "":
		inf.Version = number
	case vcs:
		inf.Version = "unreleased"
	default:
		inf.Version = "local"
	}

	return inf
}
