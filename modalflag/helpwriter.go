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

package modalflag

import (
	"fmt"
	"io"
	"strings"
)

// helpWriter collects the usage text produced by the flag package so that it
// can be amended with mode information.
type helpWriter struct {
	strings.Builder
}

func (hw *helpWriter) help(out io.Writer, path string, subModes []string, additionalHelp string) {
	// the flag package prints "Usage:" followed by one entry per flag
	lines := strings.SplitN(hw.String(), "\n", 2)
	flags := ""
	if len(lines) > 1 {
		flags = lines[1]
	}

	if flags == "" && len(subModes) == 0 && additionalHelp == "" {
		if path == "" {
			fmt.Fprintln(out, "No help available")
		} else {
			fmt.Fprintf(out, "No help available for %s\n", path)
		}
		return
	}

	if path == "" {
		fmt.Fprintln(out, "Usage:")
	} else {
		fmt.Fprintf(out, "Usage for %s mode:\n", path)
	}

	io.WriteString(out, flags)

	if len(subModes) > 0 {
		if flags != "" {
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "  available sub-modes: %s\n", strings.Join(subModes, ", "))
		fmt.Fprintf(out, "    default: %s\n", subModes[0])
	}

	if additionalHelp != "" {
		fmt.Fprintf(out, "\n%s\n", additionalHelp)
	}
}
