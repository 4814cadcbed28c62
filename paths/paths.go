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

package paths

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// ResourcePath returns the resource string (representing the resource to be
// loaded) prepended with operating system specific details. The subPth
// directory is created if it does not exist. The file is not created.
func ResourcePath(subPth string, file string) (string, error) {
	basePath, err := getBasePath(subPth)
	if err != nil {
		return "", err
	}
	return filepath.Join(basePath, file), nil
}

// UniqueFilename creates a filename that (assuming a functioning clock) should
// not collide with any existing file. Note that the function does not test for
// this. The format of the returned string is:
//
//	prepend_YYYYMMDD_HHMMSS.ext
//
// The extension is omitted if ext is empty.
func UniqueFilename(prepend string, ext string) string {
	n := time.Now()
	fn := fmt.Sprintf("%s_%04d%02d%02d_%02d%02d%02d", prepend, n.Year(), n.Month(), n.Day(), n.Hour(), n.Minute(), n.Second())
	ext = strings.TrimPrefix(strings.TrimSpace(ext), ".")
	if ext != "" {
		fn = fmt.Sprintf("%s.%s", fn, ext)
	}
	return fn
}
