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

package curated_test

import (
	"errors"
	"io"
	"testing"

	"github.com/tidemap/mapinput/curated"
	"github.com/tidemap/mapinput/test"
)

const testPattern = "playback: line %d: %v"

func TestDuplicateErrors(t *testing.T) {
	e := curated.Errorf("evdev: %v", "device not found")
	test.ExpectEquality(t, e.Error(), "evdev: device not found")

	// packing errors of the same pattern next to each other causes
	// one of them to be dropped
	f := curated.Errorf("evdev: %v", e)
	test.ExpectEquality(t, f.Error(), "evdev: device not found")
}

func TestIs(t *testing.T) {
	e := curated.Errorf(testPattern, 10, "unknown event")
	test.ExpectSuccess(t, curated.IsAny(e))
	test.ExpectSuccess(t, curated.Is(e, testPattern))
	test.ExpectFailure(t, curated.Is(e, "playback: %v"))

	f := curated.Errorf("mapinput: %v", e)
	test.ExpectFailure(t, curated.Is(f, testPattern))
	test.ExpectSuccess(t, curated.Has(f, testPattern))

	test.ExpectFailure(t, curated.IsAny(errors.New("plain")))
	test.ExpectFailure(t, curated.Has(nil, testPattern))
}

func TestUnwrap(t *testing.T) {
	e := curated.Errorf("wsinput: %v", io.EOF)
	test.ExpectSuccess(t, errors.Is(e, io.EOF))
	test.ExpectEquality(t, e.Error(), "wsinput: EOF")
}
