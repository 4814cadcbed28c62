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

package userinput_test

import (
	"testing"

	"github.com/tidemap/mapinput/test"
	"github.com/tidemap/mapinput/userinput"
)

func TestButtonsState(t *testing.T) {
	var st userinput.ButtonsState

	_, ok := st.SinglePressed()
	test.ExpectFailure(t, ok)

	st.SetPressed(userinput.MouseButtonLeft)
	b, ok := st.SinglePressed()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, b, userinput.MouseButtonLeft)

	st.SetPressed(userinput.MouseButtonRight)
	_, ok = st.SinglePressed()
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, st.String(), "{Left,Right}")

	st.SetReleased(userinput.MouseButtonLeft)
	b, ok = st.SinglePressed()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, b, userinput.MouseButtonRight)

	// releasing a button that isn't pressed is harmless
	st.SetReleased(userinput.MouseButtonMiddle)
	test.ExpectSuccess(t, st.IsPressed(userinput.MouseButtonRight))

	st.SetReleased(userinput.MouseButtonRight)
	test.ExpectEquality(t, st, userinput.ButtonsState(0))
}

func TestParseMouseButton(t *testing.T) {
	for _, b := range []userinput.MouseButton{
		userinput.MouseButtonLeft,
		userinput.MouseButtonRight,
		userinput.MouseButtonMiddle,
		userinput.MouseButtonOther,
	} {
		p, ok := userinput.ParseMouseButton(b.String())
		test.ExpectSuccess(t, ok, b)
		test.ExpectEquality(t, p, b)
	}

	_, ok := userinput.ParseMouseButton("fourth")
	test.ExpectFailure(t, ok)
}
