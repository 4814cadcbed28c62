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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect*() functions report a test failure with t.Errorf() and allow the
// test to continue. The Demand*() functions instead call t.Fatalf() and should
// be used when later parts of the test depend on the value being correct. For
// example, testing the length of a slice before indexing into it.
//
// It is worth describing how the ExpectSuccess() and ExpectFailure() functions
// handle nil because it is not obvious. A nil value is considered a success.
// This is because of how errors usually work (nil to indicate no error).
//
// The CompareWriter type implements the io.Writer interface and should be used
// to capture output. The CompareWriter.Compare() function can then be used to
// test for equality.
package test
