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

package geometry_test

import (
	"math"
	"testing"

	"github.com/tidemap/mapinput/geometry"
	"github.com/tidemap/mapinput/test"
)

func TestTaxicab(t *testing.T) {
	a := geometry.Point{X: 1, Y: 1}
	b := geometry.Point{X: -2, Y: 5}
	test.ExpectEquality(t, a.TaxicabDistance(b), 7.0)
	test.ExpectEquality(t, b.TaxicabDistance(a), 7.0)
	test.ExpectEquality(t, a.TaxicabDistance(a), 0.0)
}

func TestDistanceAndMidpoint(t *testing.T) {
	a := geometry.Point{X: 0, Y: 0}
	b := geometry.Point{X: 30, Y: 40}
	test.ExpectEquality(t, a.Distance(b), 50.0)
	test.ExpectEquality(t, geometry.Midpoint(a, b), geometry.Point{X: 15, Y: 20})
	test.ExpectEquality(t, b.Sub(a), geometry.Vector{X: 30, Y: 40})
	test.ExpectEquality(t, a.Add(geometry.Vector{X: 30, Y: 40}), b)
}

func TestAngle(t *testing.T) {
	test.ExpectEquality(t, geometry.Vector{X: 1, Y: 0}.Angle(), 0.0)
	test.ExpectApproximate(t, geometry.Vector{X: 0, Y: 1}.Angle(), math.Pi/2, 1e-12)
	test.ExpectApproximate(t, geometry.Vector{X: -1, Y: 0}.Angle(), math.Pi, 1e-12)

	r := geometry.Vector{X: 1, Y: 0}.Rotate(math.Pi / 2)
	test.ExpectApproximate(t, r.X, 0, 1e-12)
	test.ExpectApproximate(t, r.Y, 1, 1e-12)
}
