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

package geometry

import (
	"fmt"
	"math"
)

// Point is a position in two dimensional space.
type Point struct {
	X float64
	Y float64
}

// Vector is the displacement between two points.
type Vector struct {
	X float64
	Y float64
}

func (p Point) String() string {
	return fmt.Sprintf("(%.2f, %.2f)", p.X, p.Y)
}

func (v Vector) String() string {
	return fmt.Sprintf("[%.2f, %.2f]", v.X, v.Y)
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Vector {
	return Vector{X: p.X - q.X, Y: p.Y - q.Y}
}

// Add returns the point p displaced by v.
func (p Point) Add(v Vector) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// TaxicabDistance is the sum of the absolute coordinate differences
// between p and q.
func (p Point) TaxicabDistance(q Point) float64 {
	return math.Abs(p.X-q.X) + math.Abs(p.Y-q.Y)
}

// Distance is the euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Magnitude()
}

// Midpoint returns the arithmetic mean of the two points.
func Midpoint(p, q Point) Point {
	return Point{X: (p.X + q.X) / 2, Y: (p.Y + q.Y) / 2}
}

// Magnitude is the euclidean norm of the vector.
func (v Vector) Magnitude() float64 {
	return math.Hypot(v.X, v.Y)
}

// Angle of the vector in radians, as returned by math.Atan2.
func (v Vector) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Scale multiplies both components of the vector by s.
func (v Vector) Scale(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

// Rotate the vector by angle radians counter-clockwise.
func (v Vector) Rotate(angle float64) Vector {
	sin, cos := math.Sincos(angle)
	return Vector{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}
