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

package mapview

import (
	"fmt"
	"math"

	"github.com/tidemap/mapinput/geometry"
)

// Limits on the values a Map may take.
const (
	MinResolution = 1e-3
	MaxResolution = 1e5

	// tilt is in radians. a tilt of zero looks straight down on the map
	MaxTilt = 1.3
)

// Map is the camera over the map plane.
type Map struct {
	// map position at the centre of the screen
	Centre geometry.Point

	// map units per screen unit
	Resolution float64

	// rotation of the map about the centre of the screen in radians
	Rotation float64

	// tilt of the map plane away from the viewer in radians
	Tilt float64

	// width and height of the screen
	Size geometry.Vector
}

// NewMap is the preferred method of initialisation for the Map type.
func NewMap(width float64, height float64) *Map {
	return &Map{
		Resolution: 1.0,
		Size:       geometry.Vector{X: width, Y: height},
	}
}

func (m *Map) String() string {
	return fmt.Sprintf("centre %s res %.4f rot %.4f tilt %.4f", m.Centre, m.Resolution, m.Rotation, m.Tilt)
}

// SetSize changes the size of the screen. The map centre is unchanged.
func (m *Map) SetSize(width float64, height float64) {
	m.Size = geometry.Vector{X: width, Y: height}
}

func (m *Map) screenCentre() geometry.Point {
	return geometry.Point{X: m.Size.X / 2, Y: m.Size.Y / 2}
}

// convert a vector in screen space to a vector in map space
func (m *Map) toMap(v geometry.Vector) geometry.Vector {
	u := geometry.Vector{
		X: v.X * m.Resolution,
		Y: -v.Y * m.Resolution / math.Cos(m.Tilt),
	}
	return u.Rotate(m.Rotation)
}

// convert a vector in map space to a vector in screen space
func (m *Map) toScreen(u geometry.Vector) geometry.Vector {
	u = u.Rotate(-m.Rotation)
	return geometry.Vector{
		X: u.X / m.Resolution,
		Y: -u.Y * math.Cos(m.Tilt) / m.Resolution,
	}
}

// ScreenToMap implements the control.View interface. Positions outside the
// screen are not on the map.
func (m *Map) ScreenToMap(p geometry.Point) (geometry.Point, bool) {
	if p.X < 0 || p.Y < 0 || p.X > m.Size.X || p.Y > m.Size.Y {
		return geometry.Point{}, false
	}
	return m.Centre.Add(m.toMap(p.Sub(m.screenCentre()))), true
}

// MapToScreen converts a map position to a screen position. The result may be
// outside the screen.
func (m *Map) MapToScreen(p geometry.Point) geometry.Point {
	return m.screenCentre().Add(m.toScreen(p.Sub(m.Centre)))
}

// Pan moves the map so that the content under the pointer follows a pointer
// movement of delta screen units.
func (m *Map) Pan(delta geometry.Vector) {
	m.Centre = m.Centre.Add(m.toMap(delta).Scale(-1))
}

// Zoom multiplies the resolution by factor. The map position under the anchor
// does not move. A factor less than one zooms in.
func (m *Map) Zoom(factor float64, anchor geometry.Point) {
	if factor <= 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		return
	}

	res := math.Min(MaxResolution, math.Max(MinResolution, m.Resolution*factor))
	factor = res / m.Resolution

	a := m.Centre.Add(m.toMap(anchor.Sub(m.screenCentre())))
	m.Centre = a.Add(m.Centre.Sub(a).Scale(factor))
	m.Resolution = res
}

// Rotate the map by angle radians.
func (m *Map) Rotate(angle float64) {
	m.Rotation += angle
}

// TiltBy changes the tilt by angle radians. The tilt is clamped to the range
// zero to MaxTilt.
func (m *Map) TiltBy(angle float64) {
	m.Tilt = math.Min(MaxTilt, math.Max(0, m.Tilt+angle))
}
