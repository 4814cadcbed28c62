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

package sdlwindow

import (
	"math"

	"github.com/tidemap/mapinput/curated"
	"github.com/tidemap/mapinput/geometry"
	"github.com/tidemap/mapinput/mapview"
)

// the closest that grid lines are drawn on the screen, in screen units
const minGridSpacing = 40.0

type colour struct {
	r, g, b uint8
}

var (
	backgroundColour = colour{r: 20, g: 24, b: 32}
	gridColour       = colour{r: 50, g: 60, b: 80}
	axisColour       = colour{r: 180, g: 80, b: 60}
	crosshairColour  = colour{r: 220, g: 220, b: 220}
)

// gridStep returns the smallest power of ten, in map units, that is at least
// minGridSpacing screen units apart at the given resolution.
func gridStep(resolution float64) float64 {
	return math.Pow(10, math.Ceil(math.Log10(minGridSpacing*resolution)))
}

// DrawMap draws a grid over the visible part of the map, the map axes and a
// crosshair at the centre of the screen.
func (win *Window) DrawMap(m *mapview.Map) error {
	if err := win.clear(backgroundColour); err != nil {
		return err
	}

	// the visible part of the map is bounded by the map positions of the
	// screen corners. the grid is drawn over the bounding box of those
	// positions, which is larger than necessary when the map is rotated
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range []geometry.Point{{X: 0, Y: 0}, {X: m.Size.X, Y: 0}, {X: 0, Y: m.Size.Y}, {X: m.Size.X, Y: m.Size.Y}} {
		p, _ := m.ScreenToMap(c)
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}

	step := gridStep(m.Resolution)

	for x := math.Floor(minX/step) * step; x <= maxX; x += step {
		c := gridColour
		if math.Abs(x) < step/2 {
			c = axisColour
		}
		if err := win.line(m, geometry.Point{X: x, Y: minY}, geometry.Point{X: x, Y: maxY}, c); err != nil {
			return err
		}
	}

	for y := math.Floor(minY/step) * step; y <= maxY; y += step {
		c := gridColour
		if math.Abs(y) < step/2 {
			c = axisColour
		}
		if err := win.line(m, geometry.Point{X: minX, Y: y}, geometry.Point{X: maxX, Y: y}, c); err != nil {
			return err
		}
	}

	if err := win.crosshair(geometry.Point{X: m.Size.X / 2, Y: m.Size.Y / 2}); err != nil {
		return err
	}

	win.renderer.Present()

	return nil
}

func (win *Window) clear(c colour) error {
	if err := win.renderer.SetDrawColor(c.r, c.g, c.b, 255); err != nil {
		return curated.Errorf("sdlwindow: %v", err)
	}
	if err := win.renderer.Clear(); err != nil {
		return curated.Errorf("sdlwindow: %v", err)
	}
	return nil
}

// line between two map positions.
func (win *Window) line(m *mapview.Map, a geometry.Point, b geometry.Point, c colour) error {
	sa := m.MapToScreen(a)
	sb := m.MapToScreen(b)
	return win.screenLine(sa, sb, c)
}

func (win *Window) screenLine(a geometry.Point, b geometry.Point, c colour) error {
	if err := win.renderer.SetDrawColor(c.r, c.g, c.b, 255); err != nil {
		return curated.Errorf("sdlwindow: %v", err)
	}
	if err := win.renderer.DrawLine(int32(a.X), int32(a.Y), int32(b.X), int32(b.Y)); err != nil {
		return curated.Errorf("sdlwindow: %v", err)
	}
	return nil
}

func (win *Window) crosshair(p geometry.Point) error {
	const sz = 8
	if err := win.screenLine(geometry.Point{X: p.X - sz, Y: p.Y}, geometry.Point{X: p.X + sz, Y: p.Y}, crosshairColour); err != nil {
		return err
	}
	return win.screenLine(geometry.Point{X: p.X, Y: p.Y - sz}, geometry.Point{X: p.X, Y: p.Y + sz}, crosshairColour)
}
