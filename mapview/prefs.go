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
	"github.com/tidemap/mapinput/prefs"
)

// Preferences for the Controller.
type Preferences struct {
	Pan    prefs.Bool
	Zoom   prefs.Bool
	Rotate prefs.Bool

	// resolution factor for one unit of scroll. less than one means that
	// scrolling up zooms in
	ScrollZoom prefs.Float

	// multiplier applied to the rotation of a two-touch gesture. a right
	// button drag of one hundred screen units rotates by this many radians
	RotationSpeed prefs.Float

	// radians of tilt per screen unit
	TiltSpeed prefs.Float
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. If dsk is not nil then the preferences are added to it
// under the "mapview" table.
func NewPreferences(dsk *prefs.Disk) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	if dsk == nil {
		return p, nil
	}

	if err := dsk.Add("mapview.pan", &p.Pan); err != nil {
		return nil, err
	}
	if err := dsk.Add("mapview.zoom", &p.Zoom); err != nil {
		return nil, err
	}
	if err := dsk.Add("mapview.rotate", &p.Rotate); err != nil {
		return nil, err
	}
	if err := dsk.Add("mapview.scrollzoom", &p.ScrollZoom); err != nil {
		return nil, err
	}
	if err := dsk.Add("mapview.rotationspeed", &p.RotationSpeed); err != nil {
		return nil, err
	}
	if err := dsk.Add("mapview.tiltspeed", &p.TiltSpeed); err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	p.Pan.Set(true)
	p.Zoom.Set(true)
	p.Rotate.Set(true)
	p.ScrollZoom.Set(0.9)
	p.RotationSpeed.Set(1.0)
	p.TiltSpeed.Set(0.005)
}
