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
	"math"

	"github.com/tidemap/mapinput/control"
	"github.com/tidemap/mapinput/prefs"
	"github.com/tidemap/mapinput/userinput"
)

// Controller is a control.Handler that changes the Map in response to user
// events. Events are consumed if they changed the map, or would have changed
// it if the relevant preference was enabled.
type Controller struct {
	prefs *Preferences
}

// NewController is the preferred method of initialisation for the Controller
// type. If p is nil then the default preferences are used.
func NewController(p *Preferences) *Controller {
	if p == nil {
		p, _ = NewPreferences(nil)
	}
	return &Controller{prefs: p}
}

func enabled(p *prefs.Bool) bool {
	b, _ := p.Get().(bool)
	return b
}

func value(p *prefs.Float) float64 {
	f, _ := p.Get().(float64)
	return f
}

// HandleUserEvent implements the control.Handler interface.
func (c *Controller) HandleUserEvent(ev control.Event, m *Map) control.Propagation {
	switch ev := ev.(type) {
	case control.EventDragStarted:
		switch ev.Button {
		case userinput.MouseButtonLeft, userinput.MouseButtonOther:
			if enabled(&c.prefs.Pan) {
				return control.Consume
			}
		case userinput.MouseButtonRight:
			if enabled(&c.prefs.Rotate) {
				return control.Consume
			}
		}

	case control.EventDrag:
		switch ev.Button {
		case userinput.MouseButtonLeft, userinput.MouseButtonOther:
			m.Pan(ev.Delta)
		case userinput.MouseButtonRight:
			m.Rotate(ev.Delta.X * value(&c.prefs.RotationSpeed) / 100)
			m.TiltBy(-ev.Delta.Y * value(&c.prefs.TiltSpeed))
		}
		return control.Consume

	case control.EventDragEnded:
		return control.Consume

	case control.EventScroll:
		if enabled(&c.prefs.Zoom) {
			m.Zoom(math.Pow(value(&c.prefs.ScrollZoom), ev.Delta.Y), ev.Pointer.Position)
			return control.Consume
		}

	case control.EventDoubleClick:
		if enabled(&c.prefs.Zoom) && ev.Button == userinput.MouseButtonLeft {
			m.Zoom(0.5, ev.Pointer.Position)
			return control.Consume
		}

	case control.EventZoom:
		if enabled(&c.prefs.Zoom) {
			m.Zoom(ev.Factor, ev.Anchor)
			return control.Consume
		}

	case control.EventPan:
		if enabled(&c.prefs.Pan) {
			m.Pan(ev.Delta)
			return control.Consume
		}

	case control.EventRotate:
		if enabled(&c.prefs.Rotate) {
			m.Rotate(ev.Rotation * value(&c.prefs.RotationSpeed))
			m.TiltBy(-ev.Tilt * value(&c.prefs.TiltSpeed))
			return control.Consume
		}
	}

	return control.Propagate
}
