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

package control

import (
	"math"

	"github.com/tidemap/mapinput/geometry"
	"github.com/tidemap/mapinput/logger"
	"github.com/tidemap/mapinput/userinput"
)

// Thresholds for leaving GesturePan. Distances are in screen units and the
// rotate threshold is in radians.
const (
	ZoomThreshold   = 60.0
	TiltThreshold   = 60.0
	RotateThreshold = 0.10
)

// GestureMode is the current classification of a two-touch gesture.
type GestureMode int

// List of valid GestureMode values.
const (
	GesturePan GestureMode = iota
	GestureZoom
	GestureTilt
	GestureRotate
)

func (m GestureMode) String() string {
	switch m {
	case GesturePan:
		return "Pan"
	case GestureZoom:
		return "Zoom"
	case GestureTilt:
		return "Tilt"
	case GestureRotate:
		return "Rotate"
	}
	return "unknown gesture"
}

// gestureController classifies the movement of two touch contacts. every
// gesture starts in GesturePan and switches at most once to one of the other
// modes.
type gestureController struct {
	mode GestureMode

	// baseline values taken from the start positions of the two contacts
	distanceStart float64
	midpointStart geometry.Point
	angleStart    float64
}

// start a new gesture. called the moment there are two active contacts.
func (gc *gestureController) start(a, b touch) {
	delta := a.startPosition.Sub(b.startPosition)

	gc.distanceStart = delta.Magnitude()
	gc.midpointStart = geometry.Midpoint(a.startPosition, b.startPosition)
	gc.angleStart = delta.Angle()

	gc.mode = GesturePan
}

// update the gesture with the movement of one of the contacts. the contacts
// a and b must be in the same order as they were when start() was called. the
// prevPosition of the moving contact must not yet have been updated.
func (gc *gestureController) update(a, b touch, ev userinput.EventTouchMove) []Event {
	var oldPositions, newPositions [2]geometry.Point
	var other geometry.Point

	oldPositions = [2]geometry.Point{a.prevPosition, b.prevPosition}

	switch ev.ID {
	case a.id:
		newPositions = [2]geometry.Point{ev.Position, b.prevPosition}
		other = b.prevPosition
	case b.id:
		newPositions = [2]geometry.Point{a.prevPosition, ev.Position}
		other = a.prevPosition
	default:
		logger.Logf(logger.Allow, "gesture", "unexpected touch id %d", ev.ID)
		return nil
	}

	delta := newPositions[0].Sub(newPositions[1])
	distance := delta.Magnitude()
	midpoint := geometry.Midpoint(newPositions[0], newPositions[1])
	angle := delta.Angle()

	if gc.mode == GesturePan {
		if math.Abs(distance-gc.distanceStart) > ZoomThreshold {
			gc.mode = GestureZoom
		} else if midpoint.Sub(gc.midpointStart).Magnitude() > TiltThreshold {
			gc.mode = GestureTilt
		} else if math.Abs(angle-gc.angleStart) > RotateThreshold {
			gc.mode = GestureRotate
		}
	}

	oldDelta := oldPositions[0].Sub(oldPositions[1])

	switch gc.mode {
	case GestureZoom:
		return []Event{EventZoom{
			Factor: oldDelta.Magnitude() / distance,
			Anchor: other,
		}}
	case GestureRotate:
		return []Event{EventRotate{
			Rotation: -(angle - oldDelta.Angle()),
		}}
	case GestureTilt:
		lastMidpoint := geometry.Midpoint(oldPositions[0], oldPositions[1])
		return []Event{EventRotate{
			Tilt: midpoint.Sub(lastMidpoint).Y,
		}}
	}

	lastMidpoint := geometry.Midpoint(oldPositions[0], oldPositions[1])
	return []Event{EventPan{
		Delta:    midpoint.Sub(lastMidpoint),
		Midpoint: midpoint,
	}}
}
