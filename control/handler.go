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
	"github.com/tidemap/mapinput/geometry"
	"github.com/tidemap/mapinput/logger"
)

// Propagation is the value returned by a Handler to indicate whether the
// event should be offered to the next handler in the chain.
type Propagation int

// List of valid Propagation values.
const (
	Propagate Propagation = iota
	Stop
	Consume
)

func (p Propagation) String() string {
	switch p {
	case Propagate:
		return "Propagate"
	case Stop:
		return "Stop"
	case Consume:
		return "Consume"
	}
	return "unknown propagation"
}

// View is the part of the map view used by the Processor. It is only used to
// produce the log entry for a click.
type View interface {
	// ScreenToMap converts a screen position to a map position. Returns false
	// if the screen position does not correspond to a map position.
	ScreenToMap(geometry.Point) (geometry.Point, bool)
}

// Handler implementations react to semantic events. The second argument is
// the map the Processor is attached to, which the handler may change.
type Handler[M any] interface {
	HandleUserEvent(ev Event, m M) Propagation
}

// HandlerFunc allows an ordinary function to be used as a Handler.
type HandlerFunc[M any] func(ev Event, m M) Propagation

// HandleUserEvent implements the Handler interface.
func (f HandlerFunc[M]) HandleUserEvent(ev Event, m M) Propagation {
	return f(ev, m)
}

// EventLogger is a Handler that logs every event it sees and lets the event
// propagate. It should be added to the front of the handler chain if it is to
// see all events.
type EventLogger[M any] struct {
	Perm logger.Permission
}

// HandleUserEvent implements the Handler interface.
func (l EventLogger[M]) HandleUserEvent(ev Event, _ M) Propagation {
	perm := l.Perm
	if perm == nil {
		perm = logger.Allow
	}
	logger.Log(perm, "event", ev.String())
	return Propagate
}
