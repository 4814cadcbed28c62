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

package userinput

import (
	"context"

	"github.com/tidemap/mapinput/logger"
)

// Serializer is the single entry point for raw events arriving from more than
// one goroutine. Events are delivered to the consumer function passed to
// Run() one at a time, in the order they were accepted.
type Serializer struct {
	events chan Event
}

// NewSerializer is the preferred method of initialisation for the Serializer
// type. The queue value is the number of events that can be pending before
// Push() blocks.
func NewSerializer(queue int) *Serializer {
	return &Serializer{
		events: make(chan Event, queue),
	}
}

// Push queues the event, blocking until there is room in the queue or until
// the context is done.
func (s *Serializer) Push(ctx context.Context, ev Event) error {
	select {
	case s.events <- ev:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// TryPush queues the event if there is room, otherwise the event is dropped and
// the drop is logged. Should only be used for events that are superseded by
// later events of the same kind (pointer motion, for example).
func (s *Serializer) TryPush(ev Event) bool {
	select {
	case s.events <- ev:
		return true
	default:
		logger.Logf(logger.Allow, "userinput", "dropped %s event", ev)
		return false
	}
}

// Run delivers queued events to the consumer until the context is done. Only
// one goroutine should call Run() for a Serializer.
func (s *Serializer) Run(ctx context.Context, consume func(Event)) error {
	for {
		select {
		case ev := <-s.events:
			consume(ev)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
