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

package wsinput

import (
	"encoding/json"

	"github.com/tidemap/mapinput/curated"
	"github.com/tidemap/mapinput/geometry"
	"github.com/tidemap/mapinput/userinput"
)

// Message is the JSON form of a userinput event.
type Message struct {
	Type   string  `json:"type"`
	Button string  `json:"button,omitempty"`
	ID     uint64  `json:"id,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	DX     float64 `json:"dx,omitempty"`
	DY     float64 `json:"dy,omitempty"`
}

// list of valid Message types.
const (
	TypePressed    = "pressed"
	TypeReleased   = "released"
	TypeMoved      = "moved"
	TypeScroll     = "scroll"
	TypeTouchStart = "touchstart"
	TypeTouchMove  = "touchmove"
	TypeTouchEnd   = "touchend"
)

// Encode the event as a JSON message.
func Encode(ev userinput.Event) ([]byte, error) {
	var msg Message

	touch := func(typ string, t userinput.Touch) {
		msg = Message{Type: typ, ID: uint64(t.ID), X: t.Position.X, Y: t.Position.Y}
	}

	switch ev := ev.(type) {
	case userinput.EventButtonPressed:
		msg = Message{Type: TypePressed, Button: ev.Button.String()}
	case userinput.EventButtonReleased:
		msg = Message{Type: TypeReleased, Button: ev.Button.String()}
	case userinput.EventPointerMoved:
		msg = Message{Type: TypeMoved, X: ev.Position.X, Y: ev.Position.Y}
	case userinput.EventScroll:
		msg = Message{Type: TypeScroll, DX: ev.Delta.X, DY: ev.Delta.Y}
	case userinput.EventTouchStart:
		touch(TypeTouchStart, ev.Touch)
	case userinput.EventTouchMove:
		touch(TypeTouchMove, ev.Touch)
	case userinput.EventTouchEnd:
		touch(TypeTouchEnd, ev.Touch)
	default:
		return nil, curated.Errorf("wsinput: cannot encode %T", ev)
	}

	b, err := json.Marshal(msg)
	if err != nil {
		return nil, curated.Errorf("wsinput: %v", err)
	}
	return b, nil
}

// Decode a JSON message.
func Decode(b []byte) (userinput.Event, error) {
	var msg Message
	if err := json.Unmarshal(b, &msg); err != nil {
		return nil, curated.Errorf("wsinput: %v", err)
	}

	touch := userinput.Touch{
		ID:       userinput.TouchID(msg.ID),
		Position: geometry.Point{X: msg.X, Y: msg.Y},
	}

	switch msg.Type {
	case TypePressed, TypeReleased:
		button, ok := userinput.ParseMouseButton(msg.Button)
		if !ok {
			return nil, curated.Errorf("wsinput: unknown button (%s)", msg.Button)
		}
		if msg.Type == TypePressed {
			return userinput.EventButtonPressed{Button: button}, nil
		}
		return userinput.EventButtonReleased{Button: button}, nil
	case TypeMoved:
		return userinput.EventPointerMoved{Position: geometry.Point{X: msg.X, Y: msg.Y}}, nil
	case TypeScroll:
		return userinput.EventScroll{Delta: geometry.Vector{X: msg.DX, Y: msg.DY}}, nil
	case TypeTouchStart:
		return userinput.EventTouchStart{Touch: touch}, nil
	case TypeTouchMove:
		return userinput.EventTouchMove{Touch: touch}, nil
	case TypeTouchEnd:
		return userinput.EventTouchEnd{Touch: touch}, nil
	}

	return nil, curated.Errorf("wsinput: unknown message type (%s)", msg.Type)
}
