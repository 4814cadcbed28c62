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

package evdev

import (
	"context"
	"encoding/binary"
	"errors"
	"io"
	"math"

	"github.com/tidemap/mapinput/curated"
	"github.com/tidemap/mapinput/geometry"
	"github.com/tidemap/mapinput/logger"
	"github.com/tidemap/mapinput/userinput"
)

// Axis is the range of values reported by an absolute axis.
type Axis struct {
	Min int32
	Max int32
}

// scale value to the range zero to size.
func (a Axis) scale(value int32, size float64) float64 {
	if a.Max <= a.Min {
		return float64(value)
	}
	v := math.Max(float64(a.Min), math.Min(float64(a.Max), float64(value)))
	return (v - float64(a.Min)) / float64(a.Max-a.Min) * size
}

// Config for a Device.
type Config struct {
	// ranges of the absolute position axes. for multitouch devices these
	// are the ABS_MT_POSITION_X and ABS_MT_POSITION_Y ranges
	X Axis
	Y Axis

	// size of the screen the device is mapped onto
	Screen geometry.Vector

	// size of each input_event record. RecordSize is used if zero
	RecordSize int
}

// rawEvent is the useful part of a struct input_event.
type rawEvent struct {
	typ   uint16
	code  uint16
	value int32
}

type slot struct {
	// tracking ID of the contact. -1 if there is no contact
	id int32

	position geometry.Point

	// changes since the last SYN_REPORT
	started bool
	moved   bool

	// tracking ID and last position of a contact that ended since the last
	// SYN_REPORT
	endedID       int32
	endedPosition geometry.Point
}

// Device converts a stream of input_event records to userinput events.
type Device struct {
	r   io.Reader
	cfg Config
	buf []byte

	slots   [maxSlots]slot
	current int

	// set once an ABS_MT event has been seen. the legacy single touch events
	// that multitouch devices also send are ignored once this is true
	multitouch bool

	// tracking IDs for single touch devices
	nextID int32

	pointer      geometry.Point
	pointerMoved bool

	// button and scroll events since the last SYN_REPORT
	pending []userinput.Event

	// true between a SYN_DROPPED and the next SYN_REPORT
	dropping bool
}

// NewDevice is the preferred method of initialisation for the Device type.
func NewDevice(r io.Reader, cfg Config) *Device {
	if cfg.RecordSize == 0 {
		cfg.RecordSize = RecordSize
	}

	dev := &Device{
		r:   r,
		cfg: cfg,
		buf: make([]byte, cfg.RecordSize),
		pointer: geometry.Point{
			X: cfg.Screen.X / 2,
			Y: cfg.Screen.Y / 2,
		},
	}

	for i := range dev.slots {
		dev.slots[i].id = -1
		dev.slots[i].endedID = -1
	}

	return dev
}

func (dev *Device) read() (rawEvent, error) {
	if _, err := io.ReadFull(dev.r, dev.buf); err != nil {
		return rawEvent{}, err
	}

	// the timeval occupies the start of the record and is not needed
	n := dev.cfg.RecordSize
	return rawEvent{
		typ:   binary.LittleEndian.Uint16(dev.buf[n-8 : n-6]),
		code:  binary.LittleEndian.Uint16(dev.buf[n-6 : n-4]),
		value: int32(binary.LittleEndian.Uint32(dev.buf[n-4 : n])),
	}, nil
}

// ReadFrame reads records until the next SYN_REPORT and returns the events
// of that frame. The slice may be empty. Returns io.EOF when the stream ends
// on a frame boundary.
func (dev *Device) ReadFrame() ([]userinput.Event, error) {
	for {
		ev, err := dev.read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, io.EOF
			}
			return nil, curated.Errorf("evdev: %v", err)
		}

		if events, ok := dev.handle(ev); ok {
			return events, nil
		}
	}
}

// Run reads frames and passes the events to push until the stream ends or the
// context is done. If the reader implements io.Closer it is closed when the
// context is done so that a blocked read returns.
func (dev *Device) Run(ctx context.Context, push func(userinput.Event)) error {
	if c, ok := dev.r.(io.Closer); ok {
		done := make(chan struct{})
		defer close(done)
		go func() {
			select {
			case <-ctx.Done():
				c.Close()
			case <-done:
			}
		}()
	}

	for {
		events, err := dev.ReadFrame()
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		for _, ev := range events {
			push(ev)
		}
	}
}

// handle a single record. returns the events of the frame and true when the
// record ends a frame.
func (dev *Device) handle(ev rawEvent) ([]userinput.Event, bool) {
	// everything up to the next SYN_REPORT is ignored after a SYN_DROPPED
	if dev.dropping && ev.typ != evSyn {
		return nil, false
	}

	switch ev.typ {
	case evSyn:
		switch ev.code {
		case synReport:
			if dev.dropping {
				dev.dropping = false
				dev.discard()
				return []userinput.Event{}, true
			}
			return dev.commit(), true
		case synDropped:
			logger.Log(logger.Allow, "evdev", "events dropped by kernel")
			dev.dropping = true
		}

	case evKey:
		dev.key(ev.code, ev.value)

	case evRel:
		dev.rel(ev.code, ev.value)

	case evAbs:
		dev.abs(ev.code, ev.value)
	}

	return nil, false
}

func (dev *Device) key(code uint16, value int32) {
	// value 2 is autorepeat
	if value == 2 {
		return
	}

	var button userinput.MouseButton
	switch code {
	case btnLeft:
		button = userinput.MouseButtonLeft
	case btnRight:
		button = userinput.MouseButtonRight
	case btnMiddle:
		button = userinput.MouseButtonMiddle
	case btnSide, btnExtra:
		button = userinput.MouseButtonOther
	case btnTouch:
		if dev.multitouch {
			return
		}
		s := &dev.slots[0]
		if value == 1 && s.id < 0 {
			s.id = dev.nextID
			s.started = true
			dev.nextID++
		} else if value == 0 && s.id >= 0 {
			dev.endContact(s)
		}
		return
	default:
		return
	}

	if value == 1 {
		dev.pending = append(dev.pending, userinput.EventButtonPressed{Button: button})
	} else {
		dev.pending = append(dev.pending, userinput.EventButtonReleased{Button: button})
	}
}

func (dev *Device) rel(code uint16, value int32) {
	switch code {
	case relX:
		dev.pointer.X = math.Max(0, math.Min(dev.cfg.Screen.X, dev.pointer.X+float64(value)))
		dev.pointerMoved = true
	case relY:
		dev.pointer.Y = math.Max(0, math.Min(dev.cfg.Screen.Y, dev.pointer.Y+float64(value)))
		dev.pointerMoved = true
	case relWheel:
		dev.pending = append(dev.pending, userinput.EventScroll{Delta: geometry.Vector{Y: float64(value)}})
	case relHWheel:
		dev.pending = append(dev.pending, userinput.EventScroll{Delta: geometry.Vector{X: float64(value)}})
	}
}

func (dev *Device) abs(code uint16, value int32) {
	switch code {
	case absMTSlot:
		dev.multitouch = true
		if value < 0 || int(value) >= maxSlots {
			logger.Logf(logger.Allow, "evdev", "slot %d out of range", value)
			dev.current = -1
			return
		}
		dev.current = int(value)

	case absMTTrackingID:
		dev.multitouch = true
		if dev.current < 0 {
			return
		}
		s := &dev.slots[dev.current]
		if value < 0 {
			if s.id >= 0 {
				dev.endContact(s)
			}
			return
		}
		if s.id >= 0 && s.id != value {
			dev.endContact(s)
		}
		if s.id != value {
			s.id = value
			s.started = true
		}

	case absMTPositionX:
		dev.multitouch = true
		if dev.current >= 0 {
			dev.slots[dev.current].position.X = dev.cfg.X.scale(value, dev.cfg.Screen.X)
			dev.slots[dev.current].moved = true
		}

	case absMTPositionY:
		dev.multitouch = true
		if dev.current >= 0 {
			dev.slots[dev.current].position.Y = dev.cfg.Y.scale(value, dev.cfg.Screen.Y)
			dev.slots[dev.current].moved = true
		}

	case absX:
		if !dev.multitouch {
			dev.slots[0].position.X = dev.cfg.X.scale(value, dev.cfg.Screen.X)
			dev.slots[0].moved = true
		}

	case absY:
		if !dev.multitouch {
			dev.slots[0].position.Y = dev.cfg.Y.scale(value, dev.cfg.Screen.Y)
			dev.slots[0].moved = true
		}
	}
}

// end the contact in the slot. a contact that started and ended in the same
// frame is forgotten without producing any events.
func (dev *Device) endContact(s *slot) {
	if !s.started {
		s.endedID = s.id
		s.endedPosition = s.position
	}
	s.id = -1
	s.started = false
	s.moved = false
}

// commit the changes since the last SYN_REPORT and return the resulting
// events.
func (dev *Device) commit() []userinput.Event {
	events := make([]userinput.Event, 0, len(dev.pending)+2)

	if dev.pointerMoved {
		events = append(events, userinput.EventPointerMoved{Position: dev.pointer})
		dev.pointerMoved = false
	}

	events = append(events, dev.pending...)
	dev.pending = dev.pending[:0]

	for i := range dev.slots {
		s := &dev.slots[i]

		if s.endedID >= 0 {
			events = append(events, userinput.EventTouchEnd{Touch: userinput.Touch{
				ID:       userinput.TouchID(s.endedID),
				Position: s.endedPosition,
			}})
			s.endedID = -1
		}

		if s.id >= 0 {
			t := userinput.Touch{ID: userinput.TouchID(s.id), Position: s.position}
			if s.started {
				events = append(events, userinput.EventTouchStart{Touch: t})
			} else if s.moved {
				events = append(events, userinput.EventTouchMove{Touch: t})
			}
		}

		s.started = false
		s.moved = false
	}

	return events
}

// discard the changes since the last SYN_REPORT. contacts that were started
// during the frame are forgotten.
func (dev *Device) discard() {
	dev.pending = dev.pending[:0]
	dev.pointerMoved = false
	for i := range dev.slots {
		s := &dev.slots[i]
		if s.started {
			s.id = -1
		}
		s.started = false
		s.moved = false
		s.endedID = -1
	}
}
