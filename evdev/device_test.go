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

package evdev_test

import (
	"bytes"
	"context"
	"encoding/binary"
	"io"
	"testing"

	"github.com/tidemap/mapinput/evdev"
	"github.com/tidemap/mapinput/geometry"
	"github.com/tidemap/mapinput/test"
	"github.com/tidemap/mapinput/userinput"
)

// stream builds a sequence of 24 byte input_event records
type stream struct {
	bytes.Buffer
}

func (s *stream) ev(typ uint16, code uint16, value int32) *stream {
	var rec [evdev.RecordSize]byte
	binary.LittleEndian.PutUint16(rec[16:], typ)
	binary.LittleEndian.PutUint16(rec[18:], code)
	binary.LittleEndian.PutUint32(rec[20:], uint32(value))
	s.Write(rec[:])
	return s
}

func (s *stream) syn() *stream {
	return s.ev(0x00, 0x00, 0)
}

func (s *stream) slot(n int32) *stream {
	return s.ev(0x03, 0x2f, n)
}

func (s *stream) tracking(id int32) *stream {
	return s.ev(0x03, 0x39, id)
}

func (s *stream) mtpos(x int32, y int32) *stream {
	return s.ev(0x03, 0x35, x).ev(0x03, 0x36, y)
}

var cfg = evdev.Config{
	X:      evdev.Axis{Min: 0, Max: 1000},
	Y:      evdev.Axis{Min: 0, Max: 1000},
	Screen: geometry.Vector{X: 800, Y: 600},
}

func touch(id userinput.TouchID, x, y float64) userinput.Touch {
	return userinput.Touch{ID: id, Position: geometry.Point{X: x, Y: y}}
}

func frame(t *testing.T, dev *evdev.Device) []userinput.Event {
	t.Helper()
	events, err := dev.ReadFrame()
	test.DemandSuccess(t, err)
	return events
}

func expectEvents(t *testing.T, events []userinput.Event, expected ...userinput.Event) {
	t.Helper()
	if !test.ExpectEquality(t, len(events), len(expected)) {
		t.Logf("%v", events)
		return
	}
	for i := range events {
		test.ExpectEquality(t, events[i], expected[i], i)
	}
}

func TestMultitouch(t *testing.T) {
	s := &stream{}

	// first finger down
	s.slot(0).tracking(45).mtpos(500, 500).syn()

	// second finger down and first finger moves
	s.mtpos(250, 500).slot(1).tracking(46).mtpos(750, 250).syn()

	// second finger moves
	s.mtpos(1000, 0).syn()

	// first finger up
	s.slot(0).tracking(-1).syn()

	// second finger up
	s.slot(1).tracking(-1).syn()

	dev := evdev.NewDevice(s, cfg)

	expectEvents(t, frame(t, dev),
		userinput.EventTouchStart{Touch: touch(45, 400, 300)})
	expectEvents(t, frame(t, dev),
		userinput.EventTouchMove{Touch: touch(45, 200, 300)},
		userinput.EventTouchStart{Touch: touch(46, 600, 150)})
	expectEvents(t, frame(t, dev),
		userinput.EventTouchMove{Touch: touch(46, 800, 0)})
	expectEvents(t, frame(t, dev),
		userinput.EventTouchEnd{Touch: touch(45, 200, 300)})
	expectEvents(t, frame(t, dev),
		userinput.EventTouchEnd{Touch: touch(46, 800, 0)})

	_, err := dev.ReadFrame()
	test.ExpectEquality(t, err, io.EOF)
}

func TestTrackingIDReplaced(t *testing.T) {
	s := &stream{}
	s.slot(0).tracking(1).mtpos(0, 0).syn()

	// the first contact ends and a new one begins in the same slot and frame
	s.tracking(2).mtpos(1000, 1000).syn()

	dev := evdev.NewDevice(s, cfg)
	expectEvents(t, frame(t, dev), userinput.EventTouchStart{Touch: touch(1, 0, 0)})
	expectEvents(t, frame(t, dev),
		userinput.EventTouchEnd{Touch: touch(1, 0, 0)},
		userinput.EventTouchStart{Touch: touch(2, 800, 600)})
}

func TestShortContact(t *testing.T) {
	s := &stream{}

	// a contact that begins and ends within one frame produces nothing
	s.slot(0).tracking(9).mtpos(100, 100).tracking(-1).syn()

	dev := evdev.NewDevice(s, cfg)
	expectEvents(t, frame(t, dev))
}

func TestSingleTouch(t *testing.T) {
	s := &stream{}
	s.ev(0x01, 0x14a, 1).ev(0x03, 0x00, 500).ev(0x03, 0x01, 0).syn()
	s.ev(0x03, 0x00, 1000).syn()
	s.ev(0x01, 0x14a, 0).syn()
	s.ev(0x01, 0x14a, 1).syn()

	dev := evdev.NewDevice(s, cfg)
	expectEvents(t, frame(t, dev), userinput.EventTouchStart{Touch: touch(0, 400, 0)})
	expectEvents(t, frame(t, dev), userinput.EventTouchMove{Touch: touch(0, 800, 0)})
	expectEvents(t, frame(t, dev), userinput.EventTouchEnd{Touch: touch(0, 800, 0)})

	// every new contact gets a new ID
	expectEvents(t, frame(t, dev), userinput.EventTouchStart{Touch: touch(1, 800, 0)})
}

func TestLegacyEventsIgnored(t *testing.T) {
	s := &stream{}

	// multitouch devices also send single touch events
	s.slot(0).tracking(3).mtpos(500, 500).ev(0x01, 0x14a, 1).ev(0x03, 0x00, 0).syn()

	dev := evdev.NewDevice(s, cfg)
	expectEvents(t, frame(t, dev), userinput.EventTouchStart{Touch: touch(3, 400, 300)})
}

func TestMouse(t *testing.T) {
	s := &stream{}
	s.ev(0x02, 0x00, 10).ev(0x02, 0x01, -20).syn()
	s.ev(0x01, 0x110, 1).syn()
	s.ev(0x01, 0x110, 2).syn()
	s.ev(0x02, 0x00, 5).ev(0x01, 0x110, 0).ev(0x02, 0x08, -1).syn()
	s.ev(0x02, 0x00, 10000).ev(0x01, 0x111, 1).ev(0x01, 0x113, 1).ev(0x02, 0x06, 1).syn()

	dev := evdev.NewDevice(s, cfg)

	// the pointer starts at the centre of the screen
	expectEvents(t, frame(t, dev),
		userinput.EventPointerMoved{Position: geometry.Point{X: 410, Y: 280}})
	expectEvents(t, frame(t, dev),
		userinput.EventButtonPressed{Button: userinput.MouseButtonLeft})

	// autorepeat
	expectEvents(t, frame(t, dev))

	expectEvents(t, frame(t, dev),
		userinput.EventPointerMoved{Position: geometry.Point{X: 415, Y: 280}},
		userinput.EventButtonReleased{Button: userinput.MouseButtonLeft},
		userinput.EventScroll{Delta: geometry.Vector{X: 0, Y: -1}})

	// pointer is clamped to the screen
	expectEvents(t, frame(t, dev),
		userinput.EventPointerMoved{Position: geometry.Point{X: 800, Y: 280}},
		userinput.EventButtonPressed{Button: userinput.MouseButtonRight},
		userinput.EventButtonPressed{Button: userinput.MouseButtonOther},
		userinput.EventScroll{Delta: geometry.Vector{X: 1, Y: 0}})
}

func TestDropped(t *testing.T) {
	s := &stream{}
	s.slot(0).tracking(1).mtpos(0, 0).syn()

	// SYN_DROPPED. everything up to and including the next SYN_REPORT is
	// ignored
	s.ev(0x00, 0x03, 0).mtpos(1000, 1000).syn()
	s.mtpos(500, 500).syn()

	dev := evdev.NewDevice(s, cfg)
	expectEvents(t, frame(t, dev), userinput.EventTouchStart{Touch: touch(1, 0, 0)})
	expectEvents(t, frame(t, dev))
	expectEvents(t, frame(t, dev), userinput.EventTouchMove{Touch: touch(1, 400, 300)})
}

func TestRecordSize(t *testing.T) {
	// 16 byte records, as found on 32 bit platforms
	var b bytes.Buffer
	write := func(typ uint16, code uint16, value int32) {
		var rec [16]byte
		binary.LittleEndian.PutUint16(rec[8:], typ)
		binary.LittleEndian.PutUint16(rec[10:], code)
		binary.LittleEndian.PutUint32(rec[12:], uint32(value))
		b.Write(rec[:])
	}
	write(0x03, 0x2f, 0)
	write(0x03, 0x39, 7)
	write(0x03, 0x35, 1000)
	write(0x03, 0x36, 1000)
	write(0x00, 0x00, 0)

	c := cfg
	c.RecordSize = 16
	dev := evdev.NewDevice(&b, c)
	expectEvents(t, frame(t, dev), userinput.EventTouchStart{Touch: touch(7, 800, 600)})
}

func TestRun(t *testing.T) {
	s := &stream{}
	s.slot(0).tracking(1).mtpos(0, 0).syn()
	s.tracking(-1).syn()

	var events []userinput.Event
	dev := evdev.NewDevice(s, cfg)
	err := dev.Run(context.Background(), func(ev userinput.Event) {
		events = append(events, ev)
	})
	test.ExpectSuccess(t, err)
	expectEvents(t, events,
		userinput.EventTouchStart{Touch: touch(1, 0, 0)},
		userinput.EventTouchEnd{Touch: touch(1, 0, 0)})
}

func TestTruncated(t *testing.T) {
	s := &stream{}
	s.slot(0)
	s.Write([]byte{1, 2, 3})

	dev := evdev.NewDevice(s, cfg)
	_, err := dev.ReadFrame()
	test.ExpectFailure(t, err)
	test.ExpectInequality(t, err, io.EOF)
}
