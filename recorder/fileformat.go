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

package recorder

import (
	"strconv"
	"strings"
	"time"

	"github.com/tidemap/mapinput/curated"
	"github.com/tidemap/mapinput/geometry"
	"github.com/tidemap/mapinput/userinput"
)

const header = "mapinput transcript v1"

const fieldSep = ", "

// the first two fields of every line
const (
	fieldOffset int = iota
	fieldEvent
	numFixedFields
)

// names of events in the transcript
const (
	evPressed    = "pressed"
	evReleased   = "released"
	evMoved      = "moved"
	evScroll     = "scroll"
	evTouchStart = "touchstart"
	evTouchMove  = "touchmove"
	evTouchEnd   = "touchend"
)

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// encode the event as a single transcript line, without the line terminator
func encode(offset time.Duration, ev userinput.Event) (string, error) {
	toks := []string{strconv.FormatInt(offset.Milliseconds(), 10)}

	touch := func(name string, t userinput.Touch) {
		toks = append(toks, name, strconv.FormatUint(uint64(t.ID), 10),
			formatFloat(t.Position.X), formatFloat(t.Position.Y))
	}

	switch ev := ev.(type) {
	case userinput.EventButtonPressed:
		toks = append(toks, evPressed, ev.Button.String())
	case userinput.EventButtonReleased:
		toks = append(toks, evReleased, ev.Button.String())
	case userinput.EventPointerMoved:
		toks = append(toks, evMoved, formatFloat(ev.Position.X), formatFloat(ev.Position.Y))
	case userinput.EventScroll:
		toks = append(toks, evScroll, formatFloat(ev.Delta.X), formatFloat(ev.Delta.Y))
	case userinput.EventTouchStart:
		touch(evTouchStart, ev.Touch)
	case userinput.EventTouchMove:
		touch(evTouchMove, ev.Touch)
	case userinput.EventTouchEnd:
		touch(evTouchEnd, ev.Touch)
	default:
		return "", curated.Errorf("recorder: cannot record %T", ev)
	}

	return strings.Join(toks, fieldSep), nil
}

// decode a transcript line. the line number is used for error messages only
func decode(line string, num int) (time.Duration, userinput.Event, error) {
	toks := strings.Split(line, fieldSep)
	if len(toks) < numFixedFields {
		return 0, nil, curated.Errorf("playback: too few fields at line %d", num)
	}

	ms, err := strconv.ParseInt(toks[fieldOffset], 10, 64)
	if err != nil {
		return 0, nil, curated.Errorf("playback: %v at line %d", err, num)
	}
	if ms < 0 {
		return 0, nil, curated.Errorf("playback: negative offset at line %d", num)
	}
	offset := time.Duration(ms) * time.Millisecond

	kind := toks[fieldEvent]
	args := toks[numFixedFields:]

	expect := func(n int) error {
		if len(args) != n {
			return curated.Errorf("playback: %s expects %d fields at line %d", kind, n, num)
		}
		return nil
	}

	floats := func(s ...string) ([]float64, error) {
		f := make([]float64, len(s))
		for i := range s {
			f[i], err = strconv.ParseFloat(s[i], 64)
			if err != nil {
				return nil, curated.Errorf("playback: %v at line %d", err, num)
			}
		}
		return f, nil
	}

	switch kind {
	case evPressed, evReleased:
		if err := expect(1); err != nil {
			return 0, nil, err
		}
		b, ok := userinput.ParseMouseButton(args[0])
		if !ok {
			return 0, nil, curated.Errorf("playback: unknown button %s at line %d", args[0], num)
		}
		if kind == evPressed {
			return offset, userinput.EventButtonPressed{Button: b}, nil
		}
		return offset, userinput.EventButtonReleased{Button: b}, nil

	case evMoved, evScroll:
		if err := expect(2); err != nil {
			return 0, nil, err
		}
		f, err := floats(args...)
		if err != nil {
			return 0, nil, err
		}
		if kind == evMoved {
			return offset, userinput.EventPointerMoved{Position: geometry.Point{X: f[0], Y: f[1]}}, nil
		}
		return offset, userinput.EventScroll{Delta: geometry.Vector{X: f[0], Y: f[1]}}, nil

	case evTouchStart, evTouchMove, evTouchEnd:
		if err := expect(3); err != nil {
			return 0, nil, err
		}
		id, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return 0, nil, curated.Errorf("playback: %v at line %d", err, num)
		}
		f, err := floats(args[1:]...)
		if err != nil {
			return 0, nil, err
		}
		t := userinput.Touch{ID: userinput.TouchID(id), Position: geometry.Point{X: f[0], Y: f[1]}}
		switch kind {
		case evTouchStart:
			return offset, userinput.EventTouchStart{Touch: t}, nil
		case evTouchMove:
			return offset, userinput.EventTouchMove{Touch: t}, nil
		}
		return offset, userinput.EventTouchEnd{Touch: t}, nil
	}

	return 0, nil, curated.Errorf("playback: unknown event %s at line %d", kind, num)
}
