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
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/tidemap/mapinput/control"
	"github.com/tidemap/mapinput/curated"
	"github.com/tidemap/mapinput/userinput"
)

// the time of the first event in every playback. an arbitrary point well after
// the zero time.Time value so that a Processor's initial button and click
// times are never mistaken as recent
var epoch = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

type playbackEntry struct {
	offset time.Duration
	event  userinput.Event

	// the line in the transcript the event appears
	line int
}

// Playback reperforms the events of a previously recorded transcript. It
// implements the control.Clock interface, the current time being the time of
// the most recent event returned by Next().
type Playback struct {
	// name of the transcript file. empty if the transcript was not read
	// from a file
	Transcript string

	sequence []playbackEntry
	seqCt    int
}

func (plb *Playback) String() string {
	if len(plb.sequence) == 0 {
		return "0/0"
	}
	return fmt.Sprintf("%d/%d (%.1f%%)", plb.seqCt, len(plb.sequence), 100*float64(plb.seqCt)/float64(len(plb.sequence)))
}

// NewPlayback reads the named transcript.
func NewPlayback(transcript string) (*Playback, error) {
	f, err := os.Open(transcript)
	if err != nil {
		return nil, curated.Errorf("playback: %v", err)
	}
	defer f.Close()

	plb, err := ReadPlayback(f)
	if err != nil {
		return nil, err
	}
	plb.Transcript = transcript

	return plb, nil
}

// ReadPlayback is like NewPlayback() but reads the transcript from an
// io.Reader.
func ReadPlayback(r io.Reader) (*Playback, error) {
	plb := &Playback{
		sequence: make([]playbackEntry, 0),
	}

	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, curated.Errorf("playback: %v", err)
		}
		return nil, curated.Errorf("playback: empty transcript")
	}
	if strings.TrimSpace(scanner.Text()) != header {
		return nil, curated.Errorf("playback: not a mapinput transcript")
	}

	num := 1
	var last time.Duration
	for scanner.Scan() {
		num++

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		offset, ev, err := decode(line, num)
		if err != nil {
			return nil, err
		}
		if offset < last {
			return nil, curated.Errorf("playback: offset out of order at line %d", num)
		}
		last = offset

		plb.sequence = append(plb.sequence, playbackEntry{
			offset: offset,
			event:  ev,
			line:   num,
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf("playback: %v", err)
	}

	return plb, nil
}

// Len returns the number of events in the playback.
func (plb *Playback) Len() int {
	return len(plb.sequence)
}

// Now implements the control.Clock interface.
func (plb *Playback) Now() time.Time {
	if plb.seqCt == 0 {
		return epoch
	}
	return epoch.Add(plb.sequence[plb.seqCt-1].offset)
}

// Next returns the next event in the playback and advances the clock to the
// time of that event. Returns false if there are no more events.
func (plb *Playback) Next() (userinput.Event, bool) {
	if plb.seqCt >= len(plb.sequence) {
		return nil, false
	}
	ev := plb.sequence[plb.seqCt].event
	plb.seqCt++
	return ev, true
}

// Rewind the playback to the beginning.
func (plb *Playback) Rewind() {
	plb.seqCt = 0
}

// Drive sends every remaining event in the playback to the processor. The
// processor should have been created with the playback as its clock.
//
// If realtime is true then Drive waits between events for the recorded amount
// of time, otherwise events are sent as quickly as possible. Returns the
// number of events sent.
func Drive[M control.View](ctx context.Context, plb *Playback, proc *control.Processor[M], m M, realtime bool) (int, error) {
	n := 0
	for {
		if err := ctx.Err(); err != nil {
			return n, err
		}

		prev := plb.Now()

		ev, ok := plb.Next()
		if !ok {
			return n, nil
		}

		if d := plb.Now().Sub(prev); realtime && d > 0 {
			select {
			case <-time.After(d):
			case <-ctx.Done():
				return n, ctx.Err()
			}
		}

		proc.Handle(ev, m)
		n++
	}
}
