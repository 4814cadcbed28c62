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
	"fmt"
	"io"
	"os"
	"time"

	"github.com/tidemap/mapinput/control"
	"github.com/tidemap/mapinput/curated"
	"github.com/tidemap/mapinput/logger"
	"github.com/tidemap/mapinput/userinput"
)

// Recorder transcribes raw input events as they happen.
type Recorder struct {
	output io.Writer

	// output is closed by End() if it implements io.Closer
	closer io.Closer

	clock control.Clock
	start time.Time
}

// NewRecorder creates the transcript file and writes the header. If clock is
// nil then control.SystemClock is used.
func NewRecorder(transcript string, clock control.Clock) (*Recorder, error) {
	f, err := os.Create(transcript)
	if err != nil {
		return nil, curated.Errorf("recorder: %v", err)
	}

	rec, err := NewRecorderWriter(f, clock)
	if err != nil {
		f.Close()
		return nil, err
	}

	return rec, nil
}

// NewRecorderWriter is like NewRecorder() but writes to an existing writer.
// Offsets in the transcript are measured from the moment of this call.
func NewRecorderWriter(output io.Writer, clock control.Clock) (*Recorder, error) {
	if clock == nil {
		clock = control.SystemClock{}
	}

	rec := &Recorder{
		output: output,
		clock:  clock,
		start:  clock.Now(),
	}

	if c, ok := output.(io.Closer); ok {
		rec.closer = c
	}

	if _, err := fmt.Fprintln(rec.output, header); err != nil {
		return nil, curated.Errorf("recorder: %v", err)
	}

	return rec, nil
}

// RecordEvent adds the event to the transcript.
func (rec *Recorder) RecordEvent(ev userinput.Event) error {
	offset := rec.clock.Now().Sub(rec.start)
	if offset < 0 {
		offset = 0
	}

	line, err := encode(offset, ev)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintln(rec.output, line); err != nil {
		return curated.Errorf("recorder: %v", err)
	}

	return nil
}

// Tee returns a function that records the event before passing it to
// consume. Recording errors are logged and do not stop the event.
func (rec *Recorder) Tee(consume func(userinput.Event)) func(userinput.Event) {
	return func(ev userinput.Event) {
		if err := rec.RecordEvent(ev); err != nil {
			logger.Log(logger.Allow, "recorder", err.Error())
		}
		consume(ev)
	}
}

// End the recording. The output is closed if possible.
func (rec *Recorder) End() error {
	if rec.closer == nil {
		return nil
	}
	if err := rec.closer.Close(); err != nil {
		return curated.Errorf("recorder: %v", err)
	}
	return nil
}
