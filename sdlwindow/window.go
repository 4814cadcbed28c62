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

package sdlwindow

import (
	"fmt"
	"io"
	"sync"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/tidemap/mapinput/curated"
	"github.com/tidemap/mapinput/geometry"
	"github.com/tidemap/mapinput/logger"
	"github.com/tidemap/mapinput/mapview"
	"github.com/tidemap/mapinput/userinput"
)

// how long Service() waits for an SDL event, in milliseconds
const waitTimeout = 16

// Sink receives the translated events. Service() must not block so events
// are dropped if the sink is full. userinput.Serializer implements this
// interface.
type Sink interface {
	TryPush(ev userinput.Event) bool
}

// Window is an SDL window with a renderer. Service() and Destroy() must be
// called from the thread that called NewWindow(). The other functions are
// safe to call from any goroutine.
type Window struct {
	window   *sdl.Window
	renderer *sdl.Renderer

	sink Sink

	crit sync.Mutex
	size geometry.Vector
	view mapview.Map

	// closed when the window is closed by the user
	quit     chan struct{}
	quitOnce sync.Once
}

// NewWindow is the preferred method of initialisation for the Window type.
// Translated events are sent to the sink.
func NewWindow(title string, width int, height int, sink Sink) (*Window, error) {
	err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS)
	if err != nil {
		return nil, curated.Errorf("sdlwindow: %v", err)
	}

	win := &Window{
		sink: sink,
		size: geometry.Vector{X: float64(width), Y: float64(height)},
		quit: make(chan struct{}),
	}

	win.window, err = sdl.CreateWindow(title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(width), int32(height), sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE)
	if err != nil {
		win.Destroy(nil)
		return nil, curated.Errorf("sdlwindow: %v", err)
	}

	win.renderer, err = sdl.CreateRenderer(win.window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		win.Destroy(nil)
		return nil, curated.Errorf("sdlwindow: %v", err)
	}

	win.view = *mapview.NewMap(win.size.X, win.size.Y)

	return win, nil
}

// Destroy the window and shut down SDL. Any problems are written to output
// if it is not nil.
func (win *Window) Destroy(output io.Writer) {
	if win.renderer != nil {
		if err := win.renderer.Destroy(); err != nil && output != nil {
			fmt.Fprintf(output, "sdlwindow: %v\n", err)
		}
		win.renderer = nil
	}
	if win.window != nil {
		if err := win.window.Destroy(); err != nil && output != nil {
			fmt.Fprintf(output, "sdlwindow: %v\n", err)
		}
		win.window = nil
	}
	sdl.Quit()
}

// Quit returns a channel that is closed when the user closes the window.
func (win *Window) Quit() <-chan struct{} {
	return win.quit
}

// Size returns the size of the window as of the most recent call to
// Service().
func (win *Window) Size() geometry.Vector {
	win.crit.Lock()
	defer win.crit.Unlock()
	return win.size
}

// SetMap changes the map that is drawn by Service(). The map is copied.
func (win *Window) SetMap(m *mapview.Map) {
	win.crit.Lock()
	defer win.crit.Unlock()
	win.view = *m
}

// Service handles pending SDL events and redraws the window. It waits a short
// time for an event if none are pending.
func (win *Window) Service() {
	size := win.Size()

	for ev := sdl.WaitEventTimeout(waitTimeout); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			win.quitOnce.Do(func() { close(win.quit) })

		case *sdl.WindowEvent:
			if ev.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				size = geometry.Vector{X: float64(ev.Data1), Y: float64(ev.Data2)}
				win.crit.Lock()
				win.size = size
				win.crit.Unlock()
			}

		default:
			if uev, ok := translate(ev, size); ok {
				if !win.sink.TryPush(uev) {
					logger.Logf(logger.Allow, "sdlwindow", "dropped %s", uev)
				}
			}
		}
	}

	win.crit.Lock()
	view := win.view
	win.crit.Unlock()

	if err := win.DrawMap(&view); err != nil {
		logger.Log(logger.Allow, "sdlwindow", err.Error())
	}
}
