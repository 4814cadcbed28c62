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

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/bradleyjkemp/memviz"

	"github.com/tidemap/mapinput/control"
	"github.com/tidemap/mapinput/curated"
	"github.com/tidemap/mapinput/evdev"
	"github.com/tidemap/mapinput/logger"
	"github.com/tidemap/mapinput/mapview"
	"github.com/tidemap/mapinput/modalflag"
	"github.com/tidemap/mapinput/paths"
	"github.com/tidemap/mapinput/prefs"
	"github.com/tidemap/mapinput/recorder"
	"github.com/tidemap/mapinput/sdlwindow"
	"github.com/tidemap/mapinput/statsview"
	"github.com/tidemap/mapinput/userinput"
	"github.com/tidemap/mapinput/version"
	"github.com/tidemap/mapinput/wsinput"
)

// number of raw events that can be pending in the serializer
const serializerQueue = 256

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// stop the main thread handling interrupt signals. used when the launched
	// mode handles the interrupt itself.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// GuiCreator facilitates the creation, servicing and destruction of GUIs
// that need to be run in the main thread.
type GuiCreator interface {
	// cleanup resources used by the gui
	Destroy(io.Writer)

	// Service() should not pause or loop longer than necessary. It MUST ONLY
	// be called as part of a larger loop from the main thread.
	Service()
}

// communication between the main() function and the launch() function. SDL
// requires window creation and event handling to occur on the main thread.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (GuiCreator, error)

	// the result of creator will be returned on either of these two channels.
	creation      chan GuiCreator
	creationError chan error
}

// #mainthread
func main() {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (GuiCreator, error)),
		creation:      make(chan GuiCreator),
		creationError: make(chan error),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// #ctrlc default handler. can be turned off with reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	go launch(sync, os.Args[1:])

	done := false
	var gui GuiCreator
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case creator := <-sync.creator:
			var err error

			if gui != nil {
				gui.Destroy(os.Stderr)
			}

			gui, err = creator()
			if err != nil {
				sync.creationError <- err

				// a nil pointer of a concrete type is not a nil interface
				gui = nil
			} else {
				sync.creation <- gui
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if gui != nil {
					gui.Destroy(os.Stderr)
				}

				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqNoIntSig:
				signal.Stop(intChan)
				if state.args != nil {
					panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
				}
			}

		default:
			if gui != nil {
				gui.Service()
			}
		}
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate gui creation and to quit.
func launch(sync *mainSync, args []string) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "EVDEV", "WEBSOCKET", "PLAYBACK", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, sync)

	case "EVDEV":
		err = evdevMode(md, sync)

	case "WEBSOCKET":
		err = websocketMode(md, sync)

	case "PLAYBACK":
		err = playback(md, sync)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// options common to all modes
type common struct {
	log       *bool
	prefs     *string
	record    *bool
	statsview *bool
}

func addCommon(md *modalflag.Modes) common {
	c := common{
		log:   md.AddBool("log", false, "echo log to stdout"),
		prefs: md.AddString("prefs", "", "preferences override. eg. \"mapview.pan::false; window.width::800\""),
	}
	c.record = md.AddBool("record", false, "record raw input to a transcript")
	if statsview.Available() {
		c.statsview = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.DefaultAddress))
	}
	return c
}

// session is the input pipeline shared by all modes. raw events are passed
// to consume() from a single goroutine.
type session struct {
	dsk  *prefs.Disk
	proc *control.Processor[*mapview.Map]
	m    *mapview.Map
	rec  *recorder.Recorder

	// size of the window in RUN mode. also the default screen size in the
	// other modes
	width  prefs.Int
	height prefs.Int
}

// newSession loads the preferences, creates the processor and attaches the
// map controller. the clock is used for the processor and for any recording.
func newSession(ctx context.Context, c common, clock control.Clock) (*session, error) {
	if *c.log {
		logger.SetEcho(os.Stdout)
	}

	pth, err := paths.ResourcePath("", "mapinput.toml")
	if err != nil {
		return nil, err
	}

	s := &session{}

	s.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	mprefs, err := mapview.NewPreferences(s.dsk)
	if err != nil {
		return nil, err
	}

	s.width.Set(800)
	s.height.Set(600)
	if err := s.dsk.Add("window.width", &s.width); err != nil {
		return nil, err
	}
	if err := s.dsk.Add("window.height", &s.height); err != nil {
		return nil, err
	}

	if err := s.dsk.Load(); err != nil {
		return nil, err
	}
	if err := s.dsk.Override(*c.prefs); err != nil {
		return nil, err
	}

	s.m = mapview.NewMap(float64(s.width.Get().(int)), float64(s.height.Get().(int)))

	s.proc = control.NewProcessor[*mapview.Map](clock)
	if *c.log {
		s.proc.AddHandler(control.EventLogger[*mapview.Map]{})
	}
	s.proc.AddHandler(mapview.NewController(mprefs))

	if *c.record {
		fn, err := paths.ResourcePath("recordings", paths.UniqueFilename("recording", "txt"))
		if err != nil {
			return nil, err
		}
		s.rec, err = recorder.NewRecorder(fn, clock)
		if err != nil {
			return nil, err
		}
		fmt.Printf("! recording to %s\n", fn)
	}

	if c.statsview != nil && *c.statsview {
		statsview.Launch(ctx, os.Stdout, statsview.DefaultAddress)
	}

	return s, nil
}

// consume returns the function that raw events should be passed to.
func (s *session) consume() func(userinput.Event) {
	f := func(ev userinput.Event) {
		s.proc.Handle(ev, s.m)
	}
	if s.rec != nil {
		return s.rec.Tee(f)
	}
	return f
}

// end the session. the recording is completed, preferences saved and the final
// state of the map printed.
func (s *session) end() error {
	if s.rec != nil {
		if err := s.rec.End(); err != nil {
			return err
		}
	}
	if err := s.dsk.Save(); err != nil {
		return err
	}
	fmt.Printf("* %s\n", s.m)
	return nil
}

// the context returned is cancelled by an interrupt signal. the main thread
// will no longer handle the signal.
func interruptable(sync *mainSync) (context.Context, context.CancelFunc) {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	sync.state <- stateRequest{req: reqNoIntSig}
	return ctx, cancel
}

func checkArgs(md *modalflag.Modes, n int) error {
	if len(md.RemainingArgs()) > n {
		return curated.Errorf("too many arguments for %s mode", md)
	}
	return nil
}

func run(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()
	c := addCommon(md)

	p, err := md.Parse()
	if err != nil || p == modalflag.ParseHelp {
		return err
	}
	if err := checkArgs(md, 0); err != nil {
		return err
	}

	ctx, cancel := interruptable(sync)
	defer cancel()

	s, err := newSession(ctx, c, nil)
	if err != nil {
		return err
	}

	ser := userinput.NewSerializer(serializerQueue)

	sync.creator <- func() (GuiCreator, error) {
		return sdlwindow.NewWindow(version.ApplicationName, s.width.Get().(int), s.height.Get().(int), ser)
	}

	var win *sdlwindow.Window
	select {
	case g := <-sync.creation:
		win = g.(*sdlwindow.Window)
	case err := <-sync.creationError:
		return err
	}
	win.SetMap(s.m)

	ctx, stop := context.WithCancel(ctx)
	defer stop()
	go func() {
		select {
		case <-win.Quit():
			stop()
		case <-ctx.Done():
		}
	}()

	consume := s.consume()
	_ = ser.Run(ctx, func(ev userinput.Event) {
		size := win.Size()
		s.m.SetSize(size.X, size.Y)
		consume(ev)
		win.SetMap(s.m)
	})

	size := win.Size()
	s.width.Set(int(size.X))
	s.height.Set(int(size.Y))

	return s.end()
}

func evdevMode(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()
	c := addCommon(md)
	device := md.AddString("device", "", "input device. the first touch device is used if not specified")
	width := md.AddInt("width", 0, "width of screen. window.width preference if zero")
	height := md.AddInt("height", 0, "height of screen. window.height preference if zero")
	grab := md.AddBool("grab", false, "grab device for exclusive use")

	p, err := md.Parse()
	if err != nil || p == modalflag.ParseHelp {
		return err
	}
	if err := checkArgs(md, 0); err != nil {
		return err
	}

	ctx, cancel := interruptable(sync)
	defer cancel()

	s, err := newSession(ctx, c, nil)
	if err != nil {
		return err
	}

	if *width > 0 && *height > 0 {
		s.m.SetSize(float64(*width), float64(*height))
	}

	pth := *device
	if pth == "" {
		pth, err = evdev.FindTouchDevice()
		if err != nil {
			return err
		}
	}

	dev, err := evdev.Open(pth, s.m.Size, *grab)
	if err != nil {
		return err
	}
	fmt.Printf("! reading from %s\n", pth)

	err = dev.Run(ctx, s.consume())
	if err != nil && ctx.Err() == nil {
		return err
	}

	return s.end()
}

func websocketMode(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()
	c := addCommon(md)
	addr := md.AddString("addr", ":8090", "listening address")
	path := md.AddString("path", "/input", "websocket path")

	p, err := md.Parse()
	if err != nil || p == modalflag.ParseHelp {
		return err
	}
	if err := checkArgs(md, 0); err != nil {
		return err
	}

	ctx, cancel := interruptable(sync)
	defer cancel()

	s, err := newSession(ctx, c, nil)
	if err != nil {
		return err
	}

	ser := userinput.NewSerializer(serializerQueue)
	srv := wsinput.NewServer(ser)

	ctx, stop := context.WithCancel(ctx)
	defer stop()

	listenErr := make(chan error, 1)
	go func() {
		listenErr <- wsinput.ListenAndServe(ctx, *addr, *path, srv)
		stop()
	}()

	_ = ser.Run(ctx, s.consume())

	if err := <-listenErr; err != nil {
		return err
	}

	return s.end()
}

func playback(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()
	c := addCommon(md)
	realtime := md.AddBool("realtime", false, "wait between events for the recorded time")
	memvizFile := md.AddString("memviz", "", "write graphviz description of the processor to file")

	p, err := md.Parse()
	if err != nil || p == modalflag.ParseHelp {
		return err
	}
	if err := checkArgs(md, 1); err != nil {
		return err
	}

	transcript := md.GetArg(0)
	if transcript == "" {
		return curated.Errorf("%s mode requires a transcript file", md)
	}

	ctx, cancel := interruptable(sync)
	defer cancel()

	plb, err := recorder.NewPlayback(transcript)
	if err != nil {
		return err
	}

	// recording a playback is pointless
	*c.record = false

	s, err := newSession(ctx, c, plb)
	if err != nil {
		return err
	}

	n, err := recorder.Drive(ctx, plb, s.proc, s.m, *realtime)
	fmt.Printf("! played %d events (%s)\n", n, plb)
	if err != nil && ctx.Err() == nil {
		return err
	}

	if *memvizFile != "" {
		f, err := os.Create(*memvizFile)
		if err != nil {
			return err
		}
		memviz.Map(f, s.proc)
		if err := f.Close(); err != nil {
			return err
		}
	}

	return s.end()
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p == modalflag.ParseHelp {
		return err
	}
	if err := checkArgs(md, 0); err != nil {
		return err
	}

	fmt.Println(version.Version())
	return nil
}
