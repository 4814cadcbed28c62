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
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/tidemap/mapinput/curated"
	"github.com/tidemap/mapinput/logger"
	"github.com/tidemap/mapinput/userinput"
)

// Sink receives decoded events. userinput.Serializer implements this
// interface.
type Sink interface {
	Push(ctx context.Context, ev userinput.Event) error
	TryPush(ev userinput.Event) bool
}

// Timing of the keepalive. A connection that has not answered a ping within
// PongWait is closed.
const (
	PingEvery = 10 * time.Second
	PongWait  = 30 * time.Second
	writeWait = 5 * time.Second
)

// largest message accepted
const readLimit = 4096

// Server is an http.Handler that accepts websocket connections and passes the
// events to the sink.
type Server struct {
	sink     Sink
	upgrader websocket.Upgrader

	// only one connection is served at a time. interleaving the events of two
	// devices would confuse the event processor
	crit sync.Mutex
}

// NewServer is the preferred method of initialisation for the Server type.
func NewServer(sink Sink) *Server {
	return &Server{
		sink: sink,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// remote devices are not browsers and do not send an Origin
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// ServeHTTP implements the http.Handler interface.
func (srv *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !srv.crit.TryLock() {
		http.Error(w, "another device is connected", http.StatusConflict)
		return
	}
	defer srv.crit.Unlock()

	conn, err := srv.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// the upgrader has already replied to the client
		logger.Logf(logger.Allow, "wsinput", "upgrade: %v", err)
		return
	}

	logger.Logf(logger.Allow, "wsinput", "connection from %s", r.RemoteAddr)

	err = srv.serve(r.Context(), conn)
	if err != nil {
		logger.Logf(logger.Allow, "wsinput", "%s: %v", r.RemoteAddr, err)
	}

	logger.Logf(logger.Allow, "wsinput", "%s disconnected", r.RemoteAddr)
}

func (srv *Server) serve(ctx context.Context, conn *websocket.Conn) error {
	defer conn.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	conn.SetReadLimit(readLimit)
	_ = conn.SetReadDeadline(time.Now().Add(PongWait))
	conn.SetPongHandler(func(_ string) error {
		return conn.SetReadDeadline(time.Now().Add(PongWait))
	})

	go func() {
		t := time.NewTicker(PingEvery)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				// unblocks ReadMessage() in the loop below
				conn.Close()
				return
			case <-t.C:
				// WriteControl is safe to call concurrently with the read
				// loop
				err := conn.WriteControl(websocket.PingMessage, []byte("ping"), time.Now().Add(writeWait))
				if err != nil {
					return
				}
			}
		}
	}()

	for {
		typ, b, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			return err
		}

		// any message counts as proof of life
		_ = conn.SetReadDeadline(time.Now().Add(PongWait))

		if typ != websocket.TextMessage {
			logger.Log(logger.Allow, "wsinput", "ignoring non-text message")
			continue
		}

		ev, err := Decode(b)
		if err != nil {
			logger.Log(logger.Allow, "wsinput", err.Error())
			continue
		}

		// pointer motion is superseded by the next motion event and can be
		// dropped if the processor is busy. everything else must arrive
		if _, ok := ev.(userinput.EventPointerMoved); ok {
			srv.sink.TryPush(ev)
			continue
		}
		if err := srv.sink.Push(ctx, ev); err != nil {
			return err
		}
	}
}

// ListenAndServe serves websocket connections at addr on the given path until
// the context is done.
func ListenAndServe(ctx context.Context, addr string, path string, srv *Server) error {
	mux := http.NewServeMux()
	mux.Handle(path, srv)

	hs := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,

		// connections are closed when the context is done. Shutdown() does
		// not do this for hijacked connections
		BaseContext: func(_ net.Listener) context.Context { return ctx },
	}

	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = hs.Shutdown(shutdown)
	}()

	logger.Logf(logger.Allow, "wsinput", "listening on ws://%s%s", addr, path)

	err := hs.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return curated.Errorf("wsinput: %v", err)
	}
	return nil
}
