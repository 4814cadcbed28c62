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
	"net"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/tidemap/mapinput/curated"
	"github.com/tidemap/mapinput/userinput"
)

// Client sends events to a Server.
type Client struct {
	conn *websocket.Conn

	// serialises writes. gorilla/websocket supports one concurrent writer
	crit sync.Mutex

	done chan struct{}
	once sync.Once
}

// Dial connects to the Server at the websocket URL.
func Dial(ctx context.Context, url string) (*Client, error) {
	d := websocket.Dialer{
		HandshakeTimeout: 10 * time.Second,
		NetDialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 15 * time.Second,
		}).DialContext,
	}

	conn, _, err := d.DialContext(ctx, url, nil)
	if err != nil {
		return nil, curated.Errorf("wsinput: %v", err)
	}

	cl := &Client{
		conn: conn,
		done: make(chan struct{}),
	}

	// control frames (the server's pings) are only processed while reading.
	// the default ping handler replies with a pong
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				cl.Close()
				return
			}
		}
	}()

	return cl, nil
}

// Send the event to the server.
func (cl *Client) Send(ev userinput.Event) error {
	b, err := Encode(ev)
	if err != nil {
		return err
	}

	cl.crit.Lock()
	defer cl.crit.Unlock()

	select {
	case <-cl.done:
		return curated.Errorf("wsinput: connection closed")
	default:
	}

	_ = cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := cl.conn.WriteMessage(websocket.TextMessage, b); err != nil {
		return curated.Errorf("wsinput: %v", err)
	}
	return nil
}

// Close the connection. The server is told that the connection is closing.
func (cl *Client) Close() {
	cl.once.Do(func() {
		close(cl.done)
		msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
		_ = cl.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait))
		_ = cl.conn.Close()
	})
}
