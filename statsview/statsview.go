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

//go:build statsview

package statsview

import (
	"context"
	"fmt"
	"io"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

// Launch the statsview server in a new goroutine. The server is stopped when
// the context is cancelled.
func Launch(ctx context.Context, output io.Writer, addr string) {
	if addr == "" {
		addr = DefaultAddress
	}

	viewer.SetConfiguration(viewer.WithAddr(addr))
	mgr := statsview.New()

	go mgr.Start()
	go func() {
		<-ctx.Done()
		mgr.Stop()
	}()

	fmt.Fprintf(output, "stats server available at %s%s\n", addr, url)
}

// Available returns true if a statsview is available to launch.
func Available() bool {
	return true
}
