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

package userinput_test

import (
	"context"
	"errors"
	"testing"

	"github.com/tidemap/mapinput/geometry"
	"github.com/tidemap/mapinput/test"
	"github.com/tidemap/mapinput/userinput"
)

func TestSerializerOrder(t *testing.T) {
	s := userinput.NewSerializer(4)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	test.DemandSuccess(t, s.Push(ctx, userinput.EventButtonPressed{Button: userinput.MouseButtonLeft}))
	test.DemandSuccess(t, s.Push(ctx, userinput.EventPointerMoved{Position: geometry.Point{X: 1, Y: 2}}))
	test.DemandSuccess(t, s.TryPush(userinput.EventButtonReleased{Button: userinput.MouseButtonLeft}))

	var got []string
	err := s.Run(ctx, func(ev userinput.Event) {
		got = append(got, ev.String())
		if len(got) == 3 {
			cancel()
		}
	})
	test.ExpectSuccess(t, errors.Is(err, context.Canceled))
	test.DemandEquality(t, len(got), 3)
	test.ExpectEquality(t, got[0], "ButtonPressed(Left)")
	test.ExpectEquality(t, got[1], "PointerMoved(1.00, 2.00)")
	test.ExpectEquality(t, got[2], "ButtonReleased(Left)")
}

func TestSerializerFull(t *testing.T) {
	s := userinput.NewSerializer(1)
	test.ExpectSuccess(t, s.TryPush(userinput.EventScroll{}))
	test.ExpectFailure(t, s.TryPush(userinput.EventScroll{}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	test.ExpectFailure(t, s.Push(ctx, userinput.EventScroll{}))
}
