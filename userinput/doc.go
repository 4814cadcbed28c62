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

// Package userinput defines the raw input vocabulary produced by platform
// adapters: pointer button transitions, pointer movement, scroll and
// multi-touch start/move/end.
//
// It can be thought of as a translation layer between the platform (SDL, the
// Linux evdev interface, a remote device over a websocket) and the control
// package, which turns the raw events into semantic events. As such, this
// package attempts to hide details of the platform while keeping the control
// package free of platform specific complication.
//
// Raw events carry no timestamp. Timing decisions are made by the consumer at
// the moment the event is processed.
//
// Platform adapters that read input on their own goroutine should pass raw
// events through a Serializer, so that all events for one input stream are
// processed one at a time and in order.
package userinput
