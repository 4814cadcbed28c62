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

// Package evdev reads Linux input devices and produces userinput events.
//
// Multitouch devices are expected to use the type B (slotted) protocol. Each
// slot's tracking ID becomes the TouchID of the userinput touch events.
// Single touch devices (ABS_X, ABS_Y and BTN_TOUCH only) are treated as a
// multitouch device with one slot. Relative devices (mice) produce button,
// pointer and scroll events.
//
// Events are collected until the kernel's SYN_REPORT and then released
// together, in the order: pointer movement, buttons, scrolling, touches.
//
// The Device type works with any io.Reader producing struct input_event
// records so that it can be tested without a device. Open() is only
// available on Linux.
package evdev
