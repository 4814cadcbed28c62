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

//go:build linux

package evdev

import (
	"os"
	"path/filepath"
	"strings"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/tidemap/mapinput/curated"
	"github.com/tidemap/mapinput/geometry"
	"github.com/tidemap/mapinput/logger"
)

// struct input_absinfo
type absInfo struct {
	Value      int32
	Minimum    int32
	Maximum    int32
	Fuzz       int32
	Flat       int32
	Resolution int32
}

// ioctl request encoding from linux/ioctl.h
const (
	iocNRShift   = 0
	iocTypeShift = 8
	iocSizeShift = 16
	iocDirShift  = 30

	iocWrite = 1
	iocRead  = 2
)

func ioc(dir, typ, nr, size uintptr) uintptr {
	return (dir << iocDirShift) | (typ << iocTypeShift) | (nr << iocNRShift) | (size << iocSizeShift)
}

// EVIOCGNAME(len)
func eviocgname(n int) uintptr {
	return ioc(iocRead, 'E', 0x06, uintptr(n))
}

// EVIOCGABS(abs)
func eviocgabs(axis int) uintptr {
	return ioc(iocRead, 'E', 0x40+uintptr(axis), unsafe.Sizeof(absInfo{}))
}

// EVIOCGRAB
func eviocgrab() uintptr {
	return ioc(iocWrite, 'E', 0x90, unsafe.Sizeof(int32(0)))
}

func ioctlName(fd int) (string, error) {
	buf := make([]byte, 256)
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), eviocgname(len(buf)), uintptr(unsafe.Pointer(&buf[0])))
	if errno != 0 {
		return "", errno
	}
	return unix.ByteSliceToString(buf), nil
}

func ioctlAbs(fd int, axis int) (Axis, error) {
	var info absInfo
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), eviocgabs(axis), uintptr(unsafe.Pointer(&info)))
	if errno != 0 {
		return Axis{}, errno
	}
	return Axis{Min: info.Minimum, Max: info.Maximum}, nil
}

// axis range of the multitouch axis if there is one, otherwise the single
// touch axis
func axisRange(fd int, mt int, st int) Axis {
	if a, err := ioctlAbs(fd, mt); err == nil && a.Max > a.Min {
		return a
	}
	if a, err := ioctlAbs(fd, st); err == nil && a.Max > a.Min {
		return a
	}
	return Axis{}
}

// Open the input device at path. Absolute axes are mapped onto a screen of the
// given size. If grab is true then the device is grabbed for exclusive use.
func Open(path string, screen geometry.Vector, grab bool) (*Device, error) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, curated.Errorf("evdev: %s: %v", path, err)
	}

	if name, err := ioctlName(fd); err == nil {
		logger.Logf(logger.Allow, "evdev", "%s: %s", path, name)
	}

	if grab {
		one := int32(1)
		_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), eviocgrab(), uintptr(unsafe.Pointer(&one)))
		if errno != 0 {
			unix.Close(fd)
			return nil, curated.Errorf("evdev: %s: grab: %v", path, errno)
		}
	}

	cfg := Config{
		X:          axisRange(fd, absMTPositionX, absX),
		Y:          axisRange(fd, absMTPositionY, absY),
		Screen:     screen,
		RecordSize: int(unsafe.Sizeof(unix.Timeval{})) + 8,
	}

	return NewDevice(os.NewFile(uintptr(fd), path), cfg), nil
}

// FindTouchDevice returns the path of the first input device with a name that
// suggests a touch screen or touch pad.
func FindTouchDevice() (string, error) {
	candidates, _ := filepath.Glob("/dev/input/event*")
	for _, p := range candidates {
		fd, err := unix.Open(p, unix.O_RDONLY|unix.O_NONBLOCK|unix.O_CLOEXEC, 0)
		if err != nil {
			continue
		}
		name, err := ioctlName(fd)
		unix.Close(fd)
		if err != nil {
			continue
		}
		if strings.Contains(strings.ToLower(name), "touch") {
			return p, nil
		}
	}
	return "", curated.Errorf("evdev: no touch device found")
}
