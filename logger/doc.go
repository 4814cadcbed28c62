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

// Package logger is the central log for the application. Log entries are made
// up of a tag and a detail string. The tag is usually the name of the package
// or component making the entry.
//
//	logger.Log(logger.Allow, "control", "click position: (10, 20)")
//
// Adjacent entries with identical tag and detail are collapsed into a single
// entry with a repeat count. The number of entries kept is bounded; the oldest
// entries are discarded first.
//
// The Permission interface controls whether a log request is honoured. The
// Allow value should be used when an entry should always be made.
//
// Individual Logger instances can be created with NewLogger(). This is mostly
// useful for testing. The package level functions all operate on the central
// logger.
package logger
