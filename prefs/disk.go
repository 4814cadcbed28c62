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

package prefs

import (
	"errors"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/tidemap/mapinput/curated"
)

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	if path == "" {
		return nil, curated.Errorf("prefs: %v", "no path for preferences file")
	}
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

// Path returns the filename of the preferences file.
func (dsk *Disk) Path() string {
	return dsk.path
}

// Add preference value to list of values to store/load from disk.
func (dsk *Disk) Add(key string, p pref) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return curated.Errorf("prefs: %v", "empty key")
	}
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf("prefs: duplicate key (%s)", key)
	}
	dsk.entries[key] = p
	return nil
}

// read the preferences file and return the values as a flat map. a missing
// file is not an error and results in an empty map.
func (dsk *Disk) read() (map[string]any, error) {
	raw := make(map[string]any)
	if _, err := toml.DecodeFile(dsk.path, &raw); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]any{}, nil
		}
		return nil, curated.Errorf("prefs: %v", err)
	}

	flat := make(map[string]any)
	flatten("", raw, flat)
	return flat, nil
}

// flatten nested tables into keys joined with a period. this means the file
// can contain either of the following forms:
//
//	controller.zoomspeed = 2.0
//
//	[controller]
//	zoomspeed = 2.0
func flatten(prefix string, m map[string]any, out map[string]any) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if t, ok := v.(map[string]any); ok {
			flatten(key, t, out)
		} else {
			out[key] = v
		}
	}
}

// Load preference values from disk. Values in the file that have not been
// added to the Disk are ignored. Preferences not in the file are unchanged.
func (dsk *Disk) Load() error {
	flat, err := dsk.read()
	if err != nil {
		return err
	}

	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		p, ok := dsk.entries[k]
		if !ok {
			continue
		}
		if err := p.Set(flat[k]); err != nil {
			return curated.Errorf("prefs: %s: %v", k, err)
		}
	}

	return nil
}

// Save current preference values to disk. Values already in the file that
// have not been added to the Disk are preserved.
func (dsk *Disk) Save() error {
	flat, err := dsk.read()
	if err != nil {
		return err
	}

	for k, p := range dsk.entries {
		flat[k] = p.Get()
	}

	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf("prefs: %v", err)
	}

	if err := toml.NewEncoder(f).Encode(flat); err != nil {
		f.Close()
		return curated.Errorf("prefs: %v", err)
	}

	if err := f.Close(); err != nil {
		return curated.Errorf("prefs: %v", err)
	}

	return nil
}

// Override sets preferences from a string of the form "key::value; key::value".
// Overridden values are not saved unless Save() is called afterwards.
//
// Keys not added to the Disk are returned as an error after all other values
// have been set.
func (dsk *Disk) Override(s string) error {
	var unknown []string

	for _, kv := range strings.Split(s, ";") {
		kv = strings.TrimSpace(kv)
		if kv == "" {
			continue
		}

		pair := strings.SplitN(kv, "::", 2)
		if len(pair) != 2 {
			return curated.Errorf("prefs: malformed override (%s)", kv)
		}

		key := strings.TrimSpace(pair[0])
		p, ok := dsk.entries[key]
		if !ok {
			unknown = append(unknown, key)
			continue
		}

		if err := p.Set(strings.TrimSpace(pair[1])); err != nil {
			return curated.Errorf("prefs: %s: %v", key, err)
		}
	}

	if len(unknown) > 0 {
		return curated.Errorf("prefs: unknown preferences (%s)", strings.Join(unknown, ", "))
	}

	return nil
}
