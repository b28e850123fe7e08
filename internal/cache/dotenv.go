// Copyright (c) 2021-2026 Rustam Gilyazov and Contributors.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package cache

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// EnvPrefix is the prefix of the environment variables that hold the API
// keys, i.e. ROBLOX_API_KEY_123456=...
const EnvPrefix = "ROBLOX_API_KEY_"

// ParseEnvKeys extracts the API keys from the environment map.  Variables
// with a malformed universe id are reported in the error, but do not stop
// the parsing.
func ParseEnvKeys(env map[string]string) (map[int64]string, error) {
	var (
		keys = make(map[int64]string)
		errs []error
	)
	for name, val := range env {
		suffix, ok := strings.CutPrefix(name, EnvPrefix)
		if !ok {
			continue
		}
		id, err := strconv.ParseInt(suffix, 10, 64)
		if err != nil || id <= 0 {
			errs = append(errs, fmt.Errorf("%s: %w", name, ErrInvalidID))
			continue
		}
		keys[id] = val
	}
	return keys, errors.Join(errs...)
}

// ImportDotEnv reads the API keys from the dotenv file and saves them.  It
// returns the sorted list of the imported universe ids.
func (m *Manager) ImportDotEnv(filename string) ([]int64, error) {
	env, err := godotenv.Read(filename)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", filename, err)
	}
	keys, parseErr := ParseEnvKeys(env)
	ids := make([]int64, 0, len(keys))
	for id := range keys {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	imported := ids[:0]
	errs := []error{parseErr}
	for _, id := range ids {
		if err := m.Save(id, keys[id]); err != nil {
			errs = append(errs, &ErrUniverse{UniverseID: id, Message: "import failed", Err: err})
			continue
		}
		imported = append(imported, id)
	}
	return imported, errors.Join(errs...)
}
