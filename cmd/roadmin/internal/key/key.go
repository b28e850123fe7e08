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

// Package key implements the "roadmin key" command that manages the per
// universe Open Cloud API keys.
package key

import (
	"errors"
	"strconv"

	"github.com/KhanPython/RoAdmin/cmd/roadmin/internal/cfg"
	"github.com/KhanPython/RoAdmin/cmd/roadmin/internal/golang/base"
	"github.com/KhanPython/RoAdmin/internal/cache"
)

const baseCommand = "roadmin key"

var flagmask = cfg.OmitAll &^ cfg.OmitCacheDir

var CmdKey = &base.Command{
	UsageLine: baseCommand,
	Short:     "manage the Open Cloud API keys",
	Long: `
# Key Command

RoAdmin reads the datastores with the Open Cloud API keys, one key per
universe.  A universe without a registered key is never queried.

**Key** command allows to **add** a key, **list** the universes that have a
key, **del**ete a key, or **import** the keys from an environment file.

The key needs the "universe-datastores.objects:read" permission.  You can
also provide the keys in the environment variables, in the form:

    ROBLOX_API_KEY_<universeId>=<key>

Keys are stored on this device, encrypted, in the system Cache directory,
which is automatically detected to be:
    ` + cfg.CacheDir() + `
`,
	FlagMask: flagmask,
	Commands: []*base.Command{
		CmdKeyAdd,
		CmdKeyImport,
		CmdKeyList,
		CmdKeyDel,
	},
}

var (
	errIDRequired  = errors.New("universe id must be specified")
	ErrOpCancelled = base.ErrOpCancelled
)

// manager is used for test rigging.
var newManager = func() (*cache.Manager, error) {
	return cache.NewManager(cfg.CacheDir())
}

// argsUniverse parses the universe id from the first argument.
func argsUniverse(args []string) (int64, error) {
	if len(args) == 0 || args[0] == "" {
		return 0, errIDRequired
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, cache.ErrInvalidID
	}
	return id, nil
}
