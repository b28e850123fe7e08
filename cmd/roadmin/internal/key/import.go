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

package key

import (
	"context"
	"errors"

	"github.com/KhanPython/RoAdmin/cmd/roadmin/internal/cfg"
	"github.com/KhanPython/RoAdmin/cmd/roadmin/internal/golang/base"
)

var CmdKeyImport = &base.Command{
	UsageLine: baseCommand + " import [flags] <filename>",
	Short:     "import API keys from .env or secrets.txt file",
	Long: `
# Key Import Command

Imports the API keys from the environment file.  Every variable in the form

    ROBLOX_API_KEY_<universeId>=<key>

is saved as the key of that universe.  Other variables are ignored.

It is advised that you delete the file after the import.
`,
	FlagMask:   flagmask,
	PrintFlags: true,
	Run:        runKeyImport,
}

func runKeyImport(ctx context.Context, cmd *base.Command, args []string) error {
	if len(args) != 1 {
		base.SetExitStatus(base.SInvalidParameters)
		return errors.New("missing filename")
	}
	filename := args[0]

	m, err := newManager()
	if err != nil {
		base.SetExitStatus(base.SCacheError)
		return err
	}
	ids, err := m.ImportDotEnv(filename)
	for _, id := range ids {
		cfg.Log.InfoContext(ctx, "API key imported", "universe_id", id)
	}
	if err != nil {
		base.SetExitStatus(base.SUserError)
		return err
	}
	if len(ids) == 0 {
		base.SetExitStatus(base.SUserError)
		return errors.New("no ROBLOX_API_KEY_<universeId> variables found in " + filename)
	}
	cfg.Log.InfoContext(ctx, "It is advised that you delete the file", "filename", filename)
	return nil
}
