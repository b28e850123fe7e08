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
	"fmt"

	"github.com/KhanPython/RoAdmin/cmd/roadmin/internal/golang/base"
)

var CmdKeyDel = &base.Command{
	UsageLine: baseCommand + " del [flags] <universeId>",
	Short:     "deletes the API key of the universe",
	Long: `
Del deletes the API key of the universe from this device.  The universe
cannot be queried until a new key is added with "roadmin key add".
`,
	FlagMask:   flagmask,
	PrintFlags: true,
}

var (
	delAll     = CmdKeyDel.Flag.Bool("a", false, "delete all keys")
	delConfirm = CmdKeyDel.Flag.Bool("y", false, "answer yes to all questions")
)

// yesno is used for test rigging.
var yesno = base.YesNo

func init() {
	CmdKeyDel.Run = runKeyDel
}

func runKeyDel(ctx context.Context, cmd *base.Command, args []string) error {
	if *delAll {
		return delAllKeys()
	}
	return delOneKey(args)
}

func delAllKeys() error {
	m, err := newManager()
	if err != nil {
		base.SetExitStatus(base.SCacheError)
		return err
	}
	ids, err := m.List()
	if err != nil {
		base.SetExitStatus(base.SApplicationError)
		return err
	}
	if !*delConfirm && !yesno("This will delete ALL API keys") {
		base.SetExitStatus(base.SNoError)
		return ErrOpCancelled
	}
	for _, id := range ids {
		if err := m.Delete(id); err != nil {
			base.SetExitStatus(base.SCacheError)
			return err
		}
		fmt.Printf("API key for universe %d deleted\n", id)
	}
	return nil
}

func delOneKey(args []string) error {
	id, err := argsUniverse(args)
	if err != nil {
		base.SetExitStatus(base.SInvalidParameters)
		return err
	}
	m, err := newManager()
	if err != nil {
		base.SetExitStatus(base.SCacheError)
		return err
	}
	if !m.Exists(id) {
		base.SetExitStatus(base.SUserError)
		return errors.New("no API key for this universe")
	}
	if !*delConfirm && !yesno(fmt.Sprintf("API key for universe %d is about to be deleted", id)) {
		base.SetExitStatus(base.SNoError)
		return ErrOpCancelled
	}
	if err := m.Delete(id); err != nil {
		base.SetExitStatus(base.SApplicationError)
		return err
	}
	fmt.Printf("API key for universe %d deleted\n", id)
	return nil
}
