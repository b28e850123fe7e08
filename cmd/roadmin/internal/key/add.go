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
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/KhanPython/RoAdmin/cmd/roadmin/internal/bootstrap"
	"github.com/KhanPython/RoAdmin/cmd/roadmin/internal/cfg"
	"github.com/KhanPython/RoAdmin/cmd/roadmin/internal/golang/base"
	"github.com/KhanPython/RoAdmin/internal/cache"
	"github.com/KhanPython/RoAdmin/internal/opencloud"
	"github.com/KhanPython/RoAdmin/internal/universe"
)

var CmdKeyAdd = &base.Command{
	UsageLine: baseCommand + " add [flags] <universeId> [apiKey]",
	Short:     "registers the API key for the universe",
	Long: `
# Key Add Command

Registers the Open Cloud API key for the universe, replacing the existing
one.  If the key is not given on the command line, it is read from the
terminal (the input is not echoed) or from STDIN:

    roadmin key add 123456
    echo "$KEY" | roadmin key add 123456

Use -verify flag to check that the universe exists before saving the key.
`,
	FlagMask:   flagmask,
	PrintFlags: true,
}

var fAddVerify = CmdKeyAdd.Flag.Bool("verify", false, "verify that the universe exists before saving the key")

// universeVerifier is used for test rigging.
type universeVerifier interface {
	Verify(ctx context.Context, universeID int64) universe.Result
}

var newVerifier = func() universeVerifier {
	cl := opencloud.New(cache.NewKeyring(nil), bootstrap.ClientOptions(cfg.Log)...)
	return universe.NewVerifier(cl, cfg.Log)
}

func init() {
	CmdKeyAdd.Run = runKeyAdd
}

func runKeyAdd(ctx context.Context, cmd *base.Command, args []string) error {
	id, err := argsUniverse(args)
	if err != nil {
		base.SetExitStatus(base.SInvalidParameters)
		return err
	}
	var apiKey string
	if len(args) > 1 {
		apiKey = args[1]
	} else {
		apiKey, err = readKey(os.Stderr, os.Stdin, id)
		if err != nil {
			base.SetExitStatus(base.SUserError)
			return fmt.Errorf("error reading the API key: %w", err)
		}
	}

	if *fAddVerify {
		res := newVerifier().Verify(ctx, id)
		if !res.Success {
			base.SetExitStatus(base.SUserError)
			return fmt.Errorf("key not saved: %s", res.ErrorMessage)
		}
		cfg.Log.InfoContext(ctx, "universe verified", "universe_id", id, "name", res.Info.Name)
	}

	m, err := newManager()
	if err != nil {
		base.SetExitStatus(base.SCacheError)
		return err
	}
	if err := m.Save(id, apiKey); err != nil {
		base.SetExitStatus(base.SCacheError)
		return err
	}
	fmt.Printf("API key for universe %d saved\n", id)
	return nil
}

// readKey reads the API key from r.  If r is a terminal, the user is
// prompted, and the input is not echoed.
func readKey(w io.Writer, r io.Reader, id int64) (string, error) {
	if f, ok := r.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprintf(w, "Enter API key for universe %d (won't be visible): ", id)
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(w)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(b)), nil
	}
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
