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
	"io"
	"os"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/KhanPython/RoAdmin/cmd/roadmin/internal/cfg"
	"github.com/KhanPython/RoAdmin/cmd/roadmin/internal/golang/base"
	"github.com/KhanPython/RoAdmin/internal/cache"
)

var CmdKeyList = &base.Command{
	UsageLine: baseCommand + " list [flags]",
	Short:     "list the universes with registered keys",
	Long: `
# Key List Command

**List** shows the universes that have the API key registered on this
device.  The keys themselves are never printed.
`,
	FlagMask:   flagmask,
	PrintFlags: true,
}

const timeLayout = "2006-01-02 15:04:05"

var bare = CmdKeyList.Flag.Bool("b", false, "bare output format (just universe ids)")

func init() {
	CmdKeyList.Run = runKeyList
}

func runKeyList(ctx context.Context, cmd *base.Command, args []string) error {
	m, err := newManager()
	if err != nil {
		base.SetExitStatus(base.SCacheError)
		return err
	}
	ids, err := m.List()
	if err != nil {
		if errors.Is(err, cache.ErrNoKeys) {
			base.SetExitStatus(base.SUserError)
			return errors.New("no API keys registered, please run \"roadmin key add <universeId>\"")
		}
		base.SetExitStatus(base.SCacheError)
		return err
	}
	if *bare {
		printBare(os.Stdout, ids)
		return nil
	}
	fmt.Printf("API keys in %q:\n\n", cfg.CacheDir())
	printFull(os.Stdout, m, ids)
	return nil
}

func printBare(w io.Writer, ids []int64) {
	for _, id := range ids {
		fmt.Fprintln(w, id)
	}
}

func printFull(w io.Writer, m *cache.Manager, ids []int64) {
	tw := tabwriter.NewWriter(w, 2, 8, 1, ' ', 0)
	defer tw.Flush()

	fmt.Fprintln(tw,
		"universe\tfilename\tmodified\t\n"+
			"--------\t--------\t--------\t")
	for _, id := range ids {
		fi, err := m.FileInfo(id)
		if err != nil {
			fmt.Fprintf(tw, "%d\t-\t%s\t\n", id, err)
			continue
		}
		fmt.Fprintf(tw, "%d\t%s\t%s (%s)\t\n", id, fi.Name(), fi.ModTime().Format(timeLayout), humanize.Time(fi.ModTime()))
	}
}
