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

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/KhanPython/RoAdmin/cmd/roadmin/internal/cfg"
	"github.com/KhanPython/RoAdmin/cmd/roadmin/internal/golang/base"
)

// set by goreleaser
var (
	version = "unknown"
	commit  = "unknown"
	date    = "unknown"
)

func init() {
	cfg.Version = cfg.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}
}

var CmdVersion = &base.Command{
	UsageLine: "roadmin version [flags]",
	Short:     "print version and exit",
	Long: `
# Version Command

Prints version and exits, not much else to say.
`,
	FlagMask:   cfg.OmitAll,
	PrintFlags: true,
}

var versionJSON = CmdVersion.Flag.Bool("json", false, "print version information in JSON format")

func init() {
	CmdVersion.Run = versionRun
}

func versionRun(ctx context.Context, cmd *base.Command, args []string) error {
	if *versionJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(cfg.Version)
	}
	fmt.Printf("RoAdmin %s (commit: %s) built on: %s\n", cfg.Version.Version, cfg.Version.Commit, cfg.Version.Date)
	return nil
}
