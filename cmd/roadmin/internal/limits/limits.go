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

// Package limits implements the "roadmin limits" command that manages the
// rendering limits configuration files.
package limits

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/trace"
	"strings"

	"github.com/KhanPython/RoAdmin/cmd/roadmin/internal/cfg"
	"github.com/KhanPython/RoAdmin/cmd/roadmin/internal/golang/base"
	"github.com/KhanPython/RoAdmin/internal/render"
)

var CmdLimits = &base.Command{
	UsageLine: "roadmin limits",
	Short:     "rendering limits configuration",
	Long: `
# Limits Command

Limits command allows to create and check the rendering limits configuration
files.  The limits define how large an entry may be before the summary fields
are dropped, the body is split, or the entry is sent as a file attachment.

Use the configuration file with the -limits flag of any command that renders
the entries.
`,
	Commands: []*base.Command{
		CmdLimitsNew,
		CmdLimitsCheck,
	},
}

var CmdLimitsNew = &base.Command{
	UsageLine: "roadmin limits new [flags] <filename>",
	Short:     "creates a new limits config from the preset",
	Long: `
# Limits New Command

Creates a new limits configuration file containing the preset values.  You
will need to specify the filename, for example:

    roadmin limits new -preset slack mylimits.toml

If the extension is omitted, ".toml" is automatically appended to the
filename.
`,
	FlagMask:   cfg.OmitAll,
	PrintFlags: true,
}

var CmdLimitsCheck = &base.Command{
	UsageLine: "roadmin limits check <filename>",
	Short:     "validate the existing limits config for errors",
	Long: `
# Limits Check Command

Allows to check the limits config for errors and invalid values.

Example:

    roadmin limits check mylimits.toml

It will check for unknown keys, and also ensure that values are within the
allowed boundaries.
`,
	FlagMask: cfg.OmitAll,
}

var (
	fNewOverride = CmdLimitsNew.Flag.Bool("y", false, "confirm the overwrite of the existing config")
	fNewPreset   = CmdLimitsNew.Flag.String("preset", "default", "limits `preset`, one of: "+strings.Join(render.Presets(), ", "))
)

func init() {
	CmdLimitsNew.Run = runLimitsNew
	CmdLimitsCheck.Run = runLimitsCheck
}

func runLimitsNew(ctx context.Context, cmd *base.Command, args []string) error {
	_, task := trace.NewTask(ctx, "runLimitsNew")
	defer task.End()

	if len(args) == 0 {
		base.SetExitStatus(base.SInvalidParameters)
		return errors.New("limits file name must be specified")
	}
	lim, ok := render.Preset(*fNewPreset)
	if !ok {
		base.SetExitStatus(base.SInvalidParameters)
		return fmt.Errorf("unknown preset %q, use one of: %s", *fNewPreset, strings.Join(render.Presets(), ", "))
	}

	filename := maybeFixExt(args[0])

	if !shouldOverwrite(filename, *fNewOverride) {
		base.SetExitStatus(base.SUserError)
		return fmt.Errorf("file or directory exists: %q, use -y flag to overwrite (will not overwrite directory)", filename)
	}

	if err := save(filename, lim); err != nil {
		base.SetExitStatus(base.SApplicationError)
		return fmt.Errorf("error writing the limits config %q: %w", filename, err)
	}

	fmt.Printf("Your new limits config is ready: %q\n", filename)
	return nil
}

func runLimitsCheck(ctx context.Context, cmd *base.Command, args []string) error {
	if len(args) == 0 || args[0] == "" {
		base.SetExitStatus(base.SInvalidParameters)
		return errors.New("limits filename must be specified")
	}
	filename := args[0]
	if err := check(os.Stdout, filename); err != nil {
		base.SetExitStatus(base.SUserError)
		return fmt.Errorf("limits file %q not OK: %w", filename, err)
	}
	fmt.Printf("Limits file %q: OK\n", filename)
	return nil
}

// check loads the limits file, and prints the validation problems to w.
func check(w io.Writer, filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := render.LoadLimits(f, render.DefLimits); err != nil {
		if errors.Is(err, render.ErrLimitsInvalid) {
			printErrors(w, err)
		}
		return err
	}
	return nil
}

func printErrors(w io.Writer, err error) {
	// LoadLimits joins the messages with "; ".
	_, msgs, ok := strings.Cut(err.Error(), ": ")
	if !ok {
		return
	}
	fmt.Fprintln(w, "Detected problems:")
	for i, m := range strings.Split(msgs, "; ") {
		fmt.Fprintf(w, "\t%2d: %s\n", i+1, m)
	}
}

func save(filename string, lim render.Limits) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := lim.WriteTOML(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// shouldOverwrite returns true if the file can be overwritten.  If override
// is true and the file exists and not a directory, it will return true.
func shouldOverwrite(filename string, override bool) bool {
	fi, err := os.Stat(filename)
	if fi != nil && fi.IsDir() {
		return false
	}
	return err != nil || override
}

// maybeFixExt checks if the extension is one of .toml or .tml, and if not
// appends it to the file.
func maybeFixExt(filename string) string {
	if ext := filepath.Ext(filename); !(ext == ".toml" || ext == ".tml") {
		return maybeAppendExt(filename, ".toml")
	}
	return filename
}

// maybeAppendExt adds a filename extension ext if the filename has missing, or
// a different extension.
func maybeAppendExt(filename string, ext string) string {
	if len(ext) == 0 {
		return filename
	}
	if ext[0] != '.' {
		ext = "." + ext
	}
	if filepath.Ext(filename) == ext {
		return filename
	}
	return filename + ext
}
