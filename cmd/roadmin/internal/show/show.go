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

// Package show implements the "roadmin show" and "roadmin player" commands,
// that print the datastore entries on the terminal.
package show

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/trace"
	"strings"

	"github.com/fatih/color"
	"github.com/rusq/fsadapter"

	"github.com/KhanPython/RoAdmin/cmd/roadmin/internal/bootstrap"
	"github.com/KhanPython/RoAdmin/cmd/roadmin/internal/cfg"
	"github.com/KhanPython/RoAdmin/cmd/roadmin/internal/golang/base"
	"github.com/KhanPython/RoAdmin/internal/lookup"
	"github.com/KhanPython/RoAdmin/internal/render"
)

var CmdShow = &base.Command{
	UsageLine: "roadmin show [flags] " + lookup.EntryUsage,
	Short:     "show the datastore entry",
	Long: `
# Show Command

Shows the standard datastore entry by its key, for example:

    roadmin show gold_100 123456 Economy

The universe must have the API key registered, see "roadmin help key".

The top-level values of the entry are printed as the summary fields, followed
by the JSON document.  Entries that are too large are saved to a file in the
directory given with -o flag, or the current directory.  If -o names a file
with ".zip" extension, the entry is added to that zip file.
`,
	PrintFlags: true,
}

var CmdPlayer = &base.Command{
	UsageLine: "roadmin player [flags] " + lookup.RecordUsage,
	Short:     "show the player record",
	Long: `
# Player Command

Shows the player record, which is the datastore entry keyed by the user id.
If the datastore is not given, "` + lookup.DefRecordDatastore + `" is used:

    roadmin player 1234 123456

If your experience keys the records differently, i.e. "Player_1234", set the
key template with -record-key flag:

    roadmin player -record-key "Player_%d" 1234 123456 PlayerData
`,
	PrintFlags: true,
}

// lookuper is the subset of the lookup service used by the commands.
type lookuper interface {
	ShowEntry(ctx context.Context, req lookup.EntryRequest) (*lookup.Outcome, error)
	ShowRecord(ctx context.Context, req lookup.RecordRequest) (*lookup.Outcome, error)
}

// newService is used for test rigging.
var newService = func(ctx context.Context) (lookuper, error) {
	p, err := bootstrap.NewPipeline(ctx, render.TextLimits)
	if err != nil {
		return nil, err
	}
	return p.Service, nil
}

var (
	fShowOutput   = CmdShow.Flag.String("o", ".", "`directory` or zip file to save the entries that are too large to display")
	fPlayerOutput = CmdPlayer.Flag.String("o", ".", "`directory` or zip file to save the records that are too large to display")
)

func init() {
	CmdShow.Run = runShow
	CmdPlayer.Run = runPlayer
}

func runShow(ctx context.Context, cmd *base.Command, args []string) error {
	ctx, task := trace.NewTask(ctx, "runShow")
	defer task.End()

	if len(args) > 3 {
		base.SetExitStatus(base.SInvalidParameters)
		return fmt.Errorf("too many arguments, expected: %s", lookup.EntryUsage)
	}
	var req lookup.EntryRequest
	args = append(args, "", "", "")
	req.Key, req.Datastore = args[0], args[2]
	req.UniverseID = lookup.ParseID(args[1])

	svc, err := newService(ctx)
	if err != nil {
		base.SetExitStatus(base.SInitializationError)
		return err
	}
	out, err := svc.ShowEntry(ctx, req)
	return report(ctx, os.Stdout, *fShowOutput, lookup.EntryUsage, out, err)
}

func runPlayer(ctx context.Context, cmd *base.Command, args []string) error {
	ctx, task := trace.NewTask(ctx, "runPlayer")
	defer task.End()

	if len(args) > 3 {
		base.SetExitStatus(base.SInvalidParameters)
		return fmt.Errorf("too many arguments, expected: %s", lookup.RecordUsage)
	}
	var req lookup.RecordRequest
	args = append(args, "", "", "")
	req.UserID = lookup.ParseID(args[0])
	req.UniverseID = lookup.ParseID(args[1])
	req.Datastore = args[2]

	svc, err := newService(ctx)
	if err != nil {
		base.SetExitStatus(base.SInitializationError)
		return err
	}
	out, err := svc.ShowRecord(ctx, req)
	return report(ctx, os.Stdout, *fPlayerOutput, lookup.RecordUsage, out, err)
}

// report prints the outcome to w, and sets the exit status.  Attachments are
// saved to the directory dir.
func report(ctx context.Context, w io.Writer, dir string, usage string, out *lookup.Outcome, err error) error {
	if err != nil {
		cfg.Log.DebugContext(ctx, "lookup failed", "error", err)
		base.SetExitStatus(base.SApplicationError)
		return errors.New(lookup.ErrorMessage(err))
	}
	switch out.Status {
	case lookup.StatusOK:
	case lookup.StatusInvalidInput:
		base.SetExitStatus(base.SInvalidParameters)
		return fmt.Errorf("%s\nusage: %s", out.Message, usage)
	default:
		base.SetExitStatus(base.SUserError)
		return errors.New(out.Message)
	}

	if err := writeOutcome(w, out); err != nil {
		base.SetExitStatus(base.SApplicationError)
		return err
	}
	if a := out.Plan.Attachment; a != nil {
		fn, err := saveAttachment(dir, a)
		if err != nil {
			base.SetExitStatus(base.SApplicationError)
			return fmt.Errorf("error saving the attachment: %w", err)
		}
		fmt.Fprintf(w, "saved to: %s\n", fn)
	}
	return nil
}

// label is the header label style, colour is disabled if the output is not
// a terminal.
var label = color.New(color.Bold).SprintFunc()

func writeOutcome(w io.Writer, out *lookup.Outcome) error {
	var sb strings.Builder
	hdr := func(name string, v any) {
		fmt.Fprintf(&sb, "%s %v\n", label(fmt.Sprintf("%-12s", name+":")), v)
	}
	hdr("Experience", out.Universe.Name)
	hdr("Universe ID", out.UniverseID)
	hdr("Datastore", out.Datastore)
	hdr("Key", out.Key)
	if v := out.Meta.Version; v != "" {
		hdr("Version", v)
	}
	if t := out.Meta.UpdatedTime; !t.IsZero() {
		hdr("Updated", t.UTC().Format(render.TimeFormat))
	}
	sb.WriteString("\n")
	if _, err := io.WriteString(w, sb.String()); err != nil {
		return err
	}
	return render.WriteText(w, out.Title, out.Plan)
}

// saveAttachment saves the attachment into the output, which is either a
// directory or a zip file.  It returns the location of the saved file.
func saveAttachment(output string, a *render.Attachment) (string, error) {
	isZip := strings.EqualFold(filepath.Ext(output), ".zip")
	if !isZip {
		if err := os.MkdirAll(output, 0o755); err != nil {
			return "", err
		}
	}
	fsa, err := fsadapter.New(output)
	if err != nil {
		return "", err
	}
	wc, err := fsa.Create(a.Filename)
	if err != nil {
		fsa.Close()
		return "", err
	}
	if _, err := wc.Write(a.Data); err != nil {
		wc.Close()
		fsa.Close()
		return "", err
	}
	if err := wc.Close(); err != nil {
		fsa.Close()
		return "", err
	}
	if err := fsa.Close(); err != nil {
		return "", err
	}
	if isZip {
		return output + ":" + a.Filename, nil
	}
	return filepath.Join(output, a.Filename), nil
}

