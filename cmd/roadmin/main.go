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

// Command roadmin shows the Roblox standard datastore entries on the
// terminal, in Slack, and to AI agents over MCP.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime/trace"
	"strings"
	"syscall"

	"github.com/KhanPython/RoAdmin/cmd/roadmin/internal/cfg"
	"github.com/KhanPython/RoAdmin/cmd/roadmin/internal/golang/base"
	"github.com/KhanPython/RoAdmin/cmd/roadmin/internal/golang/help"
	"github.com/KhanPython/RoAdmin/cmd/roadmin/internal/key"
	"github.com/KhanPython/RoAdmin/cmd/roadmin/internal/limits"
	"github.com/KhanPython/RoAdmin/cmd/roadmin/internal/mcp"
	"github.com/KhanPython/RoAdmin/cmd/roadmin/internal/serve"
	"github.com/KhanPython/RoAdmin/cmd/roadmin/internal/show"
)

func init() {
	base.Roadmin.Commands = []*base.Command{
		show.CmdShow,
		show.CmdPlayer,
		key.CmdKey,
		limits.CmdLimits,
		serve.CmdServe,
		mcp.CmdMCP,
		CmdVersion,

		topicEnvironment,
	}
}

func main() {
	flag.Usage = func() {
		help.PrintUsage(os.Stderr, base.Roadmin)
		base.SetExitStatus(base.SHelpRequested)
		base.Exit()
	}
	flag.Parse()
	args := flag.Args()
	if len(args) < 1 {
		flag.Usage()
	}

	if args[0] == "help" {
		help.Help(os.Stdout, args[1:])
		base.Exit()
		return
	}

BigCmdLoop:
	for bigCmd := base.Roadmin; ; {
		for _, cmd := range bigCmd.Commands {
			if cmd.Name() != args[0] {
				continue
			}
			if len(cmd.Commands) > 0 {
				bigCmd = cmd
				args = args[1:]
				if len(args) == 0 {
					help.PrintUsage(os.Stderr, bigCmd)
					base.SetExitStatus(base.SHelpRequested)
					base.Exit()
				}
				if args[0] == "help" {
					// Accept 'roadmin key help' and 'roadmin key help add' as
					// synonyms for 'roadmin help key' and 'roadmin help key add'.
					help.Help(os.Stdout, append(strings.Split(cmd.LongName(), " "), args[1:]...))
					base.Exit()
					return
				}
				continue BigCmdLoop
			}
			if !cmd.Runnable() {
				continue
			}
			if err := invoke(cmd, args); err != nil {
				reportError(err)
			}
			base.Exit()
			return
		}
		helpArg := ""
		if i := strings.LastIndex(bigCmd.UsageLine, " "); i >= 0 {
			helpArg = " " + bigCmd.UsageLine[:i]
		}
		fmt.Fprintf(os.Stderr, "roadmin %s: unknown command\nRun 'roadmin help%s' for usage.\n", strings.TrimSpace(bigCmd.LongName()+" "+args[0]), helpArg)
		base.SetExitStatus(base.SInvalidParameters)
		base.Exit()
	}
}

// invoke parses the command flags, initialises the logging and tracing, and
// runs the command.
func invoke(cmd *base.Command, args []string) error {
	if cmd.CustomFlags {
		args = args[1:]
	} else {
		cfg.SetBaseFlags(&cmd.Flag, cmd.FlagMask)
		cmd.Flag.Usage = func() { cmd.Usage() }
		if err := cmd.Flag.Parse(args[1:]); err != nil {
			base.SetExitStatus(base.SInvalidParameters)
			return err
		}
		args = cmd.Flag.Args()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	stopTrace := initTrace(cfg.TraceFile)
	defer stopTrace()

	lg, err := initLog(cfg.LogFile, cfg.JSONHandler, cfg.Verbose)
	if err != nil {
		base.SetExitStatus(base.SInitializationError)
		return err
	}
	cfg.Log = lg

	ctx, task := trace.NewTask(ctx, "command")
	defer task.End()
	trace.Log(ctx, "command", fmt.Sprint("Running ", cmd.Name(), " command"))

	return cmd.Run(ctx, cmd, args)
}

func reportError(err error) {
	switch {
	case errors.Is(err, base.ErrOpCancelled):
		fmt.Fprintln(os.Stderr, err)
		return
	case errors.Is(err, context.Canceled):
		base.SetExitStatus(base.SCancelled)
	}
	if base.ExitStatus() == base.SNoError {
		base.SetExitStatus(base.SGenericError)
	}
	slog.Debug("command failed", "status", base.ExitStatus(), "error", err)
	fmt.Fprintf(os.Stderr, "roadmin: %s\n", err)
}
