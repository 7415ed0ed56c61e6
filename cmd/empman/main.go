package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zapp"

	"github.com/imcagla7/employee-management/internal/cli"
	"github.com/imcagla7/employee-management/internal/tui"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	app := zapp.New(zapp.WithName("empman"))

	ctx, cancel := zapp.SignalContext(context.Background())
	defer cancel()

	if len(os.Args) > 1 {
		runCLI(ctx, os.Args[1])
		_ = app.Close()
		return
	}

	if err := runTUI(); err != nil {
		slog.Error("tui", "err", err)
		_ = app.Close()
		os.Exit(1)
	}

	if err := app.Close(); err != nil {
		slog.Error("shutdown", "err", err)
		os.Exit(1)
	}
}

func runCLI(_ context.Context, cmd string) {
	switch cmd {
	case "version":
		fmt.Printf("empman %s\n", version)
	case "list":
		cli.CmdList(os.Args[2:])
	case "show":
		if len(os.Args) < 3 {
			fmt.Fprintln(os.Stderr, "usage: empman show <id>")
			os.Exit(1)
		}
		cli.CmdShow(os.Args[2])
	case "remove":
		if len(os.Args) < 3 {
			fmt.Fprintln(os.Stderr, "usage: empman remove <id>")
			os.Exit(1)
		}
		cli.CmdRemove(os.Args[2])
	case "lang":
		cli.CmdLang(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "empman: unknown command %q\n", cmd)
		os.Exit(1)
	}
}

func runTUI() error {
	s, err := cli.OpenStore(cli.DataDir())
	if err != nil {
		return err
	}

	m := tui.New(version, s)
	p := tea.NewProgram(m)
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	if fm, ok := finalModel.(tui.Model); ok {
		fm.Close()
	}

	return nil
}
