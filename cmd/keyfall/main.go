// Command keyfall is a terminal typing game: type the key for each falling
// symbol before it lands.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/peterbourgon/ff/v3/ffcli"

	"github.com/lixenwraith/keyfall/config"
	"github.com/lixenwraith/keyfall/core"
)

func main() {
	// Panic recovery: restore the terminal even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], os.Stdout)
	stop()

	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "keyfall: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	return buildCLI(stdout).ParseAndRun(ctx, args)
}

func buildCLI(stdout io.Writer) *ffcli.Command {
	cfg := config.Default()
	rootFlagSet := flag.NewFlagSet("keyfall", flag.ContinueOnError)
	cfg.RegisterFlags(rootFlagSet)

	scoresCmd := &ffcli.Command{
		Name:       "scores",
		ShortUsage: "keyfall [flags] scores",
		ShortHelp:  "Print the leaderboard and exit",
		Exec: func(_ context.Context, _ []string) error {
			return printScores(stdout, cfg)
		},
	}

	return &ffcli.Command{
		ShortUsage:  "keyfall [flags] [subcommand]",
		ShortHelp:   "Type the falling symbols before they land",
		FlagSet:     rootFlagSet,
		Options:     config.Options(),
		Subcommands: []*ffcli.Command{scoresCmd},
		Exec: func(ctx context.Context, _ []string) error {
			return play(ctx, cfg)
		},
	}
}
