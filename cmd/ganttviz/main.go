package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/TudorHulban/gantt/cmd/ganttviz/commands"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	commands.SetVersionInfo(version, commit, date)

	if err := commands.Execute(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
