// Package main starts the terminal content admin.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	consolecmd "github.com/louisbranch/contentadmin/internal/cmd/console"
	platformcmd "github.com/louisbranch/contentadmin/internal/platform/cmd"
	"github.com/louisbranch/contentadmin/internal/platform/config"
)

func main() {
	cfg, err := consolecmd.ParseConfig(flag.CommandLine, os.Args[1:], nil)
	config.ExitOnError("parse flags", err)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceConsole, cfg.Telemetry, func(ctx context.Context) error {
		return consolecmd.Run(ctx, cfg, consolecmd.ProgramOptions{})
	})
	config.ExitOnError("console", err)
}
