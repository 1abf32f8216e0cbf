// Package main starts the content admin HTTP service.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	admincmd "github.com/louisbranch/contentadmin/internal/cmd/admin"
	platformcmd "github.com/louisbranch/contentadmin/internal/platform/cmd"
	"github.com/louisbranch/contentadmin/internal/platform/config"
)

func main() {
	cfg, err := admincmd.ParseConfig(flag.CommandLine, os.Args[1:], nil)
	config.ExitOnError("parse flags", err)
	log.SetPrefix("[ADMIN] ")

	if cfg.IssueTokenFor != "" {
		config.ExitOnError("issue token", admincmd.PrintToken(os.Stdout, cfg, time.Now()))
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceAdmin, cfg.Telemetry, func(ctx context.Context) error {
		return admincmd.Run(ctx, cfg)
	}); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}
