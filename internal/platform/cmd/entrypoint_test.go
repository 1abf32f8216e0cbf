package cmd

import (
	"context"
	"errors"
	"flag"
	"testing"
	"time"

	"github.com/louisbranch/contentadmin/internal/platform/otel"
)

type testConfig struct {
	Address string `env:"CONTENTADMIN_CMD_TEST_ADDRESS" envDefault:"127.0.0.1:8080"`
	Mode    string `env:"CONTENTADMIN_CMD_TEST_MODE" envDefault:"server"`
}

func TestParseConfigReadsEnvAndFlags(t *testing.T) {
	t.Setenv("CONTENTADMIN_CMD_TEST_ADDRESS", "env:9000")
	t.Setenv("CONTENTADMIN_CMD_TEST_MODE", "env-mode")

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfgRef := testConfig{}
	if err := ParseConfig(&cfgRef); err != nil {
		t.Fatalf("load config defaults: %v", err)
	}
	fs.StringVar(&cfgRef.Address, "address", cfgRef.Address, "address")
	fs.StringVar(&cfgRef.Mode, "mode", cfgRef.Mode, "mode")

	if err := ParseArgs(fs, []string{"-address", "flag:9001"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if cfgRef.Address != "flag:9001" {
		t.Fatalf("expected flag value for address, got %q", cfgRef.Address)
	}
	if cfgRef.Mode != "env-mode" {
		t.Fatalf("expected env default mode, got %q", cfgRef.Mode)
	}
}

func TestParseArgsRejectsNilParser(t *testing.T) {
	if err := ParseArgs(nil, []string{}); err == nil {
		t.Fatal("expected parse args to reject nil parser")
	}
}

func TestRunWithTelemetryRejectsMissingInputs(t *testing.T) {
	ctx := context.Background()
	if err := RunWithTelemetry(ctx, "", otel.Config{}, func(context.Context) error { return nil }); err == nil {
		t.Fatal("expected missing service error")
	}
	if err := RunWithTelemetry(ctx, ServiceAdmin, otel.Config{}, nil); err == nil {
		t.Fatal("expected missing run function error")
	}
}

func TestRunWithTelemetryRunsAndPropagatesError(t *testing.T) {
	wantErr := errors.New("serve failed")
	called := false
	err := RunWithTelemetryAndOptions(context.Background(), ServiceConsole, RunOptions{ShutdownTimeout: time.Second}, func(context.Context) error {
		called = true
		return wantErr
	})
	if !called {
		t.Fatal("expected run function to be called")
	}
	if !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want %v", err, wantErr)
	}
}
