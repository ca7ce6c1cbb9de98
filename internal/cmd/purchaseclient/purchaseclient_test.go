package purchaseclient

import (
	"context"
	"flag"
	"strings"
	"testing"
)

func TestParseConfigReadsEnvAndFlags(t *testing.T) {
	t.Setenv("FESTIVAL_TICKETS_PURCHASE_ADDR", "env-host:9000")

	fs := flag.NewFlagSet("purchase-client", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-op", "add", "-type", "chalet3", "-duration", "3"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Addr != "env-host:9000" {
		t.Fatalf("addr = %q, want env value", cfg.Addr)
	}
	if cfg.Op != "add" || cfg.TypeID != "chalet3" || cfg.Duration != 3 {
		t.Fatalf("cfg = %+v, want add/chalet3/3", cfg)
	}
}

func TestRunRejectsUnknownOperation(t *testing.T) {
	err := Run(context.Background(), Config{Addr: "localhost:1", Op: "frobnicate"}, nil)
	if err == nil || !strings.Contains(err.Error(), "unknown operation") {
		t.Fatalf("err = %v, want unknown operation", err)
	}
}
