// Package main runs the purchase service command-line client.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	purchaseclient "github.com/louisbranch/festival-tickets/internal/cmd/purchaseclient"
	"github.com/louisbranch/festival-tickets/internal/platform/config"
)

func main() {
	_ = godotenv.Load()

	cfg, err := purchaseclient.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := purchaseclient.Run(ctx, cfg, os.Stdout); err != nil {
		config.Exitf("Error: %v", err)
	}
}
