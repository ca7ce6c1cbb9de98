// Package main starts the purchase gRPC service process lifecycle.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	purchasecmd "github.com/louisbranch/festival-tickets/internal/cmd/purchase"
)

func main() {
	// Local development keeps its configuration in a .env file; absence is fine.
	_ = godotenv.Load()

	cfg, err := purchasecmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[PURCHASE] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := purchasecmd.Run(ctx, cfg); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}
