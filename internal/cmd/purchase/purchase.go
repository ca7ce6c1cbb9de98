// Package purchase parses purchase service flags and launches the service.
package purchase

import (
	"context"
	"flag"

	entrypoint "github.com/louisbranch/festival-tickets/internal/platform/cmd"
	server "github.com/louisbranch/festival-tickets/internal/services/purchase/app"
)

// Config holds purchase command configuration.
type Config struct {
	Port int `env:"FESTIVAL_TICKETS_PURCHASE_PORT" envDefault:"8092"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Port, "port", cfg.Port, "The purchase gRPC server port")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the purchase gRPC API service.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServicePurchase, func(context.Context) error {
		return server.Run(ctx, cfg.Port)
	})
}
