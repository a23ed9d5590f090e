package config_test

import (
	"context"
	"fmt"
	"log"

	"github.com/sagarc03/sqlbridge/config"
)

func ExampleLoad() {
	// Load with defaults only (no config file)
	cfg, err := config.Load(nil, nil)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Connection: %s, Limit: %d\n", cfg.Database.Connection, cfg.Query.Limit)
	// Output: Connection: sqlite:sqlbridge.db, Limit: 10
}

func ExampleWithContext() {
	cfg, _ := config.Load(nil, nil)

	// Store config in context
	ctx := config.WithContext(context.Background(), cfg)

	// Retrieve later (e.g., in a subcommand)
	retrieved, err := config.FromContext(ctx)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Output format: %s\n", retrieved.Output.Format)
	// Output: Output format: human
}
