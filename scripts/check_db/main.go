package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"cinema-tickets/internal/config"
	"cinema-tickets/internal/database"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Connects to the configured database, optionally applies the schema, and
// prints how many reservations and payments it holds.
func main() {
	cfg := config.DatabaseConfig{
		MaxConnections:  2,
		MinConnections:  1,
		MaxConnLifetime: 60,
	}
	flag.StringVar(&cfg.Host, "host", "localhost", "database host")
	flag.IntVar(&cfg.Port, "port", 5432, "database port")
	flag.StringVar(&cfg.User, "user", "postgres", "database user")
	flag.StringVar(&cfg.Password, "password", "postgres", "database password")
	flag.StringVar(&cfg.Database, "db", "cinematickets", "database name")
	migrate := flag.Bool("migrate", false, "create missing tables before reporting")
	flag.Parse()

	logger := config.NewLogger(config.LoggerConfig{Level: "info", Format: "console"})
	ctx := context.Background()

	pool, err := database.NewPool(ctx, cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if *migrate {
		if err := database.EnsureSchema(ctx, pool, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Schema failed: %v\n", err)
			os.Exit(1)
		}
	}

	if err := report(ctx, pool); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func report(ctx context.Context, pool *pgxpool.Pool) error {
	var dbName string
	if err := pool.QueryRow(ctx, "SELECT current_database()").Scan(&dbName); err != nil {
		return fmt.Errorf("QueryRow failed: %w", err)
	}
	fmt.Printf("Successfully connected to database: %s\n", dbName)

	for _, table := range []string{"seat_reservations", "payments"} {
		var exists bool
		if err := pool.QueryRow(ctx, "SELECT to_regclass($1) IS NOT NULL", table).Scan(&exists); err != nil {
			return fmt.Errorf("failed to inspect %s: %w", table, err)
		}
		if !exists {
			fmt.Printf("  - %s: missing (run with -migrate)\n", table)
			continue
		}

		var count int64
		if err := pool.QueryRow(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s", table)).Scan(&count); err != nil {
			return fmt.Errorf("failed to count %s: %w", table, err)
		}
		fmt.Printf("  - %s: %d rows\n", table, count)
	}

	return nil
}
