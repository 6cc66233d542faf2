package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/codementor/codementor-api/config"
	"github.com/codementor/codementor-api/pkg/db"
)

func main() {
	migrationsPath := flag.String("path", "migrations", "path to migration files")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if cfg.Database.Driver != "postgres" {
		fmt.Fprintln(os.Stderr, "migrations only apply to the postgres backend (set DB_DRIVER=postgres)")
		os.Exit(1)
	}

	if err := db.RunMigrations(cfg.Database.URL, *migrationsPath); err != nil {
		fmt.Fprintf(os.Stderr, "migration failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("migrations applied")
}
