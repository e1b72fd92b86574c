package main

import (
	"github.com/Apisit250aps/transactions/internal/config" // Custom package for configuration
	"github.com/Apisit250aps/transactions/internal/db"     // Custom package for migration
)

// Main entry point for migration
func main() {
	cfg := config.LoadConfig() // Load configuration
	db.Migrate(cfg.DSN())      // Run schema migration
}
