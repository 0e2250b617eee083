// Package main seeds the BookHaven database with the starter catalog and,
// optionally, an admin account. Run it against the same data directory the
// server uses, while the server is stopped.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bookhavenapp/bookhaven-server/internal/config"
	"github.com/bookhavenapp/bookhaven-server/internal/logger"
	"github.com/bookhavenapp/bookhaven-server/internal/seed"
	"github.com/bookhavenapp/bookhaven-server/internal/store"
)

func main() {
	adminEmail := flag.String("admin-email", "", "create an admin account with this email")
	adminPassword := flag.String("admin-password", "", "password for the admin account")
	adminName := flag.String("admin-name", "Administrator", "display name for the admin account")
	flag.Parse()

	if err := run(*adminEmail, *adminPassword, *adminName); err != nil {
		fmt.Fprintf(os.Stderr, "seed failed: %v\n", err)
		os.Exit(1)
	}
}

func run(adminEmail, adminPassword, adminName string) error {
	if (adminEmail == "") != (adminPassword == "") {
		return fmt.Errorf("admin-email and admin-password must be set together")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	log := logger.New(logger.Config{
		Level:       logger.ParseLevel(cfg.Logger.Level),
		Environment: cfg.App.Environment,
	})

	st, err := store.New(filepath.Join(cfg.Data.BasePath, "db"), log.Logger)
	if err != nil {
		return err
	}
	defer st.Close()

	ctx := context.Background()
	seeder := seed.New(st, log.Logger)

	if err := seeder.Run(ctx); err != nil {
		return err
	}

	if adminEmail != "" {
		admin, err := seeder.CreateAdmin(ctx, adminEmail, adminPassword, adminName)
		if err != nil {
			return err
		}
		log.Info("Admin account ready", "email", admin.Email, "user_id", admin.ID)
	}

	return nil
}
