// Command promote sets a user's role to ADMIN by email address.
// Registration never creates admins, so it is used to bootstrap the first one.
//
// Usage:
//
//	promote --email=user@campus.edu
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/heartmarshall/campus-collab-backend/internal/adapter/postgres"
	"github.com/heartmarshall/campus-collab-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/campus-collab-backend/internal/app"
	"github.com/heartmarshall/campus-collab-backend/internal/config"
	"github.com/heartmarshall/campus-collab-backend/internal/domain"
)

func main() {
	email := flag.String("email", "", "email of user to promote to admin")
	configPath := flag.String("config", os.Getenv("CONFIG_PATH"), "path to YAML config")
	flag.Parse()

	if *email == "" {
		fmt.Fprintln(os.Stderr, "Usage: promote --email=user@campus.edu")
		os.Exit(1)
	}

	cfg, err := config.LoadFrom(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	repo := user.New(pool)

	p, err := repo.GetByEmail(ctx, domain.NormalizeEmail(*email))
	if errors.Is(err, domain.ErrNotFound) {
		fmt.Printf("No user found with email %q.\n", *email)
		os.Exit(1)
	}
	if err != nil {
		log.Fatalf("lookup user: %v", err)
	}
	if p.IsAdmin() {
		fmt.Printf("User %q is already admin.\n", p.Email)
		return
	}

	if _, err := repo.UpdateRole(ctx, p.ID, domain.RoleAdmin); err != nil {
		log.Fatalf("update role: %v", err)
	}

	logger.Info("user promoted to admin", "user_id", p.ID, "email", p.Email)
	fmt.Printf("User %q promoted to admin.\n", p.Email)
}
