package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/pflag"
	"golang.org/x/crypto/bcrypt"

	"github.com/Pranav-019/spices-admin-panel/internal/backend"
	"github.com/Pranav-019/spices-admin-panel/internal/config"
	"github.com/Pranav-019/spices-admin-panel/internal/store"
)

const usage = "expected 'add-user' or 'ping-backend' subcommand"

func main() {
	addUserCmd := pflag.NewFlagSet("add-user", pflag.ExitOnError)
	username := addUserCmd.String("username", "", "Username for the new user")
	password := addUserCmd.String("password", "", "Password for the new user")
	dbPath := addUserCmd.String("db", envOr("DB_PATH", "./spices-admin.db"), "SQLite database path")

	pingCmd := pflag.NewFlagSet("ping-backend", pflag.ExitOnError)
	backendURL := pingCmd.String("url", envOr("BACKEND_URL", config.DefaultBackendURL), "Backend base URL")
	revision := pingCmd.String("revision", envOr("BACKEND_REVISION", string(backend.RevisionV2)), "Backend revision (v1 or v2)")
	timeout := pingCmd.Duration("timeout", 15*time.Second, "Timeout for the whole check")

	if len(os.Args) < 2 {
		fmt.Println(usage)
		os.Exit(1)
	}

	switch os.Args[1] {
	case "add-user":
		addUserCmd.Parse(os.Args[2:])
		if *username == "" || *password == "" {
			fmt.Println("username and password are required")
			addUserCmd.PrintDefaults()
			os.Exit(1)
		}
		createUser(*dbPath, *username, *password)
	case "ping-backend":
		pingCmd.Parse(os.Args[2:])
		if err := pingBackend(*backendURL, *revision, *timeout); err != nil {
			fmt.Fprintln(os.Stderr, "backend check failed:", err)
			os.Exit(1)
		}
	default:
		fmt.Println(usage)
		os.Exit(1)
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func createUser(dbPath, username, password string) {
	db, err := store.NewStore(dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()
	// Ensure tables exist if running cli before server
	if err := db.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	if err := db.CreateUser(context.Background(), username, string(hashedPassword)); err != nil {
		log.Fatalf("Failed to create user: %v", err)
	}

	fmt.Printf("User '%s' created successfully.\n", username)
}

// pingBackend lists the catalog and both order collections and prints
// their sizes.
func pingBackend(baseURL, rawRevision string, timeout time.Duration) error {
	rev, err := backend.ParseRevision(rawRevision)
	if err != nil {
		return err
	}
	client, err := backend.New(backend.Options{BaseURL: baseURL, Revision: rev, Timeout: timeout})
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	products, err := client.ListProducts(ctx)
	if err != nil {
		return fmt.Errorf("products: %w", err)
	}
	productOrders, err := client.ListProductOrders(ctx)
	if err != nil {
		return fmt.Errorf("product orders: %w", err)
	}
	customOrders, err := client.ListCustomOrders(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", rev.CustomOrdersLabel(), err)
	}

	fmt.Printf("Backend %s (%s) is reachable.\n", baseURL, rev)
	fmt.Printf("  Products:       %d\n", len(products))
	fmt.Printf("  Product Orders: %d\n", len(productOrders))
	fmt.Printf("  %s: %d\n", rev.CustomOrdersLabel(), len(customOrders))
	return nil
}
