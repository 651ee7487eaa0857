package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/csrf"
	"github.com/gorilla/sessions"

	"github.com/Pranav-019/spices-admin-panel/internal/backend"
	"github.com/Pranav-019/spices-admin-panel/internal/config"
	"github.com/Pranav-019/spices-admin-panel/internal/handlers"
	"github.com/Pranav-019/spices-admin-panel/internal/nav"
	"github.com/Pranav-019/spices-admin-panel/internal/orders"
	"github.com/Pranav-019/spices-admin-panel/internal/store"
	"github.com/Pranav-019/spices-admin-panel/internal/validation"
	"github.com/Pranav-019/spices-admin-panel/web"
)

func main() {
	// Configure slog to output DEBUG level messages
	handlerOpts := &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, handlerOpts))
	slog.SetDefault(logger)

	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// 2. Init DB
	db, err := store.NewStore(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize store", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run Migrations
	if err := db.Migrate(); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	// 3. Backend client
	client, err := backend.New(backend.Options{
		BaseURL:       cfg.BackendURL,
		SocialBaseURL: cfg.SocialBackendURL,
		Revision:      cfg.BackendRevision,
		Timeout:       cfg.BackendTimeout,
	})
	if err != nil {
		slog.Error("Failed to create backend client", "error", err)
		os.Exit(1)
	}
	slog.Info("Backend configured", "url", cfg.BackendURL, "social_url", cfg.SocialBackendURL, "revision", client.Revision())

	// 4. Session Setup
	sessionStore := sessions.NewCookieStore(cfg.SessionKey)
	sessionStore.Options.HttpOnly = true
	sessionStore.Options.Secure = cfg.CookieSecure
	sessionStore.Options.SameSite = http.SameSiteLaxMode
	sessionStore.Options.Path = "/"
	if cfg.CookieDomain != "" {
		sessionStore.Options.Domain = cfg.CookieDomain
	}

	// 5. Templates and navigation
	templates := handlers.NewTemplateCache()
	if err := templates.Load(web.Templates()); err != nil {
		slog.Error("Failed to load templates", "error", err)
		os.Exit(1)
	}

	tree := nav.Default()
	if cfg.NavConfigPath != "" {
		tree, err = nav.Load(cfg.NavConfigPath)
		if err != nil {
			slog.Error("Failed to load navigation config", "path", cfg.NavConfigPath, "error", err)
			os.Exit(1)
		}
	}

	// 6. Setup Handlers
	base := handlers.Base{
		SessionStore: sessionStore,
		Templates:    templates,
		Nav:          tree,
	}
	manager := orders.NewManager(client, db, client.Revision().CustomOrdersLabel())
	validate := validation.New()

	loginLimiter := handlers.NewRateLimiter(cfg.LoginRateWindow)
	defer loginLimiter.Stop()

	mux := handlers.NewRouter(handlers.Handlers{
		Admin:        &handlers.AdminHandler{Base: base, Store: db, Catalog: client, Orders: manager},
		Products:     &handlers.ProductHandler{Base: base, Catalog: client, Validate: validate},
		Social:       &handlers.SocialHandler{Base: base, Social: client, Validate: validate},
		Orders:       &handlers.OrderHandler{Base: base, Orders: manager, PageSize: cfg.OrdersPageSize},
		LoginLimiter: loginLimiter,
		Static:       web.Static(),
	})

	// 7. Middleware Setup
	CSRF := csrf.Protect(
		cfg.CSRFKey,
		csrf.Secure(cfg.CookieSecure),
		csrf.TrustedOrigins([]string{"localhost:" + cfg.Port, "127.0.0.1:" + cfg.Port, "localhost", "127.0.0.1"}),
	)

	handler := handlers.Chain(mux, CSRF)

	// 8. Start Server with Graceful Shutdown
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("Server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to listen and serve", "error", err)
			os.Exit(1)
		}
	}()

	// Block until a signal is received
	<-stop

	slog.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited gracefully.")
}
