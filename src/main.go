package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"finance-tracker-server/src/api"
	"finance-tracker-server/src/config"
	"finance-tracker-server/src/db"
	sqlstore "finance-tracker-server/src/db/sql"
	"finance-tracker-server/src/services"

	"golang.org/x/sync/errgroup"
)

func main() {
	cfg := config.Load()

	// Connect to database
	pool, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("DB connection failed: %v", err)
	}
	defer pool.Close()

	if err := db.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Fatalf("Migrations failed: %v", err)
	}

	users := sqlstore.NewUserStore(pool)
	categories := sqlstore.NewCategoryStore(pool)
	transactions := sqlstore.NewTransactionStore(pool)
	budgets := sqlstore.NewBudgetStore(pool)

	svc := api.Services{
		Auth:         services.NewAuthService(users, cfg.JWTSecret, cfg.TokenTTL),
		Categories:   services.NewCategoryService(categories, transactions, budgets),
		Transactions: services.NewTransactionService(transactions, categories),
		Budgets:      services.NewBudgetService(budgets, categories, transactions),
		Dashboard:    services.NewDashboardService(transactions),
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      api.NewRouter(svc, cfg.AllowedOrigins),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Println("INFO: API server running on port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}
	log.Println("INFO: Server stopped")
}
