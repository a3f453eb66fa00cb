package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"skinswap/internal/auth"
	"skinswap/internal/config"
	"skinswap/internal/database"
	inventory "skinswap/internal/inventoryService"
	model "skinswap/internal/models"
	"skinswap/internal/notify"
	"skinswap/internal/repository"
	"skinswap/internal/server"
	trading "skinswap/internal/tradingService"
	"skinswap/utils"

	"github.com/shopspring/decimal"
)

// store is what the services need from a backing repository
type store interface {
	repository.TradeDB
	repository.NotificationStore
}

func main() {
	cfg, envLoaded, err := config.Load()
	if err != nil {
		utils.Fatal("invalid configuration", map[string]any{"error": err.Error()})
	}
	if err := utils.SetLogLevel(cfg.LogLevel); err != nil {
		utils.Warn("unknown log level, keeping default", map[string]any{"level": cfg.LogLevel})
	}
	if !envLoaded {
		utils.Debug("no .env file found, using process environment", nil)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repo, db, err := openStore(ctx, cfg)
	if err != nil {
		utils.Fatal("failed to open store", map[string]any{"driver": cfg.StoreDriver, "error": err.Error()})
	}
	if db != nil {
		defer db.Close()
	}

	dispatcher := notify.NewDispatcher(repo, cfg.NotifyBuffer)

	router := server.SetupRouter(server.Dependencies{
		Trading:     trading.NewTradingService(repo, dispatcher),
		Inventory:   inventory.NewInventoryService(repo),
		Feed:        notify.NewFeed(repo),
		JWT:         auth.NewJWTService(cfg.JWTSecret),
		Idempotency: server.NewIdempotencyStore(cfg.IdempotencyTTL),
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		utils.Info("Starting skinswap server", map[string]any{"addr": srv.Addr, "store": cfg.StoreDriver})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.Fatal("server failed", map[string]any{"error": err.Error()})
		}
	}()

	<-ctx.Done()
	utils.Info("Shutting down server", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		utils.Error("graceful shutdown failed", map[string]any{"error": err.Error()})
	}
	dispatcher.Close()
}

// openStore builds the configured repository. The returned *sql.DB is nil for the memory driver.
func openStore(ctx context.Context, cfg config.Config) (store, *sql.DB, error) {
	if cfg.StoreDriver == config.DriverPostgres {
		db, err := database.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := database.RunMigrations(ctx, db); err != nil {
			db.Close()
			return nil, nil, err
		}
		return repository.NewPostgresRepo(db), db, nil
	}

	repo := repository.NewMemoryRepo()
	if cfg.SeedDemo {
		prepopulate(repo)
	}
	return repo, nil, nil
}

// prepopulate adds demo users and inventories to the in-memory repo
func prepopulate(repo *repository.MemoryRepo) {
	users := []model.User{
		{UserID: "alice", Username: "alice", Coins: 500},
		{UserID: "bob", Username: "bob", Coins: 250},
		{UserID: "carol", Username: "carol", Coins: 100},
	}
	for _, u := range users {
		repo.AddUser(u)
	}

	items := []model.InventoryItem{
		{ItemID: "ak47-redline-1", OwnerID: "alice", DefinitionID: "ak47_redline", Name: "AK-47 | Redline", Value: decimal.RequireFromString("24.50")},
		{ItemID: "awp-asiimov-1", OwnerID: "alice", DefinitionID: "awp_asiimov", Name: "AWP | Asiimov", Value: decimal.RequireFromString("96.10"), Equipped: true},
		{ItemID: "m4a4-howl-1", OwnerID: "bob", DefinitionID: "m4a4_howl", Name: "M4A4 | Howl", Value: decimal.RequireFromString("1820.00")},
		{ItemID: "glock-fade-1", OwnerID: "bob", DefinitionID: "glock_fade", Name: "Glock-18 | Fade", Value: decimal.RequireFromString("412.75")},
		{ItemID: "usp-kill-1", OwnerID: "carol", DefinitionID: "usp_kill_confirmed", Name: "USP-S | Kill Confirmed", Value: decimal.RequireFromString("38.00")},
	}
	for _, item := range items {
		repo.AddItem(item)
	}

	utils.Info("Seeded demo data", map[string]any{"users": len(users), "items": len(items)})
}
