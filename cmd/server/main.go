package main

import (
	"context"
	"log"
	"net/http"

	"github.com/joho/godotenv"

	webAdapter "personnel-portal/internal/adapters/web"
	"personnel-portal/internal/app"
	"personnel-portal/internal/config"
	"personnel-portal/internal/core"
	"personnel-portal/internal/db"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer pool.Close()

	credentials, err := core.NewCredentialStore(cfg.Accounts)
	if err != nil {
		log.Fatalf("credential store: %v", err)
	}
	employees := core.NewEmployeeService(pool)

	svc := app.NewPortalService(credentials, employees)
	handler := webAdapter.NewHandler(svc, cfg.SessionTTL)

	log.Printf("server starting on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, handler); err != nil {
		log.Fatalf("server: %v", err)
	}
}
