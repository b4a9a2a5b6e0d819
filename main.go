package main

import (
	"net/http"
	"os"

	"go.uber.org/zap"

	"casino-sim/internal/api"
	"casino-sim/internal/audit"
	"casino-sim/internal/auth"
	"casino-sim/internal/config"
	"casino-sim/internal/database"
	"casino-sim/internal/logger"
	"casino-sim/internal/rng"
	"casino-sim/pkg/commentary"
)

func main() {
	cfg := config.Load()
	if err := cfg.LoadRules("config.yaml"); err != nil {
		os.Stderr.WriteString("invalid config.yaml: " + err.Error() + "\n")
		os.Exit(1)
	}

	log, err := logger.New(cfg.Server.Development)
	if err != nil {
		os.Stderr.WriteString("failed to build logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer log.Sync()

	// The audit trail is optional; without a DSN every audit call is a no-op.
	auditSvc := audit.New(nil)
	if cfg.Database.DSN != "" {
		db, err := database.New(cfg.Database.Driver, cfg.Database.DSN)
		if err != nil {
			log.Fatal("failed to connect to audit database", zap.Error(err))
		}
		if err := db.Migrate(); err != nil {
			log.Fatal("failed to run migrations", zap.Error(err))
		}
		auditSvc = audit.New(db.DB)
		log.Info("audit trail enabled")
	}

	var relay *commentary.Client
	if cfg.Relay.BaseURL != "" {
		relay = commentary.NewClient(&commentary.ClientConfig{
			BaseURL: cfg.Relay.BaseURL,
			Timeout: cfg.Relay.Timeout,
		})
		log.Info("dealer commentary enabled", zap.String("relay", cfg.Relay.BaseURL))
	}

	authSvc := auth.New(&cfg.Auth, auditSvc)
	handler := api.New(cfg, log, authSvc, auditSvc, rng.New(), relay)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler.SetupRouter(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	log.Info("casino server listening", zap.String("port", cfg.Server.Port))
	if err := server.ListenAndServe(); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
