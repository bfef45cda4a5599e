package main

import (
	"database/sql"
	"net/http"
	"os"
	"time"

	"pet-web-api/internal/adapters/storage/postgres"
	"pet-web-api/internal/config"
	"pet-web-api/internal/platform/logger"
	"pet-web-api/internal/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	var db *sql.DB
	if cfg.DBDSN != "" {
		db, err = postgres.Open(cfg.DBDSN)
		if err != nil {
			log.Error("não foi possível conectar no banco", map[string]any{"err": err.Error()})
			os.Exit(1)
		}
		defer db.Close()
	} else {
		log.Warn("DB_DSN não definido, usando armazenamento em memória", nil)
	}

	r := router.NewRouter(router.Options{
		DB:          db,
		FrontendDir: cfg.FrontendDir,
		Logger:      log,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", map[string]any{"addr": srv.Addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"err": err.Error()})
		os.Exit(1)
	}
}
