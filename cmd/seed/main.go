// Seeder: cria as tabelas (se necessário) e carrega o catálogo de raças
// no Postgres. Idempotente — raças já cadastradas são puladas.
//
// Uso: DB_DSN=postgres://... go run ./cmd/seed
package main

import (
	"context"
	"os"
	"time"

	"pet-web-api/internal/adapters/storage/postgres"
	"pet-web-api/internal/config"
	"pet-web-api/internal/platform/logger"
	"pet-web-api/internal/seed"
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
		App:    "pet-web-seed",
	})

	if cfg.DBDSN == "" {
		log.Error("DB_DSN é obrigatório para o seed", nil)
		os.Exit(1)
	}

	db, err := postgres.Open(cfg.DBDSN)
	if err != nil {
		log.Error("não foi possível conectar no banco", map[string]any{"err": err.Error()})
		os.Exit(1)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := postgres.InitSchema(ctx, db); err != nil {
		log.Error("falha criando schema", map[string]any{"err": err.Error()})
		os.Exit(1)
	}

	repo := postgres.NewRacasRepo(db)
	for _, rc := range seed.Racas() {
		if err := repo.Upsert(ctx, rc); err != nil {
			log.Error("falha inserindo raça", map[string]any{"nome": rc.Nome, "err": err.Error()})
			os.Exit(1)
		}
		log.Info("raça carregada", map[string]any{"nome": rc.Nome})
	}

	log.Info("seed concluído", map[string]any{"racas": len(seed.Racas())})
}
