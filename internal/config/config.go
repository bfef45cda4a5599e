// Package config carrega a configuração da aplicação a partir de variáveis
// de ambiente. Não há arquivo de config obrigatório: todos os valores têm
// default razoável para desenvolvimento local.
package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	AppName string `env:"APP_NAME" env-default:"pet-web-api"`
	Port    string `env:"PORT" env-default:"8080"`

	// DBDSN vazio liga o modo memória (dev/testes), com o catálogo de
	// raças pré-carregado.
	DBDSN string `env:"DB_DSN"`

	// FrontendDir, quando definido, ativa o catch-all que serve a SPA.
	FrontendDir string `env:"FRONTEND_DIR"`

	LogLevel  string `env:"LOG_LEVEL" env-default:"info"`
	LogFormat string `env:"LOG_FORMAT" env-default:"text"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
