package app

import (
	server "github.com/Erebuz/3-api-validator/internal/adapters/primary/http"
	"github.com/Erebuz/3-api-validator/internal/adapters/secondary/storage/redis"
	"github.com/Erebuz/3-api-validator/internal/pkg/logger"
	"github.com/Erebuz/3-api-validator/internal/usecases/scoring"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Redis  *redis.Config       `envconfig:"REDIS"`
	Log    *logger.Config      `envconfig:"LOG"`
	Server *server.Config      `envconfig:"APISERVER"`
	Auth   *scoring.AuthConfig `envconfig:"AUTH"`
}

func NewEnvConfig(envPrefix string) (*Config, error) {
	cfg := &Config{}

	_ = godotenv.Load("deployments/local/.env")

	if err := envconfig.Process(envPrefix, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
