package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type key string

const (
	KeyLogger    = key("logger")
	KeyUUID      = key("uuid")
	KeyRequestID = key("request_id")
)

const (
	AccessTokenCookie  = "access_token"
	RefreshTokenCookie = "refresh_token"
)

type Config struct {
	Service   ServiceConfig
	Backend   BackendConfig
	Character CharacterConfig
	Logger    LoggerConfig
	Platform  PlatformConfig
}

type ServiceConfig struct {
	Name string `env:"DM_FRONTEND_SERVICE_NAME" env-default:"dm-frontend"`
	Port string `env:"DM_FRONTEND_PORT" env-default:"3000"`
}

type BackendConfig struct {
	BaseURL string        `env:"DM_FRONTEND_BACKEND_URL" env-default:"http://localhost:8000"`
	Timeout time.Duration `env:"DM_FRONTEND_BACKEND_TIMEOUT" env-default:"30s"`
}

// CharacterConfig identifies the single character profile the chat client
// talks to. The profile must already exist on the backend.
type CharacterConfig struct {
	ProfileUID string `env:"DM_FRONTEND_CHARACTER_PROFILE_UID"`
	Name       string `env:"DM_FRONTEND_CHARACTER_NAME" env-default:"Haru"`
}

type LoggerConfig struct {
	Host string `env:"DM_FRONTEND_LOGGER_HOST" env-default:"localhost"`
	Port string `env:"DM_FRONTEND_LOGGER_PORT" env-default:"9999"`
}

type PlatformConfig struct {
	Env string `env:"DM_FRONTEND_ENV" env-default:"dev"`
}

func MustLoad() *Config {
	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		log.Fatalf("failed to read env config: %v", err)
	}
	return cfg
}
