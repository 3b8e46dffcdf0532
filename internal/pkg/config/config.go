package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port       string        `env:"PORT,        default=8080"`
	Env        string        `env:"ENV,         default=development"`
	LogLevel   string        `env:"LOG_LEVEL,   default=info"`
	JWTSecret  string        `env:"JWT_SECRET"`
	TokenTTL   time.Duration `env:"TOKEN_TTL,   default=12h"`
	CORSOrigin string        `env:"CORS_ORIGIN, default=http://localhost:8081"`

	Mongo  MongoConfig
	Redis  RedisConfig
	Login  LoginConfig
	Notify NotifyConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=accounts"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,   default=0"`
}

type LoginConfig struct {
	MaxAttempts int64         `env:"LOGIN_MAX_ATTEMPTS, default=10"`
	Window      time.Duration `env:"LOGIN_WINDOW,       default=1m"`
}

type NotifyConfig struct {
	Workers  int    `env:"NOTIFY_WORKERS, default=4"`
	Endpoint string `env:"NOTIFY_ENDPOINT"`
	APIKey   string `env:"NOTIFY_API_KEY"`
	Sender   string `env:"NOTIFY_SENDER, default=no-reply@accounts.local"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
