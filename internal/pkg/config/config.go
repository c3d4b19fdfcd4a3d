package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string        `env:"PORT,        default=8080"`
	Env       string        `env:"ENV,         default=development"`
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL,   default=24h"`
	LogLevel  string        `env:"LOG_LEVEL,   default=info"`

	// LoginDelay models the remote-call latency of sign-in and sign-up.
	LoginDelay time.Duration `env:"LOGIN_DELAY, default=1s"`

	Storage StorageConfig
	Redis   RedisConfig
	Mongo   MongoConfig
	Mailer  MailerConfig
}

type StorageConfig struct {
	// Backend selects the durable key-value store: file, redis, or mongo.
	Backend string `env:"STORAGE_BACKEND, default=file"`
	DataDir string `env:"DATA_DIR,        default=./data"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=mukhtar"`
}

type MailerConfig struct {
	APIKey       string `env:"MAILERSEND_API_KEY"`
	FromName     string `env:"MAILER_FROM_NAME,  default=Mukhtar"`
	FromEmail    string `env:"MAILER_FROM_EMAIL"`
	ResetBaseURL string `env:"RESET_BASE_URL,    default=http://localhost:8080"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
