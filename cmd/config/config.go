package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
	StorageSQL    = "sql"
)

type Config struct {
	Environment string `envconfig:"MICROMARKET_ENVIRONMENT" default:"development"`
	LogLevel    string `envconfig:"MICROMARKET_LOG_LEVEL" default:"info"`
	Server      ServerConfig
	Backend     BackendConfig
	Storage     StorageConfig
	Redis       RedisConfig
	Database    DatabaseConfig
	RabbitMQ    RabbitMQConfig
	Metrics     MetricsConfig
	Tracing     TracingConfig
}

type ServerConfig struct {
	Port         string        `envconfig:"MICROMARKET_SERVER_PORT" default:"8080"`
	ReadTimeout  time.Duration `envconfig:"MICROMARKET_SERVER_READ_TIMEOUT" default:"15s"`
	WriteTimeout time.Duration `envconfig:"MICROMARKET_SERVER_WRITE_TIMEOUT" default:"15s"`
	IdleTimeout  time.Duration `envconfig:"MICROMARKET_SERVER_IDLE_TIMEOUT" default:"60s"`

	// InternalAPIKey enables the /internal routes when set.
	InternalAPIKey string `envconfig:"MICROMARKET_SERVER_INTERNAL_API_KEY"`
}

// BackendConfig points at the marketplace REST API. Timeout zero means the
// client waits as long as the caller's context allows.
type BackendConfig struct {
	URL      string        `envconfig:"MICROMARKET_BACKEND_URL" default:"http://localhost:8001"`
	Timeout  time.Duration `envconfig:"MICROMARKET_BACKEND_TIMEOUT" default:"0s"`
	SeedDemo bool          `envconfig:"MICROMARKET_BACKEND_SEED_DEMO" default:"true"`
}

type StorageConfig struct {
	Driver    string `envconfig:"MICROMARKET_STORAGE_DRIVER" default:"memory"`
	Namespace string `envconfig:"MICROMARKET_STORAGE_NAMESPACE" default:"micromarket"`
}

type RedisConfig struct {
	Host     string `envconfig:"MICROMARKET_REDIS_HOST" default:"localhost"`
	Port     int    `envconfig:"MICROMARKET_REDIS_PORT" default:"6379"`
	Password string `envconfig:"MICROMARKET_REDIS_PASSWORD"`
	DB       int    `envconfig:"MICROMARKET_REDIS_DB" default:"0"`
}

type DatabaseConfig struct {
	Host            string        `envconfig:"MICROMARKET_DB_HOST" default:"localhost"`
	Port            int           `envconfig:"MICROMARKET_DB_PORT" default:"3306"`
	User            string        `envconfig:"MICROMARKET_DB_USER" default:"root"`
	Password        string        `envconfig:"MICROMARKET_DB_PASSWORD"`
	Name            string        `envconfig:"MICROMARKET_DB_NAME" default:"micromarket"`
	MaxOpenConns    int           `envconfig:"MICROMARKET_DB_MAX_OPEN_CONNS" default:"5"`
	MaxIdleConns    int           `envconfig:"MICROMARKET_DB_MAX_IDLE_CONNS" default:"2"`
	ConnMaxLifetime time.Duration `envconfig:"MICROMARKET_DB_CONN_MAX_LIFETIME" default:"1h"`
}

type RabbitMQConfig struct {
	Enabled  bool   `envconfig:"MICROMARKET_RABBITMQ_ENABLED" default:"false"`
	Host     string `envconfig:"MICROMARKET_RABBITMQ_HOST" default:"localhost"`
	Port     int    `envconfig:"MICROMARKET_RABBITMQ_PORT" default:"5672"`
	User     string `envconfig:"MICROMARKET_RABBITMQ_USER" default:"guest"`
	Password string `envconfig:"MICROMARKET_RABBITMQ_PASSWORD" default:"guest"`
	Exchange string `envconfig:"MICROMARKET_RABBITMQ_EXCHANGE" default:"micromarket.activity"`
}

type MetricsConfig struct {
	Enabled bool `envconfig:"MICROMARKET_METRICS_ENABLED" default:"true"`
}

type TracingConfig struct {
	Enabled     bool   `envconfig:"MICROMARKET_TRACING_ENABLED" default:"false"`
	ServiceName string `envconfig:"MICROMARKET_TRACING_SERVICE_NAME" default:"micromarket-client"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	switch cfg.Storage.Driver {
	case StorageMemory, StorageRedis, StorageSQL:
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
	if cfg.Backend.URL == "" {
		return nil, fmt.Errorf("backend url is required")
	}
	return &cfg, nil
}

func (c *Config) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
	)
}

func (c *Config) GetRabbitMQURL() string {
	return fmt.Sprintf("amqp://%s:%s@%s:%d/",
		c.RabbitMQ.User,
		c.RabbitMQ.Password,
		c.RabbitMQ.Host,
		c.RabbitMQ.Port,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
