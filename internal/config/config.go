package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"biblioreservas/internal/mailer"
	"biblioreservas/internal/queue"
)

// Config holds every environment-sourced setting. It is built once at
// process start and passed by reference into the components that need it;
// nothing reads the environment after Load returns.
type Config struct {
	DatabaseURL string   `envconfig:"DATABASE_URL" required:"true"`
	Port        int      `envconfig:"API_PORT" default:"8000"`
	CORSOrigins []string `envconfig:"CORS_ORIGINS" default:"http://localhost:3000"`

	RedisAddr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD" default:""`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`

	// EmailQueueEnabled switches confirmation emails to asynchronous
	// delivery through RabbitMQ. Direct SMTP remains the fallback.
	EmailQueueEnabled bool `envconfig:"EMAIL_QUEUE_ENABLED" default:"false"`

	Queue queue.Config
	SMTP  mailer.Config
}

func (c *Config) ListenAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func Load() (*Config, error) {
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	// envconfig's required tag lets a set-but-empty variable through
	if c.DatabaseURL == "" {
		return nil, fmt.Errorf("config: DATABASE_URL must not be empty")
	}
	return &c, nil
}
