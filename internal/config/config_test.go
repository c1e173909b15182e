package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/biblio")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "postgres://localhost/biblio", cfg.DatabaseURL)
	require.Equal(t, 8000, cfg.Port)
	require.Equal(t, ":8000", cfg.ListenAddr())
	require.Equal(t, []string{"http://localhost:3000"}, cfg.CORSOrigins)
	require.Equal(t, "localhost:6379", cfg.RedisAddr)
	require.Equal(t, 0, cfg.RedisDB)
	require.False(t, cfg.EmailQueueEnabled)

	require.Equal(t, "localhost", cfg.Queue.Host)
	require.Equal(t, 5672, cfg.Queue.Port)
	require.Equal(t, "/", cfg.Queue.VHost)
	require.Equal(t, "guest", cfg.Queue.User)
	require.Equal(t, "email_notifications", cfg.Queue.Name)

	require.Equal(t, 587, cfg.SMTP.Port)
	require.Equal(t, "BiblioReservas", cfg.SMTP.FromName)
	require.False(t, cfg.SMTP.Configured())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://db.internal/biblio")
	t.Setenv("API_PORT", "9001")
	t.Setenv("CORS_ORIGINS", "https://app.example.com,https://staging.example.com")
	t.Setenv("EMAIL_QUEUE_ENABLED", "true")
	t.Setenv("RABBITMQ_URL", "amqps://u:p@mq.example/vh")
	t.Setenv("EMAIL_QUEUE_NAME", "emails")
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_USERNAME", "mailer")
	t.Setenv("SMTP_PASSWORD", "secret")
	t.Setenv("SMTP_FROM_EMAIL", "noreply@example.com")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":9001", cfg.ListenAddr())
	require.Equal(t, []string{"https://app.example.com", "https://staging.example.com"}, cfg.CORSOrigins)
	require.True(t, cfg.EmailQueueEnabled)
	require.Equal(t, "amqps://u:p@mq.example/vh", cfg.Queue.AMQPURL())
	require.Equal(t, "emails", cfg.Queue.Name)
	require.True(t, cfg.SMTP.Configured())
}

func TestLoadMissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "placeholder") // registers restore
	os.Unsetenv("DATABASE_URL")
	_, err := Load()
	require.Error(t, err)

	// set but empty must be rejected the same way
	t.Setenv("DATABASE_URL", "")
	_, err = Load()
	require.Error(t, err)
}
