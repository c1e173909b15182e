package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"biblioreservas/internal/config"
	"biblioreservas/internal/mailer"
	"biblioreservas/internal/queue"
	"biblioreservas/internal/worker"

	"github.com/joho/godotenv"
)

type emailConsumer interface {
	Connect() error
	Run(ctx context.Context) error
	Close()
}

var (
	loadConfig = config.Load
	exitFunc   = os.Exit

	newConsumer = func(queueCfg queue.Config, mailCfg mailer.Config) emailConsumer {
		return worker.NewConsumer(queueCfg, mailCfg, nil)
	}
	notifySignals = func() (context.Context, context.CancelFunc) {
		return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	}
)

func run() error {
	// a missing .env is fine, the environment may be set directly
	_ = godotenv.Load()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	c := newConsumer(cfg.Queue, cfg.SMTP)
	if err := c.Connect(); err != nil {
		return fmt.Errorf("queue connection failed: %w", err)
	}
	defer c.Close()

	ctx, stop := notifySignals()
	defer stop()

	log.Printf("worker: consuming %q", cfg.Queue.Name)
	return c.Run(ctx)
}

func main() {
	if err := run(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
