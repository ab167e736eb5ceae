package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Angelolozano-7/Prisma-Led/internal/config"
	"github.com/Angelolozano-7/Prisma-Led/internal/integrations/mailqueue"
	"github.com/Angelolozano-7/Prisma-Led/internal/integrations/smtpmailer"
	"github.com/Angelolozano-7/Prisma-Led/pkg/logger"
	"github.com/Angelolozano-7/Prisma-Led/pkg/metrics"
)

// Воркер писем-подтверждений: читает очередь RabbitMQ и отправляет письма по SMTP.
func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	if !cfg.RabbitMQ.Enabled {
		log.Fatal("rabbitmq.enabled is false, nothing to consume")
	}

	var metricsCollector *metrics.Metrics
	var metricsSrv *http.Server
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName + "-notifier")

		mux := http.NewServeMux()
		mux.Handle(cfg.Metrics.Path, promhttp.Handler())
		metricsSrv = &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Server.HTTPPort),
			Handler:           mux,
			ReadHeaderTimeout: time.Duration(cfg.Server.ReadTimeout) * time.Second,
		}
		go func() {
			log.Info("Metrics endpoint exposed at %s%s", metricsSrv.Addr, cfg.Metrics.Path)
			if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error("Metrics server failed: %v", err)
			}
		}()
	}

	mailer := smtpmailer.New(smtpmailer.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
	}, metricsCollector, log)

	consumer := mailqueue.NewConsumer(cfg.RabbitMQ.URL, cfg.RabbitMQ.Queue, mailer.Send, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info("Notifier started (queue=%s, smtp=%s:%d)", cfg.RabbitMQ.Queue, cfg.SMTP.Host, cfg.SMTP.Port)

	if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("Consumer stopped with error: %v", err)
	}

	if metricsSrv != nil {
		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
		)
		defer cancel()
		_ = metricsSrv.Shutdown(shutdownCtx)
	}

	log.Info("Notifier stopped")
}
