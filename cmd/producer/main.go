package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/abhijeet3015/socialstream/config"
	"github.com/abhijeet3015/socialstream/internal/kafka"
	"github.com/abhijeet3015/socialstream/internal/source"
	"github.com/abhijeet3015/socialstream/pkg/logger"
	"github.com/abhijeet3015/socialstream/pkg/metrics"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Продьюсер внешних данных: опрос погодного API по таймеру
// и публикация сырых payload'ов в брокер под фиксированным ключом.
func main() {
	_ = godotenv.Load(".env.local")

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logg, cleanup, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = cleanup() }()

	metrics.MustRegister()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	producer := kafka.NewProducer(&kafka.ProducerConfig{
		Brokers:      cfg.Kafka.Brokers,
		BatchTimeout: cfg.Kafka.BatchTimeout,
	}, logg)

	fetcher := source.NewWeatherClient(source.WeatherConfig{
		BaseURL:   cfg.Weather.BaseURL,
		Latitude:  cfg.Weather.Latitude,
		Longitude: cfg.Weather.Longitude,
		Current:   cfg.Weather.Current,
		Timeout:   cfg.Weather.Timeout,
	})

	runner := source.NewRunner(fetcher, producer, cfg.Weather.Topic, cfg.Weather.Key, cfg.Weather.Interval, logg)

	// Метрики продьюсера.
	metricsSrv := &http.Server{Addr: cfg.Metrics.Addr, Handler: promhttp.Handler()}
	go func() {
		logg.Infof(ctx, "metrics server starting (addr=%s)", cfg.Metrics.Addr)
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Warnf(ctx, "metrics server stopped: %v", err)
		}
	}()

	if err := runner.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logg.Errorf(ctx, "runner: %v", err)
		_ = metricsSrv.Close()
		os.Exit(1)
	}

	_ = metricsSrv.Close()
	logg.Infof(ctx, "producer stopped")
}
