package source

import (
	"context"
	"time"

	"github.com/abhijeet3015/socialstream/internal/ports"
	"github.com/abhijeet3015/socialstream/pkg/metrics"
)

// Runner — цикл «fetch по таймеру → publish».
// Неудачный fetch пропускает такт (лог + метрика), неудачная публикация —
// тоже: источник периодический, следующий такт принесёт свежие данные.
type Runner struct {
	fetcher   ports.PayloadFetcher
	publisher ports.EventPublisher
	topic     string
	key       []byte
	interval  time.Duration
	log       ports.Logger
}

func NewRunner(
	fetcher ports.PayloadFetcher,
	publisher ports.EventPublisher,
	topic, key string,
	interval time.Duration,
	log ports.Logger,
) *Runner {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	return &Runner{
		fetcher:   fetcher,
		publisher: publisher,
		topic:     topic,
		key:       []byte(key),
		interval:  interval,
		log:       log,
	}
}

// Run — первый такт сразу, дальше по тикеру; выход по отмене контекста.
func (r *Runner) Run(ctx context.Context) error {
	r.log.Infof(ctx, "source runner started topic=%s interval=%s", r.topic, r.interval)

	r.cycle(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.log.Infof(ctx, "source runner stopped: %v", ctx.Err())
			return ctx.Err()
		case <-ticker.C:
			r.cycle(ctx)
		}
	}
}

// cycle — один такт: fetch, при успехе — publish.
func (r *Runner) cycle(ctx context.Context) {
	payload, err := r.fetcher.Fetch(ctx)
	if err != nil {
		metrics.SourceFetches.WithLabelValues("error").Inc()
		r.log.Warnf(ctx, "fetch failed: %v (skipping cycle)", err)
		return
	}
	metrics.SourceFetches.WithLabelValues("ok").Inc()

	if err := r.publisher.Publish(ctx, r.topic, r.key, payload); err != nil {
		r.log.Warnf(ctx, "publish failed: %v", err)
		return
	}
	r.log.Infof(ctx, "payload published topic=%s bytes=%d", r.topic, len(payload))
}
