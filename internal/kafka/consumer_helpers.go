package kafka

import (
	"context"
	"errors"
	"time"

	"github.com/abhijeet3015/socialstream/pkg/metrics"
	"github.com/abhijeet3015/socialstream/pkg/validate"
	"github.com/segmentio/kafka-go"
)

// poll — один запрос к брокеру, ограниченный pollTimeout.
// Таймаут относится только к этому вызову, не ко всей итерации.
func (c *Consumer) poll(ctx context.Context) (kafka.Message, error) {
	pollCtx, cancel := context.WithTimeout(ctx, c.pollTimeout)
	defer cancel()
	return c.reader.FetchMessage(pollCtx)
}

// isEmptyPoll — отличает «данных пока нет» от настоящей ошибки.
// Дедлайн локального poll-контекста — пустой poll; отмена родительского
// контекста сюда не попадает (проверяется раньше).
func isEmptyPoll(err error) bool {
	return errors.Is(err, context.DeadlineExceeded)
}

// handleMessage обрабатывает одно сообщение и решает, коммитить ли оффсет.
func (c *Consumer) handleMessage(ctx context.Context, msg *kafka.Message) bool {
	ctxTimeout, cancel := context.WithTimeout(ctx, c.processTimeout)
	err := c.handler.HandleMessage(ctxTimeout, msg.Value)
	cancel()

	switch {
	case err == nil:
		metrics.EventsProcessed.WithLabelValues(msg.Topic).Inc()
		return true
	case errors.Is(err, validate.ErrInvalidActivity):
		// Ядовитое сообщение: логируем и коммитим, чтобы не обрабатывать повторно.
		metrics.EventsFailed.WithLabelValues(msg.Topic).Inc()
		c.log.Warnf(ctx, "invalid message topic=%s offset=%d: %v (skipped)", msg.Topic, msg.Offset, err)
		return true
	default:
		// Временная ошибка (БД/сеть/таймаут): НЕ коммитим — доставим ещё раз.
		metrics.EventsFailed.WithLabelValues(msg.Topic).Inc()
		c.log.Warnf(ctx, "process failed topic=%s offset=%d: %v (will retry without commit)", msg.Topic, msg.Offset, err)
		return false
	}
}

// commitSafely пытается закоммитить оффсет и логирует ошибку.
func (c *Consumer) commitSafely(ctx context.Context, msg *kafka.Message) {
	if commitErr := c.reader.CommitMessages(ctx, *msg); commitErr != nil {
		c.log.Warnf(ctx, "commit failed offset=%d: %v", msg.Offset, commitErr)
	}
}

// sleep ждёт d или останавливается по контексту.
func (c *Consumer) sleep(ctx context.Context, d time.Duration) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(d):
		return true
	}
}
