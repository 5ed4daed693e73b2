package kafka

import (
	"context"
	"fmt"
	"time"

	"github.com/abhijeet3015/socialstream/internal/ports"
	"github.com/abhijeet3015/socialstream/pkg/metrics"
	"github.com/segmentio/kafka-go"
)

// Проверка, что Producer удовлетворяет порту приложения.
var _ ports.EventPublisher = (*Producer)(nil)

// PublishError — типизированная ошибка публикации. Оборачивает причину
// (соединение, запись, flush при закрытии) и не теряет топик.
type PublishError struct {
	Topic string
	Err   error
}

func (e *PublishError) Error() string {
	return fmt.Sprintf("publish to %q: %v", e.Topic, e.Err)
}

func (e *PublishError) Unwrap() error { return e.Err }

// messageWriter — минимальный контракт над kafka.Writer для подмены в тестах.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type ProducerConfig struct {
	Brokers      []string
	BatchTimeout time.Duration
}

// Producer — публикация сообщений по одному, со скоупированным writer'ом:
// соединение открывается на время одного Publish и закрывается на любом
// выходе. Close — это flush, поэтому nil из Publish означает
// «принято брокером», а не «лежит в локальном буфере».
// Состояние между вызовами не хранится; конкурентные вызовы независимы.
type Producer struct {
	newWriter func() messageWriter
	log       ports.Logger
}

// NewProducer — конструктор. Ключ партиционирования балансируется хэшем,
// подтверждение требуем от всех реплик.
func NewProducer(cfg *ProducerConfig, log ports.Logger) *Producer {
	bt := cfg.BatchTimeout
	if bt <= 0 {
		bt = 100 * time.Millisecond
	}
	brokers := cfg.Brokers

	return &Producer{
		newWriter: func() messageWriter {
			return &kafka.Writer{
				Addr:                   kafka.TCP(brokers...),
				Balancer:               &kafka.Hash{},
				RequiredAcks:           kafka.RequireAll,
				BatchTimeout:           bt,
				AllowAutoTopicCreation: true,
			}
		},
		log: log,
	}
}

// Publish — одна публикация: открыть writer, записать, закрыть (flush).
// Ретраев нет — ошибка возвращается вызывающему как *PublishError.
func (p *Producer) Publish(ctx context.Context, topic string, key, value []byte) error {
	if topic == "" {
		return &PublishError{Topic: topic, Err: fmt.Errorf("empty topic")}
	}

	w := p.newWriter()

	writeErr := w.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   key,
		Value: value,
		Time:  time.Now().UTC(),
	})
	// Закрываем всегда, даже после ошибки записи — writer не должен утечь.
	closeErr := w.Close()

	if writeErr != nil {
		metrics.EventsPublishFailed.WithLabelValues(topic).Inc()
		return &PublishError{Topic: topic, Err: writeErr}
	}
	if closeErr != nil {
		// Запись прошла, но flush при закрытии не подтвердился.
		metrics.EventsPublishFailed.WithLabelValues(topic).Inc()
		return &PublishError{Topic: topic, Err: fmt.Errorf("flush on close: %w", closeErr)}
	}

	metrics.EventsPublished.WithLabelValues(topic).Inc()
	p.log.Infof(ctx, "published topic=%s key=%q bytes=%d", topic, key, len(value))
	return nil
}
