package kafka

import (
	"context"
	"sync"
	"time"

	"github.com/abhijeet3015/socialstream/internal/ports"
	"github.com/abhijeet3015/socialstream/pkg/metrics"
	"github.com/segmentio/kafka-go"
)

// Проверка, что Consumer удовлетворяет интерфейсу верхнего уровня (порт приложения).
var _ ports.MessageConsumer = (*Consumer)(nil)

// reader — минимальный контракт над источником (kafka.Reader),
// чтобы легко подменять его моками в тестах.
type reader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Config() kafka.ReaderConfig
	Close() error
}

// messageHandler — downstream-обработчик: получает сырые байты сообщения.
// Результат определяет переход: nil — коммит; ErrInvalidActivity — коммит и
// пропуск; любая другая ошибка — пауза без коммита (повторная доставка).
type messageHandler interface {
	HandleMessage(ctx context.Context, raw []byte) error
}

// Consumer — цикл «подписка → poll → обработка → пауза».
// Строго последовательный: одно сообщение за итерацию, без буфера
// необработанных результатов — порядок внутри партиции сохраняется.
type Consumer struct {
	reader         reader
	handler        messageHandler
	log            ports.Logger
	pollTimeout    time.Duration
	processTimeout time.Duration
	idleDelay      time.Duration
	retryDelay     time.Duration
	closeOnce      sync.Once
}

// NewConsumer — конструктор. Невалидная конфигурация — фатальная ошибка
// подписки: консьюмер не создаётся, процесс должен завершиться.
func NewConsumer(cfg *ConsumerConfig, handler messageHandler, log ports.Logger) (*Consumer, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	pollT := cfg.PollTimeout
	if pollT <= 0 {
		pollT = 1 * time.Second
	}
	procT := cfg.ProcessTimeout
	if procT <= 0 {
		procT = 5 * time.Second
	}
	idle := cfg.IdleDelay
	if idle <= 0 {
		idle = 1 * time.Second
	}
	// Пауза после сбоя фиксированная: постоянное давление повторов
	// вместо эскалации.
	retry := cfg.RetryDelay
	if retry <= 0 {
		retry = 10 * time.Second
	}

	return &Consumer{
		reader:         kafka.NewReader(cfg.ReaderConfig()),
		handler:        handler,
		log:            log,
		pollTimeout:    pollT,
		processTimeout: procT,
		idleDelay:      idle,
		retryDelay:     retry,
	}, nil
}

// Run — основной цикл:
// 1) один poll с таймаутом; истёкший таймаут — это «нет данных», не ошибка;
// 2) успешная обработка → CommitMessages;
// 3) невалидные данные → лог и CommitMessages (пропускаем навсегда);
// 4) ошибка poll'а или временная ошибка обработки → фиксированная пауза
//    без коммита (at-least-once);
// 5) выход — только по отмене контекста.
func (c *Consumer) Run(ctx context.Context) error {
	rc := c.reader.Config()
	c.log.Infof(ctx, "consumer started topics=%v group_id=%s brokers=%v", rc.GroupTopics, rc.GroupID, rc.Brokers)

	for {
		msg, fetchErr := c.poll(ctx)
		if fetchErr != nil {
			// Если контекст отменён — выходим.
			if ctx.Err() != nil {
				return ctx.Err()
			}

			if isEmptyPoll(fetchErr) {
				// Пустой poll — штатный исход, не ошибка.
				metrics.EmptyPolls.WithLabelValues(rc.GroupID).Inc()
				c.log.Infof(ctx, "no messages yet group_id=%s (waiting)", rc.GroupID)
				if !c.sleep(ctx, c.idleDelay) {
					return ctx.Err()
				}
				continue
			}

			// Временная ошибка брокера/сети: ждём фиксированную паузу и повторяем.
			c.log.Warnf(ctx, "poll failed: %v (will retry in %s)", fetchErr, c.retryDelay)
			if !c.sleep(ctx, c.retryDelay) {
				return ctx.Err()
			}
			continue
		}

		metrics.EventsConsumed.WithLabelValues(msg.Topic).Inc()

		if shouldCommit := c.handleMessage(ctx, &msg); shouldCommit {
			c.commitSafely(ctx, &msg)
		} else {
			// Временная ошибка обработки: пауза перед повтором, без коммита.
			if !c.sleep(ctx, c.retryDelay) {
				return ctx.Err()
			}
		}
	}
}

// Close — закрывает reader. Вызывается при остановке приложения.
func (c *Consumer) Close() (retErr error) {
	c.closeOnce.Do(func() {
		retErr = c.reader.Close()
	})
	return retErr
}
