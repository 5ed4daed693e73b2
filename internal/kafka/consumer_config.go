package kafka

import (
	"errors"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
)

type ConsumerConfig struct {
	Brokers     []string
	Topics      []string
	GroupID     string
	StartOffset string

	PollTimeout    time.Duration // ограничивает один poll
	ProcessTimeout time.Duration // ограничивает обработку одного сообщения
	IdleDelay      time.Duration // пауза после пустого poll'а
	RetryDelay     time.Duration // фиксированная пауза после ошибки
}

// validate — проверка обязательных полей. Ошибка здесь фатальна для
// консьюмера: без брокеров/топиков/группы подписка невозможна.
func (c *ConsumerConfig) validate() error {
	if len(c.Brokers) == 0 {
		return errors.New("consumer config: no brokers")
	}
	for _, t := range c.Topics {
		if strings.TrimSpace(t) == "" {
			return errors.New("consumer config: empty topic")
		}
	}
	if len(c.Topics) == 0 {
		return errors.New("consumer config: no topics")
	}
	if c.GroupID == "" {
		return errors.New("consumer config: empty group id")
	}
	return nil
}

// ReaderConfig — настроен на ручной коммит оффсетов (CommitInterval=0).
func (c *ConsumerConfig) ReaderConfig() kafka.ReaderConfig {
	rc := kafka.ReaderConfig{
		Brokers:        c.Brokers,
		GroupID:        c.GroupID,
		GroupTopics:    c.Topics,
		CommitInterval: 0,
	}

	switch strings.ToLower(strings.TrimSpace(c.StartOffset)) {
	case "first":
		rc.StartOffset = kafka.FirstOffset
	default:
		rc.StartOffset = kafka.LastOffset
	}

	return rc
}
