package ports

import "context"

// EventPublisher — публикация одного сообщения в топик брокера.
// key может быть nil — тогда брокер сам распределяет сообщение по партициям.
// Успешный возврат означает «принято брокером», а не «забуферизовано локально».
type EventPublisher interface {
	Publish(ctx context.Context, topic string, key, value []byte) error
}
